package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "surrounding whitespace", in: "\n  {\"a\":1}\n", want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```\n", want: `{"a":1}`},
		{name: "single line fence", in: "```{\"a\":1}```", want: `{"a":1}`},
		{name: "prose is left alone", in: "Here you go: {\"a\":1}", want: "Here you go: {\"a\":1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}

func TestParseModelResponse_RejectsTrailingText(t *testing.T) {
	_, err := parseModelResponse("Sentiment analysis", `{"a":1} and some commentary`, nil)
	assert.Error(t, err)
}
