package usecase

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/satriahrh/consultassist/domain"
)

var errEmptyResponse = errors.New("model returned an empty response")

// parseModelResponse turns the model's text reply into JSON bytes. When
// required is non-empty the reply must also be an object holding those keys.
func parseModelResponse(op domain.Operation, text string, required []string) (json.RawMessage, error) {
	body := stripCodeFence(text)
	if body == "" {
		return nil, &domain.ResponseFormatError{Op: op, Err: errEmptyResponse}
	}

	var raw json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, &domain.ResponseFormatError{Op: op, Err: err}
	}

	if len(required) > 0 {
		if err := checkFields(op, raw, required); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

func checkFields(op domain.Operation, raw json.RawMessage, required []string) error {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil || object == nil {
		return &domain.ResponseSchemaError{Op: op}
	}

	var missing []string
	for _, key := range required {
		if _, ok := object[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &domain.ResponseSchemaError{Op: op, Missing: missing}
	}
	return nil
}

// stripCodeFence removes surrounding whitespace and one markdown code fence
// such as ```json ... ```, which models often wrap JSON in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
