package entities

import "encoding/json"

// Question types understood by the question generation prompt.
const (
	QuestionTypeOpen = "open"
)

// MaxAudioBytes caps a decoded recording at 10 MiB
const MaxAudioBytes = 10 << 20

// TranscriptionRequest carries a base64 encoded audio recording
type TranscriptionRequest struct {
	AudioData string `json:"audio_data" validate:"required"`
	MimeType  string `json:"mime_type" validate:"required,startswith=audio/"`
}

// QuestionGenerationRequest carries the patient's latest answer and what is known so far
type QuestionGenerationRequest struct {
	Transcript     string `json:"transcript" validate:"required"`
	Context        string `json:"context"`
	QuestionType   string `json:"question_type"`
	SessionHistory string `json:"session_history"`
}

// UnmarshalJSON defaults question_type to "open" only when the key is absent;
// an explicit empty value is kept.
func (r *QuestionGenerationRequest) UnmarshalJSON(data []byte) error {
	type plain QuestionGenerationRequest
	p := plain{QuestionType: QuestionTypeOpen}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = QuestionGenerationRequest(p)
	return nil
}

// SentimentAnalysisRequest carries free text to classify
type SentimentAnalysisRequest struct {
	Text string `json:"text" validate:"required"`
}
