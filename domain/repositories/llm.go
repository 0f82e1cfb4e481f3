package repositories

import "context"

// GenerativeModel abstracts the external generative-language model
type GenerativeModel interface {
	// GenerateContent sends the prompt, followed by any binary attachments,
	// and returns the model's text reply
	GenerateContent(ctx context.Context, prompt string, blobs ...Blob) (string, error)
}

// Blob is a binary attachment sent inline with a prompt
type Blob struct {
	MimeType string
	Data     []byte
}
