package domain

import (
	"errors"
	"fmt"
)

// Operation names a consultation operation. The value doubles as the
// human-readable prefix of surfaced error messages.
type Operation string

const (
	OperationTranscription      Operation = "Transcription"
	OperationQuestionGeneration Operation = "Question generation"
	OperationSentimentAnalysis  Operation = "Sentiment analysis"
)

// ValidationError reports a malformed request body.
type ValidationError struct {
	Op  Operation
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// PayloadDecodeError reports an audio payload whose transport encoding is invalid.
type PayloadDecodeError struct {
	Op  Operation
	Err error
}

func (e *PayloadDecodeError) Error() string {
	return fmt.Sprintf("invalid audio payload encoding: %v", e.Err)
}
func (e *PayloadDecodeError) Unwrap() error { return e.Err }

// ModelUnavailableError reports a failed call to the generative model.
type ModelUnavailableError struct {
	Op  Operation
	Err error
}

func (e *ModelUnavailableError) Error() string { return e.Err.Error() }
func (e *ModelUnavailableError) Unwrap() error { return e.Err }

// ResponseFormatError reports a model reply that could not be parsed as JSON.
type ResponseFormatError struct {
	Op  Operation
	Err error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("model response is not valid JSON: %v", e.Err)
}
func (e *ResponseFormatError) Unwrap() error { return e.Err }

// ResponseSchemaError reports a JSON reply missing the fields the prompt asked for.
// It is also a ResponseFormatError.
type ResponseSchemaError struct {
	Op      Operation
	Missing []string
}

func (e *ResponseSchemaError) Error() string {
	if len(e.Missing) == 0 {
		return "model response is not a JSON object"
	}
	return fmt.Sprintf("model response is missing fields: %v", e.Missing)
}

// As lets errors.As match a schema violation as a ResponseFormatError.
func (e *ResponseSchemaError) As(target any) bool {
	t, ok := target.(**ResponseFormatError)
	if !ok {
		return false
	}
	*t = &ResponseFormatError{Op: e.Op, Err: errors.New(e.Error())}
	return true
}
