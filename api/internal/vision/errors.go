package vision

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every input error; callers should fix the input, not retry.
var ErrValidation = errors.New("invalid input")

var (
	ErrImageRequired = fmt.Errorf("%w: image data is required", ErrValidation)
	ErrInvalidImage  = fmt.Errorf("%w: invalid image format", ErrValidation)
	ErrImageTooSmall = fmt.Errorf("%w: image data is too small", ErrValidation)
	ErrUnknownEngine = fmt.Errorf("%w: unknown llm_name; use 'gemini' or 'gpt'", ErrValidation)
)

// ErrNotConfigured means the provider credential is missing on the server.
var ErrNotConfigured = errors.New("api key is not configured")

// AnalysisError wraps anything that went wrong after validation:
// decoding the payload, calling the model or reading its answer.
type AnalysisError struct {
	Provider  string
	ImageSize int // length of the base64 payload
	Err       error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// SizeKB renders the payload size the way it is logged.
func (e *AnalysisError) SizeKB() string {
	if e.ImageSize <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%.1fKB", float64(e.ImageSize)/1024)
}
