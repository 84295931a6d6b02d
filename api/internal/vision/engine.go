package vision

import (
	"context"
	"strings"

	"draw-guess/api/internal/vision/types"
)

// Engine is any multimodal model that answers a prompt about an image with text.
type Engine interface {
	Name() string
	GetModel() string
	// Configured is false when the provider credential is missing.
	Configured() bool
	Guess(ctx context.Context, in types.GuessRequest) (string, error)
}

type Engines struct {
	Default string
	Gemini  Engine
	OpenAI  Engine
}

// GetEngine resolves llm_name; an empty name picks the default provider.
func (e *Engines) GetEngine(llmName string) (Engine, error) {
	name := strings.ToLower(strings.TrimSpace(llmName))
	if name == "" {
		name = e.Default
	}
	switch name {
	case "gemini":
		if e.Gemini != nil {
			return e.Gemini, nil
		}
	case "gpt", "openai":
		if e.OpenAI != nil {
			return e.OpenAI, nil
		}
	}
	return nil, ErrUnknownEngine
}

// DisplayName is the provider name shown to operators.
func DisplayName(engineName string) string {
	switch engineName {
	case "gemini":
		return "Gemini"
	case "gpt", "openai":
		return "OpenAI"
	default:
		return engineName
	}
}

// Sampling settings shared by every engine. They keep answers short and
// repeatable and are not adjustable per request.
const (
	Temperature     float32 = 0.1
	TopP            float32 = 0.3
	MaxOutputTokens int32   = 5
)
