package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"draw-guess/api/internal/vision"
	"draw-guess/api/internal/vision/types"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ vision.Engine = (*Engine)(nil)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }
func (e *Engine) Configured() bool { return e.APIKey != "" }

// Guess sends the prompt and the drawing in one user turn and returns the raw reply text.
func (e *Engine) Guess(ctx context.Context, in types.GuessRequest) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	configure(m)

	mime := in.MIME
	if mime == "" {
		mime = vision.ImageMIME
	}
	resp, err := m.GenerateContent(ctx,
		genai.Text(in.Prompt),
		&genai.Blob{MIMEType: mime, Data: in.Image},
	)
	if err != nil {
		return "", fmt.Errorf("gemini guess: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini guess: empty response")
	}
	return firstText(resp), nil
}

// configure applies the fixed sampling and relaxes the filters that
// misfire on children's drawings.
func configure(m *genai.GenerativeModel) {
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:     ptrFloat32(vision.Temperature),
		TopP:            ptrFloat32(vision.TopP),
		MaxOutputTokens: ptrInt32(vision.MaxOutputTokens),
	}
	m.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
	}
}

// --------------------------- helpers ---------------------------

// firstText joins the text parts of the first candidate that has content.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		return b.String()
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
func ptrInt32(v int32) *int32       { return &v }
