package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"

	"draw-guess/api/internal/vision/types"
)

func TestConfigure(t *testing.T) {
	m := &genai.GenerativeModel{}
	configure(m)

	if m.Temperature == nil || *m.Temperature != 0.1 {
		t.Errorf("temperature = %v", m.Temperature)
	}
	if m.TopP == nil || *m.TopP != 0.3 {
		t.Errorf("topP = %v", m.TopP)
	}
	if m.MaxOutputTokens == nil || *m.MaxOutputTokens != 5 {
		t.Errorf("maxOutputTokens = %v", m.MaxOutputTokens)
	}

	want := map[genai.HarmCategory]bool{
		genai.HarmCategoryHarassment: true,
		genai.HarmCategoryHateSpeech: true,
	}
	if len(m.SafetySettings) != len(want) {
		t.Fatalf("safety settings = %d", len(m.SafetySettings))
	}
	for _, s := range m.SafetySettings {
		if !want[s.Category] || s.Threshold != genai.HarmBlockNone {
			t.Errorf("unexpected safety setting %v/%v", s.Category, s.Threshold)
		}
	}
}

func TestFirstText(t *testing.T) {
	cases := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{"skips empty candidate", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Sun!")}}},
		}}, "Sun!"},
		{"joins text parts", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ap"), genai.Blob{MIMEType: "image/png"}, genai.Text("ple")}}},
		}}, "apple"},
	}
	for _, c := range cases {
		if got := firstText(c.resp); got != c.want {
			t.Errorf("%s: firstText = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestGuessWithoutKey(t *testing.T) {
	e := New("  ", "gemini-1.5-flash")
	if e.Configured() {
		t.Fatal("blank key should not count as configured")
	}
	if _, err := e.Guess(context.Background(), types.GuessRequest{Prompt: "x"}); err == nil {
		t.Fatal("expected error without API key")
	}
	if e.Name() != "gemini" || e.GetModel() != "gemini-1.5-flash" {
		t.Fatalf("name=%q model=%q", e.Name(), e.GetModel())
	}
}
