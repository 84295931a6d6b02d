package telegram

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"draw-guess/api/internal/vision"
	"draw-guess/api/internal/vision/types"
)

func boolPtr(b bool) *bool { return &b }

func TestReplyText(t *testing.T) {
	cases := []struct {
		name   string
		res    types.AnalyzeResult
		target string
		want   string
	}{
		{"error", types.ErrorResult("cat"), "cat", "Oops"},
		{"low", types.AnalyzeResult{Guess: "cat", Confidence: types.ConfidenceLow, IsCorrect: boolPtr(false)}, "cat", "could not tell"},
		{"free", types.AnalyzeResult{Guess: "owl", Confidence: types.ConfidenceHigh}, "", "I think it's an owl!"},
		{"correct", types.AnalyzeResult{Guess: "sun", Confidence: types.ConfidenceHigh, IsCorrect: boolPtr(true)}, "sun", "Yes! It's a sun!"},
		{"wrong", types.AnalyzeResult{Guess: "egg", Confidence: types.ConfidenceHigh, IsCorrect: boolPtr(false)}, "ball", "Can you draw a ball?"},
	}
	for _, c := range cases {
		if got := replyText(c.res, c.target); !strings.Contains(got, c.want) {
			t.Errorf("%s: %q does not contain %q", c.name, got, c.want)
		}
	}
}

func TestArticle(t *testing.T) {
	for w, want := range map[string]string{"apple": "an", "Umbrella": "an", "cat": "a", "": "a"} {
		if got := article(w); got != want {
			t.Errorf("article(%q) = %q, want %q", w, got, want)
		}
	}
}

func TestWordState(t *testing.T) {
	const chat = int64(42)
	if getWord(chat) != "" {
		t.Fatal("fresh chat has a word")
	}
	setWord(chat, "duck")
	if got := getWord(chat); got != "duck" {
		t.Fatalf("got %q", got)
	}
	clearWord(chat)
	if getWord(chat) != "" {
		t.Fatal("word not cleared")
	}
}

func TestPickWord(t *testing.T) {
	for i := 0; i < 50; i++ {
		if w := pickWord(); !vision.InVocabulary(w) {
			t.Fatalf("%q not in vocabulary", w)
		}
	}
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestToPNG(t *testing.T) {
	out, err := toPNG(encodeJPEG(t, 64, 32))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("not a png: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Fatalf("size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestToPNGScalesDown(t *testing.T) {
	out, err := toPNG(encodeJPEG(t, 2000, 1000))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width*cfg.Height > maxPixels+cfg.Width+cfg.Height {
		t.Fatalf("too big: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width <= cfg.Height {
		t.Fatalf("aspect lost: %dx%d", cfg.Width, cfg.Height)
	}
}

func TestToPNGRejectsGarbage(t *testing.T) {
	if _, err := toPNG([]byte("definitely not an image")); err == nil {
		t.Fatal("expected error")
	}
}
