package vision

import (
	"strings"

	"draw-guess/api/internal/vision/types"
)

// ApplyVerdictPolicy: only a high-confidence guess may be marked correct.
func ApplyVerdictPolicy(r *types.AnalyzeResult) {
	if r.Confidence == types.ConfidenceHigh {
		return
	}
	f := false
	r.IsCorrect = &f
}

// Verdict turns the raw model reply into the result sent to the game.
func Verdict(raw, targetWord string) types.AnalyzeResult {
	text := Normalize(raw)

	if IsNonAnswer(text) {
		guess := targetWord
		if guess == "" {
			guess = types.Unrecognized
		}
		r := types.AnalyzeResult{Guess: guess, Confidence: types.ConfidenceLow}
		ApplyVerdictPolicy(&r)
		return r
	}

	r := types.AnalyzeResult{Guess: text, Confidence: types.ConfidenceHigh}
	if targetWord != "" {
		ok := text == strings.ToLower(targetWord)
		r.IsCorrect = &ok
	}
	ApplyVerdictPolicy(&r)
	return r
}
