package vision

import (
	"context"
	"fmt"

	"draw-guess/api/internal/util"
	"draw-guess/api/internal/vision/types"
)

// MinPayloadLen is the shortest base64 payload that can still hold a drawing.
const MinPayloadLen = 100

// ImageMIME is the type every drawing is tagged with when sent to a model.
const ImageMIME = "image/png"

// ValidateImage checks a data URI and returns its base64 payload.
func ValidateImage(imageBase64 string) (string, error) {
	if imageBase64 == "" {
		return "", ErrImageRequired
	}
	_, payload, ok := util.SplitImageDataURL(imageBase64)
	if !ok {
		return "", ErrInvalidImage
	}
	if len(payload) < MinPayloadLen {
		return "", ErrImageTooSmall
	}
	return payload, nil
}

// Analyze runs one guess: credential check, validation, a single model call, verdict.
// Errors are ErrNotConfigured, an ErrValidation child or *AnalysisError.
func Analyze(ctx context.Context, eng Engine, in types.AnalyzeRequest) (types.AnalyzeResult, error) {
	if !eng.Configured() {
		return types.AnalyzeResult{}, fmt.Errorf("%s: %w", eng.Name(), ErrNotConfigured)
	}
	payload, err := ValidateImage(in.ImageBase64)
	if err != nil {
		return types.AnalyzeResult{}, err
	}

	img, err := util.DecodeBase64(payload)
	if err != nil {
		return types.AnalyzeResult{}, &AnalysisError{
			Provider:  eng.Name(),
			ImageSize: len(payload),
			Err:       fmt.Errorf("decode image: %w", err),
		}
	}

	raw, err := eng.Guess(ctx, types.GuessRequest{
		Prompt: BuildPrompt(in.TargetWord),
		Image:  img,
		MIME:   ImageMIME,
	})
	if err != nil {
		return types.AnalyzeResult{}, &AnalysisError{Provider: eng.Name(), ImageSize: len(payload), Err: err}
	}
	return Verdict(raw, in.TargetWord), nil
}
