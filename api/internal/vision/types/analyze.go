package types

// Confidence says how much the caller should trust Guess.
type Confidence string

const (
	ConfidenceHigh  Confidence = "high"
	ConfidenceLow   Confidence = "low"
	ConfidenceError Confidence = "error"
)

// Unrecognized is the guess reported when there is no usable answer and no target word.
const Unrecognized = "unrecognized"

// AnalyzeRequest: body of POST /api/analyze.
// required: imageBase64 (data:image/png|jpeg;base64,...); optional: targetWord
type AnalyzeRequest struct {
	ImageBase64 string `json:"imageBase64"`
	TargetWord  string `json:"targetWord,omitempty"`
}

// AnalyzeResult: verdict returned to the game.
// IsCorrect is null only for a high-confidence guess without a target word.
type AnalyzeResult struct {
	Guess      string     `json:"guess"`
	Confidence Confidence `json:"confidence"`
	IsCorrect  *bool      `json:"isCorrect"`
}

// ErrorResponse: body of every non-2xx answer of the proxy.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorResult is what a caller gets when the analysis could not be performed at all.
func ErrorResult(targetWord string) AnalyzeResult {
	guess := targetWord
	if guess == "" {
		guess = Unrecognized
	}
	f := false
	return AnalyzeResult{Guess: guess, Confidence: ConfidenceError, IsCorrect: &f}
}

// RequestIDHeader correlates the client, the proxy log and the response.
const RequestIDHeader = "X-Request-ID"
