package types

// GuessRequest is what an engine receives: the full instruction plus the drawing.
type GuessRequest struct {
	Prompt string
	Image  []byte
	MIME   string
}
