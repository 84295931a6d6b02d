package vision

import (
	"slices"
	"strings"
)

// Answers the model gives when it has nothing useful to say.
const (
	NonAnswerEmpty  = ""
	NonAnswerObject = "object"
	NonAnswerShape  = "shape"
)

// NonAnswers is matched exactly against the normalized reply: "itsashape" is a real guess.
var NonAnswers = []string{NonAnswerEmpty, NonAnswerObject, NonAnswerShape}

// Normalize trims and lowercases the reply, then keeps only a-z.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, s)
}

// IsNonAnswer reports whether a normalized reply should be treated as "could not decide".
func IsNonAnswer(normalized string) bool {
	return slices.Contains(NonAnswers, normalized)
}
