package vision

import (
	"fmt"
	"strings"
)

// UnknownWord is what the model is told to answer when it cannot decide.
const UnknownWord = "Desconhecido"

// Vocabulary is the closed list the model must pick its answer from.
// Order matters: it is rendered into the prompt as is.
var Vocabulary = []string{
	"apple",
	"ball",
	"cat",
	"dog",
	"egg",
	"fish",
	"girl",
	"hat",
	"ice",
	"nose",
	"owl",
	"pig",
	"queen",
	"rain",
	"tree",
	"umbrella",
	"box",
	"book",
	"car",
	"duck",
	"eye",
	"foot",
	"grape",
	"hand",
	"orange",
	"pen",
	"rose",
	"table",
	"violin",
	"window",
	"ant",
	"bag",
	"cup",
	"door",
	"ear",
	"flag",
	"lip",
	"rat",
	"web",
}

// The prompt wording is tuned against the model; treat any edit as a new prompt version.
const promptRules = `
You are analyzing drawings made by children ages 5-8 for an English learning game.
Follow these rules STRICTLY:

1. SHAPE-BASED ANALYSIS:
    - Circle with lines radiating out = "sun"
    - Square with triangle on top = "house"
    - Four lines attached to oval = "dog" (not specific breeds)
    - Green triangle on rectangle = "tree"

2. COLOR INTERPRETATION:
    - Yellow circle = "sun" (ignore if lines are missing)
    - Brown rectangle with green top = "tree"
    - Red circle = "apple" (only if stem present)

3. CHILD DRAWING CONVENTIONS:
    - Faces: Circle with dots for eyes
    - Animals: Basic shapes with legs as straight lines
    - Vehicles: Rectangles with circles as wheels
    - Plants: Simple stem with leaves or flowers

4. WORD SELECTION RULES:
    - Only choose from these words (never invent new ones):
`

const promptFormat = `

5. RESPONSE FORMAT:
    - Single lowercase word only
    - If unclear, respond with "` + UnknownWord + `"
    - Never add explanations
    - For ambiguous cases, choose the simpler option

`

const promptContextClues = `
6. CONTEXT CLUES:
    - The target word relates to: "%s"
    - Consider similar shapes but don't say the word itself
    - If between options, pick one closer to this category
`

const promptExamples = `

EXAMPLES OF PROPER ANALYSIS:
- Circle with 8 lines = "sun" (not "wheel")
- Brown rectangle + green blob = "tree" (not "broccoli")
- Circle + 4 lines + tail = "dog" (not "wolf")
- Red circle + stem = "apple" (not "tomato")
`

// promptHead is everything up to the optional context section; built once.
var promptHead = promptRules + "      " + strings.Join(Vocabulary, ", ") + promptFormat

// BuildPrompt renders the instruction sent along with the drawing.
// The context section is only added when targetWord is non-empty.
func BuildPrompt(targetWord string) string {
	var b strings.Builder
	b.WriteString(promptHead)
	if targetWord != "" {
		fmt.Fprintf(&b, promptContextClues, targetWord)
	}
	b.WriteString(promptExamples)
	return b.String()
}

// InVocabulary reports whether w is one of the allowed answers.
func InVocabulary(w string) bool {
	for _, v := range Vocabulary {
		if v == w {
			return true
		}
	}
	return false
}
