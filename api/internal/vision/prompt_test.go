package vision

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readGolden(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestBuildPromptGolden(t *testing.T) {
	if got, want := BuildPrompt(""), readGolden(t, "prompt.golden"); got != want {
		t.Errorf("BuildPrompt(\"\") differs from testdata/prompt.golden\n--- got ---\n%s", got)
	}
	if got, want := BuildPrompt("sun"), readGolden(t, "prompt_sun.golden"); got != want {
		t.Errorf("BuildPrompt(\"sun\") differs from testdata/prompt_sun.golden\n--- got ---\n%s", got)
	}
}

func TestBuildPromptContextSection(t *testing.T) {
	without := BuildPrompt("")
	if strings.Contains(without, "CONTEXT CLUES") {
		t.Error("context section present without a target word")
	}
	with := BuildPrompt("100% cat")
	if !strings.Contains(with, `The target word relates to: "100% cat"`) {
		t.Errorf("target word not rendered verbatim:\n%s", with)
	}
	if !strings.Contains(with, `respond with "`+UnknownWord+`"`) {
		t.Error("unknown word instruction missing")
	}
}

func TestVocabulary(t *testing.T) {
	seen := map[string]bool{}
	for _, w := range Vocabulary {
		if w != strings.ToLower(w) || Normalize(w) != w {
			t.Errorf("vocabulary word %q is not a plain lowercase word", w)
		}
		if seen[w] {
			t.Errorf("duplicate vocabulary word %q", w)
		}
		seen[w] = true
	}
	if !strings.Contains(BuildPrompt(""), "      "+strings.Join(Vocabulary, ", ")+"\n") {
		t.Error("vocabulary line not found in prompt")
	}
	if !InVocabulary("umbrella") || InVocabulary("sun") {
		t.Error("InVocabulary mismatch")
	}
}
