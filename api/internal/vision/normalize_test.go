package vision

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Sun!", "sun"},
		{"  tree\n", "tree"},
		{"It's a shape", "itsashape"},
		{"shape", "shape"},
		{"Desconhecido", "desconhecido"},
		{"Dog.", "dog"},
		{"cat 2", "cat"},
		{"ÁRVORE", "rvore"},
		{"¿?", ""},
		{"", ""},
		{"   ", ""},
		{"`apple`", "apple"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"Sun!", "It's a SHAPE", "Desconhecido", "ümbrella 42", "", "\tweb\t"} {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestIsNonAnswer(t *testing.T) {
	for _, s := range []string{"", "object", "shape"} {
		if !IsNonAnswer(s) {
			t.Errorf("IsNonAnswer(%q) = false", s)
		}
	}
	for _, s := range []string{"itsashape", "objects", "sun", "desconhecido", "Shape"} {
		if IsNonAnswer(s) {
			t.Errorf("IsNonAnswer(%q) = true", s)
		}
	}
}
