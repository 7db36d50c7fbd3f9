package repl

import "testing"

func TestSplitWord(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		line, head, word string
	}{
		{"le", "", "le"},
		{"let sq", "let ", "sq"},
		{"sq(", "sq(", ""},
		{"a + sq_2", "a + ", "sq_2"},
		{"", "", ""},
	} {
		head, word := splitWord(tt.line)
		if head != tt.head || word != tt.word {
			t.Errorf("splitWord(%q) = (%q, %q), want (%q, %q)",
				tt.line, head, word, tt.head, tt.word)
		}
	}
}

func TestCompleterCycles(t *testing.T) {
	t.Parallel()

	var c completer
	c.start("square(sq", []string{"square", "sqrt_ish"})
	if !c.active() {
		t.Fatal("completer inactive after start with matches")
	}

	first, ok := c.current()
	if !ok {
		t.Fatal("current() returned no line")
	}
	c.next()
	second, _ := c.current()
	if first == second {
		t.Errorf("cycling did not change completion: %q", first)
	}
	c.next()
	wrapped, _ := c.current()
	if wrapped != first {
		t.Errorf("cycle did not wrap: %q, want %q", wrapped, first)
	}
}

func TestCompleterKeywords(t *testing.T) {
	t.Parallel()

	var c completer
	c.start("lt", nil)
	if !c.active() {
		t.Fatal("no matches for keyword fragment")
	}
	line, _ := c.current()
	if line != "let" {
		t.Errorf("completion = %q, want %q", line, "let")
	}
}

func TestCompleterInactiveCases(t *testing.T) {
	t.Parallel()

	var c completer
	c.start("1 + ", []string{"square"})
	if c.active() {
		t.Error("active after empty fragment")
	}
	c.start("zzqq", []string{"square"})
	if c.active() {
		t.Error("active with no matches")
	}
	if _, ok := c.current(); ok {
		t.Error("current() returned a line while inactive")
	}
}

func TestCompleterDeduplicates(t *testing.T) {
	t.Parallel()

	var c completer
	c.start("puts", []string{"puts"})
	if len(c.matches) != 1 {
		t.Errorf("matches = %v, want single puts", c.matches)
	}
}
