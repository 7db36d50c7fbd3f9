package repl

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// keywords are always eligible for completion, alongside whatever names
// the session has bound.
var keywords = []string{"let", "in", "fn", "puts"}

// completer cycles through fuzzy matches for the identifier fragment at
// the end of the input line.
type completer struct {
	head    string
	word    string
	matches []string
	index   int
	started bool
}

// start computes matches for the trailing fragment of line against the
// keywords and the given session names. With no fragment or no matches
// the completer stays inactive.
func (c *completer) start(line string, names []string) {
	c.reset()
	head, word := splitWord(line)
	if word == "" {
		return
	}

	seen := make(map[string]bool, len(keywords)+len(names))
	candidates := make([]string, 0, len(keywords)+len(names))
	for _, name := range append(append([]string{}, keywords...), names...) {
		if !seen[name] {
			seen[name] = true
			candidates = append(candidates, name)
		}
	}

	for _, m := range fuzzy.Find(word, candidates) {
		c.matches = append(c.matches, m.Str)
	}
	if len(c.matches) == 0 {
		return
	}
	c.head, c.word, c.started = head, word, true
}

// next advances to the following match, wrapping around.
func (c *completer) next() {
	if c.started {
		c.index = (c.index + 1) % len(c.matches)
	}
}

// current returns the full input line with the fragment replaced by the
// selected match.
func (c *completer) current() (string, bool) {
	if !c.started {
		return "", false
	}
	return c.head + c.matches[c.index], true
}

// hint renders the match list for display under the prompt, marking the
// selected match.
func (c *completer) hint() string {
	if !c.started || len(c.matches) < 2 {
		return ""
	}
	var sb strings.Builder
	for i, m := range c.matches {
		if i > 0 {
			sb.WriteString("  ")
		}
		if i == c.index {
			sb.WriteString("[" + m + "]")
		} else {
			sb.WriteString(m)
		}
	}
	return sb.String()
}

// active reports whether a completion cycle is in progress.
func (c *completer) active() bool { return c.started }

// reset abandons the current cycle.
func (c *completer) reset() { *c = completer{} }

// splitWord splits line before its trailing identifier fragment. The
// fragment may be empty when the line ends in a non-identifier character.
func splitWord(line string) (head, word string) {
	i := len(line)
	for i > 0 {
		b := line[i-1]
		if b == '_' ||
			(b >= 'a' && b <= 'z') ||
			(b >= 'A' && b <= 'Z') ||
			(b >= '0' && b <= '9') {
			i--
			continue
		}
		break
	}
	return line[:i], line[i:]
}
