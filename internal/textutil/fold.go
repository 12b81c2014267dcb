package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower folds s to lower case using language-neutral Unicode rules. Callers
// must fold both sides of a comparison with this function.
func Lower(s string) string {
	if s == "" {
		return ""
	}
	// Casers carry state and are not safe for concurrent use.
	return cases.Lower(language.Und).String(s)
}

// Truncate shortens s to at most max runes, replacing the tail with an
// ellipsis when it had to cut. Newlines are flattened to spaces.
func Truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
