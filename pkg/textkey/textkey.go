package textkey

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize folds case and collapses inner whitespace, so "enter   recipe"
// and "Enter Recipe" resolve to the same key.
func Normalize(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Contains reports whether needle occurs in haystack ignoring case.
func Contains(haystack, needle string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(haystack), fold.String(needle))
}
