package enums

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EqualFold asserts whether a and b are equal under Unicode simple case
// folding. Two empty strings are equal; an empty string never equals a
// non-empty one.
//
// Folding is locale-independent, so a match never drifts between deployment
// environments with different active locales.
func EqualFold(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}

	return strings.EqualFold(a, b)
}

// EqualFoldIn is EqualFold under the casing rules of the given language, e.g.
// dotless "I"/"ı" when tag is [golang.org/x/text/language.Turkish].
//
// Reach for it only when matching data written by a locale-sensitive system.
func EqualFoldIn(tag language.Tag, a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}

	lower := cases.Lower(tag)

	return lower.String(a) == lower.String(b)
}
