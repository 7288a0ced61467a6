package enums

import (
	"fmt"

	"golang.org/x/text/language"
)

// Parse returns the member of the Set matching text, trying, in order:
//
//  1. the first member whose name equals text exactly;
//  2. the first member whose declared wire constant equals text ignoring case;
//  3. the first member whose declared description equals text exactly.
//
// Members are scanned in declaration order, so when two members share a wire
// constant or description the earlier one wins.
//
// Text matching nothing - the empty string included, since member names are
// never empty - returns an ErrNoMatch carrying text and the Set's name.
func (s *Set[T]) Parse(text string) (T, error) {
	return s.parse(text, EqualFold)
}

// ParseIn is Parse with the wire-constant comparison folded under the casing
// rules of the given language instead of the locale-independent default.
//
// It exists for data persisted by systems that matched wire constants with
// locale-sensitive casing; new callers should prefer Parse.
func (s *Set[T]) ParseIn(tag language.Tag, text string) (T, error) {
	return s.parse(text, func(a, b string) bool { return EqualFoldIn(tag, a, b) })
}

// ParseOr is Parse, returning fallback instead of failing when text matches no
// member.
func (s *Set[T]) ParseOr(text string, fallback T) T {
	v, err := s.Parse(text)
	if err != nil {
		return fallback
	}

	return v
}

func (s *Set[T]) parse(text string, fold func(a, b string) bool) (T, error) {
	for _, m := range s.members {
		if m.Name == text {
			return m.Value, nil
		}
	}

	for _, m := range s.members {
		if m.Wire != "" && fold(m.Wire, text) {
			return m.Value, nil
		}
	}

	// NB: descriptions match case-sensitively on purpose, unlike wire
	// constants; data persisted against the old behavior relies on it.
	for _, m := range s.members {
		if m.Description != "" && m.Description == text {
			return m.Value, nil
		}
	}

	var zero T
	return zero, fmt.Errorf("%w: %q is not a member of %s", ErrNoMatch, text, s.name)
}
