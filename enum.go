package enums

import "fmt"

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// Backing an Enumerable with a Set supplies both methods: String from the wire
// constant and Valid from set membership.
type Enumerable interface {
	String() string
	Valid() error
}

// A Member declares one value of an enumerated type
// along with the optional strings annotating it.
type Member[T comparable] struct {
	// Value is the constant itself.
	Value T

	// Name is the member's declared name, required and unique within a Set.
	Name string

	// Wire is the member's representation when it crosses a process boundary,
	// such as a database column or an API payload.
	// When empty, Name stands in for it.
	Wire string

	// Description is a human-facing label for the member,
	// independent of both Name and Wire.
	// When empty, Name stands in for it.
	Description string
}

// A Set is the annotation table for one enumerated type,
// mapping each member to its name, wire constant and description
// and back again.
//
// A Set is built once, holds members in declaration order,
// and never mutates afterward.
type Set[T comparable] struct {
	name    string
	members []Member[T]
	byValue map[T]int
}

// New builds the Set for the enumerated type named name from its members.
//
// New requires name, a Name on every member, and uniqueness of member names
// and values, returning an ErrBadDefinition otherwise.
// Duplicate wire constants or descriptions are not rejected - reverse lookup
// resolves them to the first member in declaration order - but CheckUnique
// reports them on demand.
func New[T comparable](name string, members ...Member[T]) (*Set[T], error) {
	if name == "" {
		return nil, fmt.Errorf("%w: set name is required", ErrBadDefinition)
	}

	s := &Set[T]{
		name:    name,
		members: make([]Member[T], 0, len(members)),
		byValue: make(map[T]int, len(members)),
	}

	byName := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m.Name == "" {
			return nil, fmt.Errorf("%w: %s: member name is required", ErrBadDefinition, name)
		}

		if _, ok := byName[m.Name]; ok {
			return nil, fmt.Errorf("%w: %s: duplicate member name %q", ErrBadDefinition, name, m.Name)
		}

		if _, ok := s.byValue[m.Value]; ok {
			return nil, fmt.Errorf("%w: %s: duplicate value on member %q", ErrBadDefinition, name, m.Name)
		}

		byName[m.Name] = struct{}{}
		s.byValue[m.Value] = len(s.members)
		s.members = append(s.members, m)
	}

	return s, nil
}

// Must is New, panicking instead of returning an error.
// It suits package-level var declarations,
// where a malformed Set is a programming error caught at init.
func Must[T comparable](name string, members ...Member[T]) *Set[T] {
	s, err := New(name, members...)
	if err != nil {
		panic(err)
	}

	return s
}

// String returns the name of the enumerated type the Set annotates.
//
// String implements fmt.Stringer.
func (s *Set[T]) String() string { return s.name }

// Name returns v's declared name, or the zero-value string when v is not a
// member of the Set.
func (s *Set[T]) Name(v T) string {
	m, ok := s.Lookup(v)
	if !ok {
		return ""
	}

	return m.Name
}

// WireConstant returns v's wire constant if one was declared, else v's name.
// Annotating only some members of a type is safe: every member converts to
// some string.
//
// WireConstant returns the zero-value string when v is not a member of the Set.
func (s *Set[T]) WireConstant(v T) string {
	m, ok := s.Lookup(v)
	if !ok {
		return ""
	}

	if m.Wire != "" {
		return m.Wire
	}

	return m.Name
}

// Description returns v's description if one was declared, else v's name.
//
// Description returns the zero-value string when v is not a member of the Set.
func (s *Set[T]) Description(v T) string {
	m, ok := s.Lookup(v)
	if !ok {
		return ""
	}

	if m.Description != "" {
		return m.Description
	}

	return m.Name
}

// Lookup retrieves the Member declaring v, asserting whether v belongs to the
// Set.
func (s *Set[T]) Lookup(v T) (Member[T], bool) {
	i, ok := s.byValue[v]
	if !ok {
		return Member[T]{}, false
	}

	return s.members[i], true
}

// Valid asserts whether v is a member of the Set,
// returning an ErrNotValid otherwise.
func (s *Set[T]) Valid(v T) error {
	if _, ok := s.byValue[v]; !ok {
		return fmt.Errorf("%w: not a member of %s", ErrNotValid, s.name)
	}

	return nil
}

// Members returns a copy of the Set's members in declaration order.
func (s *Set[T]) Members() []Member[T] {
	members := make([]Member[T], len(s.members))
	copy(members, s.members)

	return members
}

// Names returns every member's declared name in declaration order.
func (s *Set[T]) Names() []string {
	names := make([]string, len(s.members))
	for i, m := range s.members {
		names[i] = m.Name
	}

	return names
}

// Values returns every member's value in declaration order.
func (s *Set[T]) Values() []T {
	values := make([]T, len(s.members))
	for i, m := range s.members {
		values[i] = m.Value
	}

	return values
}

// CheckUnique reports whether any two members share a wire constant - compared
// the way Parse compares them, ignoring case - or share a description,
// returning an ErrBadDefinition naming the first collision.
//
// Collisions make reverse lookup ambiguous; whether that matters is the
// caller's judgment, so the check is on demand rather than part of New.
func (s *Set[T]) CheckUnique() error {
	for i, m := range s.members {
		for _, prior := range s.members[:i] {
			if m.Wire != "" && prior.Wire != "" && EqualFold(m.Wire, prior.Wire) {
				return fmt.Errorf("%w: %s: members %q and %q share wire constant %q", ErrBadDefinition, s.name, prior.Name, m.Name, m.Wire)
			}

			if m.Description != "" && m.Description == prior.Description {
				return fmt.Errorf("%w: %s: members %q and %q share description %q", ErrBadDefinition, s.name, prior.Name, m.Name, m.Description)
			}
		}
	}

	return nil
}
