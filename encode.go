package enums

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText returns v's wire constant as bytes,
// or an ErrNotValid when v is not a member of the Set.
//
// An enumerated type backed by a Set implements [encoding.TextMarshaler] -
// and with it JSON and YAML marshaling - in one line:
//
//	func (st Status) MarshalText() ([]byte, error) { return Statuses.MarshalText(st) }
func (s *Set[T]) MarshalText(v T) ([]byte, error) {
	if err := s.Valid(v); err != nil {
		return nil, err
	}

	return []byte(s.WireConstant(v)), nil
}

// UnmarshalText parses data the way Parse does,
// matching member names, wire constants and descriptions in turn.
func (s *Set[T]) UnmarshalText(data []byte) (T, error) {
	return s.Parse(string(data))
}

// Value returns v's wire constant as a [database/sql/driver.Value],
// storing members by wire constant rather than by name
// so columns survive member renames.
func (s *Set[T]) Value(v T) (driver.Value, error) {
	b, err := s.MarshalText(v)
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

// Scan parses a value read from a [database/sql] column into a member of the
// Set. Strings and byte slices go through Parse; NULL and any other type fail.
func (s *Set[T]) Scan(src any) (T, error) {
	var zero T

	switch val := src.(type) {
	case string:
		return s.Parse(val)
	case []byte:
		return s.Parse(string(val))
	case nil:
		return zero, fmt.Errorf("%w: NULL is not a member of %s", ErrNoMatch, s.name)
	default:
		return zero, fmt.Errorf("%w: cannot scan %T into %s", ErrNotValid, src, s.name)
	}
}
