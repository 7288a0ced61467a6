package enums

import "errors"

var (
	// ErrBadDefinition indicates a Set was declared with malformed members.
	ErrBadDefinition = errors.New("bad definition")

	// ErrNoMatch indicates no member's name, wire constant, or description
	// matched the text being parsed.
	ErrNoMatch = errors.New("no match")

	// ErrNotValid indicates a value does not belong to the Set it was checked
	// against.
	ErrNotValid = errors.New("invalid")
)
