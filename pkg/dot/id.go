package dot

import (
	"errors"
	"fmt"
)

// ErrInvalidID is returned by [NewID] when the candidate name does not
// conform to the identifier grammar. Use errors.Is to distinguish a
// malformed graph (a caller bug) from a sink write failure.
var ErrInvalidID = errors.New("invalid DOT identifier")

// ID is a validated Graphviz ID: a bare name that can appear unquoted
// in DOT output. IDs are immutable; the only way to obtain a non-zero
// ID is through [NewID]. The zero value renders as the empty string
// and marks an absent subgraph identifier.
type ID struct {
	name string
}

// NewID creates an ID named name.
//
// The input must be a non-empty string made up of ASCII alphanumeric
// or underscore characters, not beginning with a digit (the regular
// expression [A-Za-z_][A-Za-z0-9_]*). This is a strict subset of the
// ID format defined by the DOT language.
//
// Passing an invalid string (containing spaces, brackets, quotes, ...)
// returns an error wrapping [ErrInvalidID].
func NewID(name string) (ID, error) {
	if !ValidID(name) {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, name)
	}
	return ID{name: name}, nil
}

// String returns the exact name the ID was constructed with.
func (id ID) String() string { return id.name }

// ValidID reports whether name conforms to the identifier grammar
// accepted by [NewID]. It is a pure predicate, exposed for clients
// that build identifiers from dynamic names and want to check them
// up front.
func ValidID(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
