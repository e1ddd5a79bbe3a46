package twcss

import (
	"errors"
	"fmt"
)

// Sentinel errors. Compile failures wrap one of these so callers can test
// with errors.Is.
var (
	// ErrUnknownClass means no registered utility prefix matches the base class.
	ErrUnknownClass = errors.New("unknown class")
	// ErrInvalidValue means a prefix matched but its value grammar rejected the suffix.
	ErrInvalidValue = errors.New("invalid value")
	// ErrMalformedModifier is reserved for stricter decomposition. The
	// decomposer currently degrades unknown modifiers into the base class.
	ErrMalformedModifier = errors.New("malformed modifier")
)

// UnknownClassError reports a token whose base class no utility family owns.
type UnknownClassError struct {
	Class      string // full token: "hover:bgg-blue-500"
	Base       string // base class after modifiers: "bgg-blue-500"
	Suggestion string // closest known token, "" when none is near
}

func (e *UnknownClassError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown class %q (did you mean %q?)", e.Class, e.Suggestion)
	}
	return fmt.Sprintf("unknown class %q", e.Class)
}

// Unwrap returns ErrUnknownClass.
func (e *UnknownClassError) Unwrap() error { return ErrUnknownClass }

// InvalidValueError reports a token whose prefix matched a family but whose
// value did not.
type InvalidValueError struct {
	Class string
	Base  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value in class %q: %q matches a utility but not its values", e.Class, e.Base)
}

// Unwrap returns ErrInvalidValue.
func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }
