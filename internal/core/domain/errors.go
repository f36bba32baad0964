package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrCannotAdvance indicates the current step's answers are
	// incomplete. Always wrapped in a *ValidationError.
	ErrCannotAdvance = errors.New("cannot advance")

	// ErrQuizComplete indicates an advance was attempted from the
	// terminal recommendation step.
	ErrQuizComplete = errors.New("quiz already complete")

	// ErrUnknownPerson indicates a setter was called with a person key
	// other than person1 or person2.
	ErrUnknownPerson = errors.New("unknown person")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadCatalog indicates the product catalog could not be parsed.
	// The scoring path degrades to an empty catalog rather than
	// surfacing this to the shopper.
	ErrBadCatalog = errors.New("bad catalog data")
)

// ValidationError reports which answers block forward navigation.
// The UI keeps the shopper on the current step and surfaces Missing.
type ValidationError struct {
	// Step is the step that refused to advance.
	Step Step

	// Missing names the unanswered or invalid fields.
	Missing []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %s: missing %s", e.Step, strings.Join(e.Missing, ", "))
}

// Unwrap lets callers match with errors.Is(err, ErrCannotAdvance).
func (e *ValidationError) Unwrap() error {
	return ErrCannotAdvance
}
