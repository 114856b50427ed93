package optics

import "errors"

// EmptySequenceError reports that an accessor requiring a non-empty
// sequence was applied to an empty one. The accessors in this package
// panic with it: choosing such an accessor asserts non-emptiness, so an
// empty input is a programmer error, not a recoverable condition.
type EmptySequenceError struct {
	// Accessor names the accessor that was applied.
	Accessor string
}

// Error implements the error interface.
func (e *EmptySequenceError) Error() string {
	return "optics: " + e.Accessor + " applied to empty sequence"
}

// IsEmptySequence returns true if the error reports an empty-sequence
// precondition violation.
func IsEmptySequence(err error) bool {
	var target *EmptySequenceError
	return errors.As(err, &target)
}

// emptySequence aborts the current operation for accessor name.
func emptySequence(name string) {
	panic(&EmptySequenceError{Accessor: name})
}
