package player

import "errors"

var (
	// ErrNotFound is returned when a course or quiz id resolves to nothing.
	ErrNotFound = errors.New("not found")

	// ErrInvalidReference is returned when an id is syntactically fine but
	// points outside the current structure: a lesson not in the course, an
	// option not on the question, a quiz the course never references.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrAttemptsExhausted is returned when a quiz submission would exceed
	// the quiz's attempt cap. The progress record is left untouched.
	ErrAttemptsExhausted = errors.New("quiz attempts exhausted")
)
