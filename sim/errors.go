package sim

import "errors"

var (
	// ErrInvalidQuantum is returned when the time quantum is not positive.
	ErrInvalidQuantum = errors.New("time quantum must be positive")
	// ErrInvalidProcess is returned for a process that can never complete (zero burst).
	ErrInvalidProcess = errors.New("invalid process")
)
