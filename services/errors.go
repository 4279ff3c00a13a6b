package services

import "errors"

// Domain sentinels. Callers match them with errors.Is and decide what a
// failure means for the client; nothing here is fatal to the process.
var (
	// ErrNotFound marks lookups of unknown achievements, challenges, or
	// participation records.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState marks operations against a state machine that is not in
	// the required state, e.g. joining a challenge twice.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidInput marks malformed caller-supplied values.
	ErrInvalidInput = errors.New("invalid input")
)
