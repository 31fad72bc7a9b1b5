package game

import "errors"

var (
	// ErrSessionNotFound indicates the session id is not known to the manager.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidState indicates an operation invoked against a session that
	// is not in the required lifecycle state.
	ErrInvalidState = errors.New("invalid session state")
	// ErrInvalidArgument indicates malformed input rejected before any
	// mutation occurred.
	ErrInvalidArgument = errors.New("invalid argument")
)
