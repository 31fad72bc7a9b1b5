package repository

import "errors"

var (
	// ErrNotFound is returned when a requested key or entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrUnavailable is returned when the persistence collaborator failed a
	// read or write; in-memory state stays authoritative and the write is
	// retried on the next natural trigger
	ErrUnavailable = errors.New("persistence unavailable")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
