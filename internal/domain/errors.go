package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyUpdate indicates a partial update was requested with no fields.
	ErrEmptyUpdate = errors.New("no fields to update")
	// ErrImmutableField indicates an update tried to change a write-once column.
	ErrImmutableField = errors.New("field is immutable")
	// ErrConflict indicates a uniqueness violation not covered by a dedup policy.
	ErrConflict = errors.New("already exists")
	// ErrMalformedRequest indicates an order payload matching neither intake shape.
	ErrMalformedRequest = errors.New("malformed request")
)
