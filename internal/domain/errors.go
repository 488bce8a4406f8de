package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidID is returned when a product identifier is zero or negative.
	ErrInvalidID = errors.New("product ID must be a positive integer")

	// ErrInvalidName is returned when a product name is empty after trimming
	// or exceeds the maximum length.
	ErrInvalidName = errors.New("invalid product name")

	// ErrInvalidPrice is returned when a price is negative or exceeds the cap.
	ErrInvalidPrice = errors.New("invalid product price")

	// ErrInvalidRange is returned when a price range has min greater than max.
	ErrInvalidRange = errors.New("invalid price range")

	// ErrInvalidRequest is returned when an update carries no fields to change.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProductNotFound is returned by use cases when no product exists for
	// the requested ID.
	ErrProductNotFound = errors.New("product not found")
)

// PersistenceError wraps a storage-layer failure so callers can tell it apart
// from validation and not-found conditions.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err as a PersistenceError for the given operation.
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
