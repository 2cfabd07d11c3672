package db

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed input to Add. Nothing is persisted.
	ErrValidation = errors.New("invalid book input")

	// ErrStorage marks a failure of the underlying storage engine:
	// open, read, write or lock contention.
	ErrStorage = errors.New("storage failure")
)

func validationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
