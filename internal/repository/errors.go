package repository

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")

	// ErrColumnNotFound is returned when a referenced column does not exist
	ErrColumnNotFound = errors.New("column not found")

	// ErrStorageUnavailable wraps infrastructure failures from the
	// underlying store so handlers can tell them apart from domain errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
