package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned when an operation is called from the wrong tracker state.
	ErrInvalidState = errors.New("invalid tracker state")

	// ErrValidation is returned for adjustments that must not produce a record.
	ErrValidation = errors.New("invalid adjustment")
)

// StorageError reports a failed append or aggregate read against the record store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
