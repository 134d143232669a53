package queue

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDistances is the panic value when a queue is configured with no distances.
	ErrZeroDistances = errors.New("queue: number of distances must be positive")

	// ErrZeroCapacity is the panic value when a TopK is given a non-positive capacity
	// or pushed to before SetCapacity.
	ErrZeroCapacity = errors.New("queue: capacity must be positive")

	// ErrNotConfigured is the panic value when a TopK is cleared before SetDistances.
	ErrNotConfigured = errors.New("queue: SetDistances must be called first")

	// ErrDistanceOutOfRange is wrapped by every RangeError.
	ErrDistanceOutOfRange = errors.New("queue: distance out of range")
)

// RangeError is the panic value when a distance outside [0, Distances) is pushed.
type RangeError struct {
	Distance  int
	Distances int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("queue: distance %d out of range [0, %d)", e.Distance, e.Distances)
}

func (e *RangeError) Unwrap() error { return ErrDistanceOutOfRange }
