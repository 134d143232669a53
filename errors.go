package hammingheap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidBits is returned when the code width is not a positive multiple of 8.
	ErrInvalidBits = errors.New("bits must be a positive multiple of 8")

	// ErrNotFound is returned when an ID does not exist.
	ErrNotFound = errors.New("not found")
)

// ErrCodeLengthMismatch indicates a code or query of the wrong length.
type ErrCodeLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrCodeLengthMismatch) Error() string {
	return fmt.Sprintf("code length mismatch: expected %d bytes, got %d", e.Expected, e.Actual)
}
