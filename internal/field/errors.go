package field

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is wrapped by BoundsError.
	ErrOutOfBounds = errors.New("field: coordinate out of bounds")
	// ErrUnknownEntity is wrapped by UnknownEntityError.
	ErrUnknownEntity = errors.New("field: unknown entity")
	// ErrInvalidSize is returned by New for non-positive dimensions.
	ErrInvalidSize = errors.New("field: width and height must be positive")
)

// BoundsError reports a coordinate outside [0,Width)x[0,Height).
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("field: (%d,%d) outside %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// UnknownEntityError reports a lookup for a uid the store never issued.
type UnknownEntityError struct {
	UID UID
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("field: no entity with uid %d", e.UID)
}

func (e *UnknownEntityError) Unwrap() error { return ErrUnknownEntity }
