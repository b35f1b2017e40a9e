package beam

import (
	"errors"
	"fmt"
)

var (
	// ErrSampleCount is returned when a diagram is requested with fewer than two samples
	ErrSampleCount = errors.New("sample count must be at least 2")

	// ErrNoSuchLoad is returned when removing a load index that does not exist
	ErrNoSuchLoad = errors.New("no such load")
)

// InvalidLoadError reports a load whose geometry does not fit the beam
type InvalidLoadError struct {
	Load   Load
	Reason string
}

func (e *InvalidLoadError) Error() string {
	return fmt.Sprintf("invalid load (%v): %s", e.Load, e.Reason)
}

// DegenerateBeamError reports a beam whose length is not a positive number
type DegenerateBeamError struct {
	Length float64
}

func (e *DegenerateBeamError) Error() string {
	return fmt.Sprintf("beam length must be positive, got %g", e.Length)
}

// OutOfRangeError reports a query position outside the span
type OutOfRangeError struct {
	X      float64
	Length float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %g is outside the beam [0, %g]", e.X, e.Length)
}
