package glplot

import (
	"errors"
	"fmt"
)

// Sentinel errors for scene construction.
var (
	// ErrEmptyInput is returned when an extent is requested over no points.
	ErrEmptyInput = errors.New("glplot: empty input")

	// ErrDegenerateInterval is returned when an interval with zero span
	// would be used as a divisor.
	ErrDegenerateInterval = errors.New("glplot: degenerate interval")

	// ErrInvalidPolygon is returned when a polygon cannot be triangulated.
	ErrInvalidPolygon = errors.New("glplot: invalid polygon")

	// ErrInvalidAxis is returned for an Axis other than AxisX and AxisY.
	ErrInvalidAxis = errors.New("glplot: invalid axis")

	// ErrClosed is returned when a released resource is used.
	ErrClosed = errors.New("glplot: resource closed")
)

// EmptyInputError is returned by Smallest and Largest when the point
// sequence is empty.
type EmptyInputError struct {
	Axis Axis
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("glplot: no points to take %s extent of", e.Axis)
}

func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// DegenerateIntervalError is returned when a ViewPort would have to divide
// by the span of an interval which is zero or not finite.
type DegenerateIntervalError struct {
	Axis     Axis
	Interval Interval
}

func (e *DegenerateIntervalError) Error() string {
	return fmt.Sprintf("glplot: degenerate %s interval %s", e.Axis, e.Interval)
}

func (e *DegenerateIntervalError) Is(target error) bool {
	return target == ErrDegenerateInterval
}

// InvalidPolygonError describes why a polygon was rejected. Index is the
// offending vertex, or -1 when the problem is not tied to one vertex.
type InvalidPolygonError struct {
	Reason string
	Index  int
}

func (e *InvalidPolygonError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("glplot: invalid polygon: %s", e.Reason)
	}
	return fmt.Sprintf("glplot: invalid polygon: %s at vertex %d", e.Reason, e.Index)
}

func (e *InvalidPolygonError) Is(target error) bool {
	return target == ErrInvalidPolygon
}
