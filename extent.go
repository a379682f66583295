package glplot

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

func checkExtent(points []Vertex, axis Axis) error {
	if !axis.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidAxis, axis)
	}
	if len(points) == 0 {
		return &EmptyInputError{Axis: axis}
	}
	return nil
}

func coords(points []Vertex, axis Axis) []float64 {
	cs := make([]float64, len(points))
	for i, p := range points {
		cs[i] = float64(p.Coord(axis))
	}
	return cs
}

// Smallest returns the minimum coordinate of points along axis.
func Smallest(points []Vertex, axis Axis) (float32, error) {
	if err := checkExtent(points, axis); err != nil {
		return 0, err
	}
	return float32(floats.Min(coords(points, axis))), nil
}

// Largest returns the maximum coordinate of points along axis.
func Largest(points []Vertex, axis Axis) (float32, error) {
	if err := checkExtent(points, axis); err != nil {
		return 0, err
	}
	return float32(floats.Max(coords(points, axis))), nil
}

// Extent returns the interval covered by points along axis.
func Extent(points []Vertex, axis Axis) (Interval, error) {
	lo, err := Smallest(points, axis)
	if err != nil {
		return Interval{}, err
	}
	hi, err := Largest(points, axis)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(lo, hi), nil
}
