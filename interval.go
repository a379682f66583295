package glplot

import (
	"fmt"
	"math"
)

// Interval is a closed range of numbers [Lower, Upper] with its span
// precomputed. Lower <= Upper always holds.
type Interval struct {
	Lower float32
	Upper float32
	Span  float32
}

// NewInterval returns the interval between a and b, in either order.
// The endpoints must not be NaN.
func NewInterval(a, b float32) Interval {
	lower, upper := a, b
	if b < a {
		lower, upper = b, a
	}
	return Interval{
		Lower: lower,
		Upper: upper,
		Span:  upper - lower,
	}
}

// Center returns the midpoint of the interval.
func (iv Interval) Center() float32 {
	return iv.Lower + iv.Span/2
}

// Contains reports whether x lies in the interval.
func (iv Interval) Contains(x float32) bool {
	return x >= iv.Lower && x <= iv.Upper
}

// Degenerate reports whether the span cannot be divided by: zero, or not
// a finite number.
func (iv Interval) Degenerate() bool {
	s := float64(iv.Span)
	return s == 0 || math.IsNaN(s) || math.IsInf(s, 0)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Lower, iv.Upper)
}
