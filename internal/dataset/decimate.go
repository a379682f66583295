package dataset

import (
	"fmt"

	"github.com/dh1tw/gosamplerate"

	"github.com/cellux/glplot"
)

// libsamplerate refuses ratios below this
const decimateMinRatio = 1.0 / 256

// Decimate resamples an evenly spaced series down to about maxPoints
// points with the libsamplerate converter converterType (0..4). The x
// coordinates are respaced evenly over the original extent.
func Decimate(points []glplot.Vertex, maxPoints int, converterType int) ([]glplot.Vertex, error) {
	if maxPoints < 2 {
		return nil, fmt.Errorf("decimate: maxPoints must be at least 2, got %d", maxPoints)
	}
	if len(points) <= maxPoints {
		return points, nil
	}
	ys := make([]float32, len(points))
	for i, p := range points {
		ys[i] = p.Y()
	}
	for len(ys) > maxPoints {
		ratio := max(float64(maxPoints)/float64(len(ys)), decimateMinRatio)
		if !gosamplerate.IsValidRatio(ratio) {
			return nil, fmt.Errorf("decimate: invalid ratio %v", ratio)
		}
		out, err := gosamplerate.Simple(ys, ratio, 1, converterType)
		if err != nil {
			return nil, fmt.Errorf("decimate: %w", err)
		}
		if len(out) > maxPoints && ratio > decimateMinRatio {
			// rounding in the converter
			out = out[:maxPoints]
		}
		if len(out) >= len(ys) || len(out) < 2 {
			return nil, fmt.Errorf("decimate: converter returned %d of %d samples", len(out), len(ys))
		}
		ys = out
	}
	x0, x1 := points[0].X(), points[len(points)-1].X()
	step := (x1 - x0) / float32(len(ys)-1)
	result := make([]glplot.Vertex, len(ys))
	for i, y := range ys {
		result[i] = glplot.V(x0+float32(i)*step, y)
	}
	glplot.Logger().Debug("decimated", "from", len(points), "to", len(result))
	return result, nil
}
