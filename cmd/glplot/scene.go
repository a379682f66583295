package main

import (
	"errors"
	"fmt"

	"github.com/cellux/glplot"
	"github.com/cellux/glplot/internal/config"
)

// Scene is everything drawn each frame, in drawing order.
type Scene struct {
	Layers   []glplot.Layer
	ViewPort glplot.ViewPort
	canvas   *glplot.Canvas
}

func (s *Scene) Close() error {
	if s.canvas == nil {
		return nil
	}
	return s.canvas.Close()
}

// fitViewPort fits the viewport to points. A coordinate which does not
// vary is padded by one unit in both directions so that flat series and
// single points still show up in the middle of the screen.
func fitViewPort(points []glplot.Vertex, screen glplot.ScreenRect) (glplot.ViewPort, error) {
	vp, err := glplot.FitToData(points, screen)
	if !errors.Is(err, glplot.ErrDegenerateInterval) {
		return vp, err
	}
	logger.Warn("degenerate data extent, padding viewport", "error", err)
	domain, err := glplot.Extent(points, glplot.AxisX)
	if err != nil {
		return glplot.ViewPort{}, err
	}
	rng, err := glplot.Extent(points, glplot.AxisY)
	if err != nil {
		return glplot.ViewPort{}, err
	}
	pad := func(iv glplot.Interval) glplot.Interval {
		if iv.Span == 0 {
			return glplot.NewInterval(iv.Lower-1, iv.Upper+1)
		}
		return iv
	}
	return glplot.NewViewPort(pad(domain), pad(rng), screen)
}

// BuildScene uploads the series and overlays of cfg to b. The series is
// drawn first, then rectangles, then polygons.
func BuildScene(b glplot.Backend, cfg *config.Config, points []glplot.Vertex) (*Scene, error) {
	vp, err := fitViewPort(points, cfg.Screen.Rect())
	if err != nil {
		return nil, fmt.Errorf("viewport: %w", err)
	}
	shapes := []glplot.Shape{glplot.NewPolyline(points)}
	for _, r := range cfg.Rects {
		shapes = append(shapes, glplot.NewRect(glplot.V(r.From[0], r.From[1]), glplot.V(r.To[0], r.To[1])))
	}
	for i, outline := range cfg.Polygons {
		vertices := make([]glplot.Vertex, len(outline))
		for j, p := range outline {
			vertices[j] = glplot.V(p[0], p[1])
		}
		polygon, err := glplot.NewPolygon(vertices)
		if err != nil {
			return nil, fmt.Errorf("polygons[%d]: %w", i, err)
		}
		shapes = append(shapes, polygon)
	}
	canvas, err := glplot.NewCanvas(b, shapes...)
	if err != nil {
		return nil, err
	}
	canvas.Color = cfg.Foreground.Color()
	logger.Info("scene built", "points", len(points), "shapes", canvas.Len(), "viewport", vp.String())
	return &Scene{
		Layers: []glplot.Layer{
			glplot.ClearColor{Color: cfg.Background.Color()},
			canvas,
		},
		ViewPort: vp,
		canvas:   canvas,
	}, nil
}
