package glplot

import (
	"math"
)

type point struct {
	X, Y float64
}

// cross returns twice the signed area of the triangle (a, b, c): positive
// when c is left of a->b.
func cross(a, b, c point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func onSegment(a, b, p point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// segmentsTouch reports whether the closed segments a->b and c->d share
// at least one point.
func segmentsTouch(a, b, c, d point, eps float64) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	if ((d1 > eps && d2 < -eps) || (d1 < -eps && d2 > eps)) &&
		((d3 > eps && d4 < -eps) || (d3 < -eps && d4 > eps)) {
		return true
	}
	return (math.Abs(d1) <= eps && onSegment(c, d, a)) ||
		(math.Abs(d2) <= eps && onSegment(c, d, b)) ||
		(math.Abs(d3) <= eps && onSegment(a, b, c)) ||
		(math.Abs(d4) <= eps && onSegment(a, b, d))
}

// inTriangle is inclusive of the edges. The triangle is counter clockwise.
func inTriangle(a, b, c, p point, eps float64) bool {
	return cross(a, b, p) >= -eps && cross(b, c, p) >= -eps && cross(c, a, p) >= -eps
}

// Triangulate splits a simple polygon into triangles by ear clipping and
// returns them as a flat list, three vertices per triangle. The outline
// may be convex or not, in either winding, and may repeat its first
// vertex at the end.
func Triangulate(outline []Vertex) ([]Vertex, error) {
	// drop repeated consecutive vertices, including a closing vertex
	idx := make([]int, 0, len(outline))
	for i, v := range outline {
		if len(idx) > 0 && outline[idx[len(idx)-1]] == v {
			continue
		}
		idx = append(idx, i)
	}
	for len(idx) > 1 && outline[idx[0]] == outline[idx[len(idx)-1]] {
		idx = idx[:len(idx)-1]
	}
	if len(idx) < 3 {
		return nil, &InvalidPolygonError{Reason: "fewer than three distinct vertices", Index: -1}
	}

	pts := make([]point, len(outline))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, i := range idx {
		p := point{float64(outline[i].X()), float64(outline[i].Y())}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, &InvalidPolygonError{Reason: "coordinate is not finite", Index: i}
		}
		pts[i] = p
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	size := math.Max(maxX-minX, maxY-minY)
	eps := 1e-12 * size * size

	var area float64
	for k := range idx {
		a := pts[idx[k]]
		b := pts[idx[(k+1)%len(idx)]]
		area += a.X*b.Y - b.X*a.Y
	}
	if math.Abs(area) <= eps {
		return nil, &InvalidPolygonError{Reason: "zero area", Index: -1}
	}

	n := len(idx)
	for i := 0; i < n; i++ {
		a, b := pts[idx[i]], pts[idx[(i+1)%n]]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			c, d := pts[idx[j]], pts[idx[(j+1)%n]]
			if segmentsTouch(a, b, c, d, eps) {
				return nil, &InvalidPolygonError{Reason: "edges intersect", Index: idx[j]}
			}
		}
	}

	if area < 0 {
		for l, r := 0, len(idx)-1; l < r; l, r = l+1, r-1 {
			idx[l], idx[r] = idx[r], idx[l]
		}
	}

	out := make([]Vertex, 0, 3*(len(idx)-2))
	for len(idx) > 3 {
		clipped := false
		for k := 0; k < len(idx); k++ {
			ip := idx[(k+len(idx)-1)%len(idx)]
			ic := idx[k]
			in := idx[(k+1)%len(idx)]
			a, b, c := pts[ip], pts[ic], pts[in]
			turn := cross(a, b, c)
			if math.Abs(turn) <= eps {
				// collinear with its neighbours: contributes no area
				idx = append(idx[:k], idx[k+1:]...)
				clipped = true
				break
			}
			if turn < 0 {
				continue
			}
			ear := true
			for _, io := range idx {
				if io == ip || io == ic || io == in {
					continue
				}
				if inTriangle(a, b, c, pts[io], eps) {
					ear = false
					break
				}
			}
			if !ear {
				continue
			}
			out = append(out, outline[ip], outline[ic], outline[in])
			idx = append(idx[:k], idx[k+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, &InvalidPolygonError{Reason: "no ear left to clip", Index: -1}
		}
	}
	if math.Abs(cross(pts[idx[0]], pts[idx[1]], pts[idx[2]])) > eps {
		out = append(out, outline[idx[0]], outline[idx[1]], outline[idx[2]])
	}
	return out, nil
}
