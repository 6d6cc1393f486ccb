package msdf

import (
	"fmt"
	"math"
)

// Shape is a set of closed contours, together forming a (possibly
// multiply-connected) filled region via nonzero winding.
type Shape struct {
	Contours []Contour

	// InverseYAxis indicates that the shape's Y axis increases downward, as
	// is common for font outlines and image coordinates. The rasterizer
	// (raster.go) mirrors each output row within the target region
	// accordingly, rather than changing how the field itself is evaluated.
	InverseYAxis bool
}

// Bounds returns the shape's axis-aligned bounding box.
func (s Shape) Bounds() Rect {
	left, bottom := math.Inf(1), math.Inf(1)
	right, top := math.Inf(-1), math.Inf(-1)
	for _, c := range s.Contours {
		c.Bounds(&left, &bottom, &right, &top)
	}
	if left > right || bottom > top {
		return Rect{}
	}
	return Rect{X0: left, Y0: bottom, X1: right, Y1: top}
}

// Validate reports the first structural inconsistency found: a contour
// whose edges don't form a closed loop end-to-start.
func (s Shape) Validate() error {
	const epsilon = 1e-9
	for ci, c := range s.Contours {
		if len(c.Edges) == 0 {
			continue
		}
		for i, e := range c.Edges {
			next := c.Edges[(i+1)%len(c.Edges)]
			if !e.End().Equal(next.Start(), epsilon) {
				return fmt.Errorf("msdf: contour %d is not closed: edge %d ends at %v, edge %d starts at %v",
					ci, i, e.End(), (i+1)%len(c.Edges), next.Start())
			}
		}
	}
	return nil
}

// Normalize splits any single-edge contour into thirds via
// [EdgeSegment.SplitInThirds], since edge coloring and pseudo-distance
// extension both assume a contour has at least two corners' worth of
// edges to work with. Two-edge contours are left as-is; the coloring pass
// (coloring.go) handles that case directly.
func (s *Shape) Normalize() {
	for i, c := range s.Contours {
		if len(c.Edges) == 1 {
			a, b, cc := c.Edges[0].SplitInThirds()
			s.Contours[i].Edges = []EdgeSegment{a, b, cc}
		}
	}
}
