package msdf

// Contour is an ordered, closed sequence of edges: the end of each edge
// coincides with the start of the next, and the last edge's end coincides
// with the first edge's start.
type Contour struct {
	Edges []EdgeSegment
}

// Bounds accumulates the contour's axis-aligned bounds into the given
// left/bottom/right/top running extrema.
func (c Contour) Bounds(left, bottom, right, top *float64) {
	for _, e := range c.Edges {
		e.Bounds(left, bottom, right, top)
	}
}

// Winding returns the contour's winding direction: +1 counter-clockwise,
// -1 clockwise, 0 for an empty or zero-area contour, computed via the
// shoelace formula over each edge's start point. Contours of one or two
// edges are sampled at extra points along their edges (t=⅓, ⅔ for one
// edge; t=½ on each edge for two).
func (c Contour) Winding() int {
	if len(c.Edges) == 0 {
		return 0
	}
	if len(c.Edges) == 1 {
		a := c.Edges[0].Point(0)
		b := c.Edges[0].Point(1.0 / 3)
		cc := c.Edges[0].Point(2.0 / 3)
		return nonZeroSignInt(shoelaceArea([]Point{a, b, cc}))
	}
	if len(c.Edges) == 2 {
		a := c.Edges[0].Point(0)
		b := c.Edges[0].Point(0.5)
		cc := c.Edges[1].Point(0)
		d := c.Edges[1].Point(0.5)
		return nonZeroSignInt(shoelaceArea([]Point{a, b, cc, d}))
	}
	pts := make([]Point, 0, len(c.Edges))
	for _, e := range c.Edges {
		pts = append(pts, e.Start())
	}
	return nonZeroSignInt(shoelaceArea(pts))
}

// shoelaceArea returns twice the signed area of the polygon formed by pts.
func shoelaceArea(pts []Point) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

func nonZeroSignInt(x float64) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
