package msdf

import "math"

// Rect is an axis-aligned rectangle, used for shape-space bounding boxes
// ([Shape.Bounds]). Pixel-space regions passed to the rasterizer use
// [IntRect].
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1,
// ensuring that width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that
// width and height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 && pt.Y >= r.Y0 && pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles. Thus, a
// succession of UnionPoint operations on a series of points yields their
// enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// IntRect is an axis-aligned rectangle with integer bounds, half-open like
// [Rect]: it covers [Left,Right) × [Top,Bottom).
type IntRect struct {
	Left, Top     int
	Right, Bottom int
}

// Clip clips r to [0,width) × [0,height) via two nested min(max(0, ·), dim).
func (r IntRect) Clip(width, height int) IntRect {
	clampAxis := func(lo, hi, dim int) (int, int) {
		lo = min(max(lo, 0), dim)
		hi = min(max(hi, 0), dim)
		return lo, hi
	}
	left, right := clampAxis(r.Left, r.Right, width)
	top, bottom := clampAxis(r.Top, r.Bottom, height)
	return IntRect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func (r IntRect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

func (r IntRect) Width() int  { return r.Right - r.Left }
func (r IntRect) Height() int { return r.Bottom - r.Top }

func (r IntRect) IsNaN() bool {
	return math.IsNaN(float64(r.Left))
}
