package msdf

import (
	"math"
	"testing"
)

func unitSquareShape() *Shape {
	return &Shape{Contours: []Contour{squareContour(true)}}
}

func TestEvaluateSingleChannelInsideIsNegative(t *testing.T) {
	s := unitSquareShape()
	scratch := NewFieldScratch(len(s.Contours))
	d := EvaluateSingleChannel(s, scratch, Pt(0.5, 0.5))
	if d >= 0 {
		t.Errorf("distance at the center of a CCW square = %v, want < 0", d)
	}
}

func TestEvaluateSingleChannelOutsideIsPositive(t *testing.T) {
	s := unitSquareShape()
	scratch := NewFieldScratch(len(s.Contours))
	d := EvaluateSingleChannel(s, scratch, Pt(2, 2))
	if d <= 0 {
		t.Errorf("distance far outside a CCW square = %v, want > 0", d)
	}
}

func TestEvaluateSingleChannelMagnitudeNearEdge(t *testing.T) {
	s := unitSquareShape()
	scratch := NewFieldScratch(len(s.Contours))
	d := EvaluateSingleChannel(s, scratch, Pt(1.1, 0.5))
	if math.Abs(math.Abs(d)-0.1) > 1e-9 {
		t.Errorf("distance just outside the right edge = %v, want magnitude ~0.1", d)
	}
}

func TestEvaluateMultiChannelColoredSquare(t *testing.T) {
	s := unitSquareShape()
	ColorEdgesSimple(s, DefaultColoringOptions())
	scratch := NewFieldScratch(len(s.Contours))
	md := EvaluateMultiChannel(s, scratch, Pt(0.5, 0.5))
	if md.Median >= 0 {
		t.Errorf("median distance at center = %v, want < 0", md.Median)
	}
}

// TestEvaluateMultiChannelDisk exercises scenario S4: a 32×32 disk of
// radius 10 centred at (16,16), range=8, no scale/translate. The center is
// deep inside (negative, magnitude ~10), a point on the boundary decodes to
// the midpoint, and a point well outside is positive.
func TestEvaluateMultiChannelDisk(t *testing.T) {
	s := diskShape(Pt(16, 16), 10, 64)
	ColorEdgesSimple(s, DefaultColoringOptions())
	scratch := NewFieldScratch(len(s.Contours))

	center := EvaluateMultiChannel(s, scratch, Pt(16, 16))
	if math.Abs(center.Median-(-10)) > 0.2 {
		t.Errorf("disk center median = %v, want ~-10", center.Median)
	}

	boundary := EvaluateMultiChannel(s, scratch, Pt(26, 16))
	if math.Abs(boundary.Median) > 0.2 {
		t.Errorf("disk boundary median = %v, want ~0", boundary.Median)
	}

	outside := EvaluateMultiChannel(s, scratch, Pt(31, 16))
	if outside.Median <= 0 {
		t.Errorf("disk exterior median = %v, want > 0", outside.Median)
	}
}

// diskShape approximates a circle of the given radius centered at c with n
// linear edges, traversed counter-clockwise.
func diskShape(c Point, radius float64, n int) *Shape {
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Pt(c.X+radius*math.Cos(a), c.Y+radius*math.Sin(a))
	}
	edges := make([]EdgeSegment, n)
	for i := range pts {
		edges[i] = NewLinearEdge(pts[i], pts[(i+1)%n])
	}
	return &Shape{Contours: []Contour{{Edges: edges}}}
}

func TestReconcileContoursSingleContour(t *testing.T) {
	md := MultiDistance{R: 1, G: 1, B: 1, Median: 1}
	got := reconcileContours([]int{1}, []MultiDistance{md}, -1)
	if got != md {
		t.Errorf("reconcileContours with one contour should pass it through unchanged, got %+v", got)
	}
}

func TestReconcileContoursPrefersNearerMatchingSign(t *testing.T) {
	windings := []int{1, -1}
	contourSD := []MultiDistance{
		{Median: 5},  // outer boundary, far away
		{Median: -1}, // hole boundary, closer: should win
	}
	got := reconcileContours(windings, contourSD, 0)
	if got.Median != -1 {
		t.Errorf("reconcileContours = %+v, want the nearer hole contour (median -1)", got)
	}
}

func TestReconcileContoursBootstrapWinningForSimpleInterior(t *testing.T) {
	// A single positive-winding contour with a negative median: no contour
	// satisfies "winding>0 && median>=0", so posDist/negDist both come up
	// empty and the bootstrap winding guess alone must select it.
	md := MultiDistance{R: -0.5, G: -0.5, B: -0.5, Median: -0.5}
	got := reconcileContours([]int{1}, []MultiDistance{md}, -1)
	if got != md {
		t.Errorf("reconcileContours = %+v, want the bootstrap-selected contour %+v", got, md)
	}
}
