package msdf

import (
	"math"
	"testing"
)

func approxFloat(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

// TestLinearSignedDistanceInterior exercises the orthogonal-projection
// branch of a horizontal linear edge, with the origin's perpendicular
// offset well inside the segment's endpoints.
func TestLinearSignedDistanceInterior(t *testing.T) {
	e := NewLinearEdge(Pt(0, 0), Pt(10, 0))
	sd, tStar := e.SignedDistance(Pt(5, 3))
	approxFloat(t, "distance", sd.Distance, -3, 1e-9)
	approxFloat(t, "dot", sd.Dot, 0, 1e-9)
	approxFloat(t, "t*", tStar, 0.5, 1e-9)
}

func TestLinearSignedDistanceBeyondEndpoint(t *testing.T) {
	e := NewLinearEdge(Pt(0, 0), Pt(10, 0))
	sd, tStar := e.SignedDistance(Pt(-3, 4))
	if tStar >= 0 {
		t.Errorf("t* = %v, want < 0 (origin is behind the start)", tStar)
	}
	approxFloat(t, "distance magnitude", math.Abs(sd.Distance), 5, 1e-9)
}

// TestCubicSignedDistanceDegenerateStart mirrors a degenerate cubic whose
// first control point coincides with its start (a cusp-like tangent),
// checking both the on-curve case and the beyond-start extension.
func TestCubicSignedDistanceDegenerateStart(t *testing.T) {
	e := NewCubicEdge(Pt(0, 0), Pt(0, 0), Pt(1, 1), Pt(1, 1))

	sd, tStar := e.SignedDistance(Pt(0, 0))
	approxFloat(t, "t* (on start)", tStar, 0, 1e-9)
	approxFloat(t, "distance (on start)", sd.Distance, 0, 1e-9)
	approxFloat(t, "dot (on start)", sd.Dot, 0, 1e-9)

	sd2, tStar2 := e.SignedDistance(Pt(-1, 0))
	if tStar2 >= 0 {
		t.Errorf("t* = %v, want < 0", tStar2)
	}
	e.DistanceToPseudoDistance(&sd2, Pt(-1, 0), tStar2)
	dir := e.Direction(0).Normalize()
	want := cross2(Pt(-1, 0).Sub(e.Start()), dir)
	approxFloat(t, "pseudo-distance", sd2.Distance, want, 1e-9)
	approxFloat(t, "pseudo-distance dot", sd2.Dot, 0, 1e-9)
}

func TestQuadraticPointAtEndpoints(t *testing.T) {
	e := NewQuadraticEdge(Pt(0, 0), Pt(1, 2), Pt(2, 0))
	if got := e.Point(0); !got.Equal(Pt(0, 0), 1e-12) {
		t.Errorf("Point(0) = %v, want (0,0)", got)
	}
	if got := e.Point(1); !got.Equal(Pt(2, 0), 1e-12) {
		t.Errorf("Point(1) = %v, want (2,0)", got)
	}
}

func TestEdgeSplitInThirdsReproducesEndpoints(t *testing.T) {
	e := NewCubicEdge(Pt(0, 0), Pt(1, 3), Pt(3, 3), Pt(4, 0))
	a, b, c := e.SplitInThirds()
	if !a.Start().Equal(e.Start(), 1e-12) {
		t.Errorf("first third should start where e starts")
	}
	if !a.End().Equal(b.Start(), 1e-9) {
		t.Errorf("first/second third should share an endpoint")
	}
	if !b.End().Equal(c.Start(), 1e-9) {
		t.Errorf("second/third third should share an endpoint")
	}
	if !c.End().Equal(e.End(), 1e-12) {
		t.Errorf("last third should end where e ends")
	}
	mid := e.Point(1.0 / 3)
	if !a.End().Equal(mid, 1e-9) {
		t.Errorf("first third should end at e.Point(1/3): got %v, want %v", a.End(), mid)
	}
}

func TestEdgeSplitInThirdsLinear(t *testing.T) {
	e := NewLinearEdge(Pt(0, 0), Pt(9, 0))
	a, b, c := e.SplitInThirds()
	if !a.End().Equal(Pt(3, 0), 1e-9) {
		t.Errorf("a.End() = %v, want (3,0)", a.End())
	}
	if !b.End().Equal(Pt(6, 0), 1e-9) {
		t.Errorf("b.End() = %v, want (6,0)", b.End())
	}
	if !c.End().Equal(Pt(9, 0), 1e-9) {
		t.Errorf("c.End() = %v, want (9,0)", c.End())
	}
}

func TestEdgeBoundsQuadraticExtremum(t *testing.T) {
	// Control point well above the chord forces a y-extremum inside (0,1).
	e := NewQuadraticEdge(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	left, bottom, right, top := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	e.Bounds(&left, &bottom, &right, &top)
	approxFloat(t, "left", left, 0, 1e-9)
	approxFloat(t, "right", right, 10, 1e-9)
	approxFloat(t, "top", top, 5, 1e-9)
	approxFloat(t, "bottom", bottom, 0, 1e-9)
}

func TestEdgeMoveStartLinear(t *testing.T) {
	e := NewLinearEdge(Pt(0, 0), Pt(10, 0))
	moved := e.MoveStart(Pt(-5, 0))
	if !moved.Start().Equal(Pt(-5, 0), 1e-12) {
		t.Errorf("Start() = %v, want (-5,0)", moved.Start())
	}
	if !moved.End().Equal(Pt(10, 0), 1e-12) {
		t.Errorf("End() should be unaffected by MoveStart")
	}
}
