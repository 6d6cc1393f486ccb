package msdf

import "testing"

func TestIsCornerRightAngle(t *testing.T) {
	if !isCorner(Vec(1, 0), Vec(0, 1), 3) {
		t.Error("a 90° turn should be a corner at threshold 3 radians")
	}
}

func TestIsCornerStraight(t *testing.T) {
	if isCorner(Vec(1, 0), Vec(1, 0), 3) {
		t.Error("no turn at all should never be a corner")
	}
}

func TestColorEdgesSimpleSmoothContourSingleColor(t *testing.T) {
	// A contour whose edges don't turn sharply anywhere gets one color.
	c := squareContourRounded()
	s := &Shape{Contours: []Contour{c}}
	ColorEdgesSimple(s, ColoringOptions{AngleThreshold: 0.01, Seed: 0})
	first := s.Contours[0].Edges[0].Color
	for _, e := range s.Contours[0].Edges {
		if e.Color != first {
			t.Errorf("expected a single shared color, got %v and %v", first, e.Color)
		}
	}
}

func TestColorEdgesSimpleSquareGetsMultipleColors(t *testing.T) {
	s := &Shape{Contours: []Contour{squareContour(true)}}
	ColorEdgesSimple(s, DefaultColoringOptions())
	seen := map[EdgeColor]bool{}
	for _, e := range s.Contours[0].Edges {
		if e.Color == Black {
			t.Error("no edge should be colored Black")
		}
		seen[e.Color] = true
	}
	if len(seen) < 2 {
		t.Errorf("a 4-corner square should use more than one color, got %v", seen)
	}
}

func TestMagicDistributesAcrossThreeGroups(t *testing.T) {
	groups := map[int]bool{}
	const m = 9
	for j := 0; j < m; j++ {
		g := magic(j, m)
		if g < 0 || g > 2 {
			t.Fatalf("magic(%d,%d) = %d, out of [0,2]", j, m, g)
		}
		groups[g] = true
	}
	if len(groups) != 3 {
		t.Errorf("expected magic() to hit all 3 groups over %d edges, got %v", m, groups)
	}
}

// squareContourRounded approximates a smooth, nearly-circular contour with
// four quadratic arcs, so consecutive tangents never turn sharply.
func squareContourRounded() Contour {
	return Contour{Edges: []EdgeSegment{
		NewQuadraticEdge(Pt(1, 0), Pt(1, 1), Pt(0, 1)),
		NewQuadraticEdge(Pt(0, 1), Pt(-1, 1), Pt(-1, 0)),
		NewQuadraticEdge(Pt(-1, 0), Pt(-1, -1), Pt(0, -1)),
		NewQuadraticEdge(Pt(0, -1), Pt(1, -1), Pt(1, 0)),
	}}
}
