package msdf

import "testing"

func TestShapeValidateClosed(t *testing.T) {
	s := Shape{Contours: []Contour{squareContour(true)}}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for a closed square", err)
	}
}

func TestShapeValidateDetectsGap(t *testing.T) {
	edges := []EdgeSegment{
		NewLinearEdge(Pt(0, 0), Pt(1, 0)),
		NewLinearEdge(Pt(1, 0.5), Pt(0, 1)), // doesn't start where the prior edge ends
		NewLinearEdge(Pt(0, 1), Pt(0, 0)),
	}
	s := Shape{Contours: []Contour{{Edges: edges}}}
	if err := s.Validate(); err == nil {
		t.Error("Validate() = nil, want an error for a non-closed contour")
	}
}

func TestShapeBounds(t *testing.T) {
	s := Shape{Contours: []Contour{squareContour(true)}}
	b := s.Bounds()
	if b.X0 != 0 || b.Y0 != 0 || b.X1 != 1 || b.Y1 != 1 {
		t.Errorf("Bounds() = %+v, want (0,0,1,1)", b)
	}
}

func TestShapeNormalizeSplitsSingleEdgeContour(t *testing.T) {
	s := Shape{Contours: []Contour{{Edges: []EdgeSegment{
		NewCubicEdge(Pt(0, 0), Pt(0, 1), Pt(1, -1), Pt(0, 0)),
	}}}}
	s.Normalize()
	if got := len(s.Contours[0].Edges); got != 3 {
		t.Fatalf("Normalize() left %d edges in a single-edge contour, want 3", got)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("normalized contour should remain closed: %v", err)
	}
}
