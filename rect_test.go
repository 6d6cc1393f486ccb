package msdf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRectUnionPoint(t *testing.T) {
	r := NewRectFromPoints(Pt(0, 0), Pt(1, 1))
	r = r.UnionPoint(Pt(2, -1))
	want := Rect{X0: 0, Y0: -1, X1: 2, Y1: 1}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("UnionPoint mismatch (-want +got):\n%s", diff)
	}
}

func TestIntRectClip(t *testing.T) {
	cases := []struct {
		name string
		r    IntRect
		want IntRect
	}{
		{"within bounds", IntRect{Left: 2, Top: 2, Right: 8, Bottom: 8}, IntRect{Left: 2, Top: 2, Right: 8, Bottom: 8}},
		{"overhangs low", IntRect{Left: -5, Top: -5, Right: 5, Bottom: 5}, IntRect{Left: 0, Top: 0, Right: 5, Bottom: 5}},
		{"overhangs high", IntRect{Left: 5, Top: 5, Right: 50, Bottom: 50}, IntRect{Left: 5, Top: 5, Right: 10, Bottom: 10}},
		{"entirely outside", IntRect{Left: 20, Top: 20, Right: 30, Bottom: 30}, IntRect{Left: 10, Top: 10, Right: 10, Bottom: 10}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.r.Clip(10, 10)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("Clip mismatch (-want +got):\n%s", diff)
			}
			if !got.IsEmpty() && (got.Width() <= 0 || got.Height() <= 0) {
				t.Errorf("non-empty rect %+v has non-positive dimension", got)
			}
		})
	}
}
