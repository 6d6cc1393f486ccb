// Package fontshape adapts glyph outlines from real font files into
// [msdf.Shape] values, using golang.org/x/image/font/sfnt to do the actual
// font parsing. The core msdf package never touches a font file; this
// package is the thing that sits between a .ttf/.otf and it.
package fontshape

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/msdf"
)

// Load parses fontBytes and builds a [msdf.Shape] for glyph. Outline
// coordinates are multiplied by unitsPerEm divided by the font's own units
// per em, so unitsPerEm is the number of shape units per em; a value of
// zero or less leaves them unscaled. A caller rasterizing at a fixed pixel
// size passes the desired ppem, as cmd/msdfgen does.
func Load(fontBytes []byte, glyph rune, unitsPerEm float64) (*msdf.Shape, error) {
	f, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("fontshape: parsing font: %w", err)
	}
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, glyph)
	if err != nil {
		return nil, fmt.Errorf("fontshape: looking up glyph %q: %w", glyph, err)
	}
	if gid == 0 {
		return nil, fmt.Errorf("fontshape: font has no glyph for %q", glyph)
	}
	return loadGlyph(f, &buf, gid, unitsPerEm)
}

// LoadGlyphIndex is [Load], but addresses the glyph directly by its
// glyph-index rather than by rune, for fonts accessed through a cmap-less
// path (e.g. a previously resolved GSUB substitution).
func LoadGlyphIndex(fontBytes []byte, gid sfnt.GlyphIndex, unitsPerEm float64) (*msdf.Shape, error) {
	f, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("fontshape: parsing font: %w", err)
	}
	var buf sfnt.Buffer
	return loadGlyph(f, &buf, gid, unitsPerEm)
}

func loadGlyph(f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, unitsPerEm float64) (*msdf.Shape, error) {
	upem := f.UnitsPerEm()
	scale := 1.0
	if unitsPerEm > 0 {
		scale = unitsPerEm / float64(upem)
	}

	segments, err := f.LoadGlyph(buf, gid, fixed.Int26_6(upem), nil)
	if err != nil {
		return nil, fmt.Errorf("fontshape: loading glyph outline: %w", err)
	}

	shape := &msdf.Shape{}
	var (
		edges []msdf.EdgeSegment
		start msdf.Point
		cur   msdf.Point
	)
	flush := func() {
		if len(edges) > 0 {
			shape.Contours = append(shape.Contours, msdf.Contour{Edges: edges})
		}
		edges = nil
	}
	pt := func(p fixed.Point26_6) msdf.Point {
		return msdf.Pt(fixedToFloat(p.X)*scale, fixedToFloat(p.Y)*scale)
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			start = pt(seg.Args[0])
			cur = start
		case sfnt.SegmentOpLineTo:
			next := pt(seg.Args[0])
			if !next.Equal(cur, 0) {
				edges = append(edges, msdf.NewLinearEdge(cur, next))
				cur = next
			}
		case sfnt.SegmentOpQuadTo:
			control := pt(seg.Args[0])
			next := pt(seg.Args[1])
			edges = append(edges, msdf.NewQuadraticEdge(cur, control, next))
			cur = next
		case sfnt.SegmentOpCubeTo:
			c1 := pt(seg.Args[0])
			c2 := pt(seg.Args[1])
			next := pt(seg.Args[2])
			edges = append(edges, msdf.NewCubicEdge(cur, c1, c2, next))
			cur = next
		}
	}
	if len(edges) > 0 && !cur.Equal(start, 1e-9) {
		edges = append(edges, msdf.NewLinearEdge(cur, start))
	}
	flush()

	// TrueType/OpenType outlines wind clockwise for a filled contour under
	// a Y-down coordinate system, which is CCW once Y is flipped to the
	// shape's Y-up convention; contours come out already consistent with
	// [msdf.Contour.Winding]'s CCW-is-outer rule, so no re-winding pass is
	// needed here.
	shape.Normalize()
	return shape, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
