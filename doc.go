// Package msdf generates signed and multi-channel signed distance fields
// (MSDF) from vector shapes, the representation behind resolution-independent
// glyph and icon rendering: a small texture that stays sharp at any zoom
// level because the renderer reconstructs edges from per-pixel distance
// values rather than from sampled coverage.
//
// # Shapes and edges
//
// A [Shape] is a set of [Contour] values, each a closed loop of
// [EdgeSegment] values (Linear, Quadratic, or Cubic Bézier). Construct
// edges with [NewLinearEdge], [NewQuadraticEdge], and [NewCubicEdge], and
// call [Shape.Normalize] before rasterizing to guard against single-edge
// contours that the coloring and distance logic otherwise can't anchor
// corners on.
//
// # Coloring
//
// Multi-channel fields need each edge labeled with the channel(s) (red,
// green, blue) it contributes distance to, so adjacent edges meeting at a
// sharp corner can be told apart by a decoder even when both are the
// nearest edge to a pixel. [ColorEdgesSimple] assigns these labels by
// walking each contour and switching color at detected corners.
//
// # Rasterizing
//
// [GenerateSDF] produces a single-channel field; [GenerateMSDF] produces
// the 3-channel field, requiring a colored, normalized shape;
// [GenerateMSDFTiled] parallelizes the latter across goroutines. Run
// [CorrectErrors] over an MSDF field afterward to patch the rare pixels
// where per-channel distance reconstruction disagrees with the shape it
// was generated from.
//
// # Fonts
//
// The fontshape subpackage adapts font glyph outlines (via
// golang.org/x/image/font/sfnt) into [Shape] values.
package msdf
