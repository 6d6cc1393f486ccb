package msdf

import (
	"runtime"
	"sync"
)

// GenerateOptions configures the rasterizer entry points in this file.
type GenerateOptions struct {
	// Width and Height are the output pixmap's dimensions in pixels.
	Width, Height int

	// Scale maps one unit of shape space to this many pixels, applied
	// after Translate.
	Scale float64

	// Translate shifts the shape, in shape-space units, before scaling.
	Translate Vec2

	// Range is the width (in shape-space units) of the distance window
	// mapped onto [0,1]: a pixel exactly on an edge maps to 0.5, and the
	// value saturates to 1 or 0 once the distance reaches Range/2.
	Range float64

	// Region restricts rasterization to a sub-rectangle of the output
	// pixmap; pixels outside it are left at their pixmap zero value. A
	// zero Region rasterizes the whole pixmap.
	Region IntRect
}

// pixelToShape maps a pixel center at (x,y) to shape space.
func (o GenerateOptions) pixelToShape(x, y int) Point {
	return Pt((float64(x)+0.5)/o.Scale-o.Translate.X, (float64(y)+0.5)/o.Scale-o.Translate.Y)
}

// normalize maps a raw shape-space distance to the [0,1] output range.
func (o GenerateOptions) normalize(d float64) float32 {
	v := d/o.Range + 0.5
	return float32(clamp(v, 0, 1))
}

func (o GenerateOptions) region() IntRect {
	r := o.Region
	if r.IsEmpty() {
		r = IntRect{Left: 0, Top: 0, Right: o.Width, Bottom: o.Height}
	}
	return r.Clip(o.Width, o.Height)
}

// outputRow returns the pixmap row that pixel-space row y should actually
// be written to: y itself, unless the shape's Y axis runs the opposite way
// from the pixmap's, in which case the row is mirrored within region.
func outputRow(y int, region IntRect, inverseYAxis bool) int {
	if !inverseYAxis {
		return y
	}
	return region.Top + region.Bottom - 1 - y
}

// GenerateSDF rasterizes s into a single-channel signed distance field.
func GenerateSDF(s *Shape, opts GenerateOptions) *Pixmap[float32] {
	out := NewPixmap[float32](opts.Width, opts.Height)
	scratch := NewFieldScratch(len(s.Contours))
	region := opts.region()
	for y := region.Top; y < region.Bottom; y++ {
		row := outputRow(y, region, s.InverseYAxis)
		for x := region.Left; x < region.Right; x++ {
			origin := opts.pixelToShape(x, y)
			d := EvaluateSingleChannel(s, scratch, origin)
			out.Set(x, row, opts.normalize(d))
		}
	}
	return out
}

// GeneratePseudoSDF is GenerateSDF's counterpart using only the shape's
// coloring assignment to pick, per pixel, the single nearest edge among
// those not excluded by color — in practice identical to GenerateSDF
// unless the shape has been colored with anything other than all-White
// edges, in which case it restricts to the red channel's nearest edge.
// This gives callers of a colored shape a way to preview one channel in
// isolation.
func GeneratePseudoSDF(s *Shape, opts GenerateOptions) *Pixmap[float32] {
	out := NewPixmap[float32](opts.Width, opts.Height)
	scratch := NewFieldScratch(len(s.Contours))
	region := opts.region()
	for y := region.Top; y < region.Bottom; y++ {
		row := outputRow(y, region, s.InverseYAxis)
		for x := region.Left; x < region.Right; x++ {
			origin := opts.pixelToShape(x, y)
			md := EvaluateMultiChannel(s, scratch, origin)
			out.Set(x, row, opts.normalize(md.R))
		}
	}
	return out
}

// GenerateMSDF rasterizes s into a 3-channel multi-channel signed distance
// field. s should already be colored (see [ColorEdgesSimple]) and
// normalized (see [Shape.Normalize]).
func GenerateMSDF(s *Shape, opts GenerateOptions) *Pixmap[RGB] {
	out := NewPixmap[RGB](opts.Width, opts.Height)
	scratch := NewFieldScratch(len(s.Contours))
	region := opts.region()
	for y := region.Top; y < region.Bottom; y++ {
		row := outputRow(y, region, s.InverseYAxis)
		for x := region.Left; x < region.Right; x++ {
			origin := opts.pixelToShape(x, y)
			md := EvaluateMultiChannel(s, scratch, origin)
			out.Set(x, row, RGB{
				R: opts.normalize(md.R),
				G: opts.normalize(md.G),
				B: opts.normalize(md.B),
			})
		}
	}
	return out
}

// GenerateMSDFTiled is GenerateMSDF parallelized across rows, each worker
// owning its own [FieldScratch], the way gogpu-gg's text/msdf/generator.go
// shards rows across goroutines with a shared sync.WaitGroup and no other
// synchronization, since each row only ever touches its own pixels.
//
// workers <= 0 selects runtime.GOMAXPROCS(0).
func GenerateMSDFTiled(s *Shape, opts GenerateOptions, workers int) *Pixmap[RGB] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := NewPixmap[RGB](opts.Width, opts.Height)
	region := opts.region()
	rows := region.Height()
	if rows <= 0 {
		return out
	}
	if workers > rows {
		workers = rows
	}

	var wg sync.WaitGroup
	rowsPerWorker := (rows + workers - 1) / workers
	for w := 0; w < workers; w++ {
		startRow := region.Top + w*rowsPerWorker
		endRow := min(startRow+rowsPerWorker, region.Bottom)
		if startRow >= endRow {
			continue
		}
		wg.Add(1)
		go func(startRow, endRow int) {
			defer wg.Done()
			scratch := NewFieldScratch(len(s.Contours))
			for y := startRow; y < endRow; y++ {
				row := outputRow(y, region, s.InverseYAxis)
				for x := region.Left; x < region.Right; x++ {
					origin := opts.pixelToShape(x, y)
					md := EvaluateMultiChannel(s, scratch, origin)
					out.Set(x, row, RGB{
						R: opts.normalize(md.R),
						G: opts.normalize(md.G),
						B: opts.normalize(md.B),
					})
				}
			}
		}(startRow, endRow)
	}
	wg.Wait()
	return out
}
