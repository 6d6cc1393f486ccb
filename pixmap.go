package msdf

import (
	"fmt"

	"github.com/chewxy/math32"
)

// PixmapError reports a pixmap whose backing storage doesn't match its
// declared dimensions. It's the one place this package returns a typed
// error rather than clamping or silently absorbing a degenerate input: a
// caller-supplied buffer of the wrong size can't be papered over the way
// an out-of-range coordinate or a zero-length contour can.
type PixmapError struct {
	Op          string
	Width       int
	Height      int
	GotElements int
}

func (e *PixmapError) Error() string {
	return fmt.Sprintf("msdf: %s: pixmap is %dx%d (%d elements) but backing slice has %d elements",
		e.Op, e.Width, e.Height, e.Width*e.Height, e.GotElements)
}

// Pixmap is a dense width×height grid of pixel elements, row-major with
// (0,0) at the top-left, matching the rasterizer's iteration order in
// raster.go.
type Pixmap[T any] struct {
	Width, Height int
	Pix           []T
}

// NewPixmap allocates a zero-valued width×height pixmap.
func NewPixmap[T any](width, height int) *Pixmap[T] {
	return &Pixmap[T]{Width: width, Height: height, Pix: make([]T, width*height)}
}

// NewPixmapFrom wraps an existing slice as a width×height pixmap, without
// copying. It returns a [*PixmapError] if the slice's length doesn't match
// width*height exactly.
func NewPixmapFrom[T any](width, height int, pix []T) (*Pixmap[T], error) {
	if len(pix) != width*height {
		return nil, &PixmapError{Op: "NewPixmapFrom", Width: width, Height: height, GotElements: len(pix)}
	}
	return &Pixmap[T]{Width: width, Height: height, Pix: pix}, nil
}

func (p *Pixmap[T]) index(x, y int) int { return y*p.Width + x }

// At returns the pixel at (x,y). x and y are not bounds-checked beyond what
// slice indexing does natively.
func (p *Pixmap[T]) At(x, y int) T { return p.Pix[p.index(x, y)] }

// Set stores the pixel at (x,y).
func (p *Pixmap[T]) Set(x, y int, v T) { p.Pix[p.index(x, y)] = v }

// Dims returns the pixmap's width and height.
func (p *Pixmap[T]) Dims() (int, int) { return p.Width, p.Height }

// RGB is a single-precision floating point 3-channel pixel, the native
// storage produced by [GenerateMSDF] before any quantization.
type RGB struct {
	R, G, B float32
}

// RGBA is a single-precision floating point 4-channel pixel, used when a
// shape's fill also carries an alpha coverage channel.
type RGBA struct {
	R, G, B, A float32
}

// RGB8 is a byte-packed 3-channel pixel, suitable for handing to
// image/png or another 8-bit-per-channel consumer.
type RGB8 struct {
	R, G, B uint8
}

// RGBA8 is a byte-packed 4-channel pixel.
type RGBA8 struct {
	R, G, B, A uint8
}

// clampByte saturates v (expected in [0,1]) to a byte via math32, matching
// how cogentcore's color.go clamps float32 channel math before packing to
// 8-bit color (color.go's math32.Min/Max channel-clamping idiom).
func clampByte(v float32) uint8 {
	v = math32.Max(0, math32.Min(1, v))
	return uint8(math32.Round(v * 255))
}

// ToRGB8 quantizes each channel to 8 bits, clamping to [0,1] first.
func (c RGB) ToRGB8() RGB8 {
	return RGB8{R: clampByte(c.R), G: clampByte(c.G), B: clampByte(c.B)}
}

// ToRGBA8 quantizes each channel to 8 bits, clamping to [0,1] first.
func (c RGBA) ToRGBA8() RGBA8 {
	return RGBA8{R: clampByte(c.R), G: clampByte(c.G), B: clampByte(c.B), A: clampByte(c.A)}
}

// ToRGB8 quantizes every pixel of src into a freshly allocated RGB8 pixmap.
func ToRGB8(src *Pixmap[RGB]) *Pixmap[RGB8] {
	dst := NewPixmap[RGB8](src.Width, src.Height)
	for i, px := range src.Pix {
		dst.Pix[i] = px.ToRGB8()
	}
	return dst
}

// ToRGBA8 quantizes every pixel of src into a freshly allocated RGBA8 pixmap.
func ToRGBA8(src *Pixmap[RGBA]) *Pixmap[RGBA8] {
	dst := NewPixmap[RGBA8](src.Width, src.Height)
	for i, px := range src.Pix {
		dst.Pix[i] = px.ToRGBA8()
	}
	return dst
}

// ToGray8 quantizes a single-channel float32 pixmap (as produced by
// [GenerateSDF]) into 8-bit gray.
func ToGray8(src *Pixmap[float32]) *Pixmap[uint8] {
	dst := NewPixmap[uint8](src.Width, src.Height)
	for i, v := range src.Pix {
		dst.Pix[i] = clampByte(v)
	}
	return dst
}
