// Command msdfgen rasterizes a single glyph from a font file into a
// multi-channel signed distance field PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"honnef.co/go/msdf"
	"honnef.co/go/msdf/fontshape"
)

func main() {
	var (
		fontPath = flag.String("font", "", "path to a TrueType/OpenType font file")
		glyph    = flag.String("glyph", "A", "glyph to rasterize, as a single rune")
		size     = flag.Int("size", 32, "output width and height, in pixels")
		fieldRng = flag.Float64("range", 4, "distance range, in pixels, that the field saturates over")
		out      = flag.String("out", "out.png", "output PNG path")
	)
	flag.Parse()

	if *fontPath == "" {
		log.Fatal("-font is required")
	}
	r := []rune(*glyph)
	if len(r) != 1 {
		log.Fatalf("-glyph must be exactly one rune, got %q", *glyph)
	}

	if err := run(*fontPath, r[0], *size, *fieldRng, *out); err != nil {
		log.Fatal(err)
	}
}

func run(fontPath string, glyph rune, size int, fieldRange float64, out string) error {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return fmt.Errorf("reading font: %w", err)
	}

	unitsPerEm := float64(size)
	shape, err := fontshape.Load(fontBytes, glyph, unitsPerEm)
	if err != nil {
		return fmt.Errorf("loading glyph: %w", err)
	}

	msdf.ColorEdgesSimple(shape, msdf.DefaultColoringOptions())

	bounds := shape.Bounds()
	cx := (bounds.X0 + bounds.X1) / 2
	cy := (bounds.Y0 + bounds.Y1) / 2
	opts := msdf.GenerateOptions{
		Width:     size,
		Height:    size,
		Scale:     1,
		Translate: msdf.Vec(float64(size)/2-cx, float64(size)/2-cy),
		Range:     fieldRange,
	}

	field := msdf.GenerateMSDF(shape, opts)
	msdf.CorrectErrors(field, msdf.IntRect{Right: size, Bottom: size}, msdf.DefaultThreshold())

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, toImage(field)); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	log.Printf("wrote %s (%dx%d)", out, size, size)
	return nil
}

func toImage(field *msdf.Pixmap[msdf.RGB]) image.Image {
	rgb8 := msdf.ToRGB8(field)
	w, h := rgb8.Dims()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := rgb8.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = px.R
			img.Pix[i+1] = px.G
			img.Pix[i+2] = px.B
			img.Pix[i+3] = 255
		}
	}
	return img
}
