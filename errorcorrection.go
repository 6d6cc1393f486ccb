package msdf

import "math"

// Threshold is the per-axis magnitude a clashing pixel pair's two
// majority channels must each clear, one component per majority channel
// tested.
type Threshold struct {
	X, Y float64
}

// DefaultThreshold returns the recommended default, tuned against a
// field normalized to [0,1] over its Range.
func DefaultThreshold() Threshold {
	return Threshold{X: 0.2, Y: 0.2}
}

// CorrectErrors scans region of field for four-neighbour clashes — pixel
// pairs whose channel values disagree in a way no legal MSDF color
// partition of the shape could produce — and collapses each clashing
// pixel to its median value on every channel.
//
// It runs two passes over region: the first only marks which pixels
// clash, against the field's original values; the second collapses the
// marked pixels. Doing the collapse in a second pass, rather than in
// place, keeps a correction from cascading into a false positive for
// the next pixel it's compared against.
func CorrectErrors(field *Pixmap[RGB], region IntRect, threshold Threshold) {
	region = region.Clip(field.Width, field.Height)
	if region.IsEmpty() {
		return
	}
	w := field.Width
	flagged := make([]bool, w*field.Height)

	for y := region.Top; y < region.Bottom; y++ {
		for x := region.Left; x < region.Right; x++ {
			p := field.At(x, y)
			if x+1 < region.Right && clashes(p, field.At(x+1, y), threshold) {
				flagged[y*w+x] = true
				flagged[y*w+x+1] = true
			}
			if y+1 < region.Bottom && clashes(p, field.At(x, y+1), threshold) {
				flagged[y*w+x] = true
				flagged[(y+1)*w+x] = true
			}
		}
	}

	for y := region.Top; y < region.Bottom; y++ {
		for x := region.Left; x < region.Right; x++ {
			i := y*w + x
			if !flagged[i] {
				continue
			}
			px := field.Pix[i]
			m := float32(median3(float64(px.R), float64(px.G), float64(px.B)))
			field.Pix[i] = RGB{R: m, G: m, B: m}
		}
	}
}

// clashes reports whether pixels a and b disagree in a way that can't be
// explained by a legitimate feature of the shape, by the following
// formula:
//
//  1. a and b must agree on their "inside" label: a pixel is inside if
//     at least two of its three channels exceed ½.
//  2. neither pixel may be uniformly above or below ½ on all three
//     channels — those are unambiguous interior/exterior pixels, never
//     flagged regardless of what their neighbour looks like.
//  3. the three channels are partitioned into a majority pair and a
//     minority channel, tried in order (R,G|B), (R,B|G), (G,B|R). A
//     partition clashes if, for one pixel, the pair's two channels fall
//     on opposite sides of ½ from each other, each crosses to the other
//     side of ½ on the other pixel, the crossing's magnitude on both
//     channels is at least threshold's matching component, and the
//     minority channel sits no farther from ½ on the other pixel than on
//     this one.
func clashes(a, b RGB, threshold Threshold) bool {
	ac := [3]float64{float64(a.R), float64(a.G), float64(a.B)}
	bc := [3]float64{float64(b.R), float64(b.G), float64(b.B)}

	insideOf := func(c [3]float64) bool {
		n := 0
		for _, v := range c {
			if v > 0.5 {
				n++
			}
		}
		return n >= 2
	}
	if insideOf(ac) != insideOf(bc) {
		return false
	}

	uniform := func(c [3]float64) bool {
		above := c[0] > 0.5 && c[1] > 0.5 && c[2] > 0.5
		below := c[0] < 0.5 && c[1] < 0.5 && c[2] < 0.5
		return above || below
	}
	if uniform(ac) || uniform(bc) {
		return false
	}

	partitions := [3][3]int{{0, 1, 2}, {0, 2, 1}, {1, 2, 0}}
	for _, p := range partitions {
		m1, m2, minor := p[0], p[1], p[2]
		if straddles(ac[m1], ac[m2], bc[m1], bc[m2], threshold) &&
			math.Abs(ac[minor]-0.5) >= math.Abs(bc[minor]-0.5) {
			return true
		}
		if straddles(bc[m1], bc[m2], ac[m1], ac[m2], threshold) &&
			math.Abs(bc[minor]-0.5) >= math.Abs(ac[minor]-0.5) {
			return true
		}
	}
	return false
}

// straddles reports whether majority channels m1 and m2 fall on opposite
// sides of ½ at pixel a, each crossing to the other side of ½ at pixel
// b, by at least threshold's matching component.
func straddles(aM1, aM2, bM1, bM2 float64, threshold Threshold) bool {
	crossing := (aM1 > 0.5) != (aM2 > 0.5) &&
		(aM1 > 0.5) != (bM1 > 0.5) &&
		(aM2 > 0.5) != (bM2 > 0.5)
	if !crossing {
		return false
	}
	return math.Abs(aM1-bM1) >= threshold.X && math.Abs(aM2-bM2) >= threshold.Y
}
