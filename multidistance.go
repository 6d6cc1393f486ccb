package msdf

// MultiDistance holds the three per-channel signed distances produced while
// evaluating a shape's field at one point, plus their median, which is what
// a multi-channel decoder is expected to reconstruct the true distance from.
type MultiDistance struct {
	R, G, B float64
	Median  float64
}

func (m *MultiDistance) computeMedian() {
	m.Median = median3(m.R, m.G, m.B)
}
