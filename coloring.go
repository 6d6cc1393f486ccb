package msdf

import "math"

// ColoringOptions configures [ColorEdgesSimple].
type ColoringOptions struct {
	// AngleThreshold, in radians, decides which contour vertices are
	// corners. Below a right angle it is the smallest change of direction
	// that makes a corner. Above a right angle a vertex is a corner when
	// the angle between its two edges is below AngleThreshold, so the
	// default of 3 (about 172°) makes every turn sharper than about 8° a
	// corner.
	AngleThreshold float64

	// Seed feeds the pseudo-random color-switching sequence used for
	// contours with two or more corners and for the single-corner case.
	// Two calls with the same seed over the same shape produce identical
	// colorings.
	Seed uint64
}

// DefaultColoringOptions returns the recommended defaults.
func DefaultColoringOptions() ColoringOptions {
	return ColoringOptions{AngleThreshold: 3, Seed: 0}
}

// ColorEdgesSimple assigns each edge in every contour of s an [EdgeColor],
// so that adjacent edges meeting at a sharp corner decode to different
// channels. It mutates s.Contours[*].Edges[*].Color in place.
func ColorEdgesSimple(s *Shape, opts ColoringOptions) {
	seed := opts.Seed
	for ci := range s.Contours {
		seed = colorContour(&s.Contours[ci], opts.AngleThreshold, seed)
	}
}

// isCorner reports whether the direction change from a to b at a shared
// vertex is sharp enough to be a corner, via a dot/cross threshold test.
func isCorner(a, b Vec2, angleThreshold float64) bool {
	dot := a.Normalize().Dot(b.Normalize())
	if dot <= math.Cos(angleThreshold) {
		return true
	}
	return math.Abs(cross2(a, b)) > math.Sin(angleThreshold)*a.Hypot()*b.Hypot()
}

func colorContour(c *Contour, angleThreshold float64, seed uint64) uint64 {
	n := len(c.Edges)
	if n == 0 {
		return seed
	}

	type corner struct{ index int }
	var corners []corner
	prevDir := c.Edges[n-1].Direction(1)
	for i, e := range c.Edges {
		dir := e.Direction(0)
		if isCorner(prevDir, dir, angleThreshold) {
			corners = append(corners, corner{index: i})
		}
		prevDir = e.Direction(1)
	}

	switch len(corners) {
	case 0:
		// Smooth contour: every edge shares one color.
		color, next := switchColor(White, seed, Black)
		for i := range c.Edges {
			c.Edges[i].Color = color
		}
		return next

	case 1:
		colors := [3]EdgeColor{}
		color := White
		for i := range colors {
			color, seed = switchColor(color, seed, Black)
			colors[i] = color
		}
		start := corners[0].index

		if n > 2 {
			// Distribute the three colours across the thirds of the
			// contour using the magic mapping, anchored on the one corner.
			for i := 0; i < n; i++ {
				edgeIndex := (start + i) % n
				group := magic(i, n)
				c.Edges[edgeIndex].Color = colors[group]
			}
			return seed
		}

		// 1 or 2 edges: there isn't enough contour to distribute three
		// colours across whole edges, so each edge is split into thirds
		// and the resulting parts take the three colours, one each for
		// three parts and in pairs for six, walking from the corner so it
		// falls on a color boundary.
		if start != 0 && start != 1 {
			panic("msdf: single-corner contour with ≤2 edges must have corner index 0 or 1")
		}
		parts := make([]EdgeSegment, 0, 3*n)
		for i := 0; i < n; i++ {
			a, b, cc := c.Edges[(start+i)%n].SplitInThirds()
			parts = append(parts, a, b, cc)
		}
		switch len(parts) {
		case 3:
			parts[0].Color, parts[1].Color, parts[2].Color = colors[0], colors[1], colors[2]
		case 6:
			parts[0].Color, parts[1].Color = colors[0], colors[0]
			parts[2].Color, parts[3].Color = colors[1], colors[1]
			parts[4].Color, parts[5].Color = colors[2], colors[2]
		}
		c.Edges = parts
		return seed

	default:
		cornerCount := len(corners)
		firstColor := White
		firstColor, seed = switchColor(firstColor, seed, Black)
		spline := 0
		start := corners[0].index
		color := firstColor
		for i := 0; i < n; i++ {
			edgeIndex := (start + i) % n
			if spline+1 < cornerCount && corners[spline+1].index == edgeIndex {
				spline++
				banned := Black
				if spline == cornerCount-1 {
					banned = firstColor
				}
				color, seed = switchColor(color, seed, banned)
			}
			c.Edges[edgeIndex].Color = color
		}
		return seed
	}
}

// magic maps edge index j (0-based, walking from the lone corner) among m
// edges to one of 3 color groups, 0 to 2: one more than the symmetric
// trichotomy
//
//	⌊3 + (2.875·j/(m−1)) − 1.4375 + 0.5⌋ − 3 ∈ {−1, 0, +1}
func magic(j, m int) int {
	if m <= 1 {
		return 0
	}
	v := 3 + (2.875*float64(j)/float64(m-1)) - 1.4375 + 0.5
	group := 1 + int(math.Floor(v)) - 3
	if group < 0 {
		group = 0
	}
	if group > 2 {
		group = 2
	}
	return group
}
