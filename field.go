package msdf

import "math"

// FieldScratch holds per-evaluation working storage for [EvaluateMultiChannel]
// and [EvaluateSingleChannel], sized to a shape's contour count and reused
// across every pixel of a single rasterization call.
//
// A FieldScratch must not be shared between goroutines: [GenerateMSDFTiled]
// allocates one per worker, mirroring how gogpu-gg's generator.go gives
// each row-sharding goroutine its own scratch state rather than
// synchronizing a shared one.
type FieldScratch struct {
	windings  []int
	contourSD []MultiDistance
}

// NewFieldScratch allocates scratch storage sized for a shape with the
// given number of contours.
func NewFieldScratch(contourCount int) *FieldScratch {
	return &FieldScratch{
		windings:  make([]int, contourCount),
		contourSD: make([]MultiDistance, contourCount),
	}
}

func (fs *FieldScratch) resize(n int) {
	if cap(fs.windings) < n {
		fs.windings = make([]int, n)
		fs.contourSD = make([]MultiDistance, n)
		return
	}
	fs.windings = fs.windings[:n]
	fs.contourSD = fs.contourSD[:n]
}

// edgePoint tracks the nearest edge found so far for one color channel,
// either within a single contour or (sr/sg/sb) across the whole shape.
type edgePoint struct {
	sd    SignedDistance
	edge  EdgeSegment
	param float64
	found bool
}

func newEdgePoint() edgePoint {
	return edgePoint{sd: Infinite}
}

func (ep *edgePoint) consider(e EdgeSegment, sd SignedDistance, t float64) {
	if !ep.found || sd.Less(ep.sd) {
		ep.sd, ep.edge, ep.param, ep.found = sd, e, t, true
	}
}

// merge folds a contour's channel winner into a shape-wide accumulator,
// using the same ordering consider uses.
func (ep *edgePoint) merge(other edgePoint) {
	if other.found && (!ep.found || other.sd.Less(ep.sd)) {
		*ep = other
	}
}

// promote returns ep's distance, extended into a pseudo-distance if its
// nearest point fell outside the owning edge's [0,1] parameter range.
func (ep edgePoint) promote(origin Point) float64 {
	if !ep.found {
		return Infinite.Distance
	}
	d := ep.sd
	ep.edge.DistanceToPseudoDistance(&d, origin, ep.param)
	return d.Distance
}

// EvaluateMultiChannel evaluates a shape's field at origin, returning the
// reconciled per-channel MultiDistance.
//
// For each contour, every edge is scanned once to find the nearest
// candidate per channel; each channel's winner is merged into a
// shape-wide sr/sg/sb accumulator, and the pre-promotion channel medians
// feed a bootstrap winding guess (used only if no contour's own winding
// ends up agreeing with reconcileContours' pos/neg selection). The three
// channel distances are then promoted to pseudo-distances and recorded
// per contour. Once every contour has been scanned, the per-contour
// results are reconciled into the shape-wide MultiDistance, and the
// shape-wide sr/sg/sb pseudo-distances replace its channels if they agree
// with the resolved median.
func EvaluateMultiChannel(s *Shape, scratch *FieldScratch, origin Point) MultiDistance {
	scratch.resize(len(s.Contours))

	sr, sg, sb := newEdgePoint(), newEdgePoint(), newEdgePoint()
	dBest := math.Inf(1)
	bootstrapWinding := 0

	for i, c := range s.Contours {
		winding := c.Winding()
		scratch.windings[i] = winding

		r, g, b := newEdgePoint(), newEdgePoint(), newEdgePoint()
		for _, e := range c.Edges {
			sd, t := e.SignedDistance(origin)
			if e.Color.HasRed() {
				r.consider(e, sd, t)
			}
			if e.Color.HasGreen() {
				g.consider(e, sd, t)
			}
			if e.Color.HasBlue() {
				b.consider(e, sd, t)
			}
		}

		sr.merge(r)
		sg.merge(g)
		sb.merge(b)

		if medMin := math.Abs(median3(r.sd.Distance, g.sd.Distance, b.sd.Distance)); medMin < dBest {
			dBest = medMin
			bootstrapWinding = -winding
		}

		rd, gd, bd := r.promote(origin), g.promote(origin), b.promote(origin)
		scratch.contourSD[i] = MultiDistance{R: rd, G: gd, B: bd, Median: median3(rd, gd, bd)}
	}

	msd := reconcileContours(scratch.windings, scratch.contourSD, bootstrapWinding)

	srd, sgd, sbd := sr.promote(origin), sg.promote(origin), sb.promote(origin)
	if median3(srd, sgd, sbd) == msd.Median {
		msd.R, msd.G, msd.B = srd, sgd, sbd
	}
	return msd
}

// EvaluateSingleChannel evaluates a shape's ordinary (non-multi-channel)
// signed distance field at origin. It is not a separate algorithm: an
// uncolored edge defaults to White (every channel set), so every channel's
// nearest-edge scan lands on the same edge, the three channels come out
// identical, and [EvaluateMultiChannel]'s result collapses to a single
// distance. That distance is the promoted pseudo-distance, not the true
// Euclidean distance: where the nearest point lies beyond an edge's
// endpoint, it is the distance to that edge's tangent extension when that
// is smaller.
func EvaluateSingleChannel(s *Shape, scratch *FieldScratch, origin Point) float64 {
	return EvaluateMultiChannel(s, scratch, origin).Median
}

// reconcileContours resolves per-contour MultiDistance candidates into the
// shape-wide result.
//
// posDist is the smallest-magnitude non-negative median among contours
// whose winding is positive; negDist is the mirror image for negative
// winding. Whichever exists with the smaller magnitude picks the working
// winding, and among that winding's contours the most extreme median still
// within the other side's magnitude bound becomes the result. A contour of
// the opposite winding can still override that result if its own median is
// nearer zero — this is what lets a hole's boundary win over the outer
// contour it pokes through. If neither posDist nor negDist exists at all —
// the case for a single simple contour, since a point strictly inside it
// never has a non-negative median on a positive-winding contour —
// bootstrapWinding (the caller's guess from the raw, pre-promotion channel
// medians) stands in for the working winding, and the final override pass
// alone picks the result.
func reconcileContours(windings []int, contourSD []MultiDistance, bootstrapWinding int) MultiDistance {
	var (
		posDist, negDist float64
		havePos, haveNeg bool
	)
	for i, md := range contourSD {
		if windings[i] > 0 && md.Median >= 0 && (!havePos || math.Abs(md.Median) < math.Abs(posDist)) {
			posDist, havePos = md.Median, true
		}
		if windings[i] < 0 && md.Median <= 0 && (!haveNeg || math.Abs(md.Median) < math.Abs(negDist)) {
			negDist, haveNeg = md.Median, true
		}
	}

	posDistAbs, negDistAbs := math.Inf(1), math.Inf(1)
	if havePos {
		posDistAbs = math.Abs(posDist)
	}
	if haveNeg {
		negDistAbs = math.Abs(negDist)
	}

	msd := MultiDistance{R: Infinite.Distance, G: Infinite.Distance, B: Infinite.Distance, Median: math.Inf(1)}
	winding := bootstrapWinding

	switch {
	case havePos && posDistAbs <= negDistAbs:
		winding = 1
		best := math.Inf(-1)
		for i, md := range contourSD {
			if windings[i] > 0 && math.Abs(md.Median) < negDistAbs && md.Median > best {
				best, msd = md.Median, md
			}
		}
	case haveNeg && negDistAbs <= posDistAbs:
		winding = -1
		best := math.Inf(1)
		for i, md := range contourSD {
			if windings[i] < 0 && math.Abs(md.Median) < posDistAbs && md.Median < best {
				best, msd = md.Median, md
			}
		}
	}

	for i, md := range contourSD {
		if windings[i] != winding && math.Abs(md.Median) < math.Abs(msd.Median) {
			msd = md
		}
	}

	return msd
}
