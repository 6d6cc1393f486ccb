package msdf

import "math"

// EdgeSegmentKind identifies which variant an [EdgeSegment] holds.
//
// A single tagged struct with a Kind discriminant and a fixed-size point
// array, dispatched through one switch per operation, rather than an
// interface hierarchy: the shared behavior across the three curve degrees
// fits comfortably in a handful of switches, so a deeper type hierarchy
// buys nothing.
type EdgeSegmentKind int

const (
	LinearSegment EdgeSegmentKind = iota
	QuadraticSegment
	CubicSegment
)

func (k EdgeSegmentKind) String() string {
	switch k {
	case LinearSegment:
		return "Linear"
	case QuadraticSegment:
		return "Quadratic"
	case CubicSegment:
		return "Cubic"
	default:
		return "Invalid"
	}
}

// EdgeSegment is a linear, quadratic, or cubic Bézier edge, labelled with the
// MSDF channel(s) it contributes distance to.
//
// Field usage depends on Kind:
//
//	Linear:     P0 (start), P1 (end)
//	Quadratic:  P0 (start), P1 (control), P2 (end)
//	Cubic:      P0 (start), P1 (control 1), P2 (control 2), P3 (end)
type EdgeSegment struct {
	Kind  EdgeSegmentKind
	P0    Point
	P1    Point
	P2    Point
	P3    Point
	Color EdgeColor
}

// NewLinearEdge returns a linear edge from start to end, initially colored White.
func NewLinearEdge(start, end Point) EdgeSegment {
	return EdgeSegment{Kind: LinearSegment, P0: start, P1: end, Color: White}
}

// NewQuadraticEdge returns a quadratic edge through control, initially colored White.
//
// A degenerate control (start==control or control==end) is tolerated: the
// signed-distance computation falls back to the chord for that endpoint's
// tangent, while [EdgeSegment.Direction] returns the zero vector there.
func NewQuadraticEdge(start, control, end Point) EdgeSegment {
	return EdgeSegment{Kind: QuadraticSegment, P0: start, P1: control, P2: end, Color: White}
}

// NewCubicEdge returns a cubic edge through control1 and control2, initially colored White.
func NewCubicEdge(start, control1, control2, end Point) EdgeSegment {
	return EdgeSegment{Kind: CubicSegment, P0: start, P1: control1, P2: control2, P3: end, Color: White}
}

// Start returns the edge's first point.
func (e EdgeSegment) Start() Point { return e.P0 }

// End returns the edge's last point.
func (e EdgeSegment) End() Point {
	switch e.Kind {
	case LinearSegment:
		return e.P1
	case QuadraticSegment:
		return e.P2
	case CubicSegment:
		return e.P3
	default:
		panic("invalid edge kind")
	}
}

// Point evaluates the edge at t ∈ [0,1] via de Casteljau's algorithm.
func (e EdgeSegment) Point(t float64) Point {
	switch e.Kind {
	case LinearSegment:
		return e.P0.Lerp(e.P1, t)
	case QuadraticSegment:
		p01 := e.P0.Lerp(e.P1, t)
		p12 := e.P1.Lerp(e.P2, t)
		return p01.Lerp(p12, t)
	case CubicSegment:
		p01 := e.P0.Lerp(e.P1, t)
		p12 := e.P1.Lerp(e.P2, t)
		p23 := e.P2.Lerp(e.P3, t)
		p012 := p01.Lerp(p12, t)
		p123 := p12.Lerp(p23, t)
		return p012.Lerp(p123, t)
	default:
		panic("invalid edge kind")
	}
}

// Direction evaluates the edge's (unnormalized) derivative at t.
//
// For cubics, a vanishing tangent at an endpoint falls back to the chord to
// the opposite interior control point.
func (e EdgeSegment) Direction(t float64) Vec2 {
	switch e.Kind {
	case LinearSegment:
		return e.P1.Sub(e.P0)
	case QuadraticSegment:
		d0 := e.P1.Sub(e.P0)
		d1 := e.P2.Sub(e.P1)
		return d0.Lerp(d1, t).Mul(2)
	case CubicSegment:
		ab, br, as := e.cubicCoeffs()
		d1 := as.Mul(3 * t * t).Add(br.Mul(6 * t)).Add(ab.Mul(3))
		if d1.Hypot2() < 1e-18 {
			if t == 0 {
				return e.P2.Sub(e.P0)
			}
			if t == 1 {
				return e.P3.Sub(e.P1)
			}
		}
		return d1
	default:
		panic("invalid edge kind")
	}
}

// cubicCoeffs returns the forward-difference coefficients used throughout
// cubic evaluation: ab=p1−s, br=p2−p1−ab, as=(p3−p2)−(p2−p1)−br, so that
// Point/Direction/SignedDistance all agree on B(t)=s+3·ab·t+3·br·t²+as·t³.
func (e EdgeSegment) cubicCoeffs() (ab, br, as Vec2) {
	ab = e.P1.Sub(e.P0)
	br = e.P2.Sub(e.P1).Sub(ab)
	as = e.P3.Sub(e.P2).Sub(e.P2.Sub(e.P1)).Sub(br)
	return
}

// signedCandidate scores a candidate point pt on the edge (with the tangent
// relevant to that point) as a SignedDistance. When interior is true, the
// candidate lies strictly between the edge's endpoints and the tiebreaker
// dot is left at 0; when false, it's an endpoint candidate and dot carries
// the cosine between the tangent and the vector to the origin.
//
// Sign follows nonZeroSign(cross(origin−point, tangent)): origin (5,3)
// against the edge (0,0)→(10,0) gives cross((5,3),(10,0)) = -30, so
// distance comes out negative. That edge runs in the direction a
// counter-clockwise contour's bottom edge would, with (5,3) on its
// interior side — so under this convention a counter-clockwise contour's
// interior is negative, not positive; [EvaluateMultiChannel]'s winding
// reconciliation is what turns that into a correctly-signed field.
func signedCandidate(o, pt Point, tangent Vec2, interior bool) SignedDistance {
	toOrigin := o.Sub(pt)
	dist := toOrigin.Hypot()
	sign := nonZeroSign(cross2(toOrigin, tangent))
	sd := SignedDistance{Distance: dist * sign}
	if !interior {
		tLen := tangent.Hypot()
		if dist > 0 && tLen > 0 {
			sd.Dot = math.Abs(tangent.Mul(1 / tLen).Dot(toOrigin.Mul(1 / dist)))
		}
	}
	return sd
}

// extensionParam reports the t* to return for an endpoint candidate: the
// literal boundary value (0 or 1) unless the origin's projection onto the
// endpoint tangent indicates the true nearest point on the infinite
// extension of the curve lies beyond that endpoint, in which case it
// reports a value with the matching out-of-range sign (<0 or >1) so that
// [EdgeSegment.DistanceToPseudoDistance] knows to engage.
func extensionParam(atStart bool, o, p Point, tangent Vec2) float64 {
	proj := o.Sub(p).Dot(tangent)
	if atStart {
		if proj < 0 {
			return proj
		}
		return 0
	}
	if proj > 0 {
		return 1 + proj
	}
	return 1
}

// SignedDistance returns the signed distance from origin to the edge, along
// with the parameter t* of the nearest point. t* outside [0,1] signals that
// the true nearest point lies beyond an endpoint; see
// [EdgeSegment.DistanceToPseudoDistance].
func (e EdgeSegment) SignedDistance(origin Point) (SignedDistance, float64) {
	switch e.Kind {
	case LinearSegment:
		return e.linearSignedDistance(origin)
	case QuadraticSegment:
		return e.quadraticSignedDistance(origin)
	case CubicSegment:
		return e.cubicSignedDistance(origin)
	default:
		panic("invalid edge kind")
	}
}

// linearSignedDistance computes the signed distance from o to a line
// segment by projecting onto its direction and falling back to the nearer
// endpoint candidate outside [0,1].
func (e EdgeSegment) linearSignedDistance(o Point) (SignedDistance, float64) {
	d := e.P1.Sub(e.P0)
	u := o.Sub(e.P0)
	var tStar float64
	if dd := d.Dot(d); dd > 0 {
		tStar = u.Dot(d) / dd
	}

	var q Point
	if tStar <= 0.5 {
		q = e.P0
	} else {
		q = e.P1
	}
	endpoint := signedCandidate(o, q, d, false)

	if tStar > 0 && tStar < 1 {
		// Signed perpendicular offset of u from d, using the same
		// cross(toOrigin, tangent) sign convention as signedCandidate.
		orthoDist := cross2(u, d) / d.Hypot()
		if math.Abs(orthoDist) < math.Abs(endpoint.Distance) {
			return SignedDistance{Distance: orthoDist, Dot: 0}, tStar
		}
	}
	return endpoint, tStar
}

// quadraticSignedDistance finds the nearest point on a quadratic Bézier by
// solving the cubic whose roots are the curve's stationary points of
// distance to o, then considers both endpoints as fallback candidates.
func (e EdgeSegment) quadraticSignedDistance(o Point) (SignedDistance, float64) {
	s, p1, end := e.P0, e.P1, e.P2
	ab := p1.Sub(s)
	br := end.Sub(p1).Sub(ab)
	qa := s.Sub(o)

	a := br.Dot(br)
	b := 3 * ab.Dot(br)
	c := 2*ab.Dot(ab) + qa.Dot(br)
	d := qa.Dot(ab)
	count, roots := solveCubic(a, b, c, d)

	tangentStart := ab
	if tangentStart.Hypot2() < 1e-18 {
		tangentStart = end.Sub(s)
	}
	tangentEnd := end.Sub(p1)
	if tangentEnd.Hypot2() < 1e-18 {
		tangentEnd = end.Sub(s)
	}

	best := Infinite
	var bestT float64
	consider := func(t float64, pt Point, tangent Vec2, interior bool) {
		cand := signedCandidate(o, pt, tangent, interior)
		if cand.Less(best) {
			best = cand
			bestT = t
		}
	}

	consider(extensionParam(true, o, s, tangentStart), s, tangentStart, false)
	consider(extensionParam(false, o, end, tangentEnd), end, tangentEnd, false)
	if count > 0 {
		chord := end.Sub(s)
		for _, t := range roots[:count] {
			if t > 0 && t < 1 {
				consider(t, e.Point(t), chord, true)
			}
		}
	}
	return best, bestT
}

// cubicSignedDistance finds the nearest point on a cubic Bézier via Newton's
// method from four starting points, up to four iterations each, falling
// back to endpoint candidates. Unlike some widely-copied implementations of
// this algorithm, d1/d2 are formed from the current Newton step's t rather
// than a stale best-so-far t, which is the correct derivative evaluation
// point.
func (e EdgeSegment) cubicSignedDistance(o Point) (SignedDistance, float64) {
	s, p3 := e.P0, e.P3
	ab, br, as := e.cubicCoeffs()

	tangentStart := ab
	if tangentStart.Hypot2() < 1e-18 {
		tangentStart = e.P2.Sub(s)
	}
	tangentEnd := p3.Sub(e.P2)
	if tangentEnd.Hypot2() < 1e-18 {
		tangentEnd = p3.Sub(e.P1)
	}

	best := Infinite
	var bestT float64
	consider := func(t float64, pt Point, tangent Vec2, interior bool) {
		cand := signedCandidate(o, pt, tangent, interior)
		if cand.Less(best) {
			best = cand
			bestT = t
		}
	}

	consider(extensionParam(true, o, s, tangentStart), s, tangentStart, false)
	consider(extensionParam(false, o, p3, tangentEnd), p3, tangentEnd, false)

	chord := p3.Sub(s)
	const startingPoints = 4
	const newtonIterations = 4
	for i := 0; i < startingPoints; i++ {
		t := float64(i) / float64(startingPoints)
		for iter := 0; iter < newtonIterations; iter++ {
			pt := e.Point(t)
			qpt := pt.Sub(o)
			d1 := as.Mul(3 * t * t).Add(br.Mul(6 * t)).Add(ab.Mul(3))
			d2 := as.Mul(6 * t).Add(br.Mul(6))
			denom := d1.Dot(d1) + qpt.Dot(d2)
			if denom == 0 {
				break
			}
			next := t - qpt.Dot(d1)/denom
			if next < 0 || next > 1 {
				break
			}
			t = next
		}
		if t > 0 && t < 1 {
			consider(t, e.Point(t), chord, true)
		}
	}
	return best, bestT
}

// DistanceToPseudoDistance extends d beyond the edge's endpoints along its
// tangent. It mutates d in place, replacing it only if the extension would
// shrink its magnitude.
func (e EdgeSegment) DistanceToPseudoDistance(d *SignedDistance, origin Point, t float64) {
	if t < 0 {
		dir := e.Direction(0).Normalize()
		s := e.Start()
		ts := origin.Sub(s).Dot(dir)
		if ts < 0 {
			pseudo := cross2(origin.Sub(s), dir)
			if math.Abs(pseudo) <= math.Abs(d.Distance) {
				d.Distance = pseudo
				d.Dot = 0
			}
		}
		return
	}
	if t > 1 {
		dir := e.Direction(1).Normalize()
		end := e.End()
		ts := origin.Sub(end).Dot(dir)
		if ts > 0 {
			pseudo := cross2(origin.Sub(end), dir)
			if math.Abs(pseudo) <= math.Abs(d.Distance) {
				d.Distance = pseudo
				d.Dot = 0
			}
		}
	}
}

// Bounds accumulates the edge's axis-aligned bounds into the given
// left/bottom/right/top running extrema.
func (e EdgeSegment) Bounds(left, bottom, right, top *float64) {
	accumulate := func(p Point) {
		*left = min(*left, p.X)
		*right = max(*right, p.X)
		*bottom = min(*bottom, p.Y)
		*top = max(*top, p.Y)
	}
	accumulate(e.Start())
	accumulate(e.End())

	switch e.Kind {
	case LinearSegment:
		// No interior extrema for a straight line.
	case QuadraticSegment:
		ab := e.P1.Sub(e.P0)
		br := e.P2.Sub(e.P1).Sub(ab)
		for _, axis := range [2]func(Vec2) float64{
			func(v Vec2) float64 { return v.X },
			func(v Vec2) float64 { return v.Y },
		} {
			if br := axis(br); br != 0 {
				t := -axis(ab) / br
				if t > 0 && t < 1 {
					accumulate(e.Point(t))
				}
			}
		}
	case CubicSegment:
		ab, br, as := e.cubicCoeffs()
		for _, axis := range [2]func(Vec2) float64{
			func(v Vec2) float64 { return v.X },
			func(v Vec2) float64 { return v.Y },
		} {
			count, roots := solveQuadratic(axis(as), 2*axis(br), axis(ab))
			if count <= 0 {
				continue
			}
			for _, t := range roots[:count] {
				if t > 0 && t < 1 {
					accumulate(e.Point(t))
				}
			}
		}
	}
}

// MoveStart relocates the edge's start point.
func (e EdgeSegment) MoveStart(newStart Point) EdgeSegment {
	switch e.Kind {
	case LinearSegment:
		e.P0 = newStart
	case QuadraticSegment:
		e.P1 = movedQuadraticControl(e.P0, e.P1, e.P2, newStart, e.Direction(0).Negate())
		e.P0 = newStart
	case CubicSegment:
		e.P1 = e.P1.Translate(newStart.Sub(e.P0))
		e.P0 = newStart
	}
	return e
}

// MoveEnd relocates the edge's end point.
func (e EdgeSegment) MoveEnd(newEnd Point) EdgeSegment {
	switch e.Kind {
	case LinearSegment:
		e.P1 = newEnd
	case QuadraticSegment:
		e.P1 = movedQuadraticControl(e.P2, e.P1, e.P0, newEnd, e.Direction(1))
		e.P2 = newEnd
	case CubicSegment:
		e.P2 = e.P2.Translate(newEnd.Sub(e.P3))
		e.P3 = newEnd
	}
	return e
}

// movedQuadraticControl repositions a quadratic's control point after one
// endpoint moves, so the curve still leaves that endpoint along the
// original control direction, reverting to the unmoved control if that
// would flip the tangent at the moved endpoint. origDir is the tangent at
// the moved endpoint, oriented from the control toward that endpoint.
func movedQuadraticControl(movedPt, control, farPt, newPt Point, origDir Vec2) Point {
	denom := cross2(origDir, farPt.Sub(control))
	if denom == 0 {
		return control
	}
	factor := cross2(origDir, newPt.Sub(movedPt)) / denom
	newControl := control.Translate(farPt.Sub(control).Mul(factor))
	if origDir.Dot(newPt.Sub(newControl)) < 0 {
		return control
	}
	return newControl
}

// SplitInThirds splits the edge into three edges of the same kind covering
// [0,⅓], [⅓,⅔], [⅔,1], exactly reproducing the original curve.
//
// Implemented as two de Casteljau splits (at t=⅓, then at the local
// midpoint of the remainder) rather than one direct three-way formula,
// building the compound subdivision out of a single binary split
// primitive.
func (e EdgeSegment) SplitInThirds() (EdgeSegment, EdgeSegment, EdgeSegment) {
	first, rest := e.splitAt(1.0 / 3)
	second, third := rest.splitAt(0.5)
	return first.withColor(e.Color), second.withColor(e.Color), third.withColor(e.Color)
}

// splitAt splits the edge at parameter t into two edges of the same kind
// covering [0,t] and [t,1].
func (e EdgeSegment) splitAt(t float64) (EdgeSegment, EdgeSegment) {
	switch e.Kind {
	case LinearSegment:
		mid := e.Point(t)
		return NewLinearEdge(e.P0, mid), NewLinearEdge(mid, e.P1)
	case QuadraticSegment:
		p01 := e.P0.Lerp(e.P1, t)
		p12 := e.P1.Lerp(e.P2, t)
		mid := p01.Lerp(p12, t)
		return NewQuadraticEdge(e.P0, p01, mid), NewQuadraticEdge(mid, p12, e.P2)
	case CubicSegment:
		p01 := e.P0.Lerp(e.P1, t)
		p12 := e.P1.Lerp(e.P2, t)
		p23 := e.P2.Lerp(e.P3, t)
		p012 := p01.Lerp(p12, t)
		p123 := p12.Lerp(p23, t)
		mid := p012.Lerp(p123, t)
		return EdgeSegment{Kind: CubicSegment, P0: e.P0, P1: p01, P2: p012, P3: mid},
			EdgeSegment{Kind: CubicSegment, P0: mid, P1: p123, P2: p23, P3: e.P3}
	default:
		panic("invalid edge kind")
	}
}

func (e EdgeSegment) withColor(c EdgeColor) EdgeSegment {
	e.Color = c
	return e
}
