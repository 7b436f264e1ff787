package core

import "math"

// sweepOrder is the order in which rectangle edges are tested.
// On an exact tie in t the earlier side wins.
var sweepOrder = [4]Side{North, South, East, West}

// SegmentIntersect solves a.From + t*(a.To-a.From) = b.From + u*(b.To-b.From).
// It reports ok=false when the segments are parallel or when t or u fall
// outside the open interval (Epsilon, 1-Epsilon). The interval is open so that
// segments touching at an endpoint (shared rectangle corners) never fire twice.
func SegmentIntersect(a, b Segment) (t, u float64, ok bool) {
	r := a.To.Sub(a.From)
	s := b.To.Sub(b.From)
	d := Cross(r, s)
	if math.Abs(d) < Epsilon {
		return 0, 0, false
	}

	q := b.From.Sub(a.From)
	t = Cross(q, s) / d
	u = Cross(q, r) / d
	if !inOpenUnit(t) || !inOpenUnit(u) {
		return 0, 0, false
	}
	return t, u, true
}

// SegmentRect returns the earliest crossing of seg with an edge of r.
func SegmentRect(seg Segment, r Rect) (t float64, side Side, ok bool) {
	best := math.MaxFloat64
	for _, s := range sweepOrder {
		tl, _, hit := SegmentIntersect(seg, r.Edge(s))
		if hit && tl < best {
			best = tl
			side = s
			ok = true
		}
	}
	if !ok {
		return 0, North, false
	}
	return best, side, true
}

// SweptCircleRect finds the time of impact of circle c moving by disp against r.
//
// The rectangle is inflated by the circle radius (Minkowski sum) which reduces
// the query to a moving point against four edges. Only the broad phase is
// solved: near the corners the inflated box is square where the true swept
// shape is rounded.
//
// t is the fraction of disp travelled at contact and side is the face of r
// that was struck. A zero displacement or a zero-area rectangle never collides.
func SweptCircleRect(c Circle, r Rect, disp Vec2) (t float64, side Side, ok bool) {
	if disp == (Vec2{}) {
		return 0, North, false
	}
	if r.W <= 0 || r.H <= 0 {
		return 0, North, false
	}

	seg := Segment{From: c.Center, To: c.Center.Add(disp)}
	return SegmentRect(seg, r.Inflate(c.Radius))
}

func inOpenUnit(x float64) bool {
	return Epsilon < x && x < 1-Epsilon
}
