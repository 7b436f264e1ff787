package core

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestSegmentIntersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Segment
		wantOK bool
		wantT  float64
		wantU  float64
	}{
		{
			name:   "crossing diagonals",
			a:      Segment{From: V(0, 0), To: V(2, 2)},
			b:      Segment{From: V(0, 2), To: V(2, 0)},
			wantOK: true, wantT: 0.5, wantU: 0.5,
		},
		{
			name:   "parallel",
			a:      Segment{From: V(0, 0), To: V(2, 0)},
			b:      Segment{From: V(0, 1), To: V(2, 1)},
			wantOK: false,
		},
		{
			name:   "collinear",
			a:      Segment{From: V(0, 0), To: V(2, 0)},
			b:      Segment{From: V(1, 0), To: V(3, 0)},
			wantOK: false,
		},
		{
			name:   "touching at endpoint",
			a:      Segment{From: V(0, 0), To: V(1, 0)},
			b:      Segment{From: V(1, 0), To: V(1, 1)},
			wantOK: false,
		},
		{
			name:   "lines cross beyond segment",
			a:      Segment{From: V(0, 0), To: V(1, 1)},
			b:      Segment{From: V(3, 0), To: V(3, 5)},
			wantOK: false,
		},
		{
			name:   "uneven parameters",
			a:      Segment{From: V(0, 0), To: V(4, 0)},
			b:      Segment{From: V(1, -1), To: V(1, 3)},
			wantOK: true, wantT: 0.25, wantU: 0.25,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotT, gotU, ok := SegmentIntersect(tc.a, tc.b)
			if ok != tc.wantOK {
				t.Fatalf("SegmentIntersect() ok = %v, expected %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(gotT-tc.wantT) > tol || math.Abs(gotU-tc.wantU) > tol {
				t.Errorf("SegmentIntersect() = (%v, %v), expected (%v, %v)", gotT, gotU, tc.wantT, tc.wantU)
			}
		})
	}
}

func TestSweptCircleRectHeadOn(t *testing.T) {
	rect := NewRect(0, 0, 100, 50)
	const r = 8.0

	tests := []struct {
		name     string
		center   Vec2
		disp     Vec2
		side     Side
		contactX func(p Vec2) float64 // distance from the struck edge
	}{
		{
			name:     "from above",
			center:   V(50, 100),
			disp:     V(0, -100),
			side:     North,
			contactX: func(p Vec2) float64 { return p.Y() - rect.Top() },
		},
		{
			name:     "from below",
			center:   V(50, -50),
			disp:     V(0, 100),
			side:     South,
			contactX: func(p Vec2) float64 { return rect.Origin.Y() - p.Y() },
		},
		{
			name:     "from the left",
			center:   V(-50, 25),
			disp:     V(100, 0),
			side:     West,
			contactX: func(p Vec2) float64 { return rect.Origin.X() - p.X() },
		},
		{
			name:     "from the right",
			center:   V(150, 25),
			disp:     V(-100, 0),
			side:     East,
			contactX: func(p Vec2) float64 { return p.X() - rect.Right() },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCircle(tc.center, r)
			toi, side, ok := SweptCircleRect(c, rect, tc.disp)
			if !ok {
				t.Fatal("expected a collision")
			}
			if side != tc.side {
				t.Errorf("side = %v, expected %v", side, tc.side)
			}
			if toi <= 0 || toi >= 1 {
				t.Errorf("t = %v, expected within (0, 1)", toi)
			}

			contact := tc.center.Add(tc.disp.Mul(toi))
			if d := tc.contactX(contact); math.Abs(d-r) > 1e-6 {
				t.Errorf("contact is %v from the edge, expected %v", d, r)
			}
		})
	}
}

func TestSweptCircleRectZeroDisplacement(t *testing.T) {
	circles := []Circle{
		NewCircle(V(-100, -100), 8),
		NewCircle(V(500, 20), 3),
		NewCircle(V(50, 200), 16),
	}
	rects := []Rect{
		NewRect(0, 0, 100, 50),
		NewRect(200, 200, 24, 16),
		NewRect(-30, 60, 10, 10),
	}

	for _, c := range circles {
		for _, r := range rects {
			if _, _, ok := SweptCircleRect(c, r, Vec2{}); ok {
				t.Errorf("zero displacement collided: circle %+v rect %+v", c, r)
			}
		}
	}
}

func TestSweptCircleRectMisses(t *testing.T) {
	rect := NewRect(0, 0, 100, 50)

	tests := []struct {
		name string
		c    Circle
		r    Rect
		disp Vec2
	}{
		{"passes above", NewCircle(V(-50, 100), 8), rect, V(200, 0)},
		{"stops short", NewCircle(V(50, 100), 8), rect, V(0, -20)},
		{"ends exactly on contact", NewCircle(V(50, 66), 8), rect, V(0, -8)},
		{"moving away", NewCircle(V(50, 100), 8), rect, V(0, 100)},
		{"zero-area rectangle", NewCircle(V(50, 100), 8), NewRect(50, 50, 0, 0), V(0, -100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if toi, side, ok := SweptCircleRect(tc.c, tc.r, tc.disp); ok {
				t.Errorf("unexpected collision t=%v side=%v", toi, side)
			}
		})
	}
}

func TestSweptCircleRectEarliestSide(t *testing.T) {
	// Diagonal approach toward the top-left corner region: the ball crosses the
	// inflated north edge before it could reach the west edge.
	rect := NewRect(0, 0, 100, 50)
	c := NewCircle(V(20, 80), 4)

	toi, side, ok := SweptCircleRect(c, rect, V(-10, -40))
	if !ok {
		t.Fatal("expected a collision")
	}
	if side != North {
		t.Errorf("side = %v, expected North", side)
	}
	if math.Abs(toi-0.65) > 1e-9 {
		t.Errorf("t = %v, expected 0.65", toi)
	}
}
