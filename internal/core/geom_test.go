package core

import (
	"math"
	"testing"
)

func TestAABBIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges do not collide",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewAABB(0, 0, 20, 20),
			b:        NewAABB(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(9.9, 9.9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAABBInset(t *testing.T) {
	b := NewAABB(100, 190, 50, 60).Inset(5)
	want := NewAABB(105, 195, 40, 50)
	if b != want {
		t.Errorf("Inset(5) = %+v, expected %+v", b, want)
	}
}

func TestAABBContains(t *testing.T) {
	b := NewAABB(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	brick := NewAABB(100, 100, 80, 25)

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"center inside", Circle{X: 140, Y: 110, R: 8}, true},
		{"touching top edge", Circle{X: 140, Y: 92, R: 8}, true},
		{"just above top edge", Circle{X: 140, Y: 91.9, R: 8}, false},
		{"near corner but outside", Circle{X: 95, Y: 95, R: 5}, false},
		{"overlapping corner", Circle{X: 97, Y: 97, R: 5}, true},
		{"far away", Circle{X: 500, Y: 500, R: 8}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleIntersectsRect(tc.c, brick); got != tc.expected {
				t.Errorf("CircleIntersectsRect() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleIntersectsCircle(t *testing.T) {
	a := Circle{X: 0, Y: 0, R: 5}

	if !CircleIntersectsCircle(a, Circle{X: 6, Y: 0, R: 5}) {
		t.Error("overlapping circles should intersect")
	}
	if CircleIntersectsCircle(a, Circle{X: 10, Y: 0, R: 5}) {
		t.Error("touching circles should not intersect")
	}
	if CircleIntersectsCircle(a, Circle{X: 8, Y: 8, R: 5}) {
		t.Error("distant circles should not intersect")
	}
}

func TestCircleBounds(t *testing.T) {
	b := Circle{X: 50, Y: 40, R: 8}.Bounds()
	if b != NewAABB(42, 32, 16, 16) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestNearestEdge(t *testing.T) {
	b := NewAABB(0, 0, 80, 20)

	tests := []struct {
		name     string
		x, y     float64
		expected Edge
	}{
		{"above", 40, -3, EdgeTop},
		{"below", 40, 23, EdgeBottom},
		{"left", -3, 10, EdgeLeft},
		{"right", 83, 10, EdgeRight},
		// Equidistant from the top and left edges: vertical reflection wins.
		{"corner tie prefers top", -2, -2, EdgeTop},
		{"corner tie prefers bottom", 82, 22, EdgeBottom},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NearestEdge(b, tc.x, tc.y)
			if got != tc.expected {
				t.Errorf("NearestEdge(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
			if got.Vertical() != (tc.expected == EdgeTop || tc.expected == EdgeBottom) {
				t.Errorf("Vertical() mismatch for %v", got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("DegToRad(180) = %v", got)
	}
}
