package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{5, 5, true},
		{14, 14, true},
		{15, 15, false},
		{4, 5, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestBoxIntersectsCircle(t *testing.T) {
	box := Box{MinX: -1, MinY: -0.5, MaxX: 1, MaxY: 0.5}

	tests := []struct {
		name     string
		x, y, r  float64
		expected bool
	}{
		{"centre", 0, 0, 0.1, true},
		{"touching top", 0, 1, 0.5, true},
		{"above", 0, 1.2, 0.5, false},
		{"corner reach", 1.3, 0.8, 0.5, true},
		{"corner miss", 1.4, 0.9, 0.5, false},
		{"large radius", 4, 0, 4, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := box.IntersectsCircle(tc.x, tc.y, tc.r); got != tc.expected {
				t.Errorf("IntersectsCircle(%v, %v, %v) = %v, expected %v", tc.x, tc.y, tc.r, got, tc.expected)
			}
		})
	}
}

func TestViewportMapping(t *testing.T) {
	v := Viewport{
		Screen: NewRect(0, 0, 44, 20),
		MinX:   -11,
		MaxX:   11,
		MinY:   -1,
		MaxY:   19,
	}

	x, y := v.ToScreen(-11, 19)
	if x != 0 || y != 0 {
		t.Errorf("top-left maps to (%d, %d), expected (0, 0)", x, y)
	}

	x, y = v.ToScreen(0, 9)
	if x != 22 || y != 10 {
		t.Errorf("centre maps to (%d, %d), expected (22, 10)", x, y)
	}

	if got := v.CellWidth(); got != 2 {
		t.Errorf("CellWidth() = %v, expected 2", got)
	}
	if got := v.ToWorldX(22); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("ToWorldX(22) = %v, expected 0.25", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, expected 5", got)
	}
	if got := Lerp(0, 10, 2); got != 10 {
		t.Errorf("Lerp past 1 = %v, expected 10", got)
	}
}
