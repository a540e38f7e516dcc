// Package core provides the shared types used by scenes and the platform:
// the screen buffer, input frames, and geometry. It has no external
// dependencies (especially no Bubble Tea) so game logic stays testable.
package core

import "math"

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned box in world units. World Y grows upward.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Center returns the centre point.
func (b Box) Center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// IntersectsCircle reports whether a circle overlaps the box.
func (b Box) IntersectsCircle(cx, cy, r float64) bool {
	nx := ClampF(cx, b.MinX, b.MaxX)
	ny := ClampF(cy, b.MinY, b.MaxY)
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= r*r
}

// Viewport maps world coordinates onto a rectangle of screen cells.
// World x in [MinX, MaxX] spans the rect's width; world y in [MinY, MaxY]
// spans its height with MaxY at the top row.
type Viewport struct {
	Screen     Rect
	MinX, MaxX float64
	MinY, MaxY float64
}

// ToScreen converts a world point to a screen cell.
func (v Viewport) ToScreen(x, y float64) (int, int) {
	sx := v.Screen.X + int(math.Floor((x-v.MinX)/(v.MaxX-v.MinX)*float64(v.Screen.W)))
	sy := v.Screen.Y + int(math.Floor((v.MaxY-y)/(v.MaxY-v.MinY)*float64(v.Screen.H)))
	return sx, sy
}

// ToWorldX converts a screen column to a world x at the cell's centre.
func (v Viewport) ToWorldX(col int) float64 {
	if v.Screen.W == 0 {
		return v.MinX
	}
	frac := (float64(col-v.Screen.X) + 0.5) / float64(v.Screen.W)
	return v.MinX + frac*(v.MaxX-v.MinX)
}

// CellWidth returns the number of columns one world unit covers.
func (v Viewport) CellWidth() float64 {
	return float64(v.Screen.W) / (v.MaxX - v.MinX)
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(hi, val))
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Lerp interpolates between a and b by t in [0,1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*ClampF(t, 0, 1)
}
