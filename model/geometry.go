package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rectangle is an axis-aligned box with a top-left origin. Once a page has
// been normalized every field lies in [0,1] and X+Width, Y+Height never
// exceed 1.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle creates a rectangle from its origin and size
func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// NewRectangleFromPoints creates a rectangle spanning two corner points
func NewRectangleFromPoints(p1, p2 Point) Rectangle {
	x := math.Min(p1.X, p2.X)
	y := math.Min(p1.Y, p2.Y)
	width := math.Abs(p2.X - p1.X)
	height := math.Abs(p2.Y - p1.Y)
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (r Rectangle) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate
func (r Rectangle) Right() float64 {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate
func (r Rectangle) Top() float64 {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate
func (r Rectangle) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point
func (r Rectangle) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// ContainsPoint checks if a point is inside the rectangle
func (r Rectangle) ContainsPoint(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Contains reports whether inner lies fully inside r (edges inclusive)
func (r Rectangle) Contains(inner Rectangle) bool {
	return inner.X >= r.X && inner.Y >= r.Y &&
		inner.Right() <= r.Right() && inner.Bottom() <= r.Bottom()
}

// Intersects checks if two rectangles intersect
func (r Rectangle) Intersects(other Rectangle) bool {
	return !(r.Right() < other.Left() ||
		r.Left() > other.Right() ||
		r.Bottom() < other.Top() ||
		r.Top() > other.Bottom())
}

// Intersection returns the intersection of two rectangles
func (r Rectangle) Intersection(other Rectangle) Rectangle {
	if !r.Intersects(other) {
		return Rectangle{}
	}

	x := math.Max(r.Left(), other.Left())
	y := math.Max(r.Top(), other.Top())
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())

	return Rectangle{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Union returns the smallest rectangle covering both rectangles
func (r Rectangle) Union(other Rectangle) Rectangle {
	x := math.Min(r.Left(), other.Left())
	y := math.Min(r.Top(), other.Top())
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())

	return Rectangle{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// UnionAll returns the union of all rectangles, or the zero rectangle if
// rects is empty
func UnionAll(rects []Rectangle) Rectangle {
	if len(rects) == 0 {
		return Rectangle{}
	}
	out := rects[0]
	for _, r := range rects[1:] {
		out = out.Union(r)
	}
	return out
}

// Area returns the area of the rectangle
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// HorizontalOverlap returns the width shared by the horizontal extents of
// both rectangles (0 when they do not overlap)
func (r Rectangle) HorizontalOverlap(other Rectangle) float64 {
	overlap := math.Min(r.Right(), other.Right()) - math.Max(r.Left(), other.Left())
	if overlap < 0 {
		return 0
	}
	return overlap
}

// OverlapRatio calculates the overlap ratio with another rectangle
// relative to the smaller of the two areas. Returns value between 0 and 1
func (r Rectangle) OverlapRatio(other Rectangle) float64 {
	if !r.Intersects(other) {
		return 0
	}

	intersection := r.Intersection(other)
	minArea := math.Min(r.Area(), other.Area())

	if minArea == 0 {
		return 0
	}

	return intersection.Area() / minArea
}

// IoU returns the intersection-over-union of two rectangles
func (r Rectangle) IoU(other Rectangle) float64 {
	inter := r.Intersection(other).Area()
	if inter == 0 {
		return 0
	}
	union := r.Area() + other.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// IsEmpty returns true if the rectangle has zero area
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Clamp returns r with every field in [0,1] and the far edges kept
// inside the unit square
func (r Rectangle) Clamp() Rectangle {
	out := Rectangle{
		X:      clamp01(r.X),
		Y:      clamp01(r.Y),
		Width:  clamp01(r.Width),
		Height: clamp01(r.Height),
	}
	if out.X+out.Width > 1 {
		out.Width = 1 - out.X
	}
	if out.Y+out.Height > 1 {
		out.Height = 1 - out.Y
	}
	return out
}

// Grounding converts r to corner-pair form
func (r Rectangle) Grounding() GroundingRectangle {
	return GroundingRectangle{
		Left:   r.X,
		Top:    r.Y,
		Right:  r.X + r.Width,
		Bottom: r.Y + r.Height,
	}
}

// GroundingRectangle is a Rectangle expressed as its left/top/right/bottom
// edges.
type GroundingRectangle struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Rectangle converts g back to origin/size form
func (g GroundingRectangle) Rectangle() Rectangle {
	return Rectangle{
		X:      g.Left,
		Y:      g.Top,
		Width:  g.Right - g.Left,
		Height: g.Bottom - g.Top,
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
