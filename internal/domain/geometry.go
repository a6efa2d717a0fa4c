package domain

import "math"

// Point is an x/y pair. Whether it lives in world, image or screen space
// depends on who produced it.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// PointWithHeight is a world position with the vertical axis kept apart.
type PointWithHeight struct {
	Point
	Height float64 `json:"height"`
}

// Dimensions is a width/height pair. A zero component means "not measured yet".
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Measured reports whether both components are usable as divisors.
func (d Dimensions) Measured() bool {
	return d.Width > 0 && d.Height > 0 &&
		!math.IsInf(d.Width, 0) && !math.IsInf(d.Height, 0)
}

// AspectRatio returns width/height. ok is false when d is not measured.
func (d Dimensions) AspectRatio() (float64, bool) {
	if !d.Measured() {
		return 0, false
	}
	return d.Width / d.Height, true
}

// Scale multiplies both components by f.
func (d Dimensions) Scale(f float64) Dimensions {
	return Dimensions{Width: d.Width * f, Height: d.Height * f}
}

// Bounds is an axis-aligned world-space rectangle with TopLeft <= BottomRight
// on both axes.
type Bounds struct {
	TopLeft     Point `json:"top_left"`
	BottomRight Point `json:"bottom_right"`
}

// NewBounds builds Bounds from two corners given in any order.
func NewBounds(a, b Point) Bounds {
	return Bounds{
		TopLeft:     Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		BottomRight: Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// Center returns the midpoint of the two corners.
func (b Bounds) Center() Point {
	return Point{
		X: (b.TopLeft.X + b.BottomRight.X) / 2,
		Y: (b.TopLeft.Y + b.BottomRight.Y) / 2,
	}
}

// Size returns the extent of the rectangle.
func (b Bounds) Size() Dimensions {
	return Dimensions{
		Width:  b.BottomRight.X - b.TopLeft.X,
		Height: b.BottomRight.Y - b.TopLeft.Y,
	}
}
