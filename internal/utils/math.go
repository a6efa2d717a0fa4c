package utils

import (
	"math"

	"github.com/osse101/lootmap/internal/domain"
)

// Bounded clamps value into [min, max].
func Bounded(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b domain.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b domain.Point) domain.Point {
	return domain.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// ApproxEqual reports whether a and b differ by less than tol.
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
