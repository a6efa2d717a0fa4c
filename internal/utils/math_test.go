package utils

import (
	"math"
	"testing"

	"github.com/osse101/lootmap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBounded(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"below range clamps to min", -5, 0},
		{"inside range is unchanged", 0.5, 0.5},
		{"above range clamps to max", 7, 2},
		{"min edge", 0, 0},
		{"max edge", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Bounded(tt.value, 0, 2))
		})
	}
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(domain.Point{}, domain.Point{X: 3, Y: 4}), 1e-9)
	assert.InDelta(t, 0.0, Distance(domain.Point{X: 1, Y: 1}, domain.Point{X: 1, Y: 1}), 1e-9)
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(domain.Point{X: -2, Y: 4}, domain.Point{X: 6, Y: 0})
	assert.Equal(t, domain.Point{X: 2, Y: 2}, got)
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite())
	assert.True(t, Finite(0, -1.5, 1e300))
	assert.False(t, Finite(1, math.NaN()))
	assert.False(t, Finite(math.Inf(1)))
	assert.False(t, Finite(math.Inf(-1), 2))
}
