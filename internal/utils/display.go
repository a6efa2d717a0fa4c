package utils

import (
	"math"
	"strconv"
)

// FormatBigNumber renders n compactly: 950, 15k, 2m.
func FormatBigNumber(n float64) string {
	switch {
	case n < 1_000:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case n < 1_000_000:
		return strconv.FormatFloat(math.Round(n/1_000), 'f', 0, 64) + "k"
	default:
		return strconv.FormatFloat(math.Round(n/1_000_000), 'f', 0, 64) + "m"
	}
}

// FormatPercent renders a probability as a percentage with two decimals.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p*100, 'f', 2, 64) + "%"
}

// FormatCount renders an expected count with three decimals.
func FormatCount(n float64) string {
	return strconv.FormatFloat(n, 'f', 3, 64)
}
