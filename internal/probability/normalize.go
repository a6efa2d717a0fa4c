// Package probability turns relative weights into probabilities.
package probability

import (
	"fmt"
	"math"

	"github.com/osse101/lootmap/internal/domain"
)

// Entry is one outcome of a relative-probability distribution. Weights only
// mean something relative to the other entries of the same distribution.
type Entry[K comparable] struct {
	Key            K
	RelativeWeight float64
}

// Outcome is an Entry with its normalized probability.
type Outcome[K comparable] struct {
	Key            K
	RelativeWeight float64
	Probability    float64
}

// Normalize divides every weight by the total weight. Order is preserved.
// A total of zero (including an empty input) yields ErrDegenerateDistribution.
func Normalize[K comparable](entries []Entry[K]) ([]Outcome[K], error) {
	total := 0.0
	for _, e := range entries {
		if e.RelativeWeight < 0 || math.IsNaN(e.RelativeWeight) || math.IsInf(e.RelativeWeight, 0) {
			return nil, fmt.Errorf("%w: weight %v for %v", domain.ErrInvalidInput, e.RelativeWeight, e.Key)
		}
		total += e.RelativeWeight
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: %d entries sum to zero", domain.ErrDegenerateDistribution, len(entries))
	}

	out := make([]Outcome[K], len(entries))
	for i, e := range entries {
		out[i] = Outcome[K]{
			Key:            e.Key,
			RelativeWeight: e.RelativeWeight,
			Probability:    e.RelativeWeight / total,
		}
	}
	return out, nil
}

// ToMap folds outcomes into key -> probability. Repeated keys are summed.
func ToMap[K comparable](outcomes []Outcome[K]) map[K]float64 {
	m := make(map[K]float64, len(outcomes))
	for _, o := range outcomes {
		m[o.Key] += o.Probability
	}
	return m
}

// FromItemWeights converts a raw item distribution.
func FromItemWeights(dist []domain.ItemWeight) []Entry[string] {
	entries := make([]Entry[string], len(dist))
	for i, w := range dist {
		entries[i] = Entry[string]{Key: w.Tpl, RelativeWeight: w.RelativeProbability}
	}
	return entries
}

// FromCountWeights converts a raw item-count distribution.
func FromCountWeights(dist []domain.CountWeight) []Entry[int] {
	entries := make([]Entry[int], len(dist))
	for i, w := range dist {
		entries[i] = Entry[int]{Key: w.Count, RelativeWeight: w.RelativeProbability}
	}
	return entries
}

// ExpectedCount returns sum(count * p) over a count distribution.
func ExpectedCount(entries []Entry[int]) (float64, error) {
	outcomes, err := Normalize(entries)
	if err != nil {
		return 0, err
	}
	expected := 0.0
	for _, o := range outcomes {
		expected += float64(o.Key) * o.Probability
	}
	return expected, nil
}
