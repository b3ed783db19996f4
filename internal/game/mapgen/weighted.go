package mapgen

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

var (
	ErrNoWeight       = errors.New("weights sum to zero")
	ErrNegativeWeight = errors.New("negative weight")
)

// WeightedSelector samples categories with probability weight/total. Keys are
// sorted before the cumulative table is built so a seeded rng always yields
// the same sequence.
type WeightedSelector[T cmp.Ordered] struct {
	keys       []T
	cumulative []int
	total      int
	rng        *rand.Rand
}

// NewWeightedSelector builds a selector over weights. Zero weights are
// dropped; a negative weight or an all-zero map is an error.
func NewWeightedSelector[T cmp.Ordered](weights map[T]int, rng *rand.Rand) (*WeightedSelector[T], error) {
	keys := make([]T, 0, len(weights))
	for k, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: %v=%d", ErrNegativeWeight, k, w)
		}
		if w > 0 {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, ErrNoWeight
	}
	slices.Sort(keys)

	s := &WeightedSelector[T]{
		keys:       keys,
		cumulative: make([]int, len(keys)),
		rng:        rng,
	}
	for i, k := range keys {
		s.total += weights[k]
		s.cumulative[i] = s.total
	}
	return s, nil
}

// Sample draws one category.
func (s *WeightedSelector[T]) Sample() T {
	roll := s.rng.Intn(s.total)
	i, _ := slices.BinarySearch(s.cumulative, roll+1)
	return s.keys[i]
}

// Total is the sum of all weights.
func (s *WeightedSelector[T]) Total() int { return s.total }
