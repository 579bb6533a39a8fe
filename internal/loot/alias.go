package loot

import (
	"errors"
	"fmt"
)

// Alias sampler construction errors
var (
	ErrNoItems        = errors.New("items list cannot be empty")
	ErrLengthMismatch = errors.New("items and weights must have the same size")
	ErrNegativeWeight = errors.New("weights must be non-negative")
	ErrNonPositiveSum = errors.New("total weight must be positive")
)

// AliasSampler draws weighted items in O(1) using Vose's variant of Walker's alias method
type AliasSampler[T any] struct {
	items       []T
	probability []float64
	alias       []int
	totalWeight float64
}

// NewAliasSampler builds the alias table for items with the given weights
func NewAliasSampler[T any](items []T, weights []float64) (*AliasSampler[T], error) {
	if len(items) != len(weights) {
		return nil, fmt.Errorf("%w: %d items, %d weights", ErrLengthMismatch, len(items), len(weights))
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	var sum float64
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: index %d is %v", ErrNegativeWeight, i, w)
		}
		sum += w
	}
	if !(sum > 0) {
		return nil, ErrNonPositiveSum
	}

	n := len(items)
	s := &AliasSampler[T]{
		items:       append([]T(nil), items...),
		probability: make([]float64, n),
		alias:       make([]int, n),
		totalWeight: sum,
	}

	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / sum
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		l := small[0]
		small = small[1:]
		g := large[0]
		large = large[1:]

		s.probability[l] = scaled[l]
		s.alias[l] = g

		scaled[g] = scaled[g] + scaled[l] - 1
		if scaled[g] < 1 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}

	// leftovers are 1 up to rounding error
	for _, i := range small {
		s.probability[i] = 1
	}
	for _, i := range large {
		s.probability[i] = 1
	}

	return s, nil
}

// Sample draws one item. rnd must return values in [0, 1); it is called twice.
func (s *AliasSampler[T]) Sample(rnd func() float64) T {
	n := len(s.items)
	i := int(rnd() * float64(n))
	if i >= n {
		i = n - 1
	}
	if rnd() < s.probability[i] {
		return s.items[i]
	}
	return s.items[s.alias[i]]
}

// TotalWeight returns the sum of the weights the table was built from
func (s *AliasSampler[T]) TotalWeight() float64 {
	return s.totalWeight
}

// Len returns the number of items
func (s *AliasSampler[T]) Len() int {
	return len(s.items)
}
