package types

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

// Number is the element constraint of the windowed averages.
type Number interface {
	constraints.Integer | constraints.Float
}

// Direction orients a comparator for an extremum scan.
type Direction int

const (
	DirectionMax Direction = 1
	DirectionMin Direction = -1
)

// ReversedIndexedValue is the result of an extremum scan: the value and its
// distance from the tail, 0 for the newest element.
type ReversedIndexedValue[T any] struct {
	Value         T   `json:"value"`
	ReversedIndex int `json:"reversedIndex"`
}

// CompareFloat64 returns the sign of a - b. Any comparison with NaN is 0.
func CompareFloat64(a, b float64) int {
	r := a - b
	if r > 0 {
		return 1
	} else if r < 0 {
		return -1
	}

	return 0
}

// ScanExtreme scans the latest min(days, length) values of s from the tail
// toward the head and returns the most extreme one under cmp oriented by dir.
//
// The tail is the initial candidate and a value replaces the candidate only
// when it is strictly more extreme, so among equal values the most recent
// one is reported. ok is false when s is empty or days is not positive.
func ScanExtreme[T any](s *Sequence[T], days int, cmp func(a, b T) int, dir Direction) (ReversedIndexedValue[T], bool) {
	w := s.window(days)
	if len(w) == 0 {
		return ReversedIndexedValue[T]{}, false
	}

	last := len(w) - 1
	extreme := ReversedIndexedValue[T]{Value: w[last]}
	for i := last - 1; i >= 0; i-- {
		if cmp(extreme.Value, w[i])*int(dir) < 0 {
			extreme = ReversedIndexedValue[T]{Value: w[i], ReversedIndex: last - i}
		}
	}

	return extreme, true
}

// WindowedAverage returns the arithmetic mean of the latest min(window, length)
// values. It returns NaN for an empty window.
func WindowedAverage[T Number](s *Sequence[T], window int) float64 {
	w := s.window(window)
	if len(w) == 0 {
		return math.NaN()
	}

	return stat.Mean(toFloat64s(w), nil)
}

// WindowedWeightedAverage returns the linearly weighted mean of the latest
// w = min(window, length) values: the oldest value weighs 1 and the newest
// weighs w. It returns NaN for an empty window.
func WindowedWeightedAverage[T Number](s *Sequence[T], window int) float64 {
	w := s.window(window)
	if len(w) == 0 {
		return math.NaN()
	}

	weights := make([]float64, len(w))
	for i := range weights {
		weights[i] = float64(i + 1)
	}

	return stat.Mean(toFloat64s(w), weights)
}

func toFloat64s[T Number](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
