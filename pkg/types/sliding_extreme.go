package types

import (
	"github.com/gammazero/deque"
	"github.com/pkg/errors"
)

type indexedValue[T any] struct {
	value T
	index int
}

// SlidingExtreme tracks the extremum of the latest window pushed values in
// amortized O(1) per push with a monotonic deque.
//
// For comparators that define a total order on the pushed values it reports
// exactly what ScanExtreme reports over the same window, including the
// most-recent tie-break. NaN breaks the ordering; use ScanExtreme if the input
// may hold NaN.
type SlidingExtreme[T any] struct {
	window int
	cmp    func(a, b T) int
	dir    Direction

	// count is the forward index the next pushed value gets.
	count      int
	candidates deque.Deque[indexedValue[T]]
}

func NewSlidingExtreme[T any](window int, cmp func(a, b T) int, dir Direction) (*SlidingExtreme[T], error) {
	if window <= 0 {
		return nil, errors.Wrapf(ErrInvalidValue, "window %d is not positive", window)
	}

	return &SlidingExtreme[T]{
		window: window,
		cmp:    cmp,
		dir:    dir,
	}, nil
}

// Push adds v as the newest value and returns the extremum of the current window.
func (s *SlidingExtreme[T]) Push(v T) ReversedIndexedValue[T] {
	index := s.count
	s.count++

	// candidates that are not strictly more extreme than v can never be reported again
	for s.candidates.Len() > 0 {
		back := s.candidates.Back()
		if s.cmp(back.value, v)*int(s.dir) > 0 {
			break
		}

		s.candidates.PopBack()
	}

	s.candidates.PushBack(indexedValue[T]{value: v, index: index})

	for s.candidates.Front().index <= index-s.window {
		s.candidates.PopFront()
	}

	front := s.candidates.Front()
	return ReversedIndexedValue[T]{
		Value:         front.value,
		ReversedIndex: index - front.index,
	}
}

func (s *SlidingExtreme[T]) Length() int {
	return s.count
}
