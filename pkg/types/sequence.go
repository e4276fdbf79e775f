package types

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Sequence is an append-only series of values.
//
// A value appended at index i stays at index i with the same content for the
// life of the sequence: every moving average and oscillator built on top of it
// is defined recursively on that order, so there is intentionally no way to
// insert, remove, reorder or overwrite an element.
//
// Values can be addressed from the head (Index) or from the tail (Last),
// where reversed index 0 is the newest value.
//
// A Sequence is not safe for concurrent use.
type Sequence[T any] struct {
	values []T
}

// NewSequence creates a sequence with the given initial values appended in order.
func NewSequence[T any](values ...T) *Sequence[T] {
	s := &Sequence[T]{
		values: make([]T, 0, len(values)),
	}

	for _, v := range values {
		s.Append(v)
	}

	return s
}

// Append adds v to the tail. It always succeeds.
func (s *Sequence[T]) Append(v T) bool {
	s.values = append(s.values, v)
	return true
}

func (s *Sequence[T]) Length() int {
	return len(s.values)
}

// Head returns the first value, ok is false when the sequence is empty.
func (s *Sequence[T]) Head() (v T, ok bool) {
	if len(s.values) == 0 {
		return v, false
	}

	return s.values[0], true
}

// Tail returns the newest value, ok is false when the sequence is empty.
func (s *Sequence[T]) Tail() (v T, ok bool) {
	if len(s.values) == 0 {
		return v, false
	}

	return s.values[len(s.values)-1], true
}

// Last returns the value i positions back from the tail.
func (s *Sequence[T]) Last(i int) (v T, err error) {
	length := len(s.values)
	if i < 0 || i >= length {
		return v, errors.Wrapf(ErrIndexOutOfRange, "reversed index %d, length %d", i, length)
	}

	return s.values[length-1-i], nil
}

// Index returns the value at forward index i, 0 is the head.
func (s *Sequence[T]) Index(i int) (v T, err error) {
	length := len(s.values)
	if i < 0 || i >= length {
		return v, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, length)
	}

	return s.values[i], nil
}

// Slice returns a copy of all the values from head to tail.
func (s *Sequence[T]) Slice() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

// window returns the latest min(n, length) values without copying them.
// Callers must not modify the returned slice.
func (s *Sequence[T]) window(n int) []T {
	length := len(s.values)
	if n > length {
		n = length
	}

	if n <= 0 {
		return nil
	}

	return s.values[length-n:]
}

// High returns the highest value of the latest days values with its reversed index.
func (s *Sequence[T]) High(days int, cmp func(a, b T) int) (ReversedIndexedValue[T], bool) {
	return ScanExtreme(s, days, cmp, DirectionMax)
}

// Low returns the lowest value of the latest days values with its reversed index.
func (s *Sequence[T]) Low(days int, cmp func(a, b T) int) (ReversedIndexedValue[T], bool) {
	return ScanExtreme(s, days, cmp, DirectionMin)
}

// View returns a read-only view of the sequence.
func (s *Sequence[T]) View() View[T] {
	return View[T]{seq: s}
}

func (s *Sequence[T]) MarshalJSON() ([]byte, error) {
	if s.values == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(s.values)
}

// UnmarshalJSON appends the decoded values in order. Decoding into a sequence
// that already holds values would rewrite its history and is rejected.
func (s *Sequence[T]) UnmarshalJSON(data []byte) error {
	if len(s.values) > 0 {
		return errors.Wrapf(ErrUnsupportedOperation, "can not decode into a sequence holding %d values", len(s.values))
	}

	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	for _, v := range values {
		s.Append(v)
	}

	return nil
}
