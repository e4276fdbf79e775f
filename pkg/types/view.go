package types

import "github.com/pkg/errors"

// View is a read-only handle of a Sequence.
//
// Indicators embed a View of their output so callers can read the derived
// values but never append to them.
type View[T any] struct {
	seq *Sequence[T]
}

func (v View[T]) Length() int {
	if v.seq == nil {
		return 0
	}

	return v.seq.Length()
}

func (v View[T]) Head() (T, bool) {
	if v.seq == nil {
		var zero T
		return zero, false
	}

	return v.seq.Head()
}

func (v View[T]) Tail() (T, bool) {
	if v.seq == nil {
		var zero T
		return zero, false
	}

	return v.seq.Tail()
}

func (v View[T]) Last(i int) (T, error) {
	if v.seq == nil {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "reversed index %d, length 0", i)
	}

	return v.seq.Last(i)
}

func (v View[T]) Index(i int) (T, error) {
	if v.seq == nil {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, length 0", i)
	}

	return v.seq.Index(i)
}

func (v View[T]) Slice() []T {
	if v.seq == nil {
		return []T{}
	}

	return v.seq.Slice()
}

func (v View[T]) High(days int, cmp func(a, b T) int) (ReversedIndexedValue[T], bool) {
	if v.seq == nil {
		return ReversedIndexedValue[T]{}, false
	}

	return v.seq.High(days, cmp)
}

func (v View[T]) Low(days int, cmp func(a, b T) int) (ReversedIndexedValue[T], bool) {
	if v.seq == nil {
		return ReversedIndexedValue[T]{}, false
	}

	return v.seq.Low(days, cmp)
}

func (v View[T]) MarshalJSON() ([]byte, error) {
	if v.seq == nil {
		return []byte("[]"), nil
	}

	return v.seq.MarshalJSON()
}

// UnmarshalJSON always fails: the values behind a view are derived and can not be set from outside.
func (v *View[T]) UnmarshalJSON(_ []byte) error {
	return errors.Wrap(ErrUnsupportedOperation, "derived values can not be decoded")
}
