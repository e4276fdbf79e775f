package types

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanExtreme(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		days   int
		dir    Direction
		want   ReversedIndexedValue[float64]
	}{
		{
			name:   "ties keep the tail",
			values: []float64{5, 5, 5},
			days:   3,
			dir:    DirectionMax,
			want:   ReversedIndexedValue[float64]{Value: 5, ReversedIndex: 0},
		},
		{
			name:   "ties keep the most recent occurrence",
			values: []float64{9, 1, 9, 3},
			days:   4,
			dir:    DirectionMax,
			want:   ReversedIndexedValue[float64]{Value: 9, ReversedIndex: 1},
		},
		{
			name:   "minimum",
			values: []float64{4, 2, 6, 2, 8},
			days:   5,
			dir:    DirectionMin,
			want:   ReversedIndexedValue[float64]{Value: 2, ReversedIndex: 1},
		},
		{
			name:   "window limits the scan",
			values: []float64{100, 1, 2, 3},
			days:   3,
			dir:    DirectionMax,
			want:   ReversedIndexedValue[float64]{Value: 3, ReversedIndex: 0},
		},
		{
			name:   "window larger than the sequence",
			values: []float64{1, 7, 3},
			days:   10,
			dir:    DirectionMax,
			want:   ReversedIndexedValue[float64]{Value: 7, ReversedIndex: 1},
		},
		{
			name:   "window of one returns the tail",
			values: []float64{100, 1},
			days:   1,
			dir:    DirectionMax,
			want:   ReversedIndexedValue[float64]{Value: 1, ReversedIndex: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ScanExtreme(NewSequence(tt.values...), tt.days, CompareFloat64, tt.dir)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScanExtreme_NoResult(t *testing.T) {
	_, ok := ScanExtreme(NewSequence[float64](), 3, CompareFloat64, DirectionMax)
	assert.False(t, ok)

	_, ok = ScanExtreme(NewSequence(1.0, 2.0), 0, CompareFloat64, DirectionMax)
	assert.False(t, ok)
}

func TestCompareFloat64(t *testing.T) {
	assert.Equal(t, 1, CompareFloat64(2, 1))
	assert.Equal(t, -1, CompareFloat64(1, 2))
	assert.Equal(t, 0, CompareFloat64(1, 1))
	assert.Equal(t, 0, CompareFloat64(math.NaN(), 1))
}

func TestWindowedAverage(t *testing.T) {
	s := NewSequence[float64]()
	assert.True(t, math.IsNaN(WindowedAverage(s, 3)))

	s.Append(1)
	assert.InDelta(t, 1.0, WindowedAverage(s, 3), 1e-9)
	s.Append(2)
	assert.InDelta(t, 1.5, WindowedAverage(s, 3), 1e-9)
	s.Append(3)
	s.Append(10)
	assert.InDelta(t, 5.0, WindowedAverage(s, 3), 1e-9)

	ints := NewSequence(1, 2, 3, 4)
	assert.InDelta(t, 3.5, WindowedAverage(ints, 2), 1e-9)
}

func TestWindowedWeightedAverage(t *testing.T) {
	s := NewSequence(1.0, 2.0, 3.0)
	// (1*1 + 2*2 + 3*3) / 6
	assert.InDelta(t, 14.0/6.0, WindowedWeightedAverage(s, 3), 1e-9)
	// (2*1 + 3*2) / 3
	assert.InDelta(t, 8.0/3.0, WindowedWeightedAverage(s, 2), 1e-9)
	assert.InDelta(t, 14.0/6.0, WindowedWeightedAverage(s, 10), 1e-9)
	assert.True(t, math.IsNaN(WindowedWeightedAverage(NewSequence[float64](), 3)))
}

func TestSlidingExtreme(t *testing.T) {
	_, err := NewSlidingExtreme[float64](0, CompareFloat64, DirectionMax)
	assert.True(t, errors.Is(err, ErrInvalidValue))

	t.Run("matches the scan on random input", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(42))
		for _, window := range []int{1, 2, 3, 9, 20} {
			for _, dir := range []Direction{DirectionMax, DirectionMin} {
				sliding, err := NewSlidingExtreme[float64](window, CompareFloat64, dir)
				require.NoError(t, err)

				seq := NewSequence[float64]()
				for i := 0; i < 300; i++ {
					// small integer domain produces plenty of ties
					v := float64(rnd.Intn(8))
					seq.Append(v)

					want, ok := ScanExtreme(seq, window, CompareFloat64, dir)
					require.True(t, ok)
					assert.Equal(t, want, sliding.Push(v), "window %d, dir %d, step %d", window, dir, i)
				}
				assert.Equal(t, 300, sliding.Length())
			}
		}
	})

	t.Run("ties keep the most recent", func(t *testing.T) {
		sliding, err := NewSlidingExtreme[float64](3, CompareFloat64, DirectionMax)
		require.NoError(t, err)
		sliding.Push(5)
		sliding.Push(5)
		assert.Equal(t, ReversedIndexedValue[float64]{Value: 5, ReversedIndex: 0}, sliding.Push(5))
	})
}
