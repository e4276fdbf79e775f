package indicator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/ta/pkg/types"
)

func Test_WMA(t *testing.T) {
	wma, err := NewWMA(3)
	require.NoError(t, err)

	wma.AddAll([]float64{1, 2, 3, 4, 5})

	expected := []float64{
		1,
		(1*1 + 2*2) / 3.0,
		(1*1 + 2*2 + 3*3) / 6.0,
		(2*1 + 3*2 + 4*3) / 6.0,
		(3*1 + 4*2 + 5*3) / 6.0,
	}

	require.Equal(t, len(expected), wma.Length())
	for i, v := range expected {
		got, err := wma.Index(i)
		require.NoError(t, err)
		assert.InDelta(t, v, got, 1e-9, "index %d", i)
	}
}

func Test_WMA_WindowOfOne(t *testing.T) {
	wma, err := NewWMA(1)
	require.NoError(t, err)

	wma.AddAll([]float64{3, 7, 2})
	assert.Equal(t, []float64{3, 7, 2}, wma.Slice())
}

func Test_WMA_InvalidWindow(t *testing.T) {
	_, err := NewWMA(0)
	assert.True(t, errors.Is(err, types.ErrInvalidValue))
}
