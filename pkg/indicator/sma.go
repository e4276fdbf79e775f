package indicator

import (
	"github.com/pkg/errors"

	"github.com/c9s/ta/pkg/types"
)

// SMA is the simple moving average: every output is the arithmetic mean of the
// latest Window() inputs, or of all the inputs while fewer have been added.
//
//go:generate callbackgen -type SMA
type SMA struct {
	types.View[float64]

	window    int
	rawValues *types.Sequence[float64]
	values    *types.Sequence[float64]

	updateCallbacks []func(value float64)
}

func NewSMA(window int) (*SMA, error) {
	if window <= 0 {
		return nil, errors.Wrapf(types.ErrInvalidValue, "sma window %d is not positive", window)
	}

	values := types.NewSequence[float64]()
	return &SMA{
		View:      values.View(),
		window:    window,
		rawValues: types.NewSequence[float64](),
		values:    values,
	}, nil
}

func (inc *SMA) Window() int {
	return inc.window
}

// Add appends v to the raw history and appends the new average to the output.
func (inc *SMA) Add(v float64) bool {
	inc.rawValues.Append(v)

	sma := types.WindowedAverage(inc.rawValues, inc.window)
	inc.values.Append(sma)
	inc.EmitUpdate(sma)
	return true
}

// AddAll calls Add for every value in order. It returns false for empty input.
func (inc *SMA) AddAll(values []float64) bool {
	return addAll(values, inc.Add)
}

func (inc *SMA) PushK(k types.KLine) {
	inc.Add(k.Close)
}
