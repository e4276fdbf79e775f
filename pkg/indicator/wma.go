package indicator

import (
	"github.com/pkg/errors"

	"github.com/c9s/ta/pkg/types"
)

// WMA is the linearly weighted moving average. Of the latest w = min(Window(), n)
// inputs the newest weighs w and the oldest weighs 1:
//
//	wma = (w*p[w] + (w-1)*p[w-1] + ... + 1*p[1]) / (w*(w+1)/2)
//
//go:generate callbackgen -type WMA
type WMA struct {
	types.View[float64]

	window    int
	rawValues *types.Sequence[float64]
	values    *types.Sequence[float64]

	updateCallbacks []func(value float64)
}

func NewWMA(window int) (*WMA, error) {
	if window <= 0 {
		return nil, errors.Wrapf(types.ErrInvalidValue, "wma window %d is not positive", window)
	}

	values := types.NewSequence[float64]()
	return &WMA{
		View:      values.View(),
		window:    window,
		rawValues: types.NewSequence[float64](),
		values:    values,
	}, nil
}

func (inc *WMA) Window() int {
	return inc.window
}

func (inc *WMA) Add(v float64) bool {
	inc.rawValues.Append(v)

	wma := types.WindowedWeightedAverage(inc.rawValues, inc.window)
	inc.values.Append(wma)
	inc.EmitUpdate(wma)
	return true
}

func (inc *WMA) AddAll(values []float64) bool {
	return addAll(values, inc.Add)
}

func (inc *WMA) PushK(k types.KLine) {
	inc.Add(k.Close)
}
