package indicator

import (
	"github.com/pkg/errors"

	"github.com/c9s/ta/pkg/types"
)

// zeroDayEWMA is the previous value assumed before the first sample.
const zeroDayEWMA = 0.0

// EWMA is the exponential moving average with a constant smoothing factor:
//
//	ewma[i] = alpha*x[i] + (1-alpha)*ewma[i-1], ewma[-1] = 0
//
// Every update is O(1).
//
//go:generate callbackgen -type EWMA
type EWMA struct {
	types.View[float64]

	alpha  float64
	values *types.Sequence[float64]

	updateCallbacks []func(value float64)
}

// NewEWMA creates an EWMA with smoothing factor alpha, which must be in (0, 1).
func NewEWMA(alpha float64) (*EWMA, error) {
	if !(alpha > 0 && alpha < 1) {
		return nil, errors.Wrapf(types.ErrInvalidValue, "ewma alpha %f not in (0, 1)", alpha)
	}

	values := types.NewSequence[float64]()
	return &EWMA{
		View:   values.View(),
		alpha:  alpha,
		values: values,
	}, nil
}

// NewEWMAFromPeriod creates an EWMA with the conventional smoothing factor 2 / (period + 1).
// The period must be greater than 1.
func NewEWMAFromPeriod(period int) (*EWMA, error) {
	if period <= 1 {
		return nil, errors.Wrapf(types.ErrValueOutOfRange, "ewma period %d must be greater than 1", period)
	}

	return NewEWMA(2.0 / float64(period+1))
}

func (inc *EWMA) Alpha() float64 {
	return inc.alpha
}

func (inc *EWMA) Add(v float64) bool {
	prev, ok := inc.values.Tail()
	if !ok {
		prev = zeroDayEWMA
	}

	ewma := inc.alpha*v + (1-inc.alpha)*prev
	inc.values.Append(ewma)
	inc.EmitUpdate(ewma)
	return true
}

func (inc *EWMA) AddAll(values []float64) bool {
	return addAll(values, inc.Add)
}

func (inc *EWMA) PushK(k types.KLine) {
	inc.Add(k.Close)
}
