package indicator

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/c9s/ta/pkg/types"
	"github.com/c9s/ta/pkg/util"
)

/*
kdj implements the stochastic oscillator with the J line

- https://www.investopedia.com/terms/s/stochasticoscillator.asp

	rsv = (close - lowest low of n) / (highest high of n - lowest low of n) * 100
	k   = sma(rsv, kPeriod)
	d   = sma(k, dPeriod)
	j   = 3k - 2d
*/

const (
	DefaultKDJWindow  = 9
	DefaultKDJKPeriod = 3
	DefaultKDJDPeriod = 3
)

// rsvWarner reports the samples where the highest high equals the lowest low.
var rsvWarner = util.NewWarnFirstLogger(10, time.Minute, log)

type KDJValue struct {
	K float64 `json:"k"`
	D float64 `json:"d"`
	J float64 `json:"j"`
}

func (v KDJValue) String() string {
	return fmt.Sprintf("KDJ{k: %f, d: %f, j: %f}", v.K, v.D, v.J)
}

//go:generate callbackgen -type KDJ
type KDJ struct {
	types.View[KDJValue]

	window int

	highValues, lowValues *types.Sequence[float64]

	// highest and lowest are only set in the sliding window mode
	highest, lowest *types.SlidingExtreme[float64]

	k, d   *SMA
	values *types.Sequence[KDJValue]

	updateCallbacks []func(value KDJValue)
}

// NewKDJ creates a KDJ over the latest nDays highs and lows, smoothing K over
// kDays and D over dDays.
func NewKDJ(nDays, kDays, dDays int) (*KDJ, error) {
	return newKDJ(nDays, kDays, dDays, false)
}

// NewDefaultKDJ creates the 9/3/3 KDJ.
func NewDefaultKDJ() *KDJ {
	inc, err := NewKDJ(DefaultKDJWindow, DefaultKDJKPeriod, DefaultKDJDPeriod)
	if err != nil {
		panic(err)
	}

	return inc
}

func newKDJ(nDays, kDays, dDays int, sliding bool) (*KDJ, error) {
	if nDays <= 0 {
		return nil, errors.Wrapf(types.ErrInvalidValue, "kdj window %d is not positive", nDays)
	}

	k, err := NewSMA(kDays)
	if err != nil {
		return nil, errors.Wrap(err, "kdj k period")
	}

	d, err := NewSMA(dDays)
	if err != nil {
		return nil, errors.Wrap(err, "kdj d period")
	}

	values := types.NewSequence[KDJValue]()
	inc := &KDJ{
		View:       values.View(),
		window:     nDays,
		highValues: types.NewSequence[float64](),
		lowValues:  types.NewSequence[float64](),
		k:          k,
		d:          d,
		values:     values,
	}

	if sliding {
		// the window was validated above, these can not fail
		inc.highest, _ = types.NewSlidingExtreme[float64](nDays, types.CompareFloat64, types.DirectionMax)
		inc.lowest, _ = types.NewSlidingExtreme[float64](nDays, types.CompareFloat64, types.DirectionMin)
	}

	return inc, nil
}

func (inc *KDJ) Window() int {
	return inc.window
}

// Add feeds one close/high/low sample and appends the new K, D and J values.
//
// When the highest high equals the lowest low of the window the RSV divides by
// zero. The result is not clamped: NaN or ±Inf flows into K, D and J.
func (inc *KDJ) Add(cloze, high, low float64) bool {
	inc.highValues.Append(high)
	inc.lowValues.Append(low)

	highest, lowest := inc.highestLowest(high, low)
	rsv := (cloze - lowest) / (highest - lowest) * 100.0
	if math.IsNaN(rsv) || math.IsInf(rsv, 0) {
		rsvWarner.WarnOrError(nil, "kdj rsv is %f, close: %f highest: %f lowest: %f", rsv, cloze, highest, lowest)
	}

	inc.k.Add(rsv)
	k, _ := inc.k.Tail()

	inc.d.Add(k)
	d, _ := inc.d.Tail()

	value := KDJValue{
		K: k,
		D: d,
		J: 3*k - 2*d,
	}
	inc.values.Append(value)
	inc.EmitUpdate(value)
	return true
}

func (inc *KDJ) highestLowest(high, low float64) (float64, float64) {
	if inc.highest != nil {
		return inc.highest.Push(high).Value, inc.lowest.Push(low).Value
	}

	highest, _ := inc.highValues.High(inc.window, types.CompareFloat64)
	lowest, _ := inc.lowValues.Low(inc.window, types.CompareFloat64)
	return highest.Value, lowest.Value
}

// AddAll feeds the samples in order. It returns false for empty input.
func (inc *KDJ) AddAll(kLines []types.KLine) bool {
	return addAll(kLines, func(k types.KLine) bool {
		return inc.Add(k.Close, k.High, k.Low)
	})
}

func (inc *KDJ) PushK(k types.KLine) {
	inc.Add(k.Close, k.High, k.Low)
}

// K returns the smoothed RSV values.
func (inc *KDJ) K() types.View[float64] {
	return inc.k.View
}

// D returns the smoothed K values.
func (inc *KDJ) D() types.View[float64] {
	return inc.d.View
}
