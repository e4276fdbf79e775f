package indicator

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/c9s/ta/pkg/types"
)

/*
macd implements moving average convergence divergence indicator

Moving Average Convergence Divergence (MACD)
- https://www.investopedia.com/terms/m/macd.asp
- https://school.stockcharts.com/doku.php?id=technical_indicators:macd-histogram
*/

const (
	DefaultMACDShortPeriod  = 12
	DefaultMACDLongPeriod   = 26
	DefaultMACDSignalPeriod = 9
)

type MACDValue struct {
	// MACD is the histogram, (DIF - DEA) * 2
	MACD float64 `json:"macd"`
	// DIF is the short term EWMA minus the long term EWMA
	DIF float64 `json:"dif"`
	// DEA is the signal line, the EWMA of DIF
	DEA float64 `json:"dea"`
}

func (v MACDValue) String() string {
	return fmt.Sprintf("MACD{macd: %f, dif: %f, dea: %f}", v.MACD, v.DIF, v.DEA)
}

//go:generate callbackgen -type MACD
type MACD struct {
	types.View[MACDValue]

	shortEWMA, longEWMA, signalLine *EWMA
	values                          *types.Sequence[MACDValue]

	updateCallbacks []func(value MACDValue)
}

// NewMACD creates a MACD whose parameters are the smoothing factors of the
// short term, long term and signal EWMAs. They are used as-is, each must be in (0, 1).
func NewMACD(short, long, mid float64) (*MACD, error) {
	shortEWMA, err := NewEWMA(short)
	if err != nil {
		return nil, errors.Wrap(err, "macd short term")
	}

	longEWMA, err := NewEWMA(long)
	if err != nil {
		return nil, errors.Wrap(err, "macd long term")
	}

	signalLine, err := NewEWMA(mid)
	if err != nil {
		return nil, errors.Wrap(err, "macd mid term")
	}

	return newMACD(shortEWMA, longEWMA, signalLine), nil
}

// NewMACDFromPeriods creates a MACD from EWMA periods, see NewEWMAFromPeriod.
func NewMACDFromPeriods(short, long, mid int) (*MACD, error) {
	shortEWMA, err := NewEWMAFromPeriod(short)
	if err != nil {
		return nil, errors.Wrap(err, "macd short period")
	}

	longEWMA, err := NewEWMAFromPeriod(long)
	if err != nil {
		return nil, errors.Wrap(err, "macd long period")
	}

	signalLine, err := NewEWMAFromPeriod(mid)
	if err != nil {
		return nil, errors.Wrap(err, "macd signal period")
	}

	return newMACD(shortEWMA, longEWMA, signalLine), nil
}

// NewDefaultMACD creates the 12/26/9 MACD.
func NewDefaultMACD() *MACD {
	inc, err := NewMACDFromPeriods(DefaultMACDShortPeriod, DefaultMACDLongPeriod, DefaultMACDSignalPeriod)
	if err != nil {
		panic(err)
	}

	return inc
}

func newMACD(shortEWMA, longEWMA, signalLine *EWMA) *MACD {
	values := types.NewSequence[MACDValue]()
	return &MACD{
		View:       values.View(),
		shortEWMA:  shortEWMA,
		longEWMA:   longEWMA,
		signalLine: signalLine,
		values:     values,
	}
}

// Add feeds a close price and appends the new MACD value.
func (inc *MACD) Add(x float64) bool {
	inc.shortEWMA.Add(x)
	inc.longEWMA.Add(x)

	short, _ := inc.shortEWMA.Tail()
	long, _ := inc.longEWMA.Tail()
	dif := short - long

	inc.signalLine.Add(dif)
	dea, _ := inc.signalLine.Tail()

	value := MACDValue{
		MACD: (dif - dea) * 2.0,
		DIF:  dif,
		DEA:  dea,
	}
	inc.values.Append(value)
	inc.EmitUpdate(value)
	return true
}

// AddAll feeds the close prices in order. It returns false for empty input.
func (inc *MACD) AddAll(values []float64) bool {
	return addAll(values, inc.Add)
}

func (inc *MACD) PushK(k types.KLine) {
	inc.Add(k.Close)
}

// Short returns the output of the short term EWMA.
func (inc *MACD) Short() types.View[float64] {
	return inc.shortEWMA.View
}

// Long returns the output of the long term EWMA.
func (inc *MACD) Long() types.View[float64] {
	return inc.longEWMA.View
}

// Signal returns the signal line, the same values as DEA.
func (inc *MACD) Signal() types.View[float64] {
	return inc.signalLine.View
}
