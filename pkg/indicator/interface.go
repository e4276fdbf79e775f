package indicator

import (
	"github.com/sirupsen/logrus"

	"github.com/c9s/ta/pkg/types"
)

var log = logrus.WithField("component", "indicator")

// KLinePusher provides an interface for API user to push kline value to the indicator.
// The indicator implements its own way to calculate the value from the given kline object.
type KLinePusher interface {
	PushK(k types.KLine)
}

// Float64Indicator is implemented by the indicators that consume and produce a single price series.
type Float64Indicator interface {
	KLinePusher

	Add(v float64) bool
	AddAll(values []float64) bool
	Tail() (float64, bool)
	Last(i int) (float64, error)
	Length() int
}

// addAll applies add once per element in order. Empty input is a no-op.
func addAll[T any](values []T, add func(v T) bool) bool {
	if len(values) == 0 {
		return false
	}

	for _, v := range values {
		add(v)
	}

	return true
}

var (
	_ Float64Indicator = &SMA{}
	_ Float64Indicator = &WMA{}
	_ Float64Indicator = &EWMA{}
	_ KLinePusher      = &MACD{}
	_ KLinePusher      = &KDJ{}
)
