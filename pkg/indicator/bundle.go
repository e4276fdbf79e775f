package indicator

import "github.com/c9s/ta/pkg/types"

// Bundle holds the indicators of one price stream, usually one symbol and
// interval. Every kline is pushed to every indicator in config order.
//
// A Bundle is not safe for concurrent use; push the klines of a stream
// serially, in arrival order.
type Bundle struct {
	SMA  []*SMA
	WMA  []*WMA
	EWMA []*EWMA
	MACD []*MACD
	KDJ  []*KDJ

	pushers []KLinePusher
	count   int
}

func (b *Bundle) PushK(k types.KLine) {
	for _, inc := range b.pushers {
		inc.PushK(k)
	}

	b.count++
}

// AddAll pushes the klines in order. It returns false for empty input.
func (b *Bundle) AddAll(kLines []types.KLine) bool {
	return addAll(kLines, func(k types.KLine) bool {
		b.PushK(k)
		return true
	})
}

// Length returns the number of klines pushed.
func (b *Bundle) Length() int {
	return b.count
}
