package types

import "fmt"

// KLine is the price sample consumed by the indicators.
// Indicators that only need one price read Close.
type KLine struct {
	Close float64 `json:"close" yaml:"close"`
	High  float64 `json:"high" yaml:"high"`
	Low   float64 `json:"low" yaml:"low"`
}

func (k KLine) String() string {
	return fmt.Sprintf("KLine{C: %f, H: %f, L: %f}", k.Close, k.High, k.Low)
}

// KLineWith builds a kline sample, mostly used by tests and replay code.
func KLineWith(close, high, low float64) KLine {
	return KLine{Close: close, High: high, Low: low}
}

