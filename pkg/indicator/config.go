package indicator

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/ta/pkg/types"
)

// WindowConfig configures the window based moving averages (SMA, WMA).
type WindowConfig struct {
	Window int `json:"window" yaml:"window"`
}

func (c WindowConfig) NewSMA() (*SMA, error) {
	return NewSMA(c.Window)
}

func (c WindowConfig) NewWMA() (*WMA, error) {
	return NewWMA(c.Window)
}

// EWMAConfig configures an EWMA by either its smoothing factor or its period.
type EWMAConfig struct {
	Alpha  float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	Period int     `json:"period,omitempty" yaml:"period,omitempty"`
}

func (c EWMAConfig) New() (*EWMA, error) {
	switch {
	case c.Alpha != 0 && c.Period != 0:
		return nil, errors.Wrapf(types.ErrInvalidValue, "ewma alpha %f and period %d are both set", c.Alpha, c.Period)
	case c.Period != 0:
		return NewEWMAFromPeriod(c.Period)
	default:
		return NewEWMA(c.Alpha)
	}
}

type MACDConfig struct {
	// ShortPeriod is the short term period EMA, usually 12
	ShortPeriod int `json:"short,omitempty" yaml:"short,omitempty"`
	// LongPeriod is the long term period EMA, usually 26
	LongPeriod int `json:"long,omitempty" yaml:"long,omitempty"`
	// SignalPeriod is the period of the signal line EMA, usually 9
	SignalPeriod int `json:"signal,omitempty" yaml:"signal,omitempty"`

	// The alphas are the EMA smoothing factors used as-is. When any of them
	// is set the periods are ignored and all three alphas are required.
	ShortAlpha  float64 `json:"shortAlpha,omitempty" yaml:"shortAlpha,omitempty"`
	LongAlpha   float64 `json:"longAlpha,omitempty" yaml:"longAlpha,omitempty"`
	SignalAlpha float64 `json:"signalAlpha,omitempty" yaml:"signalAlpha,omitempty"`
}

func (c MACDConfig) New() (*MACD, error) {
	if c.ShortAlpha != 0 || c.LongAlpha != 0 || c.SignalAlpha != 0 {
		return NewMACD(c.ShortAlpha, c.LongAlpha, c.SignalAlpha)
	}

	// apply default values
	if c.ShortPeriod == 0 {
		c.ShortPeriod = DefaultMACDShortPeriod
	}

	if c.LongPeriod == 0 {
		c.LongPeriod = DefaultMACDLongPeriod
	}

	if c.SignalPeriod == 0 {
		c.SignalPeriod = DefaultMACDSignalPeriod
	}

	return NewMACDFromPeriods(c.ShortPeriod, c.LongPeriod, c.SignalPeriod)
}

type KDJConfig struct {
	Window  int `json:"window,omitempty" yaml:"window,omitempty"`
	KPeriod int `json:"kPeriod,omitempty" yaml:"kPeriod,omitempty"`
	DPeriod int `json:"dPeriod,omitempty" yaml:"dPeriod,omitempty"`

	// SlidingWindow finds the highest high and the lowest low with a monotonic
	// deque instead of rescanning the window on every sample.
	SlidingWindow bool `json:"slidingWindow,omitempty" yaml:"slidingWindow,omitempty"`
}

func (c KDJConfig) New() (*KDJ, error) {
	if c.Window == 0 {
		c.Window = DefaultKDJWindow
	}

	if c.KPeriod == 0 {
		c.KPeriod = DefaultKDJKPeriod
	}

	if c.DPeriod == 0 {
		c.DPeriod = DefaultKDJDPeriod
	}

	return newKDJ(c.Window, c.KPeriod, c.DPeriod, c.SlidingWindow)
}

// Config describes the set of indicators maintained for one price stream.
//
//	sma:
//	- window: 5
//	ewma:
//	- period: 20
//	- alpha: 0.1
//	macd:
//	- short: 12
//	  long: 26
//	  signal: 9
//	kdj:
//	- window: 9
//	  kPeriod: 3
//	  dPeriod: 3
type Config struct {
	SMA  []WindowConfig `json:"sma,omitempty" yaml:"sma,omitempty"`
	WMA  []WindowConfig `json:"wma,omitempty" yaml:"wma,omitempty"`
	EWMA []EWMAConfig   `json:"ewma,omitempty" yaml:"ewma,omitempty"`
	MACD []MACDConfig   `json:"macd,omitempty" yaml:"macd,omitempty"`
	KDJ  []KDJConfig    `json:"kdj,omitempty" yaml:"kdj,omitempty"`
}

// LoadConfig parses a YAML indicator config and validates it.
func LoadConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "unable to parse indicator config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks every entry and returns all the errors found, combined with multierr.
func (c *Config) Validate() error {
	_, err := c.build()
	return err
}

// Build creates a Bundle holding one indicator per config entry.
func (c *Config) Build() (*Bundle, error) {
	bundle, err := c.build()
	if err != nil {
		return nil, err
	}

	log.Debugf("built indicator bundle: %d sma, %d wma, %d ewma, %d macd, %d kdj",
		len(bundle.SMA), len(bundle.WMA), len(bundle.EWMA), len(bundle.MACD), len(bundle.KDJ))
	return bundle, nil
}

func (c *Config) build() (*Bundle, error) {
	var errs error
	bundle := &Bundle{}

	for i, cfg := range c.SMA {
		inc, err := cfg.NewSMA()
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "sma[%d]", i))
			continue
		}
		bundle.SMA = append(bundle.SMA, inc)
		bundle.pushers = append(bundle.pushers, inc)
	}

	for i, cfg := range c.WMA {
		inc, err := cfg.NewWMA()
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "wma[%d]", i))
			continue
		}
		bundle.WMA = append(bundle.WMA, inc)
		bundle.pushers = append(bundle.pushers, inc)
	}

	for i, cfg := range c.EWMA {
		inc, err := cfg.New()
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "ewma[%d]", i))
			continue
		}
		bundle.EWMA = append(bundle.EWMA, inc)
		bundle.pushers = append(bundle.pushers, inc)
	}

	for i, cfg := range c.MACD {
		inc, err := cfg.New()
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "macd[%d]", i))
			continue
		}
		bundle.MACD = append(bundle.MACD, inc)
		bundle.pushers = append(bundle.pushers, inc)
	}

	for i, cfg := range c.KDJ {
		inc, err := cfg.New()
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "kdj[%d]", i))
			continue
		}
		bundle.KDJ = append(bundle.KDJ, inc)
		bundle.pushers = append(bundle.pushers, inc)
	}

	if errs != nil {
		return nil, errs
	}

	return bundle, nil
}
