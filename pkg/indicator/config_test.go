package indicator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/c9s/ta/pkg/types"
)

const testConfig = `
sma:
- window: 5
- window: 10
wma:
- window: 3
ewma:
- period: 20
- alpha: 0.1
macd:
- {}
- shortAlpha: 0.5
  longAlpha: 0.2
  signalAlpha: 0.3
kdj:
- window: 9
  kPeriod: 3
  dPeriod: 3
- slidingWindow: true
`

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig([]byte(testConfig))
	require.NoError(t, err)

	assert.Equal(t, []WindowConfig{{Window: 5}, {Window: 10}}, config.SMA)
	assert.Equal(t, []WindowConfig{{Window: 3}}, config.WMA)
	assert.Equal(t, []EWMAConfig{{Period: 20}, {Alpha: 0.1}}, config.EWMA)
	assert.Equal(t, MACDConfig{ShortAlpha: 0.5, LongAlpha: 0.2, SignalAlpha: 0.3}, config.MACD[1])
	assert.Equal(t, KDJConfig{SlidingWindow: true}, config.KDJ[1])

	bundle, err := config.Build()
	require.NoError(t, err)
	assert.Len(t, bundle.SMA, 2)
	assert.Len(t, bundle.WMA, 1)
	assert.Len(t, bundle.EWMA, 2)
	assert.Len(t, bundle.MACD, 2)
	assert.Len(t, bundle.KDJ, 2)

	assert.InDelta(t, 2.0/21.0, bundle.EWMA[0].Alpha(), 1e-12)
	assert.Equal(t, DefaultKDJWindow, bundle.KDJ[1].Window())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig([]byte("sma: [[["))
	assert.Error(t, err)

	_, err = LoadConfig([]byte(`
sma:
- window: 0
ewma:
- alpha: 0.5
  period: 3
- {}
macd:
- shortAlpha: 12
  longAlpha: 0.2
  signalAlpha: 0.3
kdj:
- window: -1
`))
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 5)
	for _, e := range errs {
		assert.True(t, errors.Is(e, types.ErrInvalidValue), e.Error())
	}
	assert.Contains(t, err.Error(), "sma[0]")
	assert.Contains(t, err.Error(), "kdj[0]")
}

func TestBundle(t *testing.T) {
	config := Config{
		SMA:  []WindowConfig{{Window: 3}},
		EWMA: []EWMAConfig{{Alpha: 0.5}},
		MACD: []MACDConfig{{}},
		KDJ:  []KDJConfig{{}},
	}

	bundle, err := config.Build()
	require.NoError(t, err)

	assert.False(t, bundle.AddAll(nil))

	kLines := []types.KLine{
		types.KLineWith(5, 10, 1),
		types.KLineWith(10, 20, 2),
		types.KLineWith(15, 30, 3),
		types.KLineWith(20, 40, 4),
	}
	assert.True(t, bundle.AddAll(kLines))
	assert.Equal(t, len(kLines), bundle.Length())

	sma, ok := bundle.SMA[0].Tail()
	require.True(t, ok)
	assert.InDelta(t, 15.0, sma, 1e-9)

	ewma, ok := bundle.EWMA[0].Tail()
	require.True(t, ok)
	// 0.5*20 + 0.25*15 + 0.125*10 + 0.0625*5
	assert.InDelta(t, 15.3125, ewma, 1e-9)

	assert.Equal(t, len(kLines), bundle.MACD[0].Length())
	assert.Equal(t, len(kLines), bundle.KDJ[0].Length())
}
