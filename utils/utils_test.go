package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDetectLaunchpad(t *testing.T) {
	assert.Equal(t, "Pump.fun", DetectLaunchpad("6tmFJbMk5yVHFhFiyizAbRfsGUWFYPFMXqLcv6WGpump"))
	assert.Equal(t, "Pump.fun", DetectLaunchpad("ABCPUMP"))
	assert.Equal(t, "Bonk", DetectLaunchpad("9yQ5FkqGjJzYfJrR1yyQxkKjWqeJpJrNTExu5Y6Cbonk"))
	assert.Equal(t, "", DetectLaunchpad("So11111111111111111111111111111111111111112"))
	assert.Equal(t, "", DetectLaunchpad(""))
}

func TestChartInterval(t *testing.T) {
	iv := ChartInterval("1h")
	assert.Equal(t, "hour", iv.Timeframe)
	assert.Equal(t, 1, iv.Aggregate)
	assert.Equal(t, int64(3600), iv.Seconds)

	// 30s renders as 1m candles upstream
	iv = ChartInterval("30s")
	assert.Equal(t, "minute", iv.Timeframe)
	assert.Equal(t, 1, iv.Aggregate)
	assert.Equal(t, int64(30), iv.Seconds)

	// unknown falls back to 15m
	iv = ChartInterval("7w")
	assert.Equal(t, "15m", iv.Name)
	assert.Equal(t, int64(900), IntervalToSecond("bogus"))
}

func TestFormatAge(t *testing.T) {
	now := time.Now().Unix()

	assert.Equal(t, "—", FormatAge(0))
	assert.Equal(t, "—", FormatAge(now+3600))
	assert.Equal(t, "30s", FormatAge(now-30))
	assert.Equal(t, "5m", FormatAge(now-5*60))
	assert.Equal(t, "3h", FormatAge(now-3*3600))
	assert.Equal(t, "12d", FormatAge(now-12*86400))
	assert.Equal(t, "2mo", FormatAge(now-70*86400))
}

func TestShortenAddress(t *testing.T) {
	assert.Equal(t, "CyaE...a54o", ShortenAddress("CyaE1VxvBrahnPWkqm5VsdCvyS2QmNht2UFrKJHga54o"))
	assert.Equal(t, "short", ShortenAddress("short"))
}
