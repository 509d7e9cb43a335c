package utils

// Interval maps a dashboard chart interval onto the market-data
// provider's timeframe/aggregate vocabulary.
type Interval struct {
	Name      string
	Seconds   int64
	Timeframe string // provider timeframe: "minute" | "hour" | "day"
	Aggregate int
}

// 30s has no upstream granularity; it renders as 1m candles.
var intervals = map[string]Interval{
	"30s": {Name: "30s", Seconds: 30, Timeframe: "minute", Aggregate: 1},
	"1m":  {Name: "1m", Seconds: 60, Timeframe: "minute", Aggregate: 1},
	"5m":  {Name: "5m", Seconds: 300, Timeframe: "minute", Aggregate: 5},
	"15m": {Name: "15m", Seconds: 900, Timeframe: "minute", Aggregate: 15},
	"1h":  {Name: "1h", Seconds: 3600, Timeframe: "hour", Aggregate: 1},
	"4h":  {Name: "4h", Seconds: 14400, Timeframe: "hour", Aggregate: 4},
	"1d":  {Name: "1d", Seconds: 86400, Timeframe: "day", Aggregate: 1},
}

// ChartInterval resolves an interval name, defaulting to 15m.
func ChartInterval(name string) Interval {
	if iv, ok := intervals[name]; ok {
		return iv
	}
	return intervals["15m"]
}

// IntervalToSecond returns the candle width in seconds for an interval
// name, defaulting to 15m.
func IntervalToSecond(name string) int64 {
	return ChartInterval(name).Seconds
}
