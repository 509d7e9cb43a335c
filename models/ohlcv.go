package models

// OHLCV is one candlestick bar. Time is unix seconds.
type OHLCV struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// ChartSeries is a chart payload with its provenance. Synthetic is a
// first-class flag rather than a string so a consumer cannot accidentally
// treat a generated placeholder series as market data.
type ChartSeries struct {
	Candles     []OHLCV `json:"candles"`
	Source      string  `json:"source"` // "geckoterminal" | "synthetic" | "none"
	Synthetic   bool    `json:"synthetic"`
	PoolAddress string  `json:"poolAddress,omitempty"`
}
