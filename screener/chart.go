package screener

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"solscreener/metrics"
	"solscreener/models"
	"solscreener/utils"
)

const (
	chartCandleLimit    = 300
	syntheticCandles    = 100
	syntheticVolatility = 0.02
)

// Charts resolves OHLCV history for a mint: best pool first, candles
// from the market-data provider, and a generated placeholder walk when
// the token has no recorded history yet.
type Charts struct {
	pools  PoolSource
	ohlcv  OHLCVSource
	tokens TokenSource // spot price for the synthetic fallback
	log    *zap.SugaredLogger

	now func() time.Time
}

func NewCharts(pools PoolSource, ohlcv OHLCVSource, tokens TokenSource, log *zap.SugaredLogger) *Charts {
	return &Charts{pools: pools, ohlcv: ohlcv, tokens: tokens, log: log, now: time.Now}
}

// Series returns the chart for a mint at the given interval. An empty
// series with Source "none" means the token has neither history nor a
// known price; that is a valid response, not an error.
func (c *Charts) Series(ctx context.Context, address, interval string) (models.ChartSeries, error) {
	series := models.ChartSeries{Candles: []models.OHLCV{}, Source: "none"}

	pool, err := c.pools.BestPool(ctx, address)
	if err != nil {
		c.log.Warnf("chart: pool lookup failed for %s: %v", utils.ShortenAddress(address), err)
	}
	if pool != "" {
		series.PoolAddress = pool
		candles, err := c.ohlcv.OHLCV(ctx, pool, interval, chartCandleLimit)
		if err != nil {
			c.log.Warnf("chart: ohlcv failed for pool %s: %v", utils.ShortenAddress(pool), err)
		}
		if len(candles) > 0 {
			ensureAscending(candles)
			series.Candles = candles
			series.Source = "geckoterminal"
			return series, nil
		}
	}

	token, err := c.tokens.TokenByAddress(ctx, address)
	if err != nil || token == nil || token.Price <= 0 {
		return series, nil
	}

	series.Candles = c.synthetic(token.Price, interval)
	series.Source = "synthetic"
	series.Synthetic = true
	metrics.SyntheticChartsTotal.Inc()
	return series, nil
}

// ensureAscending sorts candles oldest-first regardless of upstream
// ordering.
func ensureAscending(candles []models.OHLCV) {
	sort.SliceStable(candles, func(i, j int) bool {
		return candles[i].Time < candles[j].Time
	})
}

// synthetic generates a random walk ending at the current price: 100
// candles, 2% volatility with a slight upward bias, starting 20% below
// spot. The last candle is pinned to the real price so the chart edge
// always agrees with the ticker.
func (c *Charts) synthetic(currentPrice float64, interval string) []models.OHLCV {
	step := utils.IntervalToSecond(interval)
	now := c.now().Unix()

	candles := make([]models.OHLCV, 0, syntheticCandles)
	price := currentPrice * 0.8

	for i := 0; i < syntheticCandles; i++ {
		t := now - int64(syntheticCandles-i)*step

		change := (rand.Float64() - 0.48) * syntheticVolatility * price
		open := price
		close := price + change
		high := max(open, close) * (1 + rand.Float64()*0.01)
		low := min(open, close) * (1 - rand.Float64()*0.01)

		candles = append(candles, models.OHLCV{
			Time:   t,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: rand.Float64() * 100000 * currentPrice,
		})
		price = close
	}

	last := &candles[len(candles)-1]
	last.Close = currentPrice
	last.High = max(last.High, currentPrice)
	last.Low = min(last.Low, currentPrice)
	return candles
}
