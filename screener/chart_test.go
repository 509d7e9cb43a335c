package screener

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"solscreener/models"
)

type stubPools struct {
	pool string
	err  error
}

func (s *stubPools) BestPool(ctx context.Context, mint string) (string, error) {
	return s.pool, s.err
}

type stubOHLCV struct {
	candles []models.OHLCV
	err     error
}

func (s *stubOHLCV) OHLCV(ctx context.Context, pool, interval string, limit int) ([]models.OHLCV, error) {
	return s.candles, s.err
}

type stubTokens struct {
	token *models.Token
	err   error
	calls int
}

func (s *stubTokens) Name() string { return "stub" }

func (s *stubTokens) TokenByAddress(ctx context.Context, address string) (*models.Token, error) {
	s.calls++
	return s.token, s.err
}

func TestChartsRealCandles(t *testing.T) {
	candles := []models.OHLCV{
		{Time: 300, Close: 3},
		{Time: 100, Close: 1},
		{Time: 200, Close: 2},
	}
	charts := NewCharts(&stubPools{pool: "pool1"}, &stubOHLCV{candles: candles}, &stubTokens{}, zap.NewNop().Sugar())

	series, err := charts.Series(context.Background(), "mint", "15m")
	require.NoError(t, err)

	assert.Equal(t, "geckoterminal", series.Source)
	assert.False(t, series.Synthetic)
	assert.Equal(t, "pool1", series.PoolAddress)
	// candles come out ascending regardless of upstream order
	assert.Equal(t, int64(100), series.Candles[0].Time)
	assert.Equal(t, int64(200), series.Candles[1].Time)
	assert.Equal(t, int64(300), series.Candles[2].Time)
}

func TestChartsSyntheticFallback(t *testing.T) {
	tokens := &stubTokens{token: &models.Token{Address: "mint", Price: 0.5}}
	charts := NewCharts(&stubPools{}, &stubOHLCV{}, tokens, zap.NewNop().Sugar())

	series, err := charts.Series(context.Background(), "mint", "1m")
	require.NoError(t, err)

	assert.Equal(t, "synthetic", series.Source)
	assert.True(t, series.Synthetic)
	require.Len(t, series.Candles, 100)

	last := series.Candles[len(series.Candles)-1]
	assert.Equal(t, 0.5, last.Close)
	assert.GreaterOrEqual(t, last.High, last.Close)
	assert.LessOrEqual(t, last.Low, last.Close)

	// candles are spaced by the interval and strictly ascending
	for i := 1; i < len(series.Candles); i++ {
		assert.Equal(t, int64(60), series.Candles[i].Time-series.Candles[i-1].Time)
	}

	// each candle's open continues the previous close
	for i := 1; i < len(series.Candles)-1; i++ {
		assert.Equal(t, series.Candles[i-1].Close, series.Candles[i].Open)
	}
}

func TestChartsNoDataNoPrice(t *testing.T) {
	charts := NewCharts(&stubPools{}, &stubOHLCV{}, &stubTokens{}, zap.NewNop().Sugar())

	series, err := charts.Series(context.Background(), "mint", "15m")
	require.NoError(t, err)

	assert.Equal(t, "none", series.Source)
	assert.False(t, series.Synthetic)
	assert.Empty(t, series.Candles)
}

func TestChartsPoolErrorStillFallsBack(t *testing.T) {
	tokens := &stubTokens{token: &models.Token{Address: "mint", Price: 1.0}}
	charts := NewCharts(&stubPools{err: errors.New("boom")}, &stubOHLCV{}, tokens, zap.NewNop().Sugar())

	series, err := charts.Series(context.Background(), "mint", "15m")
	require.NoError(t, err)
	assert.Equal(t, "synthetic", series.Source)
}
