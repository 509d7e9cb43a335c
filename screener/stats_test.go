package screener

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"solscreener/models"
)

func TestAggregateStats(t *testing.T) {
	swaps := []models.WalletSwap{
		{Type: "buy", TotalValueUSD: 1000, BoughtSymbol: "WIF", SoldSymbol: "SOL", Timestamp: 100},
		{Type: "sell", TotalValueUSD: 400, BoughtSymbol: "SOL", SoldSymbol: "WIF", Timestamp: 300},
		{Type: "buy", TotalValueUSD: 600, BoughtSymbol: "BONK", SoldSymbol: "WSOL", Timestamp: 200},
	}

	stats := AggregateStats(swaps, 200)

	assert.Equal(t, 3, stats.TotalTrades)
	assert.Equal(t, 2, stats.Buys)
	assert.Equal(t, 1, stats.Sells)
	assert.Equal(t, 2000.0, stats.Volume)
	assert.Equal(t, 1600.0, stats.BuyVolume)
	assert.Equal(t, 400.0, stats.SellVolume)
	assert.Equal(t, 10.0, stats.VolumeSOL)
	// SOL and WSOL legs never count as traded tokens
	assert.Equal(t, 2, stats.UniqueTokens)
	assert.InDelta(t, 666.67, stats.AvgTradeSize, 0.01)
	assert.Equal(t, int64(300), stats.LastActivity)
}

func TestAggregateStatsEmpty(t *testing.T) {
	stats := AggregateStats(nil, 200)
	assert.Equal(t, 0, stats.TotalTrades)
	assert.Equal(t, 0.0, stats.AvgTradeSize)
	assert.Equal(t, 0.0, stats.VolumeSOL)
}

func TestAggregateStatsZeroSolPrice(t *testing.T) {
	swaps := []models.WalletSwap{{Type: "buy", TotalValueUSD: 100}}
	stats := AggregateStats(swaps, 0)
	assert.Equal(t, 100.0, stats.Volume)
	assert.Equal(t, 0.0, stats.VolumeSOL)
}
