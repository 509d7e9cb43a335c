package screener

import "solscreener/models"

// AggregateStats folds a wallet's 24h swaps into a stats block. SOL and
// WSOL legs are excluded from the unique-token count: every swap has a
// SOL side, counting it would peg the metric at n+1.
func AggregateStats(swaps []models.WalletSwap, solPrice float64) models.WalletStats {
	var stats models.WalletStats
	unique := map[string]struct{}{}

	for _, s := range swaps {
		stats.TotalTrades++
		stats.Volume += s.TotalValueUSD
		if s.Type == "buy" {
			stats.Buys++
			stats.BuyVolume += s.TotalValueUSD
		} else {
			stats.Sells++
			stats.SellVolume += s.TotalValueUSD
		}

		if sym := s.BoughtSymbol; sym != "" && sym != "SOL" && sym != "WSOL" {
			unique[sym] = struct{}{}
		}
		if sym := s.SoldSymbol; sym != "" && sym != "SOL" && sym != "WSOL" {
			unique[sym] = struct{}{}
		}
		if s.Timestamp > stats.LastActivity {
			stats.LastActivity = s.Timestamp
		}
	}

	stats.UniqueTokens = len(unique)
	if solPrice > 0 {
		stats.VolumeSOL = stats.Volume / solPrice
	}
	if stats.TotalTrades > 0 {
		stats.AvgTradeSize = stats.Volume / float64(stats.TotalTrades)
	}
	return stats
}
