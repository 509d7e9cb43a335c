package models

// WalletSwap is one raw swap record from the wallet-history provider,
// already reduced to the fields the aggregator consumes. The upstream
// payload has several competing field-name schemes for the same concepts;
// that guessing stays inside the provider adapter and never leaves it.
type WalletSwap struct {
	TxHash        string  `json:"txHash"`
	Timestamp     int64   `json:"timestamp"` // unix seconds, 0 when the source omitted it
	Type          string  `json:"type"`      // "buy" | "sell"
	TotalValueUSD float64 `json:"totalValueUSD"`
	BoughtSymbol  string  `json:"boughtSymbol,omitempty"`
	SoldSymbol    string  `json:"soldSymbol,omitempty"`
}

// WalletStats is the 24h trading summary derived from a wallet's swaps.
type WalletStats struct {
	TotalTrades  int     `json:"totalTrades"`
	Buys         int     `json:"buys"`
	Sells        int     `json:"sells"`
	VolumeSOL    float64 `json:"volumeSOL"`
	Volume       float64 `json:"volume"`
	BuyVolume    float64 `json:"buyVolume"`
	SellVolume   float64 `json:"sellVolume"`
	UniqueTokens int     `json:"uniqueTokens"`
	AvgTradeSize float64 `json:"avgTradeSize"`
	LastActivity int64   `json:"lastActivity"`
}

// SmartWallet is a known trader wallet plus its derived 24h stats. The
// stats block is recomputed from scratch on every leaderboard refresh,
// never partially updated.
type SmartWallet struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Twitter string `json:"twitter,omitempty"`
	Image   string `json:"image,omitempty"`
	WalletStats
}
