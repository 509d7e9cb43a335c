package models

// TokenHolder is one entry of a token's top-holder list. Rank order is the
// slice order; percentages are shares of total supply and do not have to
// sum to 100 (the remainder is "everyone else").
type TokenHolder struct {
	Address    string  `json:"address"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// Trade is a single swap against a token's pool. TotalUSD is whatever the
// source reported; it is not recomputed from Amount*PriceUSD.
type Trade struct {
	Type      string  `json:"type"` // "buy" | "sell"
	Amount    float64 `json:"amount"`
	PriceUSD  float64 `json:"priceUSD"`
	TotalUSD  float64 `json:"totalUSD"`
	TotalSOL  float64 `json:"totalSOL,omitempty"`
	Maker     string  `json:"maker"`
	Timestamp int64   `json:"timestamp"`
	TxHash    string  `json:"txHash"`
}

// SecurityInfo carries holder-distribution risk signals. The sniper and
// bundler fields are pointers because the fallback security provider does
// not report them at all; absent is not the same as zero. ScamScore is
// always set whenever a SecurityInfo exists. RiskScore is the coarser
// display-level score layered on top of ScamScore; the two are computed by
// deliberately separate functions (see screener package).
type SecurityInfo struct {
	SniperCount           *int64   `json:"sniperCount,omitempty"`
	SniperHeldPercentage  *float64 `json:"sniperHeldPercentage,omitempty"`
	BundlerCount          *int64   `json:"bundlerCount,omitempty"`
	BundlerHeldPercentage *float64 `json:"bundlerHeldPercentage,omitempty"`
	DevHeldPercentage     float64  `json:"devHeldPercentage"`
	InsiderHeldPercentage float64  `json:"insiderHeldPercentage"`
	Freezable             bool     `json:"freezable"`
	IsScam                bool     `json:"isScam"`
	ScamScore             int      `json:"scamScore"`
	RiskScore             int      `json:"riskScore"`
}

// Token is the canonical, provider-agnostic token record every adapter
// maps into. Holders == 0 means "unknown", not a verified zero.
// BondingProgress is nil for tokens that are not (or are not known to be)
// on a bonding curve.
type Token struct {
	Address        string  `json:"address"`
	Name           string  `json:"name"`
	Symbol         string  `json:"symbol"`
	Price          float64 `json:"price"`
	PriceChange24h float64 `json:"priceChange24h"`
	MarketCap      float64 `json:"marketCap"`
	Volume24h      float64 `json:"volume24h"`
	Liquidity      float64 `json:"liquidity"`
	Holders        int64   `json:"holders"`
	Age            string  `json:"age"`
	CreatedAt      int64   `json:"createdAt"`
	Logo           string  `json:"logo,omitempty"`

	BondingProgress *float64 `json:"bondingProgress,omitempty"`
	IsMigrated      bool     `json:"isMigrated"`
	Launchpad       string   `json:"launchpad,omitempty"`

	Buyers24h  int64 `json:"buyers24h"`
	Sellers24h int64 `json:"sellers24h"`

	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
	Telegram string `json:"telegram,omitempty"`

	TopHolders             []TokenHolder `json:"topHolders,omitempty"`
	Top10HoldersPercentage float64       `json:"top10HoldersPercentage,omitempty"`

	Security     *SecurityInfo `json:"security,omitempty"`
	RecentTrades []Trade       `json:"recentTrades,omitempty"`
}

// SocialLinks is the subset of launchpad metadata the screener cares
// about.
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
	Telegram string `json:"telegram,omitempty"`
}

func (s SocialLinks) Empty() bool {
	return s.Twitter == "" && s.Website == "" && s.Telegram == ""
}
