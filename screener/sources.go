package screener

import (
	"context"
	"errors"

	"solscreener/models"
)

// ErrNotFound means every provider in the chain came back empty for an
// address. Transport failures are not ErrNotFound; they surface as-is.
var ErrNotFound = errors.New("token not found")

// ListKind selects one of the dashboard's listing tabs.
type ListKind string

const (
	ListNew      ListKind = "new"
	ListBonding  ListKind = "bonding"
	ListMigrated ListKind = "migrated"
	ListTrending ListKind = "trending"
)

// TokenSource resolves a single token by mint address. A (nil, nil)
// return means the source has no data for the address; only transport or
// decode failures return an error. Both are treated as a miss by the
// fallback chain.
type TokenSource interface {
	Name() string
	TokenByAddress(ctx context.Context, address string) (*models.Token, error)
}

// ListSource serves filtered token listings. Enabled reports whether the
// source is usable (it needs an API key).
type ListSource interface {
	Enabled() bool
	ListTokens(ctx context.Context, kind ListKind, filters models.TokenFilters, limit int) ([]models.Token, error)
}

// TrendingSource is the keyless fallback for the trending tab.
type TrendingSource interface {
	TrendingTokens(ctx context.Context, limit int) ([]models.Token, error)
}

// HolderSource reads on-chain holder data.
type HolderSource interface {
	TopHolders(ctx context.Context, mint string) ([]models.TokenHolder, error)
	HolderCount(ctx context.Context, mint string) (int64, error)
}

// TradeSource reads recent swaps against a token's pools.
type TradeSource interface {
	RecentTrades(ctx context.Context, mint string) ([]models.Trade, error)
}

// SecuritySource grades a token's contract-level risk. (nil, nil) means
// the source has no report for the mint.
type SecuritySource interface {
	TokenSecurity(ctx context.Context, mint string) (*models.SecurityInfo, error)
}

// SwapSource reads a wallet's swap history back to the since cutoff.
type SwapSource interface {
	WalletSwaps(ctx context.Context, wallet string, since int64) ([]models.WalletSwap, error)
}

// PriceSource quotes SOL/USD.
type PriceSource interface {
	SolPriceUSD(ctx context.Context) float64
}

// PoolSource finds the most liquid pool for a mint.
type PoolSource interface {
	BestPool(ctx context.Context, mint string) (string, error)
}

// OHLCVSource reads candle history for a pool.
type OHLCVSource interface {
	OHLCV(ctx context.Context, pool string, interval string, limit int) ([]models.OHLCV, error)
}

// MetadataSource resolves off-chain token metadata (social links).
type MetadataSource interface {
	SocialLinks(ctx context.Context, mint string) (models.SocialLinks, error)
}
