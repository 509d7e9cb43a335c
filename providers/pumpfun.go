package providers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"solscreener/models"
	"solscreener/utils"
)

const defaultTotalSupply = 1e9

// PumpFun is the last resort in the token fallback chain: it knows
// pre-migration bonding-curve tokens that no DEX aggregator has seen
// yet.
type PumpFun struct {
	base   string
	client *http.Client
	log    *zap.SugaredLogger
}

func NewPumpFun(base string, log *zap.SugaredLogger) *PumpFun {
	return &PumpFun{
		base:   strings.TrimRight(base, "/"),
		client: newHTTPClient(10 * time.Second),
		log:    log,
	}
}

func (p *PumpFun) Name() string { return "pump.fun" }

type pumpCoin struct {
	Name                 string        `json:"name"`
	Symbol               string        `json:"symbol"`
	ImageUri             string        `json:"image_uri"`
	UsdMarketCap         models.Number `json:"usd_market_cap"`
	TotalSupply          models.Number `json:"total_supply"`
	VirtualSolReserves   models.Number `json:"virtual_sol_reserves"`
	BondingCurveProgress models.Number `json:"bonding_curve_progress"`
	Complete             bool          `json:"complete"`
	CreatedTimestamp     int64         `json:"created_timestamp"` // unix ms
	Twitter              string        `json:"twitter"`
	Website              string        `json:"website"`
	Telegram             string        `json:"telegram"`
}

func (p *PumpFun) TokenByAddress(ctx context.Context, address string) (*models.Token, error) {
	var coin pumpCoin
	url := p.base + "/coins/" + address
	if err := getJSON(ctx, p.client, p.Name(), url, nil, &coin); err != nil {
		code := statusCode(err)
		if code == http.StatusNotFound || code == http.StatusBadRequest {
			return nil, nil
		}
		return nil, err
	}
	if coin.Name == "" && coin.Symbol == "" {
		return nil, nil
	}

	supply := coin.TotalSupply.Float64()
	if supply <= 0 {
		supply = defaultTotalSupply
	}
	progress := coin.BondingCurveProgress.Float64() * 100
	createdAt := coin.CreatedTimestamp / 1000

	token := models.Token{
		Address:   address,
		Name:      coin.Name,
		Symbol:    coin.Symbol,
		Price:     models.Finite(coin.UsdMarketCap.Float64() / supply),
		MarketCap: coin.UsdMarketCap.Float64(),
		// Rough estimate off the virtual reserves; pump.fun has no
		// USD liquidity figure pre-migration.
		Liquidity:       coin.VirtualSolReserves.Float64() * 200,
		Age:             utils.FormatAge(createdAt),
		CreatedAt:       createdAt,
		Logo:            coin.ImageUri,
		BondingProgress: &progress,
		IsMigrated:      coin.Complete,
		Launchpad:       "Pump.fun",
		Twitter:         coin.Twitter,
		Website:         coin.Website,
		Telegram:        coin.Telegram,
	}
	if token.Name == "" {
		token.Name = "Unknown"
	}
	if token.Symbol == "" {
		token.Symbol = "???"
	}
	return &token, nil
}
