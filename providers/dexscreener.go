package providers

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"solscreener/models"
	"solscreener/utils"
)

// wsolMint prices SOL itself through the same pair API.
const wsolMint = "So11111111111111111111111111111111111111112"

const defaultSolPrice = 140

// DexScreener is the keyless fallback market-data source. It only knows
// DEX pairs, so everything it returns is by definition migrated and has
// no bonding or holder data.
type DexScreener struct {
	base   string
	client *http.Client
	log    *zap.SugaredLogger
}

func NewDexScreener(base string, log *zap.SugaredLogger) *DexScreener {
	return &DexScreener{
		base:   strings.TrimRight(base, "/"),
		client: newHTTPClient(10 * time.Second),
		log:    log,
	}
}

func (d *DexScreener) Name() string { return "dexscreener" }

type dexPair struct {
	ChainID   string        `json:"chainId"`
	PriceUsd  models.Number `json:"priceUsd"`
	Fdv       models.Number `json:"fdv"`
	MarketCap models.Number `json:"marketCap"`
	PairCreatedAt int64     `json:"pairCreatedAt"` // unix ms
	PairAddress   string    `json:"pairAddress"`
	BaseToken struct {
		Address string `json:"address"`
		Name    string `json:"name"`
		Symbol  string `json:"symbol"`
	} `json:"baseToken"`
	PriceChange struct {
		H24 models.Number `json:"h24"`
	} `json:"priceChange"`
	Volume struct {
		H24 models.Number `json:"h24"`
	} `json:"volume"`
	Liquidity struct {
		Usd models.Number `json:"usd"`
	} `json:"liquidity"`
	Txns struct {
		H24 struct {
			Buys  int64 `json:"buys"`
			Sells int64 `json:"sells"`
		} `json:"h24"`
	} `json:"txns"`
	Info *struct {
		ImageUrl string `json:"imageUrl"`
		Websites []struct {
			Url string `json:"url"`
		} `json:"websites"`
		Socials []struct {
			Type string `json:"type"`
			Url  string `json:"url"`
		} `json:"socials"`
	} `json:"info"`
}

// bestSolanaPair picks the most liquid Solana pair for a mint, or nil.
func bestSolanaPair(pairs []dexPair) *dexPair {
	var best *dexPair
	for i := range pairs {
		p := &pairs[i]
		if p.ChainID != "solana" {
			continue
		}
		if best == nil || p.Liquidity.Usd.Float64() > best.Liquidity.Usd.Float64() {
			best = p
		}
	}
	return best
}

// TokenByAddress resolves a mint through its most liquid Solana pair.
func (d *DexScreener) TokenByAddress(ctx context.Context, address string) (*models.Token, error) {
	var resp struct {
		Pairs []dexPair `json:"pairs"`
	}
	url := d.base + "/latest/dex/tokens/" + address
	if err := getJSON(ctx, d.client, d.Name(), url, nil, &resp); err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	best := bestSolanaPair(resp.Pairs)
	if best == nil {
		return nil, nil
	}
	token := d.transform(*best)
	token.Address = address
	return &token, nil
}

// BestPool returns the pair address the chart provider should read.
func (d *DexScreener) BestPool(ctx context.Context, mint string) (string, error) {
	var resp struct {
		Pairs []dexPair `json:"pairs"`
	}
	url := d.base + "/latest/dex/tokens/" + mint
	if err := getJSON(ctx, d.client, d.Name(), url, nil, &resp); err != nil {
		return "", err
	}
	best := bestSolanaPair(resp.Pairs)
	if best == nil {
		return "", nil
	}
	return best.PairAddress, nil
}

// SolPriceUSD quotes SOL through the WSOL pair, with a hardcoded
// fallback so USD->SOL conversions degrade instead of zeroing out.
func (d *DexScreener) SolPriceUSD(ctx context.Context) float64 {
	var resp struct {
		Pairs []dexPair `json:"pairs"`
	}
	url := d.base + "/latest/dex/tokens/" + wsolMint
	if err := getJSON(ctx, d.client, d.Name(), url, nil, &resp); err != nil {
		return defaultSolPrice
	}
	best := bestSolanaPair(resp.Pairs)
	if best == nil || best.PriceUsd.Float64() <= 0 {
		return defaultSolPrice
	}
	return best.PriceUsd.Float64()
}

// TrendingTokens lists boosted Solana tokens, enriched via the batch
// pair endpoint. When the boost list has no Solana entries it falls back
// to the top pairs by volume.
func (d *DexScreener) TrendingTokens(ctx context.Context, limit int) ([]models.Token, error) {
	var boosts []struct {
		ChainID      string `json:"chainId"`
		TokenAddress string `json:"tokenAddress"`
	}
	if err := getJSON(ctx, d.client, d.Name(), d.base+"/token-boosts/top/v1", nil, &boosts); err != nil {
		return nil, err
	}

	addresses := make([]string, 0, limit)
	for _, b := range boosts {
		if b.ChainID != "solana" {
			continue
		}
		addresses = append(addresses, b.TokenAddress)
		if len(addresses) >= limit {
			break
		}
	}
	if len(addresses) == 0 {
		return d.topPairs(ctx, limit)
	}
	return d.tokenPairs(ctx, addresses)
}

// tokenPairs resolves up to 30 addresses per request and keeps the most
// liquid pair per token.
func (d *DexScreener) tokenPairs(ctx context.Context, addresses []string) ([]models.Token, error) {
	var tokens []models.Token
	for start := 0; start < len(addresses); start += 30 {
		end := start + 30
		if end > len(addresses) {
			end = len(addresses)
		}
		chunk := addresses[start:end]

		var pairs []dexPair
		url := d.base + "/tokens/v1/solana/" + strings.Join(chunk, ",")
		if err := getJSON(ctx, d.client, d.Name(), url, nil, &pairs); err != nil {
			d.log.Warnf("dexscreener: pair chunk failed: %v", err)
			continue
		}

		best := map[string]*dexPair{}
		order := make([]string, 0, len(chunk))
		for i := range pairs {
			p := &pairs[i]
			addr := p.BaseToken.Address
			if addr == "" {
				continue
			}
			cur, ok := best[addr]
			if !ok {
				order = append(order, addr)
			}
			if !ok || p.Liquidity.Usd.Float64() > cur.Liquidity.Usd.Float64() {
				best[addr] = p
			}
		}
		for _, addr := range order {
			tokens = append(tokens, d.transform(*best[addr]))
		}
	}
	return tokens, nil
}

func (d *DexScreener) topPairs(ctx context.Context, limit int) ([]models.Token, error) {
	var resp struct {
		Pairs []dexPair `json:"pairs"`
	}
	if err := getJSON(ctx, d.client, d.Name(), d.base+"/latest/dex/pairs/solana", nil, &resp); err != nil {
		return nil, err
	}
	sort.SliceStable(resp.Pairs, func(i, j int) bool {
		return resp.Pairs[i].Volume.H24.Float64() > resp.Pairs[j].Volume.H24.Float64()
	})
	if len(resp.Pairs) > limit {
		resp.Pairs = resp.Pairs[:limit]
	}
	tokens := make([]models.Token, 0, len(resp.Pairs))
	for _, p := range resp.Pairs {
		tokens = append(tokens, d.transform(p))
	}
	return tokens, nil
}

func (d *DexScreener) transform(p dexPair) models.Token {
	createdAt := p.PairCreatedAt / 1000

	marketCap := p.MarketCap.Float64()
	if marketCap == 0 {
		marketCap = p.Fdv.Float64()
	}

	token := models.Token{
		Address:        p.BaseToken.Address,
		Name:           p.BaseToken.Name,
		Symbol:         p.BaseToken.Symbol,
		Price:          p.PriceUsd.Float64(),
		PriceChange24h: p.PriceChange.H24.Float64(),
		MarketCap:      marketCap,
		Volume24h:      p.Volume.H24.Float64(),
		Liquidity:      p.Liquidity.Usd.Float64(),
		Age:            utils.FormatAge(createdAt),
		CreatedAt:      createdAt,
		IsMigrated:     true,
		Launchpad:      utils.DetectLaunchpad(p.BaseToken.Address),
		Buyers24h:      p.Txns.H24.Buys,
		Sellers24h:     p.Txns.H24.Sells,
	}
	if token.Name == "" {
		token.Name = "Unknown"
	}
	if token.Symbol == "" {
		token.Symbol = "???"
	}
	if p.Info != nil {
		token.Logo = p.Info.ImageUrl
		if len(p.Info.Websites) > 0 {
			token.Website = p.Info.Websites[0].Url
		}
		for _, s := range p.Info.Socials {
			switch s.Type {
			case "twitter":
				if token.Twitter == "" {
					token.Twitter = s.Url
				}
			case "telegram":
				if token.Telegram == "" {
					token.Telegram = s.Url
				}
			}
		}
	}
	return token
}
