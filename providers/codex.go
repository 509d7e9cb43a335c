package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"solscreener/models"
	"solscreener/screener"
	"solscreener/utils"
)

// solanaNetworkID is Codex's network identifier for Solana mainnet.
const solanaNetworkID = 1399811149

// Codex is the primary market-data source: a GraphQL API with filtered
// token rankings and holder-distribution security metrics. Everything
// else in the chain exists to cover for it when the key is missing or a
// token is too fresh to be indexed.
type Codex struct {
	endpoint string
	apiKey   string
	client   *http.Client
	log      *zap.SugaredLogger
}

func NewCodex(endpoint, apiKey string, log *zap.SugaredLogger) *Codex {
	return &Codex{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   newHTTPClient(15 * time.Second),
		log:      log,
	}
}

func (c *Codex) Name() string { return "codex" }

func (c *Codex) Enabled() bool { return c.apiKey != "" }

const filterTokensQuery = `query FilterTokens($filters: FilterTokensFilters, $rankings: [TokenRanking], $tokens: [String], $limit: Int) {
  filterTokens(filters: $filters, rankings: $rankings, tokens: $tokens, limit: $limit) {
    results {
      priceUsd
      change24
      marketCap
      volume24
      liquidity
      holders
      buyCount24
      sellCount24
      sniperCount
      sniperHeldPercentage
      bundlerCount
      bundlerHeldPercentage
      devHeldPercentage
      insiderHeldPercentage
      token {
        address
        name
        symbol
        createdAt
        freezable
        isScam
        info { imageSmallUrl imageLargeUrl }
        socialLinks { twitter website telegram }
        launchpad { name graduationPercent migrated completed migratedAt completedAt }
      }
    }
  }
}`

type codexRanking struct {
	Attribute string `json:"attribute"`
	Direction string `json:"direction"`
}

type codexRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type codexResult struct {
	PriceUsd              models.Number `json:"priceUsd"`
	Change24              models.Number `json:"change24"`
	MarketCap             models.Number `json:"marketCap"`
	Volume24              models.Number `json:"volume24"`
	Liquidity             models.Number `json:"liquidity"`
	Holders               int64         `json:"holders"`
	BuyCount24            int64         `json:"buyCount24"`
	SellCount24           int64         `json:"sellCount24"`
	SniperCount           *int64        `json:"sniperCount"`
	SniperHeldPercentage  *float64      `json:"sniperHeldPercentage"`
	BundlerCount          *int64        `json:"bundlerCount"`
	BundlerHeldPercentage *float64      `json:"bundlerHeldPercentage"`
	DevHeldPercentage     *float64      `json:"devHeldPercentage"`
	InsiderHeldPercentage *float64      `json:"insiderHeldPercentage"`
	Token                 struct {
		Address   string `json:"address"`
		Name      string `json:"name"`
		Symbol    string `json:"symbol"`
		CreatedAt int64  `json:"createdAt"`
		Freezable bool   `json:"freezable"`
		IsScam    bool   `json:"isScam"`
		Info      *struct {
			ImageSmallUrl string `json:"imageSmallUrl"`
			ImageLargeUrl string `json:"imageLargeUrl"`
		} `json:"info"`
		SocialLinks *struct {
			Twitter  string `json:"twitter"`
			Website  string `json:"website"`
			Telegram string `json:"telegram"`
		} `json:"socialLinks"`
		Launchpad *struct {
			Name              string   `json:"name"`
			GraduationPercent *float64 `json:"graduationPercent"`
			Migrated          bool     `json:"migrated"`
			Completed         bool     `json:"completed"`
			MigratedAt        int64    `json:"migratedAt"`
			CompletedAt       int64    `json:"completedAt"`
		} `json:"launchpad"`
	} `json:"token"`
}

type codexResponse struct {
	Data struct {
		FilterTokens struct {
			Results []codexResult `json:"results"`
		} `json:"filterTokens"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Codex) query(ctx context.Context, variables map[string]any) ([]codexResult, error) {
	header := http.Header{"Authorization": []string{c.apiKey}}
	var resp codexResponse
	req := codexRequest{Query: filterTokensQuery, Variables: variables}
	if err := postJSON(ctx, c.client, c.Name(), c.endpoint, header, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("codex: %s", resp.Errors[0].Message)
	}
	return resp.Data.FilterTokens.Results, nil
}

// TokenByAddress looks up a single token using the tokens parameter of
// filterTokens. A token Codex has not indexed is (nil, nil).
func (c *Codex) TokenByAddress(ctx context.Context, address string) (*models.Token, error) {
	if !c.Enabled() {
		return nil, nil
	}
	results, err := c.query(ctx, map[string]any{
		"filters": map[string]any{"network": []int{solanaNetworkID}},
		"tokens":  []string{address},
		"limit":   1,
	})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	token := c.transform(results[0])
	return &token, nil
}

// ListTokens serves the dashboard tabs. Each tab layers its own base
// predicates over the caller's filters and picks the ranking attribute.
func (c *Codex) ListTokens(ctx context.Context, kind screener.ListKind, filters models.TokenFilters, limit int) ([]models.Token, error) {
	vars := map[string]any{
		"filters":  c.buildFilters(kind, filters),
		"rankings": []codexRanking{rankingFor(kind)},
		"limit":    limit,
	}
	results, err := c.query(ctx, vars)
	if err != nil {
		return nil, err
	}
	tokens := make([]models.Token, 0, len(results))
	for _, r := range results {
		tokens = append(tokens, c.transform(r))
	}
	return tokens, nil
}

func rankingFor(kind screener.ListKind) codexRanking {
	switch kind {
	case screener.ListBonding:
		return codexRanking{Attribute: "graduationPercent", Direction: "DESC"}
	case screener.ListMigrated:
		return codexRanking{Attribute: "launchpadMigratedAt", Direction: "DESC"}
	case screener.ListTrending:
		return codexRanking{Attribute: "volume24", Direction: "DESC"}
	}
	return codexRanking{Attribute: "createdAt", Direction: "DESC"}
}

func rangeFilter(min, max *float64) map[string]any {
	if min == nil && max == nil {
		return nil
	}
	m := map[string]any{}
	if min != nil {
		m["gte"] = *min
	}
	if max != nil {
		m["lte"] = *max
	}
	return m
}

func (c *Codex) buildFilters(kind screener.ListKind, f models.TokenFilters) map[string]any {
	filters := map[string]any{
		"network":       []int{solanaNetworkID},
		"launchpadName": f.Launchpads(),
	}

	// Tab base predicates. User-supplied liquidity/marketCap minimums
	// override the tab defaults below.
	switch kind {
	case screener.ListNew:
		filters["launchpadMigrated"] = false
		filters["launchpadGraduationPercent"] = map[string]any{"lte": 60.0}
		filters["liquidity"] = map[string]any{"gte": models.FloatOr(f.LiquidityMin, 1000)}
	case screener.ListBonding:
		filters["launchpadMigrated"] = false
		filters["launchpadGraduationPercent"] = map[string]any{"gte": 70.0, "lte": 99.9}
		filters["liquidity"] = map[string]any{"gte": models.FloatOr(f.LiquidityMin, 5000)}
		filters["marketCap"] = map[string]any{"gte": models.FloatOr(f.MarketCapMin, 15000)}
	case screener.ListMigrated:
		filters["launchpadMigrated"] = true
		filters["liquidity"] = map[string]any{"gte": models.FloatOr(f.LiquidityMin, 1000)}
	case screener.ListTrending:
		filters["liquidity"] = map[string]any{"gte": models.FloatOr(f.LiquidityMin, 5000)}
	}

	if m := rangeFilter(f.MarketCapMin, f.MarketCapMax); m != nil {
		if _, fixed := filters["marketCap"]; !fixed {
			filters["marketCap"] = m
		}
	}
	if f.LiquidityMax != nil {
		if liq, ok := filters["liquidity"].(map[string]any); ok {
			liq["lte"] = *f.LiquidityMax
		} else {
			filters["liquidity"] = map[string]any{"lte": *f.LiquidityMax}
		}
	}
	if m := rangeFilter(f.Volume24Min, f.Volume24Max); m != nil {
		filters["volume24"] = m
	}
	if m := rangeFilter(f.HoldersMin, f.HoldersMax); m != nil {
		filters["holders"] = m
	}
	if m := rangeFilter(f.BuyCount24Min, f.BuyCount24Max); m != nil {
		filters["buyCount24"] = m
	}
	if m := rangeFilter(f.SellCount24Min, f.SellCount24Max); m != nil {
		filters["sellCount24"] = m
	}
	if m := rangeFilter(f.TxnCount24Min, f.TxnCount24Max); m != nil {
		filters["txnCount24"] = m
	}

	// Codex expects change24 as a fraction; the API surface speaks
	// percentage points.
	var chMin, chMax *float64
	if f.Change24Min != nil {
		v := *f.Change24Min / 100
		chMin = &v
	}
	if f.Change24Max != nil {
		v := *f.Change24Max / 100
		chMax = &v
	}
	if m := rangeFilter(chMin, chMax); m != nil {
		filters["change24"] = m
	}

	if kind != screener.ListNew && kind != screener.ListBonding {
		if m := rangeFilter(f.GraduationPercentMin, f.GraduationPercentMax); m != nil {
			filters["launchpadGraduationPercent"] = m
		}
	}

	if f.SniperCountMax != nil {
		filters["sniperCount"] = map[string]any{"lte": *f.SniperCountMax}
	}
	if f.SniperHeldPercentageMax != nil {
		filters["sniperHeldPercentage"] = map[string]any{"lte": *f.SniperHeldPercentageMax}
	}
	if f.BundlerCountMax != nil {
		filters["bundlerCount"] = map[string]any{"lte": *f.BundlerCountMax}
	}
	if f.BundlerHeldPercentageMax != nil {
		filters["bundlerHeldPercentage"] = map[string]any{"lte": *f.BundlerHeldPercentageMax}
	}
	if f.DevHeldPercentageMax != nil {
		filters["devHeldPercentage"] = map[string]any{"lte": *f.DevHeldPercentageMax}
	}
	if f.InsiderHeldPercentageMax != nil {
		filters["insiderHeldPercentage"] = map[string]any{"lte": *f.InsiderHeldPercentageMax}
	}
	if f.Freezable != nil {
		filters["freezable"] = *f.Freezable
	}
	if f.IncludeScams != nil {
		filters["includeScams"] = *f.IncludeScams
	}
	if m := rangeFilter(f.CreatedAfter, f.CreatedBefore); m != nil {
		filters["createdAt"] = m
	}
	return filters
}

func (c *Codex) transform(r codexResult) models.Token {
	t := r.Token

	token := models.Token{
		Address:        t.Address,
		Name:           t.Name,
		Symbol:         t.Symbol,
		Price:          r.PriceUsd.Float64(),
		PriceChange24h: r.Change24.Float64() * 100,
		MarketCap:      r.MarketCap.Float64(),
		Volume24h:      r.Volume24.Float64(),
		Liquidity:      r.Liquidity.Float64(),
		Holders:        r.Holders,
		CreatedAt:      t.CreatedAt,
		Buyers24h:      r.BuyCount24,
		Sellers24h:     r.SellCount24,
	}
	if token.Name == "" {
		token.Name = "Unknown"
	}
	if token.Symbol == "" {
		token.Symbol = "???"
	}
	if t.Info != nil {
		token.Logo = t.Info.ImageSmallUrl
		if token.Logo == "" {
			token.Logo = t.Info.ImageLargeUrl
		}
	}
	if t.SocialLinks != nil {
		token.Twitter = t.SocialLinks.Twitter
		token.Website = t.SocialLinks.Website
		token.Telegram = t.SocialLinks.Telegram
	}

	ageAt := t.CreatedAt
	if lp := t.Launchpad; lp != nil {
		token.BondingProgress = lp.GraduationPercent
		token.IsMigrated = lp.Migrated || lp.Completed
		token.Launchpad = lp.Name
		if lp.MigratedAt > 0 {
			ageAt = lp.MigratedAt
		} else if lp.CompletedAt > 0 {
			ageAt = lp.CompletedAt
		}
	}
	if token.Launchpad == "" {
		token.Launchpad = utils.DetectLaunchpad(t.Address)
	}
	token.Age = utils.FormatAge(ageAt)

	// Security only when the distribution metrics actually came back;
	// an all-nil row means Codex has not profiled the token yet.
	if r.SniperCount != nil || r.SniperHeldPercentage != nil || r.DevHeldPercentage != nil ||
		r.BundlerHeldPercentage != nil || r.InsiderHeldPercentage != nil {
		sig := screener.HoldingSignals{
			SniperHeldPercentage:  deref(r.SniperHeldPercentage),
			DevHeldPercentage:     deref(r.DevHeldPercentage),
			BundlerHeldPercentage: deref(r.BundlerHeldPercentage),
			InsiderHeldPercentage: deref(r.InsiderHeldPercentage),
			Freezable:             t.Freezable,
		}
		sec := &models.SecurityInfo{
			SniperCount:           r.SniperCount,
			SniperHeldPercentage:  r.SniperHeldPercentage,
			BundlerCount:          r.BundlerCount,
			BundlerHeldPercentage: r.BundlerHeldPercentage,
			DevHeldPercentage:     sig.DevHeldPercentage,
			InsiderHeldPercentage: sig.InsiderHeldPercentage,
			Freezable:             t.Freezable,
			IsScam:                t.IsScam,
			ScamScore:             screener.ScamScore(sig),
		}
		sec.RiskScore = screener.RiskScore(sec)
		token.Security = sec
	}
	return token
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
