package providers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"solscreener/models"
	"solscreener/screener"
)

// GoPlus is the fallback security source for tokens Codex has not
// profiled. It grades contract-level flags, not holder distribution.
type GoPlus struct {
	base   string
	client *http.Client
	log    *zap.SugaredLogger
}

func NewGoPlus(base string, log *zap.SugaredLogger) *GoPlus {
	return &GoPlus{
		base:   strings.TrimRight(base, "/"),
		client: newHTTPClient(10 * time.Second),
		log:    log,
	}
}

func (g *GoPlus) Name() string { return "goplus" }

// goplusReport carries GoPlus's stringly-typed flags ("0"/"1").
type goplusReport struct {
	IsHoneypot     string        `json:"is_honeypot"`
	IsBlacklisted  string        `json:"is_blacklisted"`
	IsOpenSource   string        `json:"is_open_source"`
	IsMintable     string        `json:"is_mintable"`
	HolderCount    models.Number `json:"holder_count"`
	CreatorPercent models.Number `json:"creator_percent"`
	OwnerPercent   models.Number `json:"owner_percent"`
}

// TokenSecurity fetches the GoPlus report for a mint. The result map is
// keyed by lowercased address. No report means (nil, nil).
func (g *GoPlus) TokenSecurity(ctx context.Context, mint string) (*models.SecurityInfo, error) {
	var resp struct {
		Result map[string]goplusReport `json:"result"`
	}
	url := g.base + "/api/v1/token_security/solana?contract_addresses=" + mint
	if err := getJSON(ctx, g.client, g.Name(), url, nil, &resp); err != nil {
		return nil, err
	}

	report, ok := resp.Result[strings.ToLower(mint)]
	if !ok {
		return nil, nil
	}

	return screener.SecurityFromGoPlus(screener.GoPlusSignals{
		Honeypot:       report.IsHoneypot == "1",
		Blacklisted:    report.IsBlacklisted == "1",
		OpenSource:     report.IsOpenSource != "0",
		Mintable:       report.IsMintable == "1",
		HolderCount:    int64(report.HolderCount.Float64()),
		CreatorPercent: report.CreatorPercent.Float64(),
		OwnerPercent:   report.OwnerPercent.Float64(),
	}), nil
}
