package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"solscreener/models"
)

const (
	swapPageSize = 100
	maxSwapPages = 100
)

// Moralis serves wallet swap history and Metaplex token metadata.
type Moralis struct {
	base   string
	apiKey string
	client *http.Client
	log    *zap.SugaredLogger
}

func NewMoralis(base, apiKey string, log *zap.SugaredLogger) *Moralis {
	return &Moralis{
		base:   strings.TrimRight(base, "/"),
		apiKey: apiKey,
		client: newHTTPClient(20 * time.Second),
		log:    log,
	}
}

func (m *Moralis) Name() string { return "moralis" }

func (m *Moralis) Enabled() bool { return m.apiKey != "" }

func (m *Moralis) header() http.Header {
	return http.Header{"X-API-Key": []string{m.apiKey}}
}

type moralisSwap struct {
	TransactionHash string        `json:"transactionHash"`
	BlockTimestamp  string        `json:"blockTimestamp"` // RFC3339
	TransactionType string        `json:"transactionType"`
	TotalValueUsd   models.Number `json:"totalValueUsd"`
	Bought          *struct {
		Symbol string `json:"symbol"`
	} `json:"bought"`
	Sold *struct {
		Symbol string `json:"symbol"`
	} `json:"sold"`
}

type moralisSwapsPage struct {
	Result []moralisSwap `json:"result"`
	Cursor string        `json:"cursor"`
}

// WalletSwaps pages a wallet's swap history newest-first until it walks
// past the since cutoff, the cursor runs out, or the page cap trips.
// Swaps without a timestamp are kept; they cannot be proven stale. A
// failed page aborts the walk but returns everything collected so far.
func (m *Moralis) WalletSwaps(ctx context.Context, wallet string, since int64) ([]models.WalletSwap, error) {
	if !m.Enabled() {
		return nil, nil
	}

	var swaps []models.WalletSwap
	cursor := ""

	for page := 0; page < maxSwapPages; page++ {
		url := fmt.Sprintf("%s/account/mainnet/%s/swaps?limit=%d&order=DESC&transactionTypes=buy,sell",
			m.base, wallet, swapPageSize)
		if cursor != "" {
			url += "&cursor=" + cursor
		}

		var resp moralisSwapsPage
		if err := getJSON(ctx, m.client, m.Name(), url, m.header(), &resp); err != nil {
			m.log.Warnf("moralis: swaps page failed for %s: %v", wallet, err)
			return swaps, nil
		}
		if len(resp.Result) == 0 {
			break
		}

		stale := false
		for _, s := range resp.Result {
			ts := parseBlockTimestamp(s.BlockTimestamp)
			if ts > 0 && ts <= since {
				stale = true
				continue
			}
			swap := models.WalletSwap{
				TxHash:        s.TransactionHash,
				Timestamp:     ts,
				Type:          s.TransactionType,
				TotalValueUSD: s.TotalValueUsd.Float64(),
			}
			if s.Bought != nil {
				swap.BoughtSymbol = s.Bought.Symbol
			}
			if s.Sold != nil {
				swap.SoldSymbol = s.Sold.Symbol
			}
			swaps = append(swaps, swap)
		}
		if stale {
			break
		}

		cursor = resp.Cursor
		if cursor == "" {
			break
		}
	}
	return swaps, nil
}

func parseBlockTimestamp(s string) int64 {
	if s == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0
	}
	return t.Unix()
}

// TokenMetadataURI resolves a mint's Metaplex metadata URI, with the
// cf-ipfs gateway rewritten to ipfs.io.
func (m *Moralis) TokenMetadataURI(ctx context.Context, mint string) (string, error) {
	if !m.Enabled() {
		return "", nil
	}
	var resp struct {
		Metaplex *struct {
			MetadataUri string `json:"metadataUri"`
		} `json:"metaplex"`
	}
	url := m.base + "/token/mainnet/" + mint + "/metadata"
	if err := getJSON(ctx, m.client, m.Name(), url, m.header(), &resp); err != nil {
		return "", err
	}
	if resp.Metaplex == nil {
		return "", nil
	}
	return strings.Replace(resp.Metaplex.MetadataUri, "cf-ipfs.com", "ipfs.io", 1), nil
}
