package providers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"solscreener/models"
)

// tradeSolPrice approximates SOL/USD when pricing individual swaps. The
// enhanced-transactions payload carries lamport amounts only, and a spot
// quote per trade is not worth an extra upstream round trip.
const tradeSolPrice = 200

const (
	maxRecentTrades = 15
	holderPageSize  = 1000
	maxHolderPages  = 10
)

// Helius reads on-chain data: top holders and supply over JSON-RPC, and
// swap history over the enhanced-transactions REST API.
type Helius struct {
	rpc     *rpc.Client
	rpcURL  string
	apiBase string
	apiKey  string
	client  *http.Client
	log     *zap.SugaredLogger
}

func NewHelius(rpcBase, apiBase, apiKey string, log *zap.SugaredLogger) *Helius {
	endpoint := strings.TrimRight(rpcBase, "/") + "/?api-key=" + apiKey
	return &Helius{
		rpc:     rpc.New(endpoint),
		rpcURL:  endpoint,
		apiBase: strings.TrimRight(apiBase, "/"),
		apiKey:  apiKey,
		client:  newHTTPClient(20 * time.Second),
		log:     log,
	}
}

func (h *Helius) Name() string { return "helius" }

func (h *Helius) Enabled() bool { return h.apiKey != "" }

// TopHolders returns the ten largest accounts as shares of total supply.
func (h *Helius) TopHolders(ctx context.Context, mint string) ([]models.TokenHolder, error) {
	if !h.Enabled() {
		return nil, nil
	}
	pubkey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, err
	}

	largest, err := h.rpc.GetTokenLargestAccounts(ctx, pubkey, rpc.CommitmentConfirmed)
	if err != nil {
		return nil, err
	}
	supply, err := h.rpc.GetTokenSupply(ctx, pubkey, rpc.CommitmentConfirmed)
	if err != nil {
		return nil, err
	}

	var totalSupply float64
	if supply.Value != nil && supply.Value.UiAmount != nil {
		totalSupply = *supply.Value.UiAmount
	}
	if totalSupply <= 0 {
		return nil, nil
	}

	accounts := largest.Value
	if len(accounts) > 10 {
		accounts = accounts[:10]
	}
	holders := make([]models.TokenHolder, 0, len(accounts))
	for _, acc := range accounts {
		var amount float64
		if acc.UiAmount != nil {
			amount = *acc.UiAmount
		}
		holders = append(holders, models.TokenHolder{
			Address:    acc.Address.String(),
			Percentage: amount / totalSupply * 100,
			Amount:     amount,
		})
	}
	return holders, nil
}

// HolderCount pages getTokenAccounts until the cursor runs out. The page
// cap bounds the cost for very widely held tokens; the count is then a
// floor, which the dashboard treats the same as any other estimate.
func (h *Helius) HolderCount(ctx context.Context, mint string) (int64, error) {
	if !h.Enabled() {
		return 0, nil
	}
	var total int64
	cursor := ""

	for page := 0; page < maxHolderPages; page++ {
		params := map[string]any{
			"mint":  mint,
			"limit": holderPageSize,
			"displayOptions": map[string]any{
				"showZeroBalance": false,
			},
		}
		if cursor != "" {
			params["cursor"] = cursor
		}
		body := map[string]any{
			"jsonrpc": "2.0",
			"id":      "holder-count",
			"method":  "getTokenAccounts",
			"params":  params,
		}

		var resp struct {
			Result *struct {
				TokenAccounts []struct {
					Address string `json:"address"`
				} `json:"token_accounts"`
				Cursor string `json:"cursor"`
			} `json:"result"`
		}
		if err := postJSON(ctx, h.client, h.Name(), h.rpcURL, nil, body, &resp); err != nil {
			return total, err
		}
		if resp.Result == nil {
			break
		}
		total += int64(len(resp.Result.TokenAccounts))
		cursor = resp.Result.Cursor
		if cursor == "" || len(resp.Result.TokenAccounts) < holderPageSize {
			break
		}
	}
	return total, nil
}

type heliusTx struct {
	Signature      string `json:"signature"`
	Timestamp      int64  `json:"timestamp"`
	FeePayer       string `json:"feePayer"`
	TokenTransfers []struct {
		Mint          string        `json:"mint"`
		ToUserAccount string        `json:"toUserAccount"`
		TokenAmount   models.Number `json:"tokenAmount"`
	} `json:"tokenTransfers"`
	NativeTransfers []struct {
		Amount int64 `json:"amount"` // lamports
	} `json:"nativeTransfers"`
}

// RecentTrades reads the last SWAP transactions touching a mint. A
// transfer landing anywhere but the fee payer's own account counts as a
// buy from the fee payer's perspective.
func (h *Helius) RecentTrades(ctx context.Context, mint string) ([]models.Trade, error) {
	if !h.Enabled() {
		return nil, nil
	}
	url := h.apiBase + "/v0/addresses/" + mint + "/transactions?api-key=" + h.apiKey + "&limit=20&type=SWAP"

	var txs []heliusTx
	if err := getJSON(ctx, h.client, h.Name(), url, nil, &txs); err != nil {
		return nil, err
	}

	trades := make([]models.Trade, 0, maxRecentTrades)
	for _, tx := range txs {
		idx := -1
		for i := range tx.TokenTransfers {
			if tx.TokenTransfers[i].Mint == mint {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}
		transfer := tx.TokenTransfers[idx]

		amount := transfer.TokenAmount.Float64()
		var solAmount float64
		if len(tx.NativeTransfers) > 0 {
			solAmount = float64(tx.NativeTransfers[0].Amount) / 1e9
		}
		totalUSD := solAmount * tradeSolPrice

		tradeType := "sell"
		if transfer.ToUserAccount != tx.FeePayer {
			tradeType = "buy"
		}
		maker := tx.FeePayer
		if maker == "" {
			maker = "Unknown"
		}
		timestamp := tx.Timestamp
		if timestamp == 0 {
			timestamp = time.Now().Unix()
		}

		var priceUSD float64
		if amount > 0 {
			priceUSD = totalUSD / amount
		}
		trades = append(trades, models.Trade{
			Type:      tradeType,
			Amount:    amount,
			PriceUSD:  priceUSD,
			TotalUSD:  totalUSD,
			TotalSOL:  solAmount,
			Maker:     maker,
			Timestamp: timestamp,
			TxHash:    tx.Signature,
		})
		if len(trades) >= maxRecentTrades {
			break
		}
	}
	return trades, nil
}
