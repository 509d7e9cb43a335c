package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"solscreener/models"
	"solscreener/utils"
)

// GeckoTerminal serves free OHLCV history per pool.
type GeckoTerminal struct {
	base   string
	client *http.Client
	log    *zap.SugaredLogger
}

func NewGeckoTerminal(base string, log *zap.SugaredLogger) *GeckoTerminal {
	return &GeckoTerminal{
		base:   strings.TrimRight(base, "/"),
		client: newHTTPClient(10 * time.Second),
		log:    log,
	}
}

func (g *GeckoTerminal) Name() string { return "geckoterminal" }

// OHLCV reads candles for a Solana pool. The upstream list comes back
// newest-first as [time, open, high, low, close, volume] rows; the
// returned slice is oldest-first.
func (g *GeckoTerminal) OHLCV(ctx context.Context, pool string, interval string, limit int) ([]models.OHLCV, error) {
	iv := utils.ChartInterval(interval)
	url := fmt.Sprintf("%s/networks/solana/pools/%s/ohlcv/%s?aggregate=%d&limit=%d",
		g.base, pool, iv.Timeframe, iv.Aggregate, limit)

	var resp struct {
		Data *struct {
			Attributes struct {
				OhlcvList [][]models.Number `json:"ohlcv_list"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := getJSON(ctx, g.client, g.Name(), url, nil, &resp); err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	if resp.Data == nil {
		return nil, nil
	}

	rows := resp.Data.Attributes.OhlcvList
	candles := make([]models.OHLCV, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		if len(row) < 6 {
			continue
		}
		candles = append(candles, models.OHLCV{
			Time:   int64(row[0].Float64()),
			Open:   row[1].Float64(),
			High:   row[2].Float64(),
			Low:    row[3].Float64(),
			Close:  row[4].Float64(),
			Volume: row[5].Float64(),
		})
	}
	return candles, nil
}
