package screener

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"solscreener/metrics"
	"solscreener/models"
	"solscreener/storage"
)

// Leaderboard computes the 24h KOL ranking. Results live in a single
// TTL-guarded slot: one slow recompute at a time, everyone else reads
// the previous snapshot. Wallets are fetched sequentially behind a rate
// limiter so eighteen wallets never stampede the swap API.
type Leaderboard struct {
	db      *storage.DBClient
	swaps   SwapSource
	price   PriceSource
	limiter *rate.Limiter
	ttl     time.Duration
	top     int
	log     *zap.SugaredLogger

	now func() time.Time

	mu        sync.Mutex
	cached    []models.SmartWallet
	cachedAt  time.Time
	refreshMu sync.Mutex
}

func NewLeaderboard(db *storage.DBClient, swaps SwapSource, price PriceSource, rps float64, ttl time.Duration, top int, log *zap.SugaredLogger) *Leaderboard {
	if top <= 0 {
		top = 10
	}
	return &Leaderboard{
		db:      db,
		swaps:   swaps,
		price:   price,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		ttl:     ttl,
		top:     top,
		log:     log,
		now:     time.Now,
	}
}

// Top returns the ranked wallets and whether they came from cache.
func (l *Leaderboard) Top(ctx context.Context) ([]models.SmartWallet, bool, error) {
	if wallets, ok := l.fromCache(); ok {
		metrics.LeaderboardCache("hit")
		return wallets, true, nil
	}
	metrics.LeaderboardCache("miss")

	// One recompute at a time. A request that lost the race reuses the
	// winner's result via the cache check after the lock.
	l.refreshMu.Lock()
	defer l.refreshMu.Unlock()
	if wallets, ok := l.fromCache(); ok {
		return wallets, true, nil
	}

	wallets, err := l.compute(ctx)
	if err != nil {
		return nil, false, err
	}
	l.store(wallets)
	return wallets, false, nil
}

func (l *Leaderboard) fromCache() ([]models.SmartWallet, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cached == nil || l.now().Sub(l.cachedAt) >= l.ttl {
		return nil, false
	}
	return l.cached, true
}

func (l *Leaderboard) store(wallets []models.SmartWallet) {
	l.mu.Lock()
	l.cached = wallets
	l.cachedAt = l.now()
	l.mu.Unlock()

	if l.db != nil {
		payload, err := json.Marshal(wallets)
		if err == nil {
			snap := &storage.LeaderboardSnapshot{CreatedAt: l.now(), Wallets: len(wallets), Payload: payload}
			if err := l.db.SaveSnapshot(snap); err != nil {
				l.log.Warnf("leaderboard: snapshot save failed: %v", err)
			}
			_ = l.db.PruneSnapshots(100)
		}
	}
}

// compute rebuilds the ranking from scratch: every registry wallet's
// 24h swaps, aggregated, zero-trade wallets dropped, sorted by USD
// volume, top N kept.
func (l *Leaderboard) compute(ctx context.Context) ([]models.SmartWallet, error) {
	registry, err := l.db.KnownWallets()
	if err != nil {
		return nil, err
	}

	solPrice := l.price.SolPriceUSD(ctx)
	since := l.now().Add(-24 * time.Hour).Unix()

	ranked := make([]models.SmartWallet, 0, len(registry))
	for _, w := range registry {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		swaps, err := l.swaps.WalletSwaps(ctx, w.Address, since)
		if err != nil {
			l.log.Warnf("leaderboard: swaps failed for %s: %v", w.Name, err)
			continue
		}

		stats := AggregateStats(swaps, solPrice)
		if stats.TotalTrades == 0 {
			continue
		}
		ranked = append(ranked, models.SmartWallet{
			Address:     w.Address,
			Name:        w.Name,
			Twitter:     w.Twitter,
			Image:       w.Image,
			WalletStats: stats,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Volume > ranked[j].Volume
	})
	if len(ranked) > l.top {
		ranked = ranked[:l.top]
	}
	l.log.Infof("leaderboard: ranked %d active wallets of %d tracked", len(ranked), len(registry))
	return ranked, nil
}

// Warm refreshes the leaderboard in the background on the TTL cadence
// so user requests rarely pay for a cold recompute.
func (l *Leaderboard) Warm(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(l.ttl)
		defer ticker.Stop()

		for {
			if _, _, err := l.Top(ctx); err != nil && ctx.Err() == nil {
				l.log.Warnf("leaderboard: warm refresh failed: %v", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
