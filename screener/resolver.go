package screener

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"solscreener/metrics"
	"solscreener/models"
	"solscreener/utils"
)

// Resolver walks the token fallback chain and enriches whatever it
// finds. The chain order is fixed: the primary source has security and
// bonding data the others lack, so a later source never overrides an
// earlier hit.
type Resolver struct {
	chain    []TokenSource
	holders  HolderSource
	security SecuritySource
	trades   TradeSource
	socials  MetadataSource
	log      *zap.SugaredLogger
}

func NewResolver(chain []TokenSource, holders HolderSource, security SecuritySource, trades TradeSource, socials MetadataSource, log *zap.SugaredLogger) *Resolver {
	return &Resolver{
		chain:    chain,
		holders:  holders,
		security: security,
		trades:   trades,
		socials:  socials,
		log:      log,
	}
}

// Resolve returns the token, the name of the source that produced it,
// and ErrNotFound when the whole chain missed. A source failure is
// logged and treated as a miss; the next source still gets its turn.
func (r *Resolver) Resolve(ctx context.Context, address string) (*models.Token, string, error) {
	for _, source := range r.chain {
		token, err := source.TokenByAddress(ctx, address)
		if err != nil {
			r.log.Warnf("resolve: %s failed for %s: %v", source.Name(), utils.ShortenAddress(address), err)
			continue
		}
		if token == nil {
			continue
		}
		metrics.ResolveSource(source.Name())
		r.enrich(ctx, token, source.Name())
		return token, source.Name(), nil
	}
	metrics.ResolveSource("none")
	return nil, "", ErrNotFound
}

// enrich fills in what the resolving source could not provide. The
// primary source already carries security data and a holder count, so
// those lookups are skipped for it. Enrichment failures degrade the
// response, never fail it.
func (r *Resolver) enrich(ctx context.Context, token *models.Token, source string) {
	primary := len(r.chain) > 0 && source == r.chain[0].Name()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		holders, err := r.holders.TopHolders(gctx, token.Address)
		if err != nil {
			r.log.Debugf("enrich: top holders failed for %s: %v", utils.ShortenAddress(token.Address), err)
			return nil
		}
		token.TopHolders = holders
		for _, h := range holders {
			token.Top10HoldersPercentage += h.Percentage
		}
		return nil
	})

	g.Go(func() error {
		trades, err := r.trades.RecentTrades(gctx, token.Address)
		if err != nil {
			r.log.Debugf("enrich: trades failed for %s: %v", utils.ShortenAddress(token.Address), err)
			return nil
		}
		token.RecentTrades = trades
		return nil
	})

	if !primary {
		g.Go(func() error {
			count, err := r.holders.HolderCount(gctx, token.Address)
			if err != nil {
				r.log.Debugf("enrich: holder count failed for %s: %v", utils.ShortenAddress(token.Address), err)
				return nil
			}
			if count > 0 {
				token.Holders = count
			}
			return nil
		})

		if token.Security == nil {
			g.Go(func() error {
				sec, err := r.security.TokenSecurity(gctx, token.Address)
				if err != nil {
					r.log.Debugf("enrich: security failed for %s: %v", utils.ShortenAddress(token.Address), err)
					return nil
				}
				token.Security = sec
				return nil
			})
		}
	}

	if token.Twitter == "" && token.Website == "" && token.Telegram == "" && r.socials != nil {
		g.Go(func() error {
			links, err := r.socials.SocialLinks(gctx, token.Address)
			if err != nil || links.Empty() {
				return nil
			}
			token.Twitter = links.Twitter
			token.Website = links.Website
			token.Telegram = links.Telegram
			return nil
		})
	}

	_ = g.Wait()
}
