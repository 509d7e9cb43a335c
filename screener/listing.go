package screener

import (
	"context"

	"go.uber.org/zap"

	"solscreener/models"
)

const defaultListLimit = 20

// Lister serves the dashboard's listing tabs. The filtered tabs need
// the keyed primary source; only trending has a keyless fallback.
type Lister struct {
	primary  ListSource
	trending TrendingSource
	log      *zap.SugaredLogger
}

func NewLister(primary ListSource, trending TrendingSource, log *zap.SugaredLogger) *Lister {
	return &Lister{primary: primary, trending: trending, log: log}
}

// List returns the tokens for a tab. The source name is "codex" for the
// primary path and "dexscreener" for the trending fallback. Source
// failures and a missing primary key degrade to an empty list; they are
// logged here and never reach the caller.
func (l *Lister) List(ctx context.Context, kind ListKind, filters models.TokenFilters, limit int) ([]models.Token, string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if kind == ListTrending && limit < 50 {
		limit = 50
	}

	if l.primary != nil && l.primary.Enabled() {
		tokens, err := l.primary.ListTokens(ctx, kind, filters, limit)
		if err == nil {
			return tokens, "codex", nil
		}
		l.log.Warnf("list: primary source failed for %s: %v", kind, err)
		if kind != ListTrending {
			return nil, "codex", nil
		}
	}

	if kind == ListTrending {
		tokens, err := l.trending.TrendingTokens(ctx, limit)
		if err != nil {
			l.log.Warnf("list: trending fallback failed: %v", err)
			return nil, "dexscreener", nil
		}
		return tokens, "dexscreener", nil
	}

	l.log.Warnf("list: %s requested without the primary market-data source", kind)
	return nil, "none", nil
}

// ParseListKind validates a tab name, defaulting to new.
func ParseListKind(s string) ListKind {
	switch ListKind(s) {
	case ListNew, ListBonding, ListMigrated, ListTrending:
		return ListKind(s)
	}
	return ListNew
}
