package screener

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"solscreener/models"
)

type chainSource struct {
	name  string
	token *models.Token
	err   error
	calls int
}

func (s *chainSource) Name() string { return s.name }

func (s *chainSource) TokenByAddress(ctx context.Context, address string) (*models.Token, error) {
	s.calls++
	return s.token, s.err
}

type stubHolders struct {
	holders    []models.TokenHolder
	count      int64
	countCalls int
}

func (s *stubHolders) TopHolders(ctx context.Context, mint string) ([]models.TokenHolder, error) {
	return s.holders, nil
}

func (s *stubHolders) HolderCount(ctx context.Context, mint string) (int64, error) {
	s.countCalls++
	return s.count, nil
}

type stubSecurity struct {
	sec   *models.SecurityInfo
	calls int
}

func (s *stubSecurity) TokenSecurity(ctx context.Context, mint string) (*models.SecurityInfo, error) {
	s.calls++
	return s.sec, nil
}

type stubTrades struct {
	trades []models.Trade
}

func (s *stubTrades) RecentTrades(ctx context.Context, mint string) ([]models.Trade, error) {
	return s.trades, nil
}

type stubMetadata struct {
	links models.SocialLinks
	calls int
}

func (s *stubMetadata) SocialLinks(ctx context.Context, mint string) (models.SocialLinks, error) {
	s.calls++
	return s.links, nil
}

func newTestResolver(chain []TokenSource, holders *stubHolders, security *stubSecurity) (*Resolver, *stubMetadata) {
	socials := &stubMetadata{}
	r := NewResolver(chain, holders, security, &stubTrades{trades: []models.Trade{{Type: "buy"}}}, socials, zap.NewNop().Sugar())
	return r, socials
}

func TestResolvePrimaryHitSkipsFallbacks(t *testing.T) {
	primary := &chainSource{name: "codex", token: &models.Token{Address: "mint", Holders: 42, Twitter: "x", Security: &models.SecurityInfo{ScamScore: 10}}}
	second := &chainSource{name: "dexscreener"}
	holders := &stubHolders{holders: []models.TokenHolder{{Address: "a", Percentage: 12}, {Address: "b", Percentage: 8}}, count: 99}
	security := &stubSecurity{}

	r, _ := newTestResolver([]TokenSource{primary, second}, holders, security)
	token, source, err := r.Resolve(context.Background(), "mint")
	require.NoError(t, err)

	assert.Equal(t, "codex", source)
	assert.Equal(t, 0, second.calls)
	// the primary source already knows the holder count and security
	assert.Equal(t, 0, holders.countCalls)
	assert.Equal(t, 0, security.calls)
	assert.Equal(t, int64(42), token.Holders)
	assert.Equal(t, 10, token.Security.ScamScore)
	// holder list and trades are enrichment on every path
	assert.Len(t, token.TopHolders, 2)
	assert.Equal(t, 20.0, token.Top10HoldersPercentage)
	assert.Len(t, token.RecentTrades, 1)
}

func TestResolveFallsThroughMissAndError(t *testing.T) {
	primary := &chainSource{name: "codex"} // (nil, nil): not indexed
	second := &chainSource{name: "dexscreener", err: errors.New("upstream 502")}
	third := &chainSource{name: "pump.fun", token: &models.Token{Address: "mint"}}
	holders := &stubHolders{count: 7}
	security := &stubSecurity{sec: &models.SecurityInfo{ScamScore: 30}}

	r, _ := newTestResolver([]TokenSource{primary, second, third}, holders, security)
	token, source, err := r.Resolve(context.Background(), "mint")
	require.NoError(t, err)

	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 1, third.calls)
	assert.Equal(t, "pump.fun", source)
	// non-primary hits get the count and security enrichment
	assert.Equal(t, 1, holders.countCalls)
	assert.Equal(t, int64(7), token.Holders)
	assert.Equal(t, 1, security.calls)
	assert.Equal(t, 30, token.Security.ScamScore)
}

func TestResolveAllMiss(t *testing.T) {
	r, _ := newTestResolver([]TokenSource{&chainSource{name: "codex"}, &chainSource{name: "dexscreener"}}, &stubHolders{}, &stubSecurity{})

	token, _, err := r.Resolve(context.Background(), "mint")
	assert.Nil(t, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveSocialsOnlyWhenMissing(t *testing.T) {
	withLinks := &chainSource{name: "codex", token: &models.Token{Address: "mint", Website: "https://example.com"}}
	r, socials := newTestResolver([]TokenSource{withLinks}, &stubHolders{}, &stubSecurity{})
	_, _, err := r.Resolve(context.Background(), "mint")
	require.NoError(t, err)
	assert.Equal(t, 0, socials.calls)

	bare := &chainSource{name: "codex", token: &models.Token{Address: "mint"}}
	r2, socials2 := newTestResolver([]TokenSource{bare}, &stubHolders{}, &stubSecurity{})
	socials2.links = models.SocialLinks{Twitter: "https://x.com/token"}
	token, _, err := r2.Resolve(context.Background(), "mint")
	require.NoError(t, err)
	assert.Equal(t, 1, socials2.calls)
	assert.Equal(t, "https://x.com/token", token.Twitter)
}
