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

type scriptedList struct {
	enabled   bool
	tokens    []models.Token
	err       error
	calls     int
	lastKind  ListKind
	lastLimit int
}

func (s *scriptedList) Enabled() bool { return s.enabled }

func (s *scriptedList) ListTokens(ctx context.Context, kind ListKind, filters models.TokenFilters, limit int) ([]models.Token, error) {
	s.calls++
	s.lastKind = kind
	s.lastLimit = limit
	return s.tokens, s.err
}

type scriptedTrending struct {
	tokens []models.Token
	err    error
	calls  int
}

func (s *scriptedTrending) TrendingTokens(ctx context.Context, limit int) ([]models.Token, error) {
	s.calls++
	return s.tokens, s.err
}

func TestListPrimarySuccess(t *testing.T) {
	primary := &scriptedList{enabled: true, tokens: []models.Token{{Symbol: "AAA"}}}
	fallback := &scriptedTrending{}
	l := NewLister(primary, fallback, zap.NewNop().Sugar())

	tokens, source, err := l.List(context.Background(), ListNew, models.TokenFilters{}, 0)
	require.NoError(t, err)
	assert.Equal(t, "codex", source)
	require.Len(t, tokens, 1)
	assert.Equal(t, defaultListLimit, primary.lastLimit)
	assert.Zero(t, fallback.calls)
}

func TestListPrimaryErrorYieldsEmptyList(t *testing.T) {
	primary := &scriptedList{enabled: true, err: errors.New("upstream 503")}
	fallback := &scriptedTrending{}
	l := NewLister(primary, fallback, zap.NewNop().Sugar())

	tokens, source, err := l.List(context.Background(), ListNew, models.TokenFilters{}, 20)
	require.NoError(t, err)
	assert.Empty(t, tokens)
	assert.Equal(t, "codex", source)
	assert.Zero(t, fallback.calls)
}

func TestListWithoutPrimaryYieldsEmptyList(t *testing.T) {
	primary := &scriptedList{enabled: false}
	fallback := &scriptedTrending{tokens: []models.Token{{Symbol: "HOT"}}}
	l := NewLister(primary, fallback, zap.NewNop().Sugar())

	for _, kind := range []ListKind{ListNew, ListBonding, ListMigrated} {
		tokens, source, err := l.List(context.Background(), kind, models.TokenFilters{}, 20)
		require.NoError(t, err)
		assert.Empty(t, tokens)
		assert.Equal(t, "none", source)
	}
	assert.Zero(t, primary.calls)
	assert.Zero(t, fallback.calls)
}

func TestListTrendingFallsBackOnPrimaryError(t *testing.T) {
	primary := &scriptedList{enabled: true, err: errors.New("upstream 503")}
	fallback := &scriptedTrending{tokens: []models.Token{{Symbol: "HOT"}}}
	l := NewLister(primary, fallback, zap.NewNop().Sugar())

	tokens, source, err := l.List(context.Background(), ListTrending, models.TokenFilters{}, 20)
	require.NoError(t, err)
	assert.Equal(t, "dexscreener", source)
	require.Len(t, tokens, 1)
	assert.Equal(t, 50, primary.lastLimit, "trending floor applies before the primary call")
}

func TestListTrendingDoubleFailureYieldsEmptyList(t *testing.T) {
	primary := &scriptedList{enabled: true, err: errors.New("upstream 503")}
	fallback := &scriptedTrending{err: errors.New("rate limited")}
	l := NewLister(primary, fallback, zap.NewNop().Sugar())

	tokens, source, err := l.List(context.Background(), ListTrending, models.TokenFilters{}, 20)
	require.NoError(t, err)
	assert.Empty(t, tokens)
	assert.Equal(t, "dexscreener", source)
	assert.Equal(t, 1, fallback.calls)
}
