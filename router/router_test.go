package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"solscreener/models"
	"solscreener/screener"
)

// fakeList serves canned tokens, honouring the marketCapMin bound the
// way the real source would.
type fakeList struct {
	tokens   []models.Token
	lastKind screener.ListKind
}

func (f *fakeList) Enabled() bool { return true }

func (f *fakeList) ListTokens(ctx context.Context, kind screener.ListKind, filters models.TokenFilters, limit int) ([]models.Token, error) {
	f.lastKind = kind
	out := make([]models.Token, 0, len(f.tokens))
	for _, t := range f.tokens {
		if filters.MarketCapMin != nil && t.MarketCap < *filters.MarketCapMin {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

type fakeTrending struct{}

func (fakeTrending) TrendingTokens(ctx context.Context, limit int) ([]models.Token, error) {
	return nil, nil
}

type fakeToken struct {
	token *models.Token
}

func (f *fakeToken) Name() string { return "fake" }

func (f *fakeToken) TokenByAddress(ctx context.Context, address string) (*models.Token, error) {
	return f.token, nil
}

type fakeHolders struct{}

func (fakeHolders) TopHolders(ctx context.Context, mint string) ([]models.TokenHolder, error) {
	return nil, nil
}
func (fakeHolders) HolderCount(ctx context.Context, mint string) (int64, error) { return 0, nil }

type fakeSecurity struct{}

func (fakeSecurity) TokenSecurity(ctx context.Context, mint string) (*models.SecurityInfo, error) {
	return nil, nil
}

type fakeTrades struct{}

func (fakeTrades) RecentTrades(ctx context.Context, mint string) ([]models.Trade, error) {
	return nil, nil
}

func testEngine(t *testing.T, list *fakeList, token *fakeToken) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop().Sugar()

	lister := screener.NewLister(list, fakeTrending{}, log)
	resolver := screener.NewResolver([]screener.TokenSource{token}, fakeHolders{}, fakeSecurity{}, fakeTrades{}, nil, log)

	e := gin.New()
	r := NewRouter(lister, resolver, nil, nil, log)
	e.GET("/api/tokens", r.Tokens)
	e.GET("/api/tokens/:address", r.Token)
	e.GET("/api/health", r.Health)
	return e
}

func doRequest(e *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	e.ServeHTTP(w, req)
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestTokensEndpointAppliesFilters(t *testing.T) {
	list := &fakeList{tokens: []models.Token{
		{Address: "a", MarketCap: 1000},
		{Address: "b", MarketCap: 6000},
		{Address: "c", MarketCap: 20000},
	}}
	e := testEngine(t, list, &fakeToken{})

	w, body := doRequest(e, "/api/tokens?type=new&marketCapMin=5000")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "codex", body["source"])
	assert.NotEmpty(t, body["timestamp"])
	data := body["data"].([]any)
	require.Len(t, data, 2)
	assert.Equal(t, screener.ListNew, list.lastKind)
}

func TestTokensEndpointUnknownTypeDefaultsToNew(t *testing.T) {
	list := &fakeList{}
	e := testEngine(t, list, &fakeToken{})

	w, _ := doRequest(e, "/api/tokens?type=wat")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, screener.ListNew, list.lastKind)
}

func TestTokenDetailFound(t *testing.T) {
	token := &fakeToken{token: &models.Token{Address: "mint1", Symbol: "TST", Price: 0.5}}
	e := testEngine(t, &fakeList{}, token)

	w, body := doRequest(e, "/api/tokens/mint1")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "fake", body["source"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "TST", data["symbol"])
}

func TestTokenDetailNotFound(t *testing.T) {
	e := testEngine(t, &fakeList{}, &fakeToken{})

	w, body := doRequest(e, "/api/tokens/unknown")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestHealth(t *testing.T) {
	e := testEngine(t, &fakeList{}, &fakeToken{})
	w, body := doRequest(e, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestParseFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	var got models.TokenFilters
	e.GET("/t", func(c *gin.Context) {
		got = parseFilters(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/t?liquidityMin=1500&launchpadName=Pump.fun,Bonk&includeScams=true&freezable=false&change24Min=-50&holdersMax=abc", nil)
	e.ServeHTTP(w, req)

	require.NotNil(t, got.LiquidityMin)
	assert.Equal(t, 1500.0, *got.LiquidityMin)
	assert.Equal(t, []string{"Pump.fun", "Bonk"}, got.LaunchpadName)
	require.NotNil(t, got.IncludeScams)
	assert.True(t, *got.IncludeScams)
	require.NotNil(t, got.Freezable)
	assert.False(t, *got.Freezable)
	require.NotNil(t, got.Change24Min)
	assert.Equal(t, -50.0, *got.Change24Min)
	// unparsable bounds are dropped, not zeroed
	assert.Nil(t, got.HoldersMax)
	assert.Nil(t, got.MarketCapMin)
}
