package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"solscreener/config"
	"solscreener/metrics"
	"solscreener/providers"
	"solscreener/router"
	"solscreener/screener"
	"solscreener/storage"
)

var (
	cfg config.Config
)

func main() {
	config.LoadConfig(&cfg, "")

	log := newLogger(cfg.DebugLevel)
	defer log.Sync()
	slog := log.Sugar()

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	var dbClient *storage.DBClient
	var err error
	if cfg.Sqlite.Switch {
		dbClient, err = storage.NewSqliteClient(cfg.Sqlite.Dir, slog)
	} else {
		dbClient, err = storage.NewMysqlClient(cfg.Mysql.Dsn, slog)
	}
	if err != nil {
		slog.Fatalf("storage: %v", err)
	}
	defer dbClient.Stop()

	cache, err := storage.NewCacheClient(cfg.LevelDB)
	if err != nil {
		slog.Fatalf("leveldb: %v", err)
	}
	defer cache.Stop()

	p := cfg.Providers
	codex := providers.NewCodex(p.CodexEndpoint, p.CodexKey, slog)
	dex := providers.NewDexScreener(p.DexScreenerBase, slog)
	pump := providers.NewPumpFun(p.PumpFunBase, slog)
	gecko := providers.NewGeckoTerminal(p.GeckoTerminalBase, slog)
	helius := providers.NewHelius(p.HeliusRpcBase, p.HeliusApiBase, p.HeliusKey, slog)
	moralis := providers.NewMoralis(p.MoralisBase, p.MoralisKey, slog)
	goplus := providers.NewGoPlus(p.GoPlusBase, slog)

	if !codex.Enabled() {
		slog.Warn("CODEX_API_KEY not set; filtered listings disabled, token detail degrades to fallbacks")
	}

	socials := screener.NewSocials(moralis, cache, cfg.Ipfs, slog)
	resolver := screener.NewResolver(
		[]screener.TokenSource{codex, dex, pump},
		helius, goplus, helius, socials, slog,
	)
	lister := screener.NewLister(codex, dex, slog)
	charts := screener.NewCharts(dex, gecko, dex, slog)
	leaderboard := screener.NewLeaderboard(
		dbClient, moralis, dex,
		cfg.Leaderboard.RequestsPerSecond,
		time.Duration(cfg.Leaderboard.CacheTTLSecond)*time.Second,
		cfg.Leaderboard.Top, slog,
	)

	if cfg.Leaderboard.Warm && moralis.Enabled() {
		leaderboard.Warm(ctx, wg)
	}

	if cfg.HttpServer.Switch {
		metrics.MustRegister()

		grt := gin.New()
		grt.Use(gin.Recovery())
		grt.Use(router.Cors())

		grt.GET("/metrics", func(c *gin.Context) {
			promhttp.Handler().ServeHTTP(c.Writer, c.Request)
		})

		rt := router.NewRouter(lister, resolver, charts, leaderboard, slog)
		rt.Register(grt)

		srv := &http.Server{Addr: cfg.HttpServer.Server, Handler: grt}
		wg.Add(1)
		go func() {
			defer wg.Done()
			slog.Infof("http server listening on %s", cfg.HttpServer.Server)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Errorf("http server: %v", err)
				cancel()
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			<-ctx.Done()
			shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
			defer stop()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		slog.Info("received an interrupt, stopping services...")
		cancel()
	}()
	wg.Wait()
}

func newLogger(debugLevel int) *zap.Logger {
	level := zapcore.InfoLevel
	if debugLevel >= 4 {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}
