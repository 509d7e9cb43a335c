package config

import (
	"encoding/json"
	"os"

	"github.com/joho/godotenv"
)

type HttpServerConfig struct {
	Switch bool   `json:"switch"`
	Server string `json:"server"`
}

type SqliteConfig struct {
	Switch bool   `json:"switch"`
	Dir    string `json:"dir"`
}

type MysqlConfig struct {
	Dsn string `json:"dsn"`
}

// ProviderConfig holds upstream endpoints and keys. Keys are secrets and
// come from the environment (.env), not the config file; an empty key
// disables the adapter instead of failing.
type ProviderConfig struct {
	CodexEndpoint     string `json:"codex_endpoint"`
	CodexKey          string `json:"-"`
	DexScreenerBase   string `json:"dexscreener_base"`
	PumpFunBase       string `json:"pumpfun_base"`
	GeckoTerminalBase string `json:"geckoterminal_base"`
	HeliusRpcBase     string `json:"helius_rpc_base"`
	HeliusApiBase     string `json:"helius_api_base"`
	HeliusKey         string `json:"-"`
	MoralisBase       string `json:"moralis_base"`
	MoralisKey        string `json:"-"`
	GoPlusBase        string `json:"goplus_base"`
}

type LeaderboardConfig struct {
	CacheTTLSecond    int64   `json:"cache_ttl_second"`
	RequestsPerSecond float64 `json:"requests_per_second"`
	Top               int     `json:"top"`
	Warm              bool    `json:"warm"`
}

type Config struct {
	DebugLevel  int               `json:"debug_level"`
	HttpServer  HttpServerConfig  `json:"http_server"`
	Sqlite      SqliteConfig      `json:"sqlite"`
	Mysql       MysqlConfig       `json:"mysql"`
	LevelDB     string            `json:"leveldb"`
	Ipfs        string            `json:"ipfs"`
	Providers   ProviderConfig    `json:"providers"`
	Leaderboard LeaderboardConfig `json:"leaderboard"`
}

// LoadConfig fills cfg with defaults, overlays the JSON config file when
// present, and pulls API keys from the environment (.env is loaded first
// when it exists).
func LoadConfig(cfg *Config, path string) {
	*cfg = defaults()

	if path == "" {
		path = "config.json"
	}
	if data, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(data, cfg)
	}

	_ = godotenv.Load()
	cfg.Providers.CodexKey = os.Getenv("CODEX_API_KEY")
	cfg.Providers.HeliusKey = os.Getenv("HELIUS_API_KEY")
	cfg.Providers.MoralisKey = os.Getenv("MORALIS_API_KEY")
}

func defaults() Config {
	return Config{
		DebugLevel: 3,
		HttpServer: HttpServerConfig{Switch: true, Server: ":8080"},
		Sqlite:     SqliteConfig{Switch: true, Dir: "solscreener.db"},
		LevelDB:    "cache",
		Ipfs:       "localhost:5001",
		Providers: ProviderConfig{
			CodexEndpoint:     "https://graph.codex.io/graphql",
			DexScreenerBase:   "https://api.dexscreener.com",
			PumpFunBase:       "https://frontend-api.pump.fun",
			GeckoTerminalBase: "https://api.geckoterminal.com/api/v2",
			HeliusRpcBase:     "https://mainnet.helius-rpc.com",
			HeliusApiBase:     "https://api.helius.xyz",
			MoralisBase:       "https://solana-gateway.moralis.io",
			GoPlusBase:        "https://api.gopluslabs.io",
		},
		Leaderboard: LeaderboardConfig{
			CacheTTLSecond:    180,
			RequestsPerSecond: 5,
			Top:               10,
		},
	}
}
