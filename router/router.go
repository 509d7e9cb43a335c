package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"solscreener/metrics"
	"solscreener/screener"
)

// Router wires the screener services onto the gin engine.
type Router struct {
	lister      *screener.Lister
	resolver    *screener.Resolver
	charts      *screener.Charts
	leaderboard *screener.Leaderboard
	log         *zap.SugaredLogger
}

func NewRouter(lister *screener.Lister, resolver *screener.Resolver, charts *screener.Charts, leaderboard *screener.Leaderboard, log *zap.SugaredLogger) *Router {
	return &Router{
		lister:      lister,
		resolver:    resolver,
		charts:      charts,
		leaderboard: leaderboard,
		log:         log,
	}
}

func (r *Router) Register(e *gin.Engine) {
	api := e.Group("/api", RequestID(), Observe())
	api.GET("/tokens", r.Tokens)
	api.GET("/tokens/:address", r.Token)
	api.GET("/chart/:address", r.Chart)
	api.GET("/smart-wallets", r.SmartWallets)
	api.GET("/health", r.Health)
}

func (r *Router) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "ok",
		"timestamp": now(),
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// RequestID tags every request so a single slow fallback chain can be
// followed through the logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// Observe records request latency per route and status.
func Observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}

// Cors mirrors the permissive policy of the dashboard API.
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Request-Id")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
