package router

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"solscreener/models"
	"solscreener/screener"
)

// Tokens handles GET /api/tokens?type=new|bonding|migrated|trending plus
// the filter query parameters.
func (r *Router) Tokens(c *gin.Context) {
	kind := screener.ParseListKind(c.Query("type"))
	filters := parseFilters(c)

	limit := 20
	if kind == screener.ListTrending {
		limit = 50
	}

	tokens, source, err := r.lister.List(c.Request.Context(), kind, filters, limit)
	if err != nil {
		r.log.Errorf("tokens: list %s failed: %v", kind, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"data":      []models.Token{},
			"source":    "error",
			"error":     err.Error(),
			"timestamp": now(),
		})
		return
	}
	if tokens == nil {
		tokens = []models.Token{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      tokens,
		"source":    source,
		"filters":   filters,
		"timestamp": now(),
	})
}

// Token handles GET /api/tokens/:address.
func (r *Router) Token(c *gin.Context) {
	address := strings.TrimSpace(c.Param("address"))
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "address is required",
		})
		return
	}

	token, source, err := r.resolver.Resolve(c.Request.Context(), address)
	if err != nil {
		if errors.Is(err, screener.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "token not found",
			})
			return
		}
		r.log.Errorf("token: resolve %s failed: %v", address, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      token,
		"source":    source,
		"timestamp": now(),
	})
}

func parseFilters(c *gin.Context) models.TokenFilters {
	var f models.TokenFilters

	f.MarketCapMin = queryFloat(c, "marketCapMin")
	f.MarketCapMax = queryFloat(c, "marketCapMax")
	f.LiquidityMin = queryFloat(c, "liquidityMin")
	f.LiquidityMax = queryFloat(c, "liquidityMax")
	f.Volume24Min = queryFloat(c, "volume24Min")
	f.Volume24Max = queryFloat(c, "volume24Max")
	f.HoldersMin = queryFloat(c, "holdersMin")
	f.HoldersMax = queryFloat(c, "holdersMax")

	f.BuyCount24Min = queryFloat(c, "buyCount24Min")
	f.BuyCount24Max = queryFloat(c, "buyCount24Max")
	f.SellCount24Min = queryFloat(c, "sellCount24Min")
	f.SellCount24Max = queryFloat(c, "sellCount24Max")
	f.TxnCount24Min = queryFloat(c, "txnCount24Min")
	f.TxnCount24Max = queryFloat(c, "txnCount24Max")
	f.Change24Min = queryFloat(c, "change24Min")
	f.Change24Max = queryFloat(c, "change24Max")

	if v := c.Query("launchpadName"); v != "" {
		f.LaunchpadName = strings.Split(v, ",")
	}
	f.GraduationPercentMin = queryFloat(c, "graduationPercentMin")
	f.GraduationPercentMax = queryFloat(c, "graduationPercentMax")

	f.SniperCountMax = queryFloat(c, "sniperCountMax")
	f.SniperHeldPercentageMax = queryFloat(c, "sniperHeldPercentageMax")
	f.BundlerCountMax = queryFloat(c, "bundlerCountMax")
	f.BundlerHeldPercentageMax = queryFloat(c, "bundlerHeldPercentageMax")
	f.DevHeldPercentageMax = queryFloat(c, "devHeldPercentageMax")
	f.InsiderHeldPercentageMax = queryFloat(c, "insiderHeldPercentageMax")
	f.Freezable = queryBool(c, "freezable")
	f.IncludeScams = queryBool(c, "includeScams")

	f.CreatedAfter = queryFloat(c, "createdAfter")
	f.CreatedBefore = queryFloat(c, "createdBefore")
	return f
}

func queryFloat(c *gin.Context, name string) *float64 {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func queryBool(c *gin.Context, name string) *bool {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	b := v == "true"
	return &b
}
