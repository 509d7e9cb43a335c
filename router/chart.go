package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"solscreener/models"
	"solscreener/utils"
)

// Chart handles GET /api/chart/:address?interval=15m.
func (r *Router) Chart(c *gin.Context) {
	address := strings.TrimSpace(c.Param("address"))
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "address is required",
		})
		return
	}
	interval := utils.ChartInterval(c.DefaultQuery("interval", "15m")).Name

	series, err := r.charts.Series(c.Request.Context(), address, interval)
	if err != nil {
		r.log.Errorf("chart: %s failed: %v", address, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"data":    []models.OHLCV{},
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        series.Candles,
		"source":      series.Source,
		"synthetic":   series.Synthetic,
		"interval":    interval,
		"poolAddress": series.PoolAddress,
		"timestamp":   now(),
	})
}
