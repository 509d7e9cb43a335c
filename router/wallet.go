package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solscreener/models"
)

// SmartWallets handles GET /api/smart-wallets.
func (r *Router) SmartWallets(c *gin.Context) {
	wallets, cached, err := r.leaderboard.Top(c.Request.Context())
	if err != nil {
		r.log.Errorf("smart-wallets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	if wallets == nil {
		wallets = []models.SmartWallet{}
	}

	source := "moralis"
	if cached {
		source = "cache"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"wallets":   wallets,
		"source":    source,
		"timestamp": now(),
	})
}
