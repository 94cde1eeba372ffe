package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/sorel-labs/sorel/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) error {
	auth, err := middleware.Auth(authCfg)
	if err != nil {
		return err
	}

	// Health check endpoint (no auth, no prefix)
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/", handler.Root)

		wallets := api.Group("/wallets")
		{
			wallets.POST("/analyze", handler.AnalyzeWallet)
			wallets.GET("/leaderboard/top", handler.GetLeaderboard)
			wallets.GET("/:address", handler.GetWallet)
			wallets.GET("/:address/history", handler.GetWalletHistory)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/stats", handler.GetStats)
			analytics.GET("/trends", handler.GetTrends)
		}

		// Language model calls are billed, so they sit behind the same credentials as the monitor
		ai := api.Group("/ai", auth)
		{
			ai.POST("/wallet-insights", handler.GenerateWalletInsights)
			ai.POST("/risk", handler.AssessWalletRisk)
		}

		// RPC monitor data, open unless credentials are configured
		monitor := api.Group("/monitor", auth)
		{
			monitor.GET("/checks", handler.GetHealthChecks)
			monitor.GET("/uptime", handler.GetUptime)
		}
	}

	return nil
}
