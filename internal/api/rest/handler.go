package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sorel-labs/sorel/internal/api/shared/constants"
	"github.com/sorel-labs/sorel/internal/api/shared/dto"
	"github.com/sorel-labs/sorel/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// Root returns the API banner
	// GET /api/
	Root(c *gin.Context)

	// AnalyzeWallet analyzes a wallet and stores its reputation
	// POST /api/wallets/analyze
	AnalyzeWallet(c *gin.Context)

	// GetWallet retrieves the current reputation record of a wallet
	// GET /api/wallets/:address
	GetWallet(c *gin.Context)

	// GetWalletHistory retrieves the past analyses of a wallet, newest first
	// GET /api/wallets/:address/history?limit=<limit>
	GetWalletHistory(c *gin.Context)

	// GetLeaderboard retrieves the highest scored wallets
	// GET /api/wallets/leaderboard/top?limit=<limit>
	GetLeaderboard(c *gin.Context)

	// GetStats retrieves aggregate statistics over every analyzed wallet
	// GET /api/analytics/stats
	GetStats(c *gin.Context)

	// GetTrends retrieves the daily average reputation score
	// GET /api/analytics/trends?days=<days>
	// Responds with an empty list when the aggregation fails
	GetTrends(c *gin.Context)

	// GetHealthChecks retrieves recent RPC health checks
	// GET /api/monitor/checks?hours=<hours>
	GetHealthChecks(c *gin.Context)

	// GetUptime retrieves RPC uptime statistics
	// GET /api/monitor/uptime?hours=<hours>
	GetUptime(c *gin.Context)

	// GenerateWalletInsights generates and stores a narrative of an analyzed wallet
	// POST /api/ai/wallet-insights
	GenerateWalletInsights(c *gin.Context)

	// AssessWalletRisk generates a security risk assessment of an analyzed wallet
	// POST /api/ai/risk
	AssessWalletRisk(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

func (h *handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": constants.API_ROOT_MESSAGE,
	})
}

// AnalyzeWallet analyzes a wallet and stores its reputation
func (h *handler) AnalyzeWallet(c *gin.Context) {
	req, ok := bindWalletRequest(c)
	if !ok {
		return
	}

	wallet, err := h.executor.AnalyzeWallet(c.Request.Context(), req.Address().String())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, wallet)
}

// GetWallet retrieves the current reputation record of a wallet
func (h *handler) GetWallet(c *gin.Context) {
	address := c.Param("address")

	wallet, err := h.executor.GetWallet(c.Request.Context(), address)
	if err != nil {
		respondError(c, err)
		return
	}

	if wallet == nil {
		respondNotFound(c, "Wallet not found")
		return
	}

	c.JSON(http.StatusOK, wallet)
}

// GetWalletHistory retrieves the past analyses of a wallet
func (h *handler) GetWalletHistory(c *gin.Context) {
	queryParams, err := ParseHistoryQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	history, err := h.executor.GetWalletHistory(c.Request.Context(), c.Param("address"), queryParams.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetLeaderboard retrieves the highest scored wallets
func (h *handler) GetLeaderboard(c *gin.Context) {
	queryParams, err := ParseLeaderboardQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	leaderboard, err := h.executor.GetLeaderboard(c.Request.Context(), queryParams.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leaderboard)
}

// GetStats retrieves aggregate statistics
func (h *handler) GetStats(c *gin.Context) {
	stats, err := h.executor.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetTrends retrieves the daily average reputation score
func (h *handler) GetTrends(c *gin.Context) {
	queryParams, err := ParseTrendsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, h.executor.GetTrends(c.Request.Context(), queryParams.Days))
}

// GetHealthChecks retrieves recent RPC health checks
func (h *handler) GetHealthChecks(c *gin.Context) {
	queryParams, err := ParseMonitorQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	checks, err := h.executor.GetHealthChecks(c.Request.Context(), queryParams.Hours)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, checks)
}

// GetUptime retrieves RPC uptime statistics
func (h *handler) GetUptime(c *gin.Context) {
	queryParams, err := ParseMonitorQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	uptime, err := h.executor.GetUptime(c.Request.Context(), queryParams.Hours)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, uptime)
}

// GenerateWalletInsights generates and stores a narrative of an analyzed wallet
func (h *handler) GenerateWalletInsights(c *gin.Context) {
	req, ok := bindWalletRequest(c)
	if !ok {
		return
	}

	insights, err := h.executor.GenerateWalletInsights(c.Request.Context(), req.Address().String())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

// AssessWalletRisk generates a security risk assessment of an analyzed wallet
func (h *handler) AssessWalletRisk(c *gin.Context) {
	req, ok := bindWalletRequest(c)
	if !ok {
		return
	}

	risk, err := h.executor.AssessWalletRisk(c.Request.Context(), req.Address().String())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, risk)
}

// bindWalletRequest decodes and validates a wallet address body, responding 400 when it is not usable
func bindWalletRequest(c *gin.Context) (*dto.AnalyzeWalletRequest, bool) {
	var req dto.AnalyzeWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return nil, false
	}

	if err := req.Validate(); err != nil {
		respondBadRequest(c, "Invalid Solana wallet address", err.Error())
		return nil, false
	}

	return &req, true
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": constants.SERVICE_NAME,
	})
}
