package constants

import "time"

const (
	SERVICE_NAME     = "sorel-api"
	API_ROOT_MESSAGE = "SoReL - Solana Reputation Layer API"

	DEFAULT_LEADERBOARD_LIMIT = 100
	MAX_LEADERBOARD_LIMIT     = 1000

	DEFAULT_HISTORY_LIMIT = 50
	MAX_HISTORY_LIMIT     = 500

	DEFAULT_TREND_DAYS = 7
	MAX_TREND_DAYS     = 365

	DEFAULT_MONITOR_HOURS = 24
	MAX_MONITOR_HOURS     = 24 * 30
	MAX_HEALTH_CHECKS     = 1000

	// ACTIVE_WALLET_WINDOW is how recently a wallet must have been analyzed to count as active
	ACTIVE_WALLET_WINDOW = 24 * time.Hour
)
