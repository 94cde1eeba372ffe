package dto

import "github.com/sorel-labs/sorel/internal/store"

// StatsResponse aggregates every analyzed wallet
type StatsResponse struct {
	TotalWalletsAnalyzed int64   `json:"total_wallets_analyzed"`
	AverageReputation    float64 `json:"average_reputation"`
	TotalTransactions    int64   `json:"total_transactions"`
	ActiveWallets24h     int64   `json:"active_wallets_24h"`
}

// TrendPoint is the average score of the analyses recorded on one UTC day
type TrendPoint struct {
	Date         string  `json:"date"`
	AverageScore float64 `json:"average_score"`
	WalletCount  int64   `json:"wallet_count"`
}

func MapStatsToDTO(s *store.WalletStats) *StatsResponse {
	return &StatsResponse{
		TotalWalletsAnalyzed: s.TotalWalletsAnalyzed,
		AverageReputation:    s.AverageReputation,
		TotalTransactions:    s.TotalTransactions,
		ActiveWallets24h:     s.ActiveWallets,
	}
}

func MapTrendsToDTO(trends []store.ReputationTrend) []TrendPoint {
	points := make([]TrendPoint, len(trends))
	for i, t := range trends {
		points[i] = TrendPoint{
			Date:         t.Date,
			AverageScore: t.AverageScore,
			WalletCount:  t.WalletCount,
		}
	}
	return points
}
