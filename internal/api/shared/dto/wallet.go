package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/logger"
	"github.com/sorel-labs/sorel/internal/reputation"
	"github.com/sorel-labs/sorel/internal/store/schema"
)

// AnalyzeWalletRequest is the body of POST /api/wallets/analyze and of the /api/ai routes
type AnalyzeWalletRequest struct {
	WalletAddress string `json:"wallet_address"`
}

// Address returns the requested wallet address, exactly as sent
func (r *AnalyzeWalletRequest) Address() domain.WalletAddress {
	return domain.WalletAddress(r.WalletAddress)
}

// Validate checks the wallet address is a Solana public key
func (r *AnalyzeWalletRequest) Validate() error {
	if r.Address() == "" {
		return fmt.Errorf("wallet_address is required")
	}
	return r.Address().Validate()
}

// WalletResponse is the current reputation record of a wallet
type WalletResponse struct {
	ID              string                 `json:"id"`
	WalletAddress   string                 `json:"wallet_address"`
	ReputationScore float64                `json:"reputation_score"`
	Tier            domain.ReputationTier  `json:"tier"`
	Metrics         domain.WalletMetrics   `json:"metrics"`
	LastAnalyzed    time.Time              `json:"last_analyzed"`
	Rank            *int                   `json:"rank,omitempty"`
	AIInsights      *domain.WalletInsights `json:"ai_insights,omitempty"`
	AIUpdatedAt     *time.Time             `json:"ai_updated_at,omitempty"`
}

// WalletHistoryEntry is one past analysis of a wallet
type WalletHistoryEntry struct {
	WalletAddress   string    `json:"wallet_address"`
	ReputationScore float64   `json:"reputation_score"`
	Timestamp       time.Time `json:"timestamp"`
}

// MapWalletToDTO maps a schema.Wallet to WalletResponse
func MapWalletToDTO(w *schema.Wallet) *WalletResponse {
	resp := &WalletResponse{
		ID:              w.ID.String(),
		WalletAddress:   w.WalletAddress,
		ReputationScore: w.ReputationScore,
		Tier:            reputation.Tier(w.ReputationScore),
		Metrics:         w.Metrics(),
		LastAnalyzed:    w.LastAnalyzed,
	}

	if len(w.AIInsights) > 0 && string(w.AIInsights) != "null" {
		var insights domain.WalletInsights
		if err := json.Unmarshal(w.AIInsights, &insights); err != nil {
			logger.Warn("Failed to decode wallet insights",
				zap.String("wallet_address", w.WalletAddress),
				zap.Error(err))
		} else {
			resp.AIInsights = &insights
			resp.AIUpdatedAt = w.AIUpdatedAt
		}
	}

	return resp
}

// MapLeaderboardToDTO maps wallets to responses ranked 1..N in the given order
func MapLeaderboardToDTO(wallets []schema.Wallet) []WalletResponse {
	entries := make([]WalletResponse, len(wallets))
	for i := range wallets {
		entry := MapWalletToDTO(&wallets[i])
		rank := i + 1
		entry.Rank = &rank
		entries[i] = *entry
	}
	return entries
}

// MapHistoryToDTO maps history rows to WalletHistoryEntry
func MapHistoryToDTO(history []schema.ReputationHistory) []WalletHistoryEntry {
	entries := make([]WalletHistoryEntry, len(history))
	for i, h := range history {
		entries[i] = WalletHistoryEntry{
			WalletAddress:   h.WalletAddress,
			ReputationScore: h.ReputationScore,
			Timestamp:       h.Timestamp,
		}
	}
	return entries
}
