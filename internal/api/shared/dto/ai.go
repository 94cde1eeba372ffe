package dto

import (
	"time"

	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/store/schema"
)

// WalletInsightsResponse is the response of POST /api/ai/wallet-insights
type WalletInsightsResponse struct {
	WalletAddress string                 `json:"wallet_address"`
	Insights      *domain.WalletInsights `json:"insights"`
	GeneratedAt   time.Time              `json:"generated_at"`
}

// RiskAssessmentResponse is the response of POST /api/ai/risk
type RiskAssessmentResponse struct {
	WalletAddress string                 `json:"wallet_address"`
	Risk          *domain.RiskAssessment `json:"risk"`
	GeneratedAt   time.Time              `json:"generated_at"`
}

// MapWalletToSnapshot extracts the analysis handed to the language model
func MapWalletToSnapshot(w *schema.Wallet) domain.WalletSnapshot {
	return domain.WalletSnapshot{
		WalletAddress:   w.WalletAddress,
		ReputationScore: w.ReputationScore,
		Metrics:         w.Metrics(),
	}
}
