package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/sorel-labs/sorel/internal/domain"
)

// Wallet represents the wallets table, the current reputation of each analyzed wallet.
// There is exactly one row per wallet address, every analysis overwrites it in place.
type Wallet struct {
	// ID is the public identifier of the record
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`

	// WalletAddress is the base58 encoded public key
	WalletAddress string `gorm:"column:wallet_address;not null;uniqueIndex;type:varchar(44)"`

	// ReputationScore is the score computed from the metric columns below, in [0, 1000]
	ReputationScore float64 `gorm:"column:reputation_score;not null;default:0"`

	// Metric vector of the last analysis
	TransactionCount     int     `gorm:"column:transaction_count;not null;default:0"`
	TotalVolume          float64 `gorm:"column:total_volume;not null;default:0"`
	ContractInteractions int     `gorm:"column:contract_interactions;not null;default:0"`
	WalletAgeDays        int     `gorm:"column:wallet_age_days;not null;default:0"`
	ActivityFrequency    float64 `gorm:"column:activity_frequency;not null;default:0"`
	UniquePrograms       int     `gorm:"column:unique_programs;not null;default:0"`

	// LastAnalyzed never moves backwards for a given wallet
	LastAnalyzed time.Time `gorm:"column:last_analyzed;not null;type:timestamptz"`

	// AIInsights is the last generated domain.WalletInsights, kept across re-analyses
	AIInsights  datatypes.JSON `gorm:"column:ai_insights;type:jsonb"`
	AIUpdatedAt *time.Time     `gorm:"column:ai_updated_at;type:timestamptz"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Wallet model
func (Wallet) TableName() string {
	return "wallets"
}

// Metrics returns the metric vector stored with the wallet
func (w Wallet) Metrics() domain.WalletMetrics {
	return domain.WalletMetrics{
		TransactionCount:     w.TransactionCount,
		TotalVolume:          w.TotalVolume,
		ContractInteractions: w.ContractInteractions,
		WalletAgeDays:        w.WalletAgeDays,
		ActivityFrequency:    w.ActivityFrequency,
		UniquePrograms:       w.UniquePrograms,
	}
}
