package schema

import "time"

// ReputationHistory represents the reputation_history table.
// Rows are append-only, one per analysis.
type ReputationHistory struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	WalletAddress   string    `gorm:"column:wallet_address;not null;type:varchar(44)"`
	ReputationScore float64   `gorm:"column:reputation_score;not null"`
	Timestamp       time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
}

func (ReputationHistory) TableName() string {
	return "reputation_history"
}
