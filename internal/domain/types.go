package domain

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// WalletAddress is a base58 encoded Solana public key
type WalletAddress string

// Validate checks the address length and that it decodes to a 32 byte public key
func (a WalletAddress) Validate() error {
	l := len(a)
	if l < MIN_WALLET_ADDRESS_LENGTH || l > MAX_WALLET_ADDRESS_LENGTH {
		return fmt.Errorf("%w: length must be between %d and %d characters",
			ErrInvalidWalletAddress, MIN_WALLET_ADDRESS_LENGTH, MAX_WALLET_ADDRESS_LENGTH)
	}

	// base58.Decode returns an empty slice for any character outside the alphabet
	decoded := base58.Decode(string(a))
	if len(decoded) != SOLANA_PUBKEY_LENGTH {
		return fmt.Errorf("%w: not a valid public key", ErrInvalidWalletAddress)
	}

	return nil
}

// Valid reports whether the address is a valid Solana public key
func (a WalletAddress) Valid() bool {
	return a.Validate() == nil
}

// String returns the string representation of the address
func (a WalletAddress) String() string {
	return string(a)
}

// WalletMetrics is the behavioral metric vector derived from on-chain activity.
// The zero value is the metric vector of a wallet with no observable activity.
type WalletMetrics struct {
	TransactionCount     int     `json:"transaction_count"`
	TotalVolume          float64 `json:"total_volume"`
	ContractInteractions int     `json:"contract_interactions"`
	WalletAgeDays        int     `json:"wallet_age_days"`
	ActivityFrequency    float64 `json:"activity_frequency"`
	UniquePrograms       int     `json:"unique_programs"`
}

// IsZero reports whether every metric is zero
func (m WalletMetrics) IsZero() bool {
	return m == WalletMetrics{}
}

// ReputationTier is a human readable bucket for a reputation score
type ReputationTier string

const (
	ReputationTierExcellent ReputationTier = "Excellent"
	ReputationTierGood      ReputationTier = "Good"
	ReputationTierFair      ReputationTier = "Fair"
	ReputationTierLow       ReputationTier = "Low"
)

// HealthStatus is the classification of an RPC health probe
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// IsValidHealthStatus checks if a status is one of the known values
func IsValidHealthStatus(status HealthStatus) bool {
	return status == HealthStatusHealthy ||
		status == HealthStatusDegraded ||
		status == HealthStatusUnhealthy
}

// WalletAnalyzedEvent is published after a wallet has been scored and persisted
type WalletAnalyzedEvent struct {
	WalletAddress   string         `json:"wallet_address"`
	ReputationScore float64        `json:"reputation_score"`
	Tier            ReputationTier `json:"tier"`
	Metrics         WalletMetrics  `json:"metrics"`
	AnalyzedAt      time.Time      `json:"analyzed_at"`
}
