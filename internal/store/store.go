package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/store/schema"
)

// UpsertWalletInput is the outcome of one wallet analysis
type UpsertWalletInput struct {
	WalletAddress   string
	ReputationScore float64
	Metrics         domain.WalletMetrics
	AnalyzedAt      time.Time
}

// WalletStats aggregates the current wallet records
type WalletStats struct {
	TotalWalletsAnalyzed int64   `gorm:"column:total_wallets_analyzed"`
	AverageReputation    float64 `gorm:"column:average_reputation"`
	TotalTransactions    int64   `gorm:"column:total_transactions"`
	ActiveWallets        int64   `gorm:"column:active_wallets"`
}

// ReputationTrend is the average score of the analyses recorded on one UTC calendar day
type ReputationTrend struct {
	Date         string  `gorm:"column:date"`
	AverageScore float64 `gorm:"column:average_score"`
	WalletCount  int64   `gorm:"column:wallet_count"`
}

// CreateHealthCheckInput is one probe of an RPC endpoint
type CreateHealthCheckInput struct {
	CheckID        string
	RPCURL         string
	Status         domain.HealthStatus
	Timestamp      time.Time
	ResponseTimes  datatypes.JSON
	BlockchainInfo datatypes.JSON
	Error          *string
	Warning        *string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertWallet replaces the current record of a wallet, creating it if absent.
	// last_analyzed keeps the later of the stored and the new timestamp.
	UpsertWallet(ctx context.Context, input UpsertWalletInput) (*schema.Wallet, error)
	// AppendReputationHistory records a score in the wallet's history
	AppendReputationHistory(ctx context.Context, address string, score float64, timestamp time.Time) error
	// GetWalletByAddress returns the current record of a wallet, nil if it was never analyzed
	GetWalletByAddress(ctx context.Context, address string) (*schema.Wallet, error)
	// SaveWalletInsights stores generated insights on the current record of a wallet.
	// Returns domain.ErrWalletNotFound when the wallet was never analyzed.
	SaveWalletInsights(ctx context.Context, address string, insights datatypes.JSON, generatedAt time.Time) error
	// GetWalletHistory returns the most recent history entries of a wallet, newest first
	GetWalletHistory(ctx context.Context, address string, limit int) ([]schema.ReputationHistory, error)
	// GetLeaderboard returns the highest scored wallets, ties broken by address
	GetLeaderboard(ctx context.Context, limit int) ([]schema.Wallet, error)
	// GetWalletStats aggregates all current records, counting wallets analyzed at or after activeSince as active
	GetWalletStats(ctx context.Context, activeSince time.Time) (*WalletStats, error)
	// GetReputationTrends groups history entries recorded at or after since by UTC day, oldest first
	GetReputationTrends(ctx context.Context, since time.Time) ([]ReputationTrend, error)

	// CreateHealthCheck stores the result of an RPC health check
	CreateHealthCheck(ctx context.Context, input CreateHealthCheckInput) error
	// GetHealthChecksSince returns health checks taken at or after since, newest first
	GetHealthChecksSince(ctx context.Context, since time.Time, limit int) ([]schema.RPCHealthCheck, error)
}
