package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/store/schema"
)

const (
	// MAX_QUERY_LIMIT bounds every list query
	MAX_QUERY_LIMIT = 1000

	DEFAULT_QUERY_LIMIT = 100
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool of the *sql.DB underlying a GORM connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// MaxIdleConns never exceeds MaxOpenConns.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	maxIdleConns = min(maxIdleConns, maxOpenConns)

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// normalizeLimit clamps a caller supplied limit into [1, MAX_QUERY_LIMIT]
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DEFAULT_QUERY_LIMIT
	}
	return min(limit, MAX_QUERY_LIMIT)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// UpsertWallet replaces the current record of a wallet, creating it if absent
func (s *pgStore) UpsertWallet(ctx context.Context, input UpsertWalletInput) (*schema.Wallet, error) {
	if input.WalletAddress == "" {
		return nil, fmt.Errorf("wallet address is required")
	}

	wallet := schema.Wallet{
		ID:                   uuid.New(),
		WalletAddress:        input.WalletAddress,
		ReputationScore:      input.ReputationScore,
		TransactionCount:     input.Metrics.TransactionCount,
		TotalVolume:          input.Metrics.TotalVolume,
		ContractInteractions: input.Metrics.ContractInteractions,
		WalletAgeDays:        input.Metrics.WalletAgeDays,
		ActivityFrequency:    input.Metrics.ActivityFrequency,
		UniquePrograms:       input.Metrics.UniquePrograms,
		LastAnalyzed:         input.AnalyzedAt,
	}

	// Full overwrite of the score and metrics, the id and created_at of an existing row are kept
	updates := clause.AssignmentColumns([]string{
		"reputation_score",
		"transaction_count",
		"total_volume",
		"contract_interactions",
		"wallet_age_days",
		"activity_frequency",
		"unique_programs",
		"updated_at",
	})
	updates = append(updates, clause.Assignment{
		Column: clause.Column{Name: "last_analyzed"},
		Value:  gorm.Expr("GREATEST(wallets.last_analyzed, EXCLUDED.last_analyzed)"),
	})

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallet_address"}},
			DoUpdates: updates,
		}).
		Clauses(clause.Returning{}).
		Create(&wallet).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert wallet: %w", err)
	}

	return &wallet, nil
}

// AppendReputationHistory records a score in the wallet's history
func (s *pgStore) AppendReputationHistory(ctx context.Context, address string, score float64, timestamp time.Time) error {
	entry := schema.ReputationHistory{
		WalletAddress:   address,
		ReputationScore: score,
		Timestamp:       timestamp,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to append reputation history: %w", err)
	}
	return nil
}

// GetWalletByAddress returns the current record of a wallet
func (s *pgStore) GetWalletByAddress(ctx context.Context, address string) (*schema.Wallet, error) {
	var wallet schema.Wallet
	err := s.db.WithContext(ctx).Where("wallet_address = ?", address).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// SaveWalletInsights stores generated insights on the current record of a wallet
func (s *pgStore) SaveWalletInsights(ctx context.Context, address string, insights datatypes.JSON, generatedAt time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Wallet{}).
		Where("wallet_address = ?", address).
		Updates(map[string]interface{}{
			"ai_insights":   insights,
			"ai_updated_at": generatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to save wallet insights: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrWalletNotFound
	}
	return nil
}

// GetWalletHistory returns the most recent history entries of a wallet
func (s *pgStore) GetWalletHistory(ctx context.Context, address string, limit int) ([]schema.ReputationHistory, error) {
	var entries []schema.ReputationHistory
	err := s.db.WithContext(ctx).
		Where("wallet_address = ?", address).
		Order(`"timestamp" DESC`).
		Order("id DESC").
		Limit(normalizeLimit(limit)).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet history: %w", err)
	}
	return entries, nil
}

// GetLeaderboard returns the highest scored wallets
func (s *pgStore) GetLeaderboard(ctx context.Context, limit int) ([]schema.Wallet, error) {
	var wallets []schema.Wallet
	err := s.db.WithContext(ctx).
		Order("reputation_score DESC").
		Order("wallet_address ASC").
		Limit(normalizeLimit(limit)).
		Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return wallets, nil
}

// GetWalletStats aggregates all current wallet records
func (s *pgStore) GetWalletStats(ctx context.Context, activeSince time.Time) (*WalletStats, error) {
	var stats WalletStats
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_wallets_analyzed,
			COALESCE(AVG(reputation_score), 0) AS average_reputation,
			COALESCE(SUM(transaction_count), 0) AS total_transactions,
			COUNT(*) FILTER (WHERE last_analyzed >= ?) AS active_wallets
		FROM wallets
	`, activeSince).Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet stats: %w", err)
	}

	stats.AverageReputation = round2(stats.AverageReputation)

	return &stats, nil
}

// GetReputationTrends groups history entries by UTC calendar day
func (s *pgStore) GetReputationTrends(ctx context.Context, since time.Time) ([]ReputationTrend, error) {
	var trends []ReputationTrend
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			to_char("timestamp" AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS date,
			AVG(reputation_score) AS average_score,
			COUNT(*) AS wallet_count
		FROM reputation_history
		WHERE "timestamp" >= ?
		GROUP BY date
		ORDER BY date ASC
	`, since).Scan(&trends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reputation trends: %w", err)
	}

	for i := range trends {
		trends[i].AverageScore = round2(trends[i].AverageScore)
	}

	return trends, nil
}

// CreateHealthCheck stores the result of an RPC health check
func (s *pgStore) CreateHealthCheck(ctx context.Context, input CreateHealthCheckInput) error {
	check := schema.RPCHealthCheck{
		CheckID:        input.CheckID,
		RPCURL:         input.RPCURL,
		Status:         input.Status,
		Timestamp:      input.Timestamp,
		ResponseTimes:  input.ResponseTimes,
		BlockchainInfo: input.BlockchainInfo,
		Error:          input.Error,
		Warning:        input.Warning,
	}
	if err := s.db.WithContext(ctx).Create(&check).Error; err != nil {
		return fmt.Errorf("failed to create health check: %w", err)
	}
	return nil
}

// GetHealthChecksSince returns health checks taken at or after since
func (s *pgStore) GetHealthChecksSince(ctx context.Context, since time.Time, limit int) ([]schema.RPCHealthCheck, error) {
	var checks []schema.RPCHealthCheck
	err := s.db.WithContext(ctx).
		Where(`"timestamp" >= ?`, since).
		Order(`"timestamp" DESC`).
		Limit(normalizeLimit(limit)).
		Find(&checks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get health checks: %w", err)
	}
	return checks, nil
}
