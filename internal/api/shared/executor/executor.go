package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sorel-labs/sorel/internal/adapter"
	"github.com/sorel-labs/sorel/internal/analyzer"
	"github.com/sorel-labs/sorel/internal/api/shared/constants"
	"github.com/sorel-labs/sorel/internal/api/shared/dto"
	apierrors "github.com/sorel-labs/sorel/internal/api/shared/errors"
	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/logger"
	"github.com/sorel-labs/sorel/internal/messaging"
	"github.com/sorel-labs/sorel/internal/monitor"
	"github.com/sorel-labs/sorel/internal/providers/llm"
	"github.com/sorel-labs/sorel/internal/reputation"
	"github.com/sorel-labs/sorel/internal/store"
	"github.com/sorel-labs/sorel/internal/store/schema"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// AnalyzeWallet extracts the metrics of a wallet, scores them and persists the result
	AnalyzeWallet(ctx context.Context, address string) (*dto.WalletResponse, error)

	// GetWallet retrieves the current record of a wallet, nil if it was never analyzed
	GetWallet(ctx context.Context, address string) (*dto.WalletResponse, error)

	// GetWalletHistory retrieves the most recent analyses of a wallet
	GetWalletHistory(ctx context.Context, address string, limit int) ([]dto.WalletHistoryEntry, error)

	// GetLeaderboard retrieves the highest scored wallets ranked 1..N
	GetLeaderboard(ctx context.Context, limit int) ([]dto.WalletResponse, error)

	// GetStats aggregates every analyzed wallet
	GetStats(ctx context.Context) (*dto.StatsResponse, error)

	// GetTrends retrieves the daily average score over the trailing days, empty on failure
	GetTrends(ctx context.Context, days int) []dto.TrendPoint

	// GetHealthChecks retrieves the RPC health checks of the trailing hours
	GetHealthChecks(ctx context.Context, hours int) (*dto.HealthCheckListResponse, error)

	// GetUptime computes RPC uptime over the trailing hours
	GetUptime(ctx context.Context, hours int) (*monitor.UptimeStats, error)

	// GenerateWalletInsights asks the language model about an analyzed wallet and stores the answer on its record
	GenerateWalletInsights(ctx context.Context, address string) (*dto.WalletInsightsResponse, error)

	// AssessWalletRisk asks the language model for the security risk of an analyzed wallet
	AssessWalletRisk(ctx context.Context, address string) (*dto.RiskAssessmentResponse, error)
}

type executor struct {
	store     store.Store
	extractor analyzer.Extractor
	publisher messaging.Publisher
	llm       llm.Client // nil when no model is configured
	json      adapter.JSON
	clock     adapter.Clock
}

func NewExecutor(st store.Store, extractor analyzer.Extractor, publisher messaging.Publisher, llmClient llm.Client, json adapter.JSON, clock adapter.Clock) Executor {
	return &executor{
		store:     st,
		extractor: extractor,
		publisher: publisher,
		llm:       llmClient,
		json:      json,
		clock:     clock,
	}
}

func (e *executor) AnalyzeWallet(ctx context.Context, address string) (*dto.WalletResponse, error) {
	walletAddress := domain.WalletAddress(address)
	if err := walletAddress.Validate(); err != nil {
		return nil, apierrors.NewBadRequestError("Invalid Solana wallet address", err.Error())
	}

	metrics := e.extractor.Extract(ctx, walletAddress)
	score := reputation.Score(metrics)
	analyzedAt := e.clock.Now()

	wallet, err := e.store.UpsertWallet(ctx, store.UpsertWalletInput{
		WalletAddress:   walletAddress.String(),
		ReputationScore: reputation.RoundScore(score),
		Metrics:         metrics,
		AnalyzedAt:      analyzedAt,
	})
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("wallet_address", walletAddress.String()))
		return nil, apierrors.NewDatabaseError("Failed to save wallet analysis", err.Error())
	}

	// The current record is already saved, history and events are best-effort
	if err := e.store.AppendReputationHistory(ctx, walletAddress.String(), score, analyzedAt); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to append reputation history: %w", err),
			zap.String("wallet_address", walletAddress.String()))
	}

	event := &domain.WalletAnalyzedEvent{
		WalletAddress:   wallet.WalletAddress,
		ReputationScore: wallet.ReputationScore,
		Tier:            reputation.Tier(wallet.ReputationScore),
		Metrics:         metrics,
		AnalyzedAt:      analyzedAt,
	}
	if err := e.publisher.PublishWalletAnalyzed(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish wallet analyzed event",
			zap.String("wallet_address", walletAddress.String()),
			zap.Error(err))
	}

	logger.InfoCtx(ctx, "Wallet analyzed",
		zap.String("wallet_address", walletAddress.String()),
		zap.Float64("reputation_score", wallet.ReputationScore),
		zap.Int("transaction_count", metrics.TransactionCount))

	return dto.MapWalletToDTO(wallet), nil
}

func (e *executor) GetWallet(ctx context.Context, address string) (*dto.WalletResponse, error) {
	wallet, err := e.store.GetWalletByAddress(ctx, address)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get wallet: %v", err))
	}

	if wallet == nil {
		return nil, nil
	}

	return dto.MapWalletToDTO(wallet), nil
}

func (e *executor) GetWalletHistory(ctx context.Context, address string, limit int) ([]dto.WalletHistoryEntry, error) {
	walletAddress := address

	wallet, err := e.store.GetWalletByAddress(ctx, walletAddress)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get wallet: %v", err))
	}
	if wallet == nil {
		return nil, apierrors.NewNotFoundError("Wallet not found")
	}

	history, err := e.store.GetWalletHistory(ctx, walletAddress, clampLimit(limit, constants.DEFAULT_HISTORY_LIMIT, constants.MAX_HISTORY_LIMIT))
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get wallet history: %v", err))
	}

	return dto.MapHistoryToDTO(history), nil
}

func (e *executor) GetLeaderboard(ctx context.Context, limit int) ([]dto.WalletResponse, error) {
	wallets, err := e.store.GetLeaderboard(ctx, clampLimit(limit, constants.DEFAULT_LEADERBOARD_LIMIT, constants.MAX_LEADERBOARD_LIMIT))
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get leaderboard: %v", err))
	}

	return dto.MapLeaderboardToDTO(wallets), nil
}

func (e *executor) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	stats, err := e.store.GetWalletStats(ctx, e.clock.Now().Add(-constants.ACTIVE_WALLET_WINDOW))
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get stats: %v", err))
	}

	return dto.MapStatsToDTO(stats), nil
}

func (e *executor) GetTrends(ctx context.Context, days int) []dto.TrendPoint {
	days = clampLimit(days, constants.DEFAULT_TREND_DAYS, constants.MAX_TREND_DAYS)
	since := e.clock.Now().Add(-time.Duration(days) * 24 * time.Hour)

	trends, err := e.store.GetReputationTrends(ctx, since)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to get reputation trends: %w", err), zap.Int("days", days))
		return []dto.TrendPoint{}
	}

	return dto.MapTrendsToDTO(trends)
}

func (e *executor) GetHealthChecks(ctx context.Context, hours int) (*dto.HealthCheckListResponse, error) {
	hours = clampLimit(hours, constants.DEFAULT_MONITOR_HOURS, constants.MAX_MONITOR_HOURS)
	since := e.clock.Now().Add(-time.Duration(hours) * time.Hour)

	checks, err := e.store.GetHealthChecksSince(ctx, since, constants.MAX_HEALTH_CHECKS)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get health checks: %v", err))
	}

	resp := &dto.HealthCheckListResponse{
		PeriodHours: hours,
		Checks:      make([]dto.HealthCheckResponse, len(checks)),
	}
	for i := range checks {
		resp.Checks[i] = dto.MapHealthCheckToDTO(&checks[i])
	}

	return resp, nil
}

func (e *executor) GetUptime(ctx context.Context, hours int) (*monitor.UptimeStats, error) {
	hours = clampLimit(hours, constants.DEFAULT_MONITOR_HOURS, constants.MAX_MONITOR_HOURS)
	since := e.clock.Now().Add(-time.Duration(hours) * time.Hour)

	checks, err := e.store.GetHealthChecksSince(ctx, since, constants.MAX_HEALTH_CHECKS)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get health checks: %v", err))
	}

	stats, err := monitor.ComputeUptimeStats(checks, hours)
	if err != nil {
		return nil, apierrors.NewNotFoundError("No health checks recorded", err.Error())
	}

	return stats, nil
}

func (e *executor) GenerateWalletInsights(ctx context.Context, address string) (*dto.WalletInsightsResponse, error) {
	wallet, err := e.analyzedWallet(ctx, address)
	if err != nil {
		return nil, err
	}

	insights, err := e.llm.GenerateWalletInsights(ctx, dto.MapWalletToSnapshot(wallet))
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to generate wallet insights: %w", err), zap.String("wallet_address", address))
		return nil, apierrors.NewServiceUnavailableError("AI service unavailable", err.Error())
	}

	generatedAt := e.clock.Now()
	doc, err := e.json.Marshal(insights)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to encode wallet insights", err.Error())
	}

	if err := e.store.SaveWalletInsights(ctx, address, doc, generatedAt); err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			return nil, apierrors.NewNotFoundError("Wallet not found. Please analyze it first.")
		}
		return nil, apierrors.NewDatabaseError("Failed to save wallet insights", err.Error())
	}

	logger.InfoCtx(ctx, "Wallet insights generated",
		zap.String("wallet_address", address),
		zap.String("risk_level", insights.RiskLevel))

	return &dto.WalletInsightsResponse{
		WalletAddress: address,
		Insights:      insights,
		GeneratedAt:   generatedAt,
	}, nil
}

func (e *executor) AssessWalletRisk(ctx context.Context, address string) (*dto.RiskAssessmentResponse, error) {
	wallet, err := e.analyzedWallet(ctx, address)
	if err != nil {
		return nil, err
	}

	risk, err := e.llm.AssessWalletRisk(ctx, dto.MapWalletToSnapshot(wallet))
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to assess wallet risk: %w", err), zap.String("wallet_address", address))
		return nil, apierrors.NewServiceUnavailableError("AI service unavailable", err.Error())
	}

	return &dto.RiskAssessmentResponse{
		WalletAddress: address,
		Risk:          risk,
		GeneratedAt:   e.clock.Now(),
	}, nil
}

// analyzedWallet loads the stored analysis the /api/ai routes work from.
// The model is never asked about wallets that were not analyzed first.
func (e *executor) analyzedWallet(ctx context.Context, address string) (*schema.Wallet, error) {
	if err := domain.WalletAddress(address).Validate(); err != nil {
		return nil, apierrors.NewBadRequestError("Invalid Solana wallet address", err.Error())
	}

	if e.llm == nil {
		return nil, apierrors.NewServiceUnavailableError("AI service not configured")
	}

	wallet, err := e.store.GetWalletByAddress(ctx, address)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get wallet: %v", err))
	}
	if wallet == nil {
		return nil, apierrors.NewNotFoundError("Wallet not found. Please analyze it first.")
	}

	return wallet, nil
}

// clampLimit applies the default to non-positive values and caps the rest at max
func clampLimit(v, def, maxValue int) int {
	if v <= 0 {
		return def
	}
	return min(v, maxValue)
}
