package executor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/sorel-labs/sorel/internal/adapter"
	"github.com/sorel-labs/sorel/internal/api/shared/constants"
	apierrors "github.com/sorel-labs/sorel/internal/api/shared/errors"
	"github.com/sorel-labs/sorel/internal/api/shared/executor"
	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/logger"
	"github.com/sorel-labs/sorel/internal/mocks"
	"github.com/sorel-labs/sorel/internal/store"
	"github.com/sorel-labs/sorel/internal/store/schema"
)

const testAddress = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

var exampleMetrics = domain.WalletMetrics{
	TransactionCount:     50,
	TotalVolume:          120.0,
	ContractInteractions: 30,
	WalletAgeDays:        40,
	ActivityFrequency:    1.25,
	UniquePrograms:       15,
}

type testExecutorMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	extractor *mocks.MockExtractor
	publisher *mocks.MockPublisher
	llm       *mocks.MockLLMClient
	clock     *mocks.MockClock
	executor  executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		extractor: mocks.NewMockExtractor(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		llm:       mocks.NewMockLLMClient(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	tm.executor = executor.NewExecutor(tm.store, tm.extractor, tm.publisher, tm.llm, adapter.NewJSON(), tm.clock)

	return tm
}

func tearDownTestExecutor(tm *testExecutorMocks) {
	tm.ctrl.Finish()
}

func walletFromInput(input store.UpsertWalletInput) *schema.Wallet {
	return &schema.Wallet{
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
}

func assertAPIError(t *testing.T, err error, code apierrors.ErrorCode) {
	t.Helper()
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected an APIError, got %v", err)
	assert.Equal(t, code, apiErr.Code)
}

func TestAnalyzeWallet_Success(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ctx := context.Background()
	tm.extractor.EXPECT().Extract(ctx, domain.WalletAddress(testAddress)).Return(exampleMetrics)
	tm.clock.EXPECT().Now().Return(now)

	var upserted store.UpsertWalletInput
	tm.store.EXPECT().UpsertWallet(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, input store.UpsertWalletInput) (*schema.Wallet, error) {
			upserted = input
			return walletFromInput(input), nil
		})
	tm.store.EXPECT().AppendReputationHistory(ctx, testAddress, gomock.Any(), now).DoAndReturn(
		func(ctx context.Context, address string, score float64, ts time.Time) error {
			assert.InDelta(t, 243.7, score, 1e-9)
			return nil
		})
	tm.publisher.EXPECT().PublishWalletAnalyzed(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.WalletAnalyzedEvent) error {
			assert.Equal(t, testAddress, event.WalletAddress)
			assert.Equal(t, 243.7, event.ReputationScore)
			assert.Equal(t, domain.ReputationTierLow, event.Tier)
			assert.Equal(t, exampleMetrics, event.Metrics)
			assert.Equal(t, now, event.AnalyzedAt)
			return nil
		})

	resp, err := tm.executor.AnalyzeWallet(ctx, testAddress)
	require.NoError(t, err)

	assert.Equal(t, testAddress, upserted.WalletAddress)
	assert.Equal(t, 243.7, upserted.ReputationScore)
	assert.Equal(t, exampleMetrics, upserted.Metrics)
	assert.Equal(t, now, upserted.AnalyzedAt)

	assert.Equal(t, testAddress, resp.WalletAddress)
	assert.Equal(t, 243.7, resp.ReputationScore)
	assert.Equal(t, domain.ReputationTierLow, resp.Tier)
	assert.Equal(t, exampleMetrics, resp.Metrics)
	assert.Equal(t, now, resp.LastAnalyzed)
	assert.Nil(t, resp.Rank)
	assert.NotEmpty(t, resp.ID)
}

func TestAnalyzeWallet_InvalidAddress(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	for _, address := range []string{"", "short", "0x1234567890123456789012345678901234567890", " " + testAddress + " "} {
		_, err := tm.executor.AnalyzeWallet(context.Background(), address)
		assertAPIError(t, err, apierrors.ErrCodeBadRequest)
	}
}

func TestAnalyzeWallet_UnresolvableWalletScoresZero(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ctx := context.Background()
	tm.extractor.EXPECT().Extract(ctx, gomock.Any()).Return(domain.WalletMetrics{})
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().UpsertWallet(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, input store.UpsertWalletInput) (*schema.Wallet, error) {
			return walletFromInput(input), nil
		})
	tm.store.EXPECT().AppendReputationHistory(ctx, testAddress, 0.0, now).Return(nil)
	tm.publisher.EXPECT().PublishWalletAnalyzed(ctx, gomock.Any()).Return(nil)

	resp, err := tm.executor.AnalyzeWallet(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.ReputationScore)
	assert.True(t, resp.Metrics.IsZero())
}

func TestAnalyzeWallet_UpsertFails(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ctx := context.Background()
	tm.extractor.EXPECT().Extract(ctx, gomock.Any()).Return(exampleMetrics)
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().UpsertWallet(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))

	resp, err := tm.executor.AnalyzeWallet(ctx, testAddress)
	assert.Nil(t, resp)
	assertAPIError(t, err, apierrors.ErrCodeDatabaseError)
}

func TestAnalyzeWallet_HistoryAndPublishFailuresAreNotFatal(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ctx := context.Background()
	tm.extractor.EXPECT().Extract(ctx, gomock.Any()).Return(exampleMetrics)
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().UpsertWallet(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, input store.UpsertWalletInput) (*schema.Wallet, error) {
			return walletFromInput(input), nil
		})
	tm.store.EXPECT().AppendReputationHistory(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	tm.publisher.EXPECT().PublishWalletAnalyzed(ctx, gomock.Any()).Return(errors.New("nats unavailable"))

	resp, err := tm.executor.AnalyzeWallet(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, 243.7, resp.ReputationScore)
}

func TestGetWallet(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ctx := context.Background()
	wallet := walletFromInput(store.UpsertWalletInput{
		WalletAddress:   testAddress,
		ReputationScore: 800,
		Metrics:         exampleMetrics,
		AnalyzedAt:      now,
	})
	tm.store.EXPECT().GetWalletByAddress(ctx, testAddress).Return(wallet, nil)

	resp, err := tm.executor.GetWallet(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, wallet.ID.String(), resp.ID)
	assert.Equal(t, domain.ReputationTierExcellent, resp.Tier)
}

func TestGetWallet_NotFound(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().GetWalletByAddress(gomock.Any(), testAddress).Return(nil, nil)

	resp, err := tm.executor.GetWallet(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetWallet_StoreError(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().GetWalletByAddress(gomock.Any(), testAddress).Return(nil, errors.New("timeout"))

	_, err := tm.executor.GetWallet(context.Background(), testAddress)
	assertAPIError(t, err, apierrors.ErrCodeDatabaseError)
}

func TestGetWalletHistory(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ctx := context.Background()
	tm.store.EXPECT().GetWalletByAddress(ctx, testAddress).Return(&schema.Wallet{WalletAddress: testAddress}, nil)
	tm.store.EXPECT().GetWalletHistory(ctx, testAddress, 10).Return([]schema.ReputationHistory{
		{ID: 2, WalletAddress: testAddress, ReputationScore: 300.123, Timestamp: now},
		{ID: 1, WalletAddress: testAddress, ReputationScore: 100, Timestamp: now.Add(-time.Hour)},
	}, nil)

	history, err := tm.executor.GetWalletHistory(ctx, testAddress, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 300.123, history[0].ReputationScore)
	assert.Equal(t, now, history[0].Timestamp)
}

func TestGetWalletHistory_Limits(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().GetWalletByAddress(gomock.Any(), testAddress).Return(&schema.Wallet{}, nil).Times(2)
	tm.store.EXPECT().GetWalletHistory(gomock.Any(), testAddress, constants.DEFAULT_HISTORY_LIMIT).Return(nil, nil)
	tm.store.EXPECT().GetWalletHistory(gomock.Any(), testAddress, constants.MAX_HISTORY_LIMIT).Return(nil, nil)

	_, err := tm.executor.GetWalletHistory(context.Background(), testAddress, 0)
	require.NoError(t, err)
	_, err = tm.executor.GetWalletHistory(context.Background(), testAddress, 100_000)
	require.NoError(t, err)
}

func TestGetWalletHistory_NeverAnalyzed(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().GetWalletByAddress(gomock.Any(), testAddress).Return(nil, nil)

	_, err := tm.executor.GetWalletHistory(context.Background(), testAddress, 10)
	assertAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestGetLeaderboard(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ctx := context.Background()
	tm.store.EXPECT().GetLeaderboard(ctx, 3).Return([]schema.Wallet{
		{ID: uuid.New(), WalletAddress: "c", ReputationScore: 900},
		{ID: uuid.New(), WalletAddress: "a", ReputationScore: 500},
		{ID: uuid.New(), WalletAddress: "b", ReputationScore: 500},
	}, nil)

	leaderboard, err := tm.executor.GetLeaderboard(ctx, 3)
	require.NoError(t, err)
	require.Len(t, leaderboard, 3)
	for i, entry := range leaderboard {
		require.NotNil(t, entry.Rank)
		assert.Equal(t, i+1, *entry.Rank)
	}
	assert.Equal(t, "c", leaderboard[0].WalletAddress)
	assert.Equal(t, "b", leaderboard[2].WalletAddress)
}

func TestGetLeaderboard_Limits(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().GetLeaderboard(gomock.Any(), constants.DEFAULT_LEADERBOARD_LIMIT).Return([]schema.Wallet{}, nil)
	tm.store.EXPECT().GetLeaderboard(gomock.Any(), constants.MAX_LEADERBOARD_LIMIT).Return(nil, errors.New("timeout"))

	leaderboard, err := tm.executor.GetLeaderboard(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, leaderboard)
	assert.NotNil(t, leaderboard)

	_, err = tm.executor.GetLeaderboard(context.Background(), 5000)
	assertAPIError(t, err, apierrors.ErrCodeDatabaseError)
}

func TestGetStats(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().GetWalletStats(ctx, now.Add(-24*time.Hour)).Return(&store.WalletStats{
		TotalWalletsAnalyzed: 3,
		AverageReputation:    233.33,
		TotalTransactions:    150,
		ActiveWallets:        2,
	}, nil)

	stats, err := tm.executor.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalWalletsAnalyzed)
	assert.Equal(t, 233.33, stats.AverageReputation)
	assert.Equal(t, int64(150), stats.TotalTransactions)
	assert.Equal(t, int64(2), stats.ActiveWallets24h)
}

func TestGetStats_StoreError(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().GetWalletStats(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := tm.executor.GetStats(context.Background())
	assertAPIError(t, err, apierrors.ErrCodeDatabaseError)
}

func TestGetTrends(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().GetReputationTrends(ctx, now.Add(-7*24*time.Hour)).Return([]store.ReputationTrend{
		{Date: "2024-05-30", AverageScore: 150.5, WalletCount: 2},
		{Date: "2024-06-01", AverageScore: 300, WalletCount: 1},
	}, nil)

	trends := tm.executor.GetTrends(ctx, 0)
	require.Len(t, trends, 2)
	assert.Equal(t, "2024-05-30", trends[0].Date)
	assert.Equal(t, 150.5, trends[0].AverageScore)
	assert.Equal(t, int64(1), trends[1].WalletCount)
}

func TestGetTrends_FailureReturnsEmptyList(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().GetReputationTrends(gomock.Any(), now.Add(-30*24*time.Hour)).Return(nil, errors.New("timeout"))

	trends := tm.executor.GetTrends(context.Background(), 30)
	assert.NotNil(t, trends)
	assert.Empty(t, trends)
}

func TestGetHealthChecks(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ctx := context.Background()
	errMsg := "getSlot failed"
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().GetHealthChecksSince(ctx, now.Add(-6*time.Hour), constants.MAX_HEALTH_CHECKS).Return([]schema.RPCHealthCheck{
		{
			CheckID:        "01J00000000000000000000002",
			RPCURL:         "https://rpc.example",
			Status:         domain.HealthStatusHealthy,
			Timestamp:      now,
			ResponseTimes:  datatypes.JSON(`{"get_version":10,"get_slot":20,"get_epoch_info":30,"total":60}`),
			BlockchainInfo: datatypes.JSON(`{"version":"1.18.22","slot":5,"epoch":1}`),
		},
		{
			CheckID:       "01J00000000000000000000001",
			RPCURL:        "https://rpc.example",
			Status:        domain.HealthStatusUnhealthy,
			Timestamp:     now.Add(-time.Minute),
			ResponseTimes: datatypes.JSON(`{"total":15}`),
			Error:         &errMsg,
		},
	}, nil)

	resp, err := tm.executor.GetHealthChecks(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, resp.PeriodHours)
	require.Len(t, resp.Checks, 2)
	assert.Equal(t, 60.0, resp.Checks[0].ResponseTimes.Total)
	require.NotNil(t, resp.Checks[0].BlockchainInfo)
	assert.Equal(t, uint64(5), resp.Checks[0].BlockchainInfo.Slot)
	assert.Nil(t, resp.Checks[1].BlockchainInfo)
	assert.Equal(t, &errMsg, resp.Checks[1].Error)
}

func TestGetUptime(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().GetHealthChecksSince(gomock.Any(), now.Add(-24*time.Hour), constants.MAX_HEALTH_CHECKS).Return([]schema.RPCHealthCheck{
		{Status: domain.HealthStatusHealthy, ResponseTimes: datatypes.JSON(`{"total":100}`)},
		{Status: domain.HealthStatusUnhealthy, ResponseTimes: datatypes.JSON(`{"total":300}`)},
	}, nil)

	stats, err := tm.executor.GetUptime(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 24, stats.PeriodHours)
	assert.Equal(t, 50.0, stats.UptimePercentage)
	assert.Equal(t, 200.0, stats.AverageResponseTimeMS)
}

func TestGetUptime_NoChecks(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().GetHealthChecksSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := tm.executor.GetUptime(context.Background(), 1)
	assertAPIError(t, err, apierrors.ErrCodeNotFound)
}

func analyzedWallet() *schema.Wallet {
	return walletFromInput(store.UpsertWalletInput{
		WalletAddress:   testAddress,
		ReputationScore: 642.5,
		Metrics:         exampleMetrics,
		AnalyzedAt:      now,
	})
}

func TestGenerateWalletInsights_Success(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	ctx := context.Background()
	insights := &domain.WalletInsights{
		Summary:    "Established wallet",
		Strengths:  []string{"age"},
		RiskLevel:  "Low",
		Confidence: 0.85,
		WalletType: "HODLer",
	}

	tm.store.EXPECT().GetWalletByAddress(ctx, testAddress).Return(analyzedWallet(), nil)
	tm.llm.EXPECT().GenerateWalletInsights(ctx, domain.WalletSnapshot{
		WalletAddress:   testAddress,
		ReputationScore: 642.5,
		Metrics:         exampleMetrics,
	}).Return(insights, nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().SaveWalletInsights(ctx, testAddress, gomock.Any(), now).
		DoAndReturn(func(_ context.Context, _ string, doc datatypes.JSON, _ time.Time) error {
			assert.JSONEq(t, `{"summary":"Established wallet","strengths":["age"],"improvements":null,
				"risk_level":"Low","confidence":0.85,"recommendation":"","wallet_type":"HODLer"}`, string(doc))
			return nil
		})

	resp, err := tm.executor.GenerateWalletInsights(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, testAddress, resp.WalletAddress)
	assert.Equal(t, insights, resp.Insights)
	assert.Equal(t, now, resp.GeneratedAt)
}

func TestGenerateWalletInsights_NeverAnalyzed(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().GetWalletByAddress(gomock.Any(), testAddress).Return(nil, nil)

	resp, err := tm.executor.GenerateWalletInsights(context.Background(), testAddress)
	assertAPIError(t, err, apierrors.ErrCodeNotFound)
	assert.Nil(t, resp)
}

func TestGenerateWalletInsights_InvalidAddress(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	_, err := tm.executor.GenerateWalletInsights(context.Background(), "short")
	assertAPIError(t, err, apierrors.ErrCodeBadRequest)
}

func TestGenerateWalletInsights_NotConfigured(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	exec := executor.NewExecutor(tm.store, tm.extractor, tm.publisher, nil, adapter.NewJSON(), tm.clock)

	_, err := exec.GenerateWalletInsights(context.Background(), testAddress)
	assertAPIError(t, err, apierrors.ErrCodeServiceUnavailable)

	_, err = exec.AssessWalletRisk(context.Background(), testAddress)
	assertAPIError(t, err, apierrors.ErrCodeServiceUnavailable)
}

func TestGenerateWalletInsights_ModelFailureIsNotStored(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().GetWalletByAddress(gomock.Any(), testAddress).Return(analyzedWallet(), nil)
	tm.llm.EXPECT().GenerateWalletInsights(gomock.Any(), gomock.Any()).Return(nil, domain.ErrMalformedCompletion)

	_, err := tm.executor.GenerateWalletInsights(context.Background(), testAddress)
	assertAPIError(t, err, apierrors.ErrCodeServiceUnavailable)
}

func TestGenerateWalletInsights_SaveFailures(t *testing.T) {
	tests := []struct {
		name    string
		saveErr error
		code    apierrors.ErrorCode
	}{
		{"wallet removed meanwhile", domain.ErrWalletNotFound, apierrors.ErrCodeNotFound},
		{"database error", errors.New("connection reset"), apierrors.ErrCodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestExecutor(t)
			defer tearDownTestExecutor(tm)

			tm.store.EXPECT().GetWalletByAddress(gomock.Any(), testAddress).Return(analyzedWallet(), nil)
			tm.llm.EXPECT().GenerateWalletInsights(gomock.Any(), gomock.Any()).Return(&domain.WalletInsights{}, nil)
			tm.clock.EXPECT().Now().Return(now)
			tm.store.EXPECT().SaveWalletInsights(gomock.Any(), testAddress, gomock.Any(), now).Return(tt.saveErr)

			_, err := tm.executor.GenerateWalletInsights(context.Background(), testAddress)
			assertAPIError(t, err, tt.code)
		})
	}
}

func TestAssessWalletRisk(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	risk := &domain.RiskAssessment{RiskScore: 12, RiskLevel: "Low", Flags: []string{}}
	tm.store.EXPECT().GetWalletByAddress(gomock.Any(), testAddress).Return(analyzedWallet(), nil)
	tm.llm.EXPECT().AssessWalletRisk(gomock.Any(), gomock.Any()).Return(risk, nil)
	tm.clock.EXPECT().Now().Return(now)

	resp, err := tm.executor.AssessWalletRisk(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Equal(t, testAddress, resp.WalletAddress)
	assert.Equal(t, risk, resp.Risk)
	assert.Equal(t, now, resp.GeneratedAt)
}

func TestAssessWalletRisk_NeverAnalyzed(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	tm.store.EXPECT().GetWalletByAddress(gomock.Any(), testAddress).Return(nil, nil)

	_, err := tm.executor.AssessWalletRisk(context.Background(), testAddress)
	assertAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestGetWallet_IncludesStoredInsights(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tearDownTestExecutor(tm)

	wallet := analyzedWallet()
	wallet.AIInsights = datatypes.JSON(`{"summary":"Established wallet","risk_level":"Low"}`)
	generatedAt := now.Add(time.Minute)
	wallet.AIUpdatedAt = &generatedAt
	tm.store.EXPECT().GetWalletByAddress(gomock.Any(), testAddress).Return(wallet, nil)

	resp, err := tm.executor.GetWallet(context.Background(), testAddress)
	require.NoError(t, err)
	require.NotNil(t, resp.AIInsights)
	assert.Equal(t, "Established wallet", resp.AIInsights.Summary)
	assert.Equal(t, &generatedAt, resp.AIUpdatedAt)
}
