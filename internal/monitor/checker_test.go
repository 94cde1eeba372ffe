package monitor_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/logger"
	"github.com/sorel-labs/sorel/internal/mocks"
	"github.com/sorel-labs/sorel/internal/monitor"
	"github.com/sorel-labs/sorel/internal/providers/solana"
	"github.com/sorel-labs/sorel/internal/store/schema"
)

const testRPCURL = "https://rpc.example"

var baseTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type testCheckerMocks struct {
	ctrl    *gomock.Controller
	client  *mocks.MockSolanaClient
	clock   *mocks.MockClock
	checker monitor.Checker
}

func setupTestChecker(t *testing.T) *testCheckerMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	tm := &testCheckerMocks{
		ctrl:   ctrl,
		client: mocks.NewMockSolanaClient(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}
	tm.checker = monitor.NewChecker(monitor.CheckerConfig{
		RateLimitProbes: 5,
		RateLimitDelay:  100 * time.Millisecond,
	}, tm.clock)
	tm.client.EXPECT().URL().Return(testRPCURL).AnyTimes()

	return tm
}

func tearDownTestChecker(tm *testCheckerMocks) {
	tm.ctrl.Finish()
}

// expectProbes makes every probe succeed and reports the given latencies in call order
func expectProbes(tm *testCheckerMocks, latencies ...time.Duration) {
	tm.clock.EXPECT().Now().Return(baseTime).AnyTimes()
	for _, d := range latencies {
		tm.clock.EXPECT().Since(gomock.Any()).Return(d)
	}
	tm.client.EXPECT().GetVersion(gomock.Any()).Return(&solana.Version{SolanaCore: "1.18.22"}, nil)
	tm.client.EXPECT().GetSlot(gomock.Any()).Return(uint64(289_000_000), nil)
	tm.client.EXPECT().GetEpochInfo(gomock.Any()).Return(&solana.EpochInfo{Epoch: 668}, nil)
}

func TestCheck_Healthy(t *testing.T) {
	tm := setupTestChecker(t)
	defer tearDownTestChecker(tm)

	expectProbes(tm, 120*time.Millisecond, 80*time.Millisecond, 95500*time.Microsecond, 300*time.Millisecond)

	sample := tm.checker.Check(context.Background(), tm.client)

	assert.Equal(t, domain.HealthStatusHealthy, sample.Status)
	assert.Equal(t, testRPCURL, sample.RPCURL)
	assert.Equal(t, baseTime, sample.Timestamp)
	assert.Empty(t, sample.Error)
	assert.Empty(t, sample.Warning)
	assert.Equal(t, schema.ResponseTimes{GetVersion: 120, GetSlot: 80, GetEpochInfo: 95.5, Total: 300}, sample.ResponseTimes)
	require.NotNil(t, sample.BlockchainInfo)
	assert.Equal(t, schema.BlockchainInfo{Version: "1.18.22", Slot: 289_000_000, Epoch: 668}, *sample.BlockchainInfo)

	id, err := ulid.ParseStrict(sample.CheckID)
	require.NoError(t, err)
	assert.Equal(t, uint64(baseTime.UnixMilli()), id.Time())
}

func TestCheck_Degraded(t *testing.T) {
	tm := setupTestChecker(t)
	defer tearDownTestChecker(tm)

	// average 2.5s
	expectProbes(tm, 2*time.Second, 2500*time.Millisecond, 3*time.Second, 7500*time.Millisecond)

	sample := tm.checker.Check(context.Background(), tm.client)

	assert.Equal(t, domain.HealthStatusDegraded, sample.Status)
	assert.Equal(t, monitor.WARNING_HIGH_RESPONSE_TIME, sample.Warning)
	assert.NotNil(t, sample.BlockchainInfo)
}

func TestCheck_UnhealthyByLatency(t *testing.T) {
	tm := setupTestChecker(t)
	defer tearDownTestChecker(tm)

	// average 6s
	expectProbes(tm, 6*time.Second, 6*time.Second, 6*time.Second, 18*time.Second)

	sample := tm.checker.Check(context.Background(), tm.client)

	assert.Equal(t, domain.HealthStatusUnhealthy, sample.Status)
	assert.Equal(t, monitor.WARNING_VERY_HIGH_RESPONSE_TIME, sample.Warning)
	assert.Empty(t, sample.Error)
	assert.NotNil(t, sample.BlockchainInfo)
}

func TestCheck_ProbeFails(t *testing.T) {
	tm := setupTestChecker(t)
	defer tearDownTestChecker(tm)

	tm.clock.EXPECT().Now().Return(baseTime).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(150 * time.Millisecond).AnyTimes()
	tm.client.EXPECT().GetVersion(gomock.Any()).Return(&solana.Version{SolanaCore: "1.18.22"}, nil)
	tm.client.EXPECT().GetSlot(gomock.Any()).Return(uint64(0), errors.New("getSlot failed: connection refused"))

	sample := tm.checker.Check(context.Background(), tm.client)

	assert.Equal(t, domain.HealthStatusUnhealthy, sample.Status)
	assert.Equal(t, "getSlot failed: connection refused", sample.Error)
	assert.Empty(t, sample.Warning)
	assert.Nil(t, sample.BlockchainInfo)
	assert.Equal(t, schema.ResponseTimes{Total: 150}, sample.ResponseTimes)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		average time.Duration
		status  domain.HealthStatus
		warning string
	}{
		{0, domain.HealthStatusHealthy, ""},
		{2 * time.Second, domain.HealthStatusHealthy, ""},
		{2*time.Second + time.Millisecond, domain.HealthStatusDegraded, monitor.WARNING_HIGH_RESPONSE_TIME},
		{5 * time.Second, domain.HealthStatusDegraded, monitor.WARNING_HIGH_RESPONSE_TIME},
		{5*time.Second + time.Millisecond, domain.HealthStatusUnhealthy, monitor.WARNING_VERY_HIGH_RESPONSE_TIME},
	}

	for _, tt := range tests {
		status, warning := monitor.Classify(tt.average)
		assert.Equal(t, tt.status, status, "average %s", tt.average)
		assert.Equal(t, tt.warning, warning, "average %s", tt.average)
	}
}

func TestCheckRateLimits_AllSucceed(t *testing.T) {
	tm := setupTestChecker(t)
	defer tearDownTestChecker(tm)

	tm.clock.EXPECT().Now().Return(baseTime).Times(5)
	tm.clock.EXPECT().Since(baseTime).Return(40 * time.Millisecond).Times(5)
	tm.clock.EXPECT().After(100 * time.Millisecond).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- baseTime
		return ch
	}).Times(4)
	tm.client.EXPECT().GetSlot(gomock.Any()).Return(uint64(1), nil).Times(5)

	report := tm.checker.CheckRateLimits(context.Background(), tm.client)

	assert.Equal(t, testRPCURL, report.RPCURL)
	assert.Equal(t, 5, report.TotalRequests)
	assert.Equal(t, 5, report.SuccessfulRequests)
	assert.Equal(t, 0, report.FailedRequests)
	assert.False(t, report.RateLimited)
	require.Len(t, report.Results, 5)
	for i, r := range report.Results {
		assert.Equal(t, i+1, r.Request)
		assert.True(t, r.Success)
		assert.Equal(t, 40.0, r.TimeMS)
	}
}

func TestCheckRateLimits_SomeRejected(t *testing.T) {
	tm := setupTestChecker(t)
	defer tearDownTestChecker(tm)

	tm.clock.EXPECT().Now().Return(baseTime).Times(5)
	tm.clock.EXPECT().Since(baseTime).Return(40 * time.Millisecond).Times(3)
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- baseTime
		return ch
	}).Times(4)
	gomock.InOrder(
		tm.client.EXPECT().GetSlot(gomock.Any()).Return(uint64(1), nil).Times(3),
		tm.client.EXPECT().GetSlot(gomock.Any()).Return(uint64(0), errors.New("getSlot failed: 429 Too Many Requests")).Times(2),
	)

	report := tm.checker.CheckRateLimits(context.Background(), tm.client)

	assert.Equal(t, 5, report.TotalRequests)
	assert.Equal(t, 3, report.SuccessfulRequests)
	assert.Equal(t, 2, report.FailedRequests)
	assert.True(t, report.RateLimited)
	assert.False(t, report.Results[4].Success)
	assert.Contains(t, report.Results[4].Error, "429")
}

func TestHealthSample_ToCreateHealthCheckInput(t *testing.T) {
	sample := monitor.HealthSample{
		CheckID:        "01J0000000000000000000000A",
		RPCURL:         testRPCURL,
		Status:         domain.HealthStatusDegraded,
		Timestamp:      baseTime,
		ResponseTimes:  schema.ResponseTimes{GetVersion: 1, GetSlot: 2, GetEpochInfo: 3, Total: 6},
		BlockchainInfo: &schema.BlockchainInfo{Version: "1.18.22", Slot: 10, Epoch: 1},
		Warning:        monitor.WARNING_HIGH_RESPONSE_TIME,
	}

	input, err := sample.ToCreateHealthCheckInput()
	require.NoError(t, err)

	assert.Equal(t, sample.CheckID, input.CheckID)
	assert.Equal(t, domain.HealthStatusDegraded, input.Status)
	assert.Nil(t, input.Error)
	require.NotNil(t, input.Warning)
	assert.Equal(t, monitor.WARNING_HIGH_RESPONSE_TIME, *input.Warning)

	var rt schema.ResponseTimes
	require.NoError(t, json.Unmarshal(input.ResponseTimes, &rt))
	assert.Equal(t, sample.ResponseTimes, rt)

	var info schema.BlockchainInfo
	require.NoError(t, json.Unmarshal(input.BlockchainInfo, &info))
	assert.Equal(t, *sample.BlockchainInfo, info)

	failed := monitor.HealthSample{Status: domain.HealthStatusUnhealthy, Error: "boom", ResponseTimes: schema.ResponseTimes{Total: 5}}
	input, err = failed.ToCreateHealthCheckInput()
	require.NoError(t, err)
	assert.Nil(t, input.BlockchainInfo)
	require.NotNil(t, input.Error)
	assert.Equal(t, "boom", *input.Error)
	assert.JSONEq(t, `{"total":5}`, string(input.ResponseTimes))
}
