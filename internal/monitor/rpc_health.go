package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/sorel-labs/sorel/internal/adapter"
	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/logger"
	"github.com/sorel-labs/sorel/internal/providers/solana"
	"github.com/sorel-labs/sorel/internal/store"
)

const (
	DEFAULT_CHECK_INTERVAL   = 60 * time.Second
	DEFAULT_UPTIME_LOG_EVERY = 10
	UPTIME_WINDOW_HOURS      = 24
	MAX_UPTIME_SAMPLES       = 1000
)

// RPCHealthMonitorConfig holds configuration for the RPC health monitor
type RPCHealthMonitorConfig struct {
	Interval       time.Duration // Time between check cycles
	WorkerPoolSize int           // Concurrent endpoint checks, defaults to one per endpoint
	UptimeLogEvery int           // Log uptime stats every N cycles
}

// Report is the outcome of a single monitoring pass
type Report struct {
	Samples    []HealthSample    `json:"samples"`
	RateLimits []RateLimitReport `json:"rate_limits"`
	Uptime     *UptimeStats      `json:"uptime,omitempty"`
}

// RPCHealthMonitor continuously checks a set of Solana RPC endpoints
type RPCHealthMonitor interface {
	Monitor

	// RunOnce checks every endpoint once, probes its rate limits and returns the 24h uptime
	RunOnce(ctx context.Context) (*Report, error)
}

type rpcHealthMonitor struct {
	config  RPCHealthMonitorConfig
	store   store.Store
	checker Checker
	clients []solana.Client
	clock   adapter.Clock

	// mu guards running and the channels of the current run
	mu        sync.Mutex
	running   bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewRPCHealthMonitor creates a new RPC health monitor
func NewRPCHealthMonitor(
	config RPCHealthMonitorConfig,
	st store.Store,
	checker Checker,
	clients []solana.Client,
	clock adapter.Clock,
) RPCHealthMonitor {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_CHECK_INTERVAL
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = max(len(clients), 1)
	}
	if config.UptimeLogEvery <= 0 {
		config.UptimeLogEvery = DEFAULT_UPTIME_LOG_EVERY
	}

	return &rpcHealthMonitor{
		config:  config,
		store:   st,
		checker: checker,
		clients: clients,
		clock:   clock,
	}
}

// Name returns the monitor's name
func (m *rpcHealthMonitor) Name() string {
	return "rpc-health-monitor"
}

// Start runs a check cycle every interval until the context is canceled or Stop is called
func (m *rpcHealthMonitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return fmt.Errorf("monitor already running")
	}
	m.running = true
	stopChan := make(chan struct{})
	stoppedCh := make(chan struct{})
	m.stopChan, m.stoppedCh = stopChan, stoppedCh
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()
		close(stoppedCh)
	}()

	if len(m.clients) == 0 {
		return fmt.Errorf("no rpc endpoints configured")
	}

	logger.InfoCtx(ctx, "Starting RPC health monitor",
		zap.Int("endpoints", len(m.clients)),
		zap.Duration("interval", m.config.Interval),
	)

	for iteration := 1; ; iteration++ {
		samples := m.runCycle(ctx)
		m.logSummary(ctx, iteration, samples)

		if iteration%m.config.UptimeLogEvery == 0 {
			m.logUptime(ctx)
		}

		if !m.sleep(ctx, stopChan, m.config.Interval) {
			if ctx.Err() != nil {
				logger.InfoCtx(ctx, "RPC health monitor stopping due to context cancellation", zap.Error(ctx.Err()))
			} else {
				logger.InfoCtx(ctx, "RPC health monitor stop requested")
			}
			return nil
		}
	}
}

// Stop gracefully stops the monitor with timeout support
func (m *rpcHealthMonitor) Stop(ctx context.Context) error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = false
	stopChan, stoppedCh := m.stopChan, m.stoppedCh
	m.mu.Unlock()

	logger.InfoCtx(ctx, "Stopping RPC health monitor")
	close(stopChan)

	select {
	case <-stoppedCh:
		logger.InfoCtx(ctx, "RPC health monitor stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "RPC health monitor stop interrupted by context timeout")
		return ctx.Err()
	}
}

// RunOnce checks every endpoint once, probes its rate limits and returns the 24h uptime
func (m *rpcHealthMonitor) RunOnce(ctx context.Context) (*Report, error) {
	if len(m.clients) == 0 {
		return nil, fmt.Errorf("no rpc endpoints configured")
	}

	report := &Report{
		Samples: m.runCycle(ctx),
	}
	for _, client := range m.clients {
		rl := m.checker.CheckRateLimits(ctx, client)
		if rl.RateLimited {
			logger.WarnCtx(ctx, "RPC endpoint rejected requests during rate limit probe",
				zap.String("rpc_url", rl.RPCURL),
				zap.Int("successful", rl.SuccessfulRequests),
				zap.Int("failed", rl.FailedRequests),
			)
		}
		report.RateLimits = append(report.RateLimits, rl)
	}

	uptime, err := m.uptime(ctx)
	if err != nil && !errors.Is(err, domain.ErrNoHealthChecks) {
		return nil, err
	}
	report.Uptime = uptime

	return report, nil
}

// runCycle checks every endpoint concurrently and stores each sample.
// Storage failures are logged, the samples are returned regardless.
func (m *rpcHealthMonitor) runCycle(ctx context.Context) []HealthSample {
	pool := pond.NewResultPool[HealthSample](
		m.config.WorkerPoolSize,
		pond.WithQueueSize(len(m.clients)),
		pond.WithContext(ctx),
	)
	defer pool.StopAndWait()

	tasks := make([]pond.Result[HealthSample], 0, len(m.clients))
	for _, client := range m.clients {
		tasks = append(tasks, pool.Submit(func() HealthSample {
			sample := m.checker.Check(ctx, client)
			m.storeSample(ctx, sample)
			return sample
		}))
	}

	samples := make([]HealthSample, 0, len(tasks))
	for _, task := range tasks {
		sample, err := task.Wait()
		if err != nil {
			logger.WarnCtx(ctx, "Health check task did not complete", zap.Error(err))
			continue
		}
		samples = append(samples, sample)
	}

	return samples
}

func (m *rpcHealthMonitor) storeSample(ctx context.Context, sample HealthSample) {
	input, err := sample.ToCreateHealthCheckInput()
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("rpc_url", sample.RPCURL))
		return
	}

	if err := m.store.CreateHealthCheck(ctx, input); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to store health check: %w", err),
			zap.String("rpc_url", sample.RPCURL),
			zap.String("check_id", sample.CheckID),
		)
	}
}

func (m *rpcHealthMonitor) logSummary(ctx context.Context, iteration int, samples []HealthSample) {
	var healthy, degraded, unhealthy int
	for _, sample := range samples {
		fields := []zap.Field{
			zap.String("rpc_url", sample.RPCURL),
			zap.String("status", string(sample.Status)),
			zap.Float64("total_ms", sample.ResponseTimes.Total),
		}

		switch sample.Status {
		case domain.HealthStatusHealthy:
			healthy++
			logger.InfoCtx(ctx, "RPC endpoint healthy", fields...)
		case domain.HealthStatusDegraded:
			degraded++
			logger.WarnCtx(ctx, "RPC endpoint degraded", append(fields, zap.String("warning", sample.Warning))...)
		default:
			unhealthy++
			logger.WarnCtx(ctx, "RPC endpoint unhealthy",
				append(fields, zap.String("error", sample.Error), zap.String("warning", sample.Warning))...)
		}
	}

	logger.InfoCtx(ctx, "Health check cycle completed",
		zap.Int("iteration", iteration),
		zap.Int("healthy", healthy),
		zap.Int("degraded", degraded),
		zap.Int("unhealthy", unhealthy),
	)
}

func (m *rpcHealthMonitor) logUptime(ctx context.Context) {
	stats, err := m.uptime(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNoHealthChecks) {
			logger.ErrorCtx(ctx, err)
		}
		return
	}

	logger.InfoCtx(ctx, "RPC uptime",
		zap.Int("period_hours", stats.PeriodHours),
		zap.Int("total_checks", stats.TotalChecks),
		zap.Float64("uptime_percentage", stats.UptimePercentage),
		zap.Float64("availability_percentage", stats.AvailabilityPercentage),
		zap.Float64("average_response_time_ms", stats.AverageResponseTimeMS),
	)
}

func (m *rpcHealthMonitor) uptime(ctx context.Context) (*UptimeStats, error) {
	since := m.clock.Now().Add(-UPTIME_WINDOW_HOURS * time.Hour)
	checks, err := m.store.GetHealthChecksSince(ctx, since, MAX_UPTIME_SAMPLES)
	if err != nil {
		return nil, fmt.Errorf("failed to get health checks: %w", err)
	}

	return ComputeUptimeStats(checks, UPTIME_WINDOW_HOURS)
}

// sleep returns false when interrupted by context cancellation or a stop request
func (m *rpcHealthMonitor) sleep(ctx context.Context, stopChan <-chan struct{}, duration time.Duration) bool {
	select {
	case <-m.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-stopChan:
		return false
	}
}
