package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sorel-labs/sorel/internal/adapter"
	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/providers/solana"
	"github.com/sorel-labs/sorel/internal/store"
	"github.com/sorel-labs/sorel/internal/store/schema"
)

const (
	// Average probe latency above which an endpoint is classified
	DEGRADED_RESPONSE_TIME  = 2 * time.Second
	UNHEALTHY_RESPONSE_TIME = 5 * time.Second

	WARNING_HIGH_RESPONSE_TIME      = "High response time detected"
	WARNING_VERY_HIGH_RESPONSE_TIME = "Very high response time"

	// HEALTH_PROBE_COUNT is the number of calls made by a health check
	HEALTH_PROBE_COUNT = 3

	DEFAULT_RATE_LIMIT_PROBES = 5
	DEFAULT_RATE_LIMIT_DELAY  = 100 * time.Millisecond
)

// HealthSample is the outcome of one health check against an RPC endpoint
type HealthSample struct {
	CheckID        string                 `json:"check_id"`
	RPCURL         string                 `json:"rpc_url"`
	Status         domain.HealthStatus    `json:"status"`
	Timestamp      time.Time              `json:"timestamp"`
	ResponseTimes  schema.ResponseTimes   `json:"response_times"`
	BlockchainInfo *schema.BlockchainInfo `json:"blockchain_info,omitempty"`
	Error          string                 `json:"error,omitempty"`
	Warning        string                 `json:"warning,omitempty"`
}

// ToCreateHealthCheckInput converts the sample into its persisted form
func (s HealthSample) ToCreateHealthCheckInput() (store.CreateHealthCheckInput, error) {
	responseTimes, err := json.Marshal(s.ResponseTimes)
	if err != nil {
		return store.CreateHealthCheckInput{}, fmt.Errorf("failed to marshal response times: %w", err)
	}

	input := store.CreateHealthCheckInput{
		CheckID:       s.CheckID,
		RPCURL:        s.RPCURL,
		Status:        s.Status,
		Timestamp:     s.Timestamp,
		ResponseTimes: responseTimes,
	}

	if s.BlockchainInfo != nil {
		info, err := json.Marshal(s.BlockchainInfo)
		if err != nil {
			return store.CreateHealthCheckInput{}, fmt.Errorf("failed to marshal blockchain info: %w", err)
		}
		input.BlockchainInfo = info
	}
	if s.Error != "" {
		input.Error = &s.Error
	}
	if s.Warning != "" {
		input.Warning = &s.Warning
	}

	return input, nil
}

// RateLimitProbe is one request of a rate limit check
type RateLimitProbe struct {
	Request int     `json:"request"`
	Success bool    `json:"success"`
	TimeMS  float64 `json:"time,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// RateLimitReport summarizes a burst of sequential requests against an endpoint
type RateLimitReport struct {
	RPCURL             string           `json:"rpc_url"`
	TotalRequests      int              `json:"total_requests"`
	SuccessfulRequests int              `json:"successful_requests"`
	FailedRequests     int              `json:"failed_requests"`
	RateLimited        bool             `json:"rate_limited"`
	Results            []RateLimitProbe `json:"results"`
}

// Checker probes a Solana RPC endpoint
//
//go:generate mockgen -source=checker.go -destination=../mocks/checker.go -package=mocks -mock_names=Checker=MockHealthChecker
type Checker interface {
	// Check times getVersion, getSlot and getEpochInfo and classifies the endpoint
	Check(ctx context.Context, client solana.Client) HealthSample

	// CheckRateLimits issues a burst of getSlot calls and reports how many succeeded
	CheckRateLimits(ctx context.Context, client solana.Client) RateLimitReport
}

// CheckerConfig controls the rate limit probe
type CheckerConfig struct {
	RateLimitProbes int
	RateLimitDelay  time.Duration
}

type checker struct {
	config CheckerConfig
	clock  adapter.Clock
}

// NewChecker creates a health checker
func NewChecker(cfg CheckerConfig, clock adapter.Clock) Checker {
	if cfg.RateLimitProbes <= 0 {
		cfg.RateLimitProbes = DEFAULT_RATE_LIMIT_PROBES
	}
	if cfg.RateLimitDelay < 0 {
		cfg.RateLimitDelay = DEFAULT_RATE_LIMIT_DELAY
	}
	return &checker{config: cfg, clock: clock}
}

func (c *checker) Check(ctx context.Context, client solana.Client) HealthSample {
	start := c.clock.Now()
	sample := HealthSample{
		CheckID:   ulid.MustNewDefault(start).String(),
		RPCURL:    client.URL(),
		Timestamp: start,
	}

	fail := func(err error) HealthSample {
		sample.Status = domain.HealthStatusUnhealthy
		sample.Error = err.Error()
		sample.ResponseTimes = schema.ResponseTimes{Total: milliseconds(c.clock.Since(start))}
		return sample
	}

	version, err := client.GetVersion(ctx)
	if err != nil {
		return fail(err)
	}
	versionTime := c.clock.Since(start)

	slotStart := c.clock.Now()
	slot, err := client.GetSlot(ctx)
	if err != nil {
		return fail(err)
	}
	slotTime := c.clock.Since(slotStart)

	epochStart := c.clock.Now()
	epoch, err := client.GetEpochInfo(ctx)
	if err != nil {
		return fail(err)
	}
	epochTime := c.clock.Since(epochStart)

	total := c.clock.Since(start)

	sample.ResponseTimes = schema.ResponseTimes{
		GetVersion:   milliseconds(versionTime),
		GetSlot:      milliseconds(slotTime),
		GetEpochInfo: milliseconds(epochTime),
		Total:        milliseconds(total),
	}
	sample.BlockchainInfo = &schema.BlockchainInfo{
		Version: version.SolanaCore,
		Slot:    slot,
		Epoch:   epoch.Epoch,
	}
	sample.Status, sample.Warning = Classify(total / HEALTH_PROBE_COUNT)

	return sample
}

func (c *checker) CheckRateLimits(ctx context.Context, client solana.Client) RateLimitReport {
	report := RateLimitReport{
		RPCURL:  client.URL(),
		Results: make([]RateLimitProbe, 0, c.config.RateLimitProbes),
	}

	for i := 1; i <= c.config.RateLimitProbes; i++ {
		start := c.clock.Now()
		probe := RateLimitProbe{Request: i}
		if _, err := client.GetSlot(ctx); err != nil {
			probe.Error = err.Error()
		} else {
			probe.Success = true
			probe.TimeMS = milliseconds(c.clock.Since(start))
			report.SuccessfulRequests++
		}
		report.Results = append(report.Results, probe)

		if i < c.config.RateLimitProbes && c.config.RateLimitDelay > 0 {
			select {
			case <-ctx.Done():
				i = c.config.RateLimitProbes
			case <-c.clock.After(c.config.RateLimitDelay):
			}
		}
	}

	report.TotalRequests = len(report.Results)
	report.FailedRequests = report.TotalRequests - report.SuccessfulRequests
	report.RateLimited = report.SuccessfulRequests < report.TotalRequests

	return report
}

// Classify maps the average probe latency to a health status, strictest threshold first
func Classify(average time.Duration) (domain.HealthStatus, string) {
	switch {
	case average > UNHEALTHY_RESPONSE_TIME:
		return domain.HealthStatusUnhealthy, WARNING_VERY_HIGH_RESPONSE_TIME
	case average > DEGRADED_RESPONSE_TIME:
		return domain.HealthStatusDegraded, WARNING_HIGH_RESPONSE_TIME
	default:
		return domain.HealthStatusHealthy, ""
	}
}

func milliseconds(d time.Duration) float64 {
	return round2(float64(d) / float64(time.Millisecond))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
