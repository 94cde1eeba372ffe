package monitor

import (
	"encoding/json"

	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/store/schema"
)

// UptimeStats summarizes the health checks recorded over a period
type UptimeStats struct {
	PeriodHours            int     `json:"period_hours"`
	TotalChecks            int     `json:"total_checks"`
	HealthyChecks          int     `json:"healthy_checks"`
	DegradedChecks         int     `json:"degraded_checks"`
	UnhealthyChecks        int     `json:"unhealthy_checks"`
	UptimePercentage       float64 `json:"uptime_percentage"`
	AvailabilityPercentage float64 `json:"availability_percentage"`
	AverageResponseTimeMS  float64 `json:"average_response_time_ms"`
}

// ComputeUptimeStats aggregates health checks. Checks whose response times cannot be decoded
// still count towards the status totals but not towards the average latency.
func ComputeUptimeStats(checks []schema.RPCHealthCheck, hours int) (*UptimeStats, error) {
	if len(checks) == 0 {
		return nil, domain.ErrNoHealthChecks
	}

	stats := &UptimeStats{
		PeriodHours: hours,
		TotalChecks: len(checks),
	}

	var totalResponseTime float64
	var timed int
	for _, check := range checks {
		switch check.Status {
		case domain.HealthStatusHealthy:
			stats.HealthyChecks++
		case domain.HealthStatusDegraded:
			stats.DegradedChecks++
		case domain.HealthStatusUnhealthy:
			stats.UnhealthyChecks++
		}

		var rt schema.ResponseTimes
		if len(check.ResponseTimes) == 0 || json.Unmarshal(check.ResponseTimes, &rt) != nil {
			continue
		}
		totalResponseTime += rt.Total
		timed++
	}

	total := float64(stats.TotalChecks)
	stats.UptimePercentage = round2(float64(stats.HealthyChecks) / total * 100)
	stats.AvailabilityPercentage = round2(float64(stats.HealthyChecks+stats.DegradedChecks) / total * 100)
	if timed > 0 {
		stats.AverageResponseTimeMS = round2(totalResponseTime / float64(timed))
	}

	return stats, nil
}
