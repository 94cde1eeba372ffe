package dto

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/logger"
	"github.com/sorel-labs/sorel/internal/store/schema"
)

// HealthCheckResponse is one stored probe of an RPC endpoint
type HealthCheckResponse struct {
	CheckID        string                 `json:"check_id"`
	RPCURL         string                 `json:"rpc_url"`
	Status         domain.HealthStatus    `json:"status"`
	Timestamp      time.Time              `json:"timestamp"`
	ResponseTimes  schema.ResponseTimes   `json:"response_times"`
	BlockchainInfo *schema.BlockchainInfo `json:"blockchain_info,omitempty"`
	Error          *string                `json:"error,omitempty"`
	Warning        *string                `json:"warning,omitempty"`
}

// HealthCheckListResponse is the response of GET /api/monitor/checks
type HealthCheckListResponse struct {
	PeriodHours int                   `json:"period_hours"`
	Checks      []HealthCheckResponse `json:"checks"`
}

// MapHealthCheckToDTO maps a stored health check, documents that fail to decode are left empty
func MapHealthCheckToDTO(c *schema.RPCHealthCheck) HealthCheckResponse {
	resp := HealthCheckResponse{
		CheckID:   c.CheckID,
		RPCURL:    c.RPCURL,
		Status:    c.Status,
		Timestamp: c.Timestamp,
		Error:     c.Error,
		Warning:   c.Warning,
	}

	if len(c.ResponseTimes) > 0 {
		var times schema.ResponseTimes
		if err := json.Unmarshal(c.ResponseTimes, &times); err != nil {
			logger.Warn("Failed to decode health check response times",
				zap.String("check_id", c.CheckID),
				zap.Error(err))
		} else {
			resp.ResponseTimes = times
		}
	}
	if len(c.BlockchainInfo) > 0 && string(c.BlockchainInfo) != "null" {
		var info schema.BlockchainInfo
		if err := json.Unmarshal(c.BlockchainInfo, &info); err != nil {
			logger.Warn("Failed to decode health check blockchain info",
				zap.String("check_id", c.CheckID),
				zap.Error(err))
		} else {
			resp.BlockchainInfo = &info
		}
	}

	return resp
}
