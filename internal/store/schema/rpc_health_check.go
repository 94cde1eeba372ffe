package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sorel-labs/sorel/internal/domain"
)

// ResponseTimes holds the latency of each probe of a health check, in milliseconds
// Only Total is set when a probe failed.
type ResponseTimes struct {
	GetVersion   float64 `json:"get_version,omitempty"`
	GetSlot      float64 `json:"get_slot,omitempty"`
	GetEpochInfo float64 `json:"get_epoch_info,omitempty"`
	Total        float64 `json:"total"`
}

// BlockchainInfo is the chain state observed during a health check
type BlockchainInfo struct {
	Version string `json:"version"`
	Slot    uint64 `json:"slot"`
	Epoch   uint64 `json:"epoch"`
}

// RPCHealthCheck represents the rpc_health_checks table, one row per probe of an RPC endpoint
type RPCHealthCheck struct {
	// CheckID is a ULID, lexically sortable by creation time
	CheckID string `gorm:"column:check_id;primaryKey;type:varchar(26)"`

	RPCURL string              `gorm:"column:rpc_url;not null;type:text"`
	Status domain.HealthStatus `gorm:"column:status;not null;type:varchar(16)"`

	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`

	// ResponseTimes is a ResponseTimes document
	ResponseTimes datatypes.JSON `gorm:"column:response_times;not null;type:jsonb"`

	// BlockchainInfo is a BlockchainInfo document, NULL when the check failed
	BlockchainInfo datatypes.JSON `gorm:"column:blockchain_info;type:jsonb"`

	Error   *string `gorm:"column:error;type:text"`
	Warning *string `gorm:"column:warning;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

func (RPCHealthCheck) TableName() string {
	return "rpc_health_checks"
}
