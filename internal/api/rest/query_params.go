package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/sorel-labs/sorel/internal/api/shared/constants"
)

// LeaderboardQueryParams holds query parameters for GET /wallets/leaderboard/top
type LeaderboardQueryParams struct {
	Limit int `form:"limit,default=100"`
}

// HistoryQueryParams holds query parameters for GET /wallets/:address/history
type HistoryQueryParams struct {
	Limit int `form:"limit,default=50"`
}

// TrendsQueryParams holds query parameters for GET /analytics/trends
type TrendsQueryParams struct {
	Days int `form:"days,default=7"`
}

// MonitorQueryParams holds query parameters for GET /monitor/*
type MonitorQueryParams struct {
	Hours int `form:"hours,default=24"`
}

// ParseLeaderboardQuery parses query parameters for GET /wallets/leaderboard/top
func ParseLeaderboardQuery(c *gin.Context) (*LeaderboardQueryParams, error) {
	var params LeaderboardQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := validateRange("limit", params.Limit, constants.MAX_LEADERBOARD_LIMIT); err != nil {
		return nil, err
	}
	return &params, nil
}

// ParseHistoryQuery parses query parameters for GET /wallets/:address/history
func ParseHistoryQuery(c *gin.Context) (*HistoryQueryParams, error) {
	var params HistoryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := validateRange("limit", params.Limit, constants.MAX_HISTORY_LIMIT); err != nil {
		return nil, err
	}
	return &params, nil
}

// ParseTrendsQuery parses query parameters for GET /analytics/trends
func ParseTrendsQuery(c *gin.Context) (*TrendsQueryParams, error) {
	var params TrendsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := validateRange("days", params.Days, constants.MAX_TREND_DAYS); err != nil {
		return nil, err
	}
	return &params, nil
}

// ParseMonitorQuery parses query parameters for GET /monitor/*
func ParseMonitorQuery(c *gin.Context) (*MonitorQueryParams, error) {
	var params MonitorQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := validateRange("hours", params.Hours, constants.MAX_MONITOR_HOURS); err != nil {
		return nil, err
	}
	return &params, nil
}

func validateRange(name string, v, maxValue int) error {
	if v < 1 || v > maxValue {
		return fmt.Errorf("%s must be between 1 and %d", name, maxValue)
	}
	return nil
}
