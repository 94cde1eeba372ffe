package solana

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/sorel-labs/sorel/internal/adapter"
	"github.com/sorel-labs/sorel/internal/logger"
)

const (
	// DEFAULT_SIGNATURE_LIMIT is the number of most recent signatures fetched per wallet
	DEFAULT_SIGNATURE_LIMIT = 100

	// MAX_SIGNATURE_LIMIT is the upper bound accepted by getSignaturesForAddress
	MAX_SIGNATURE_LIMIT = 1000

	DEFAULT_COMMITMENT = "confirmed"
)

// SignatureInfo is a single entry returned by getSignaturesForAddress
type SignatureInfo struct {
	Signature          string      `json:"signature"`
	Slot               uint64      `json:"slot"`
	Err                interface{} `json:"err"`
	Memo               *string     `json:"memo"`
	BlockTime          *int64      `json:"blockTime"`
	ConfirmationStatus string      `json:"confirmationStatus"`
}

// Version is the result of getVersion
type Version struct {
	SolanaCore string `json:"solana-core"`
	FeatureSet uint32 `json:"feature-set"`
}

// EpochInfo is the result of getEpochInfo
type EpochInfo struct {
	AbsoluteSlot     uint64  `json:"absoluteSlot"`
	BlockHeight      uint64  `json:"blockHeight"`
	Epoch            uint64  `json:"epoch"`
	SlotIndex        uint64  `json:"slotIndex"`
	SlotsInEpoch     uint64  `json:"slotsInEpoch"`
	TransactionCount *uint64 `json:"transactionCount"`
}

type balanceResult struct {
	Context struct {
		Slot uint64 `json:"slot"`
	} `json:"context"`
	Value uint64 `json:"value"`
}

// RetryConfig controls the backoff applied to rate limited (HTTP 429) calls.
// The zero value disables retries.
type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultRetryConfig returns the retry settings used in production
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsedTime:  20 * time.Second,
	}
}

// Client is a Solana JSON-RPC client
//
//go:generate mockgen -source=client.go -destination=../../mocks/solana_client.go -package=mocks -mock_names=Client=MockSolanaClient
type Client interface {
	// GetSignaturesForAddress returns up to limit signatures for an address, newest first
	GetSignaturesForAddress(ctx context.Context, address string, limit int) ([]SignatureInfo, error)

	// GetBalance returns the balance of an address in lamports
	GetBalance(ctx context.Context, address string) (uint64, error)

	// GetVersion returns the version of the node software
	GetVersion(ctx context.Context) (*Version, error)

	// GetSlot returns the current slot
	GetSlot(ctx context.Context) (uint64, error)

	// GetEpochInfo returns information about the current epoch
	GetEpochInfo(ctx context.Context) (*EpochInfo, error)

	// URL returns the endpoint the client is connected to
	URL() string

	// Close closes the connection
	Close()
}

type client struct {
	url     string
	rpc     adapter.RPCClient
	timeout time.Duration
	retry   RetryConfig
}

// NewClient creates a Solana client on top of a JSON-RPC transport.
// timeout bounds each individual call, retries included.
func NewClient(url string, rpcClient adapter.RPCClient, timeout time.Duration, retry RetryConfig) Client {
	return &client{
		url:     url,
		rpc:     rpcClient,
		timeout: timeout,
		retry:   retry,
	}
}

// Dial connects to a Solana endpoint
func Dial(ctx context.Context, dialer adapter.RPCDialer, url string, timeout time.Duration, retry RetryConfig) (Client, error) {
	rpcClient, err := dialer.Dial(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial solana rpc: %w", err)
	}
	return NewClient(url, rpcClient, timeout, retry), nil
}

func (c *client) URL() string {
	return c.url
}

// GetSignaturesForAddress returns up to limit signatures for an address, newest first
func (c *client) GetSignaturesForAddress(ctx context.Context, address string, limit int) ([]SignatureInfo, error) {
	if limit <= 0 {
		limit = DEFAULT_SIGNATURE_LIMIT
	}
	if limit > MAX_SIGNATURE_LIMIT {
		limit = MAX_SIGNATURE_LIMIT
	}

	var signatures []SignatureInfo
	opts := map[string]interface{}{
		"limit":      limit,
		"commitment": DEFAULT_COMMITMENT,
	}
	if err := c.call(ctx, &signatures, "getSignaturesForAddress", address, opts); err != nil {
		return nil, err
	}

	return signatures, nil
}

// GetBalance returns the balance of an address in lamports
func (c *client) GetBalance(ctx context.Context, address string) (uint64, error) {
	var result balanceResult
	opts := map[string]interface{}{
		"commitment": DEFAULT_COMMITMENT,
	}
	if err := c.call(ctx, &result, "getBalance", address, opts); err != nil {
		return 0, err
	}

	return result.Value, nil
}

// GetVersion returns the version of the node software
func (c *client) GetVersion(ctx context.Context) (*Version, error) {
	var version Version
	if err := c.call(ctx, &version, "getVersion"); err != nil {
		return nil, err
	}

	return &version, nil
}

// GetSlot returns the current slot
func (c *client) GetSlot(ctx context.Context) (uint64, error) {
	var slot uint64
	if err := c.call(ctx, &slot, "getSlot"); err != nil {
		return 0, err
	}

	return slot, nil
}

// GetEpochInfo returns information about the current epoch
func (c *client) GetEpochInfo(ctx context.Context) (*EpochInfo, error) {
	var info EpochInfo
	if err := c.call(ctx, &info, "getEpochInfo"); err != nil {
		return nil, err
	}

	return &info, nil
}

// Close closes the connection
func (c *client) Close() {
	c.rpc.Close()
}

// call performs a JSON-RPC call, retrying with exponential backoff while the node rate limits us.
// Every other failure is permanent.
func (c *client) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	operation := func() error {
		err := c.rpc.CallContext(ctx, result, method, args...)
		if err == nil {
			return nil
		}

		if IsRateLimited(err) {
			logger.WarnCtx(ctx, "solana rpc rate limited, retrying with backoff",
				zap.String("method", method),
				zap.String("url", c.url))
			return err
		}

		return backoff.Permanent(err)
	}

	var b backoff.BackOff = &backoff.StopBackOff{}
	if c.retry.MaxElapsedTime > 0 {
		eb := backoff.NewExponentialBackOff()
		eb.InitialInterval = c.retry.InitialInterval
		eb.MaxInterval = c.retry.MaxInterval
		eb.MaxElapsedTime = c.retry.MaxElapsedTime
		eb.Multiplier = 2.0
		eb.RandomizationFactor = 0.5
		b = eb
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	return nil
}

// IsRateLimited reports whether err is an HTTP 429 from the node
func IsRateLimited(err error) bool {
	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}
