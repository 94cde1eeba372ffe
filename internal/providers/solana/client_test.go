package solana_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorel-labs/sorel/internal/adapter"
	"github.com/sorel-labs/sorel/internal/logger"
	"github.com/sorel-labs/sorel/internal/mocks"
	"github.com/sorel-labs/sorel/internal/providers/solana"
)

const testWallet = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type rpcRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// newRPCServer starts a JSON-RPC 2.0 server answering with handler(method, params)
func newRPCServer(t *testing.T, handler func(method string, params []json.RawMessage) (interface{}, int)) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		result, status := handler(req.Method, req.Params)
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"rate limited"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func fastRetry() solana.RetryConfig {
	return solana.RetryConfig{
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxElapsedTime:  time.Second,
	}
}

func dialTestClient(t *testing.T, url string) solana.Client {
	c, err := solana.Dial(context.Background(), adapter.NewRPCDialer(5*time.Second), url, 5*time.Second, fastRetry())
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestClient_GetSignaturesForAddress(t *testing.T) {
	var gotAddress string
	var gotOpts map[string]interface{}

	srv := newRPCServer(t, func(method string, params []json.RawMessage) (interface{}, int) {
		require.Equal(t, "getSignaturesForAddress", method)
		require.Len(t, params, 2)
		_ = json.Unmarshal(params[0], &gotAddress)
		_ = json.Unmarshal(params[1], &gotOpts)

		return []map[string]interface{}{
			{"signature": "sig1", "slot": 300, "err": nil, "memo": nil, "blockTime": 1_700_000_300, "confirmationStatus": "finalized"},
			{"signature": "sig2", "slot": 200, "err": nil, "memo": nil, "blockTime": nil, "confirmationStatus": "finalized"},
		}, http.StatusOK
	})

	c := dialTestClient(t, srv.URL)
	sigs, err := c.GetSignaturesForAddress(context.Background(), testWallet, 100)
	require.NoError(t, err)
	require.Len(t, sigs, 2)

	assert.Equal(t, testWallet, gotAddress)
	assert.Equal(t, float64(100), gotOpts["limit"])
	assert.Equal(t, "sig1", sigs[0].Signature)
	require.NotNil(t, sigs[0].BlockTime)
	assert.Equal(t, int64(1_700_000_300), *sigs[0].BlockTime)
	assert.Nil(t, sigs[1].BlockTime)
	assert.Equal(t, srv.URL, c.URL())
}

func TestClient_GetSignaturesForAddress_LimitBounds(t *testing.T) {
	var gotLimits []float64
	srv := newRPCServer(t, func(method string, params []json.RawMessage) (interface{}, int) {
		var opts map[string]interface{}
		_ = json.Unmarshal(params[1], &opts)
		gotLimits = append(gotLimits, opts["limit"].(float64))
		return []interface{}{}, http.StatusOK
	})

	c := dialTestClient(t, srv.URL)
	_, err := c.GetSignaturesForAddress(context.Background(), testWallet, 0)
	require.NoError(t, err)
	_, err = c.GetSignaturesForAddress(context.Background(), testWallet, 5000)
	require.NoError(t, err)

	assert.Equal(t, []float64{solana.DEFAULT_SIGNATURE_LIMIT, solana.MAX_SIGNATURE_LIMIT}, gotLimits)
}

func TestClient_GetBalance(t *testing.T) {
	srv := newRPCServer(t, func(method string, params []json.RawMessage) (interface{}, int) {
		require.Equal(t, "getBalance", method)
		return map[string]interface{}{
			"context": map[string]interface{}{"slot": 123},
			"value":   2_500_000_000,
		}, http.StatusOK
	})

	c := dialTestClient(t, srv.URL)
	balance, err := c.GetBalance(context.Background(), testWallet)
	require.NoError(t, err)
	assert.Equal(t, uint64(2_500_000_000), balance)
}

func TestClient_HealthProbes(t *testing.T) {
	srv := newRPCServer(t, func(method string, params []json.RawMessage) (interface{}, int) {
		switch method {
		case "getVersion":
			return map[string]interface{}{"solana-core": "1.18.22", "feature-set": 4215500110}, http.StatusOK
		case "getSlot":
			return 289_000_000, http.StatusOK
		case "getEpochInfo":
			return map[string]interface{}{
				"absoluteSlot": 289_000_000,
				"blockHeight":  267_000_000,
				"epoch":        668,
				"slotIndex":    400_000,
				"slotsInEpoch": 432_000,
			}, http.StatusOK
		}
		t.Fatalf("unexpected method %s", method)
		return nil, http.StatusOK
	})

	c := dialTestClient(t, srv.URL)
	ctx := context.Background()

	version, err := c.GetVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.18.22", version.SolanaCore)

	slot, err := c.GetSlot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(289_000_000), slot)

	epoch, err := c.GetEpochInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(668), epoch.Epoch)
	assert.Nil(t, epoch.TransactionCount)
}

func TestClient_RetriesWhenRateLimited(t *testing.T) {
	var calls atomic.Int32
	srv := newRPCServer(t, func(method string, params []json.RawMessage) (interface{}, int) {
		if calls.Add(1) <= 2 {
			return nil, http.StatusTooManyRequests
		}
		return 42, http.StatusOK
	})

	c := dialTestClient(t, srv.URL)
	slot, err := c.GetSlot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), slot)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryOtherHTTPErrors(t *testing.T) {
	var calls atomic.Int32
	srv := newRPCServer(t, func(method string, params []json.RawMessage) (interface{}, int) {
		calls.Add(1)
		return nil, http.StatusInternalServerError
	})

	c := dialTestClient(t, srv.URL)
	_, err := c.GetSlot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getSlot failed")
	assert.False(t, solana.IsRateLimited(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_GivesUpAfterMaxElapsedTime(t *testing.T) {
	srv := newRPCServer(t, func(method string, params []json.RawMessage) (interface{}, int) {
		return nil, http.StatusTooManyRequests
	})

	c, err := solana.Dial(context.Background(), adapter.NewRPCDialer(time.Second), srv.URL, time.Second, solana.RetryConfig{
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		MaxElapsedTime:  20 * time.Millisecond,
	})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.GetBalance(context.Background(), testWallet)
	require.Error(t, err)
	assert.True(t, solana.IsRateLimited(err))
}

func TestClient_WithMockTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rpcClient := mocks.NewMockRPCClient(ctrl)
	c := solana.NewClient("https://rpc.example", rpcClient, time.Second, fastRetry())

	rpcClient.EXPECT().
		CallContext(gomock.Any(), gomock.Any(), "getSlot").
		DoAndReturn(func(ctx context.Context, result interface{}, method string, args ...interface{}) error {
			*(result.(*uint64)) = 7
			return nil
		})
	rpcClient.EXPECT().Close()

	slot, err := c.GetSlot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), slot)
	c.Close()
}

func TestDial_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dialer := mocks.NewMockRPCDialer(ctrl)
	dialer.EXPECT().Dial(gomock.Any(), "bad://url").Return(nil, assert.AnError)

	c, err := solana.Dial(context.Background(), dialer, "bad://url", time.Second, fastRetry())
	require.Error(t, err)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestClient_ZeroRetryConfigDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := newRPCServer(t, func(method string, params []json.RawMessage) (interface{}, int) {
		calls.Add(1)
		return nil, http.StatusTooManyRequests
	})

	c, err := solana.Dial(context.Background(), adapter.NewRPCDialer(time.Second), srv.URL, time.Second, solana.RetryConfig{})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.GetSlot(context.Background())
	require.Error(t, err)
	assert.True(t, solana.IsRateLimited(err))
	assert.Equal(t, int32(1), calls.Load())
}
