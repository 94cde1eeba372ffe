package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
)

// RPCClient defines an interface for JSON-RPC 2.0 calls to enable mocking
//
//go:generate mockgen -source=rpcclient.go -destination=../mocks/rpcclient.go -package=mocks -mock_names=RPCClient=MockRPCClient
type RPCClient interface {
	// CallContext performs a JSON-RPC call and decodes the result into result
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error

	// Close closes the underlying transport
	Close()
}

// RPCDialer defines an interface for dialing JSON-RPC endpoints
//
//go:generate mockgen -source=rpcclient.go -destination=../mocks/rpcclient.go -package=mocks -mock_names=RPCDialer=MockRPCDialer
type RPCDialer interface {
	Dial(ctx context.Context, rawurl string) (RPCClient, error)
}

// RealRPCDialer dials endpoints with the go-ethereum JSON-RPC client.
// The client speaks plain JSON-RPC 2.0 and works against any compliant node.
type RealRPCDialer struct {
	httpClient *http.Client
}

// NewRPCDialer creates a dialer whose HTTP transport uses the given timeout
func NewRPCDialer(timeout time.Duration) RPCDialer {
	return &RealRPCDialer{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (d *RealRPCDialer) Dial(ctx context.Context, rawurl string) (RPCClient, error) {
	client, err := rpc.DialOptions(ctx, rawurl, rpc.WithHTTPClient(d.httpClient))
	if err != nil {
		return nil, err
	}
	return client, nil
}
