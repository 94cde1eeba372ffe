package messaging

import (
	"context"

	"github.com/sorel-labs/sorel/internal/domain"
)

// Publisher defines the interface for publishing analysis events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishWalletAnalyzed publishes the outcome of a wallet analysis
	PublishWalletAnalyzed(ctx context.Context, event *domain.WalletAnalyzedEvent) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishWalletAnalyzed(context.Context, *domain.WalletAnalyzedEvent) error {
	return nil
}

func (noopPublisher) Close() {}
