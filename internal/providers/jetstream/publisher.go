package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/sorel-labs/sorel/internal/adapter"
	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/logger"
	"github.com/sorel-labs/sorel/internal/messaging"
)

// WALLET_ANALYZED_SUBJECT is the subject analysis events are published on
const WALLET_ANALYZED_SUBJECT = "wallets.analyzed"

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

// walletAnalyzedMessage is the wire payload of WALLET_ANALYZED_SUBJECT
type walletAnalyzedMessage struct {
	WalletAddress   string                `json:"wallet_address"`
	ReputationScore float64               `json:"reputation_score"`
	Tier            domain.ReputationTier `json:"tier"`
	AnalyzedAt      time.Time             `json:"analyzed_at"`
}

type publisher struct {
	nc   adapter.NatsConn
	js   adapter.JetStream
	json adapter.JSON
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	logger.Info("Connected to NATS", zap.String("url", nc.ConnectedUrl()))

	return &publisher{
		nc:   nc,
		js:   js,
		json: jsonAdapter,
	}, nil
}

// PublishWalletAnalyzed publishes an analysis event to NATS JetStream
func (p *publisher) PublishWalletAnalyzed(ctx context.Context, event *domain.WalletAnalyzedEvent) error {
	if event == nil {
		return fmt.Errorf("event is nil")
	}

	data, err := p.json.Marshal(walletAnalyzedMessage{
		WalletAddress:   event.WalletAddress,
		ReputationScore: event.ReputationScore,
		Tier:            event.Tier,
		AnalyzedAt:      event.AnalyzedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := p.js.Publish(ctx, WALLET_ANALYZED_SUBJECT, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.DebugCtx(ctx, "Published wallet analyzed event", zap.String("address", event.WalletAddress))

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
