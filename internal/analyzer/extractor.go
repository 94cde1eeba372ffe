package analyzer

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/sorel-labs/sorel/internal/adapter"
	"github.com/sorel-labs/sorel/internal/domain"
	"github.com/sorel-labs/sorel/internal/logger"
	"github.com/sorel-labs/sorel/internal/providers/solana"
)

// Heuristic coefficients used to approximate on-chain behaviour from the signature list alone.
// The transaction count is bounded by the signature fetch limit, so every derived metric
// plateaus for very active wallets.
const (
	VOLUME_PER_TRANSACTION     = 0.1
	CONTRACT_INTERACTION_RATIO = 0.6
	UNIQUE_PROGRAM_RATIO       = 0.3
	MAX_UNIQUE_PROGRAMS        = 20

	SECONDS_PER_DAY = 86400
)

// Extractor derives the metric vector of a wallet from chain data
//
//go:generate mockgen -source=extractor.go -destination=../mocks/extractor.go -package=mocks -mock_names=Extractor=MockExtractor
type Extractor interface {
	// Extract returns the metrics of a wallet. Upstream failures yield zero metrics, never an error.
	Extract(ctx context.Context, address domain.WalletAddress) domain.WalletMetrics
}

type extractor struct {
	client         solana.Client
	clock          adapter.Clock
	signatureLimit int
}

// NewExtractor creates an extractor reading at most signatureLimit recent signatures per wallet
func NewExtractor(client solana.Client, clock adapter.Clock, signatureLimit int) Extractor {
	if signatureLimit <= 0 {
		signatureLimit = solana.DEFAULT_SIGNATURE_LIMIT
	}
	return &extractor{
		client:         client,
		clock:          clock,
		signatureLimit: signatureLimit,
	}
}

func (e *extractor) Extract(ctx context.Context, address domain.WalletAddress) domain.WalletMetrics {
	signatures, err := e.client.GetSignaturesForAddress(ctx, address.String(), e.signatureLimit)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "failed to fetch wallet signatures"), zap.String("address", address.String()))
		return domain.WalletMetrics{}
	}
	if len(signatures) == 0 {
		logger.DebugCtx(ctx, "wallet has no transactions", zap.String("address", address.String()))
		return domain.WalletMetrics{}
	}

	lamports, err := e.client.GetBalance(ctx, address.String())
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "failed to fetch wallet balance"), zap.String("address", address.String()))
		return domain.WalletMetrics{}
	}

	count := len(signatures)
	balance := float64(lamports) / domain.LAMPORTS_PER_SOL
	ageDays := walletAgeDays(signatures[len(signatures)-1], e.clock.Now())

	return domain.WalletMetrics{
		TransactionCount:     count,
		TotalVolume:          round2(balance + float64(count)*VOLUME_PER_TRANSACTION),
		ContractInteractions: int(float64(count) * CONTRACT_INTERACTION_RATIO),
		WalletAgeDays:        ageDays,
		ActivityFrequency:    round2(float64(count) / float64(max(ageDays, 1))),
		UniquePrograms:       min(int(float64(count)*UNIQUE_PROGRAM_RATIO), MAX_UNIQUE_PROGRAMS),
	}
}

// walletAgeDays counts the whole days since the oldest fetched transaction.
// Signatures come newest first so the oldest is the last one.
func walletAgeDays(oldest solana.SignatureInfo, now time.Time) int {
	if oldest.BlockTime == nil {
		return 0
	}

	age := now.Unix() - *oldest.BlockTime
	if age <= 0 {
		return 0
	}

	return int(age / SECONDS_PER_DAY)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
