package reputation

import (
	"math"

	"github.com/sorel-labs/sorel/internal/domain"
)

// Component caps. Their ratios carry the conceptual weights of the score
// (volume 0.30, frequency 0.25, age 0.15, contract 0.20, participation 0.10).
const (
	VOLUME_CAP        = 300.0
	FREQUENCY_CAP     = 250.0
	AGE_CAP           = 150.0
	CONTRACT_CAP      = 200.0
	PARTICIPATION_CAP = 100.0

	VOLUME_DIVISOR           = 100.0
	FREQUENCY_MULTIPLIER     = 50.0
	AGE_DIVISOR              = 2.0
	CONTRACT_MULTIPLIER      = 2.0
	PARTICIPATION_MULTIPLIER = 10.0
)

// Tier thresholds
const (
	EXCELLENT_THRESHOLD = 750.0
	GOOD_THRESHOLD      = 500.0
	FAIR_THRESHOLD      = 250.0
)

// Components holds the clamped contribution of each metric to the score
type Components struct {
	Volume        float64 `json:"volume"`
	Frequency     float64 `json:"frequency"`
	Age           float64 `json:"age"`
	Contract      float64 `json:"contract"`
	Participation float64 `json:"participation"`
}

// Total returns the sum of all components clamped to the maximum score
func (c Components) Total() float64 {
	sum := c.Volume + c.Frequency + c.Age + c.Contract + c.Participation
	return math.Min(sum, domain.MAX_REPUTATION_SCORE)
}

// Breakdown computes every component, each clamped to its own cap
func Breakdown(m domain.WalletMetrics) Components {
	return Components{
		Volume:        clamp(m.TotalVolume/VOLUME_DIVISOR, VOLUME_CAP),
		Frequency:     clamp(m.ActivityFrequency*FREQUENCY_MULTIPLIER, FREQUENCY_CAP),
		Age:           clamp(float64(m.WalletAgeDays)/AGE_DIVISOR, AGE_CAP),
		Contract:      clamp(float64(m.ContractInteractions)*CONTRACT_MULTIPLIER, CONTRACT_CAP),
		Participation: clamp(float64(m.UniquePrograms)*PARTICIPATION_MULTIPLIER, PARTICIPATION_CAP),
	}
}

// Score maps a metric vector to a reputation score in [0, 1000].
// Components are clamped before summation and the sum is clamped afterwards;
// the order matters for extreme inputs and must not change.
func Score(m domain.WalletMetrics) float64 {
	return Breakdown(m).Total()
}

// RoundScore rounds a score to two decimals for presentation and storage
func RoundScore(score float64) float64 {
	return math.Round(score*100) / 100
}

// Tier returns the label for a score
func Tier(score float64) domain.ReputationTier {
	switch {
	case score >= EXCELLENT_THRESHOLD:
		return domain.ReputationTierExcellent
	case score >= GOOD_THRESHOLD:
		return domain.ReputationTierGood
	case score >= FAIR_THRESHOLD:
		return domain.ReputationTierFair
	default:
		return domain.ReputationTierLow
	}
}

// clamp limits v to [0, limit]. NaN collapses to 0.
func clamp(v, limit float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	return math.Min(v, limit)
}
