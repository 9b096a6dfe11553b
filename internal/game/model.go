package game

import (
	"errors"
	"math"
)

const (
	MicrosPerDollar = int64(1_000_000)

	StartingCashMicros = int64(100_000) * MicrosPerDollar

	// Tier bands are 500 points wide for level/progress purposes.
	TierBandWidth = int64(500)
)

var (
	ErrStartupNotFound     = errors.New("startup not found")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrReputationLocked    = errors.New("reputation below startup requirement")
	ErrInvalidAmount       = errors.New("amount must be > 0")
	ErrInvalidShares       = errors.New("shares must be > 0")
	ErrInvestmentNotFound  = errors.New("investment not found")
	ErrInvestmentNotActive = errors.New("investment already exited")
	ErrNoActiveRound       = errors.New("no active round")
	ErrRoundInProgress     = errors.New("round already in progress")
)

func DollarsToMicros(v float64) int64 {
	return int64(math.Round(v * float64(MicrosPerDollar)))
}

func MicrosToDollars(v int64) float64 {
	return float64(v) / float64(MicrosPerDollar)
}

// applyMultiplier scales a micro-denominated value, never below zero.
func applyMultiplier(valueMicros int64, multiplier float64) int64 {
	scaled := int64(math.Round(float64(valueMicros) * multiplier))
	if scaled < 0 {
		return 0
	}
	return scaled
}

type Tier struct {
	Name        string `json:"name"`
	ColorToken  string `json:"color_token"`
	Description string `json:"description"`
}

var tierTable = []struct {
	MinScore int64
	Tier     Tier
}{
	{4000, Tier{"Legendary", "purple", "Access to the most exclusive deals"}},
	{3000, Tier{"Elite", "gold", "Top-tier investor with premium access"}},
	{2000, Tier{"Expert", "blue", "Proven track record, advanced deals"}},
	{1500, Tier{"Advanced", "green", "Experienced investor, good opportunities"}},
	{1000, Tier{"Intermediate", "orange", "Building reputation, moderate deals"}},
	{500, Tier{"Developing", "cyan", "Learning the ropes, basic deals"}},
	{200, Tier{"Beginner", "lime", "New investor, limited opportunities"}},
	{0, Tier{"Rookie", "gray", "Starting out, high-risk deals only"}},
}

// TierOf maps a reputation score to its bracket, highest threshold first.
func TierOf(score int64) Tier {
	for _, row := range tierTable {
		if score >= row.MinScore {
			return row.Tier
		}
	}
	return tierTable[len(tierTable)-1].Tier
}

// NextTierThreshold is the upper bound of the current 500-point band. An
// exact multiple of 500 opens a fresh band rather than reporting itself.
func NextTierThreshold(score int64) int64 {
	if score < 0 {
		score = 0
	}
	return (score/TierBandWidth)*TierBandWidth + TierBandWidth
}

// TierProgress is the fraction of the current band already earned, in [0, 1).
func TierProgress(score int64) float64 {
	if score < 0 {
		score = 0
	}
	return float64(score%TierBandWidth) / float64(TierBandWidth)
}

func Level(score int64) int64 {
	if score < 0 {
		score = 0
	}
	return score/TierBandWidth + 1
}

// ReputationChange converts a round's percentage return into a score delta.
func ReputationChange(returnPct float64) int64 {
	switch {
	case returnPct > 50:
		return 200
	case returnPct > 20:
		return 100
	case returnPct > 0:
		return 50
	case returnPct == 0:
		return 0
	case returnPct > -20:
		return -25
	default:
		return -100
	}
}

// clampReputation keeps a score inside the model's domain. Scores never go
// negative; a deep loss stops at Rookie.
func clampReputation(score int64) int64 {
	if score < 0 {
		return 0
	}
	return score
}

// PricePerShareMicros derives the sticker price of one share from the
// startup's valuation and float. Zero shares yields zero rather than a panic.
func PricePerShareMicros(valuationMicros int64, availableShares int64) int64 {
	if availableShares <= 0 {
		return 0
	}
	return valuationMicros / availableShares
}
