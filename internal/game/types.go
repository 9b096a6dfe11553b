package game

import "time"

type FundingStage string

const (
	StageSeed    FundingStage = "seed"
	StageSeriesA FundingStage = "series_a"
	StageSeriesB FundingStage = "series_b"
	StageSeriesC FundingStage = "series_c"
	StageGrowth  FundingStage = "growth"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type EventType string

const (
	EventAcquisition  EventType = "acquisition"
	EventIPO          EventType = "ipo"
	EventFundingRound EventType = "funding_round"
	EventFailure      EventType = "failure"
	EventGrowth       EventType = "growth"
)

type Startup struct {
	ID                 string       `json:"id" toml:"id"`
	Name               string       `json:"name" toml:"name"`
	Industry           string       `json:"industry" toml:"industry"`
	Description        string       `json:"description" toml:"description"`
	ValuationMicros    int64        `json:"valuation_micros" toml:"valuation_micros"`
	FundingStage       FundingStage `json:"funding_stage" toml:"funding_stage"`
	RiskLevel          RiskLevel    `json:"risk_level" toml:"risk_level"`
	GrowthPotential    float64      `json:"growth_potential" toml:"growth_potential"`
	ReputationRequired int64        `json:"reputation_required" toml:"reputation_required"`
	AvailableShares    int64        `json:"available_shares" toml:"available_shares"`
}

type MarketEvent struct {
	ID               string    `json:"id" toml:"id"`
	StartupID        string    `json:"startup_id" toml:"startup_id"`
	EventType        EventType `json:"event_type" toml:"event_type"`
	ImpactMultiplier float64   `json:"impact_multiplier" toml:"impact_multiplier"`
	Description      string    `json:"description" toml:"description"`
	OccurredAt       time.Time `json:"occurred_at" toml:"-"`
}

type InvestmentStatus string

const (
	InvestmentActive InvestmentStatus = "active"
	InvestmentExited InvestmentStatus = "exited"
)

type Investment struct {
	ID                  string           `json:"id"`
	UserID              string           `json:"user_id"`
	SessionID           string           `json:"session_id"`
	StartupID           string           `json:"startup_id"`
	SharesPurchased     int64            `json:"shares_purchased"`
	PurchasePriceMicros int64            `json:"purchase_price_micros"`
	PurchaseTime        time.Time        `json:"purchase_time"`
	CurrentValueMicros  int64            `json:"current_value_micros"`
	Status              InvestmentStatus `json:"status"`
}

type Player struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	Username             string    `json:"username"`
	ReputationScore      int64     `json:"reputation_score"`
	PortfolioValueMicros int64     `json:"portfolio_value_micros"`
	CashMicros           int64     `json:"cash_micros"`
	GamesPlayed          int64     `json:"games_played"`
	SuccessfulExits      int64     `json:"successful_exits"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// WinRate is successful exits over games played, zero before the first game.
func (p Player) WinRate() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return float64(p.SuccessfulExits) / float64(p.GamesPlayed)
}

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionExpired   SessionStatus = "expired"
)

type GameSession struct {
	ID                        string        `json:"id"`
	UserID                    string        `json:"user_id"`
	SessionName               string        `json:"session_name"`
	StartTime                 time.Time     `json:"start_time"`
	DurationMinutes           int64         `json:"duration_minutes"`
	Status                    SessionStatus `json:"status"`
	FinalPortfolioValueMicros int64         `json:"final_portfolio_value_micros"`
	ReputationGained          int64         `json:"reputation_gained"`
	TimeRemainingSecs         int64         `json:"time_remaining_secs"`
}

// SettlementResult is the end-of-round computation handed to callers.
type SettlementResult struct {
	FinalValueMicros      int64   `json:"final_value_micros"`
	TotalReturnMicros     int64   `json:"total_return_micros"`
	ReturnPct             float64 `json:"return_pct"`
	ReputationChange      int64   `json:"reputation_change"`
	NewReputation         int64   `json:"new_reputation"`
	SuccessfulInvestments int64   `json:"successful_investments"`
	Expired               bool    `json:"expired"`
}

// StartupView is a catalog row annotated against the viewer's reputation.
type StartupView struct {
	Startup
	PricePerShareMicros int64 `json:"price_per_share_micros"`
	Locked              bool  `json:"locked"`
}

type TierView struct {
	Tier
	Score            int64   `json:"score"`
	Level            int64   `json:"level"`
	NextThreshold    int64   `json:"next_threshold"`
	ProgressFraction float64 `json:"progress_fraction"`
}

// StateView is the read-only snapshot served to presentation layers.
type StateView struct {
	Player      Player            `json:"player"`
	Tier        TierView          `json:"tier"`
	Session     *GameSession      `json:"session,omitempty"`
	Investments []Investment      `json:"investments"`
	Settlement  *SettlementResult `json:"settlement,omitempty"`
}

type LeaderboardRow struct {
	Rank            int64   `json:"rank"`
	Username        string  `json:"username" toml:"username"`
	ReputationScore int64   `json:"reputation_score" toml:"reputation_score"`
	TotalReturns    float64 `json:"total_returns" toml:"total_returns"`
	SuccessfulExits int64   `json:"successful_exits" toml:"successful_exits"`
	WinRate         float64 `json:"win_rate" toml:"win_rate"`
	IsPlayer        bool    `json:"is_player"`
}

type Achievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Requirement float64 `json:"requirement"`
	Progress    float64 `json:"progress"`
	Unlocked    bool    `json:"unlocked"`
	Reward      string  `json:"reward"`
}
