package game

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultRoundDuration = 15 * time.Minute
	DefaultEventEvery    = 10 * time.Second
)

// Engine owns the round lifecycle: it wires the timer, the event feed and the
// ledger together behind one mutex and exposes the command/query surface.
// Ticks arrive from a single clock goroutine; commands from anywhere.
type Engine struct {
	mu sync.Mutex

	log      *slog.Logger
	catalog  *Catalog
	notifier Notifier

	roundSecs int64
	eventSecs int64

	ledger *Ledger
	feed   *Feed
	timer  *Timer

	player     Player
	session    *GameSession
	settlement *SettlementResult
}

type EngineOption func(*Engine)

func WithRoundDuration(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.roundSecs = int64(d / time.Second)
		}
	}
}

func WithEventEvery(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.eventSecs = int64(d / time.Second)
		}
	}
}

func WithNotifier(n Notifier) EngineOption {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

func NewEngine(catalog *Catalog, userID, username string, logger *slog.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	now := time.Now().UTC()
	e := &Engine{
		log:       logger,
		catalog:   catalog,
		notifier:  NopNotifier{},
		roundSecs: int64(DefaultRoundDuration / time.Second),
		eventSecs: int64(DefaultEventEvery / time.Second),
		timer:     NewTimer(),
		player: Player{
			ID:                   uuid.NewString(),
			UserID:               userID,
			Username:             username,
			ReputationScore:      0,
			PortfolioValueMicros: StartingCashMicros,
			CashMicros:           StartingCashMicros,
			CreatedAt:            now,
			UpdatedAt:            now,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.ledger = NewLedger(catalog)
	e.feed = NewFeed(catalog.Events, e.eventSecs)
	return e
}

// StartRound opens a fresh session. Valid with no session or after a
// completed one; rejected while a round is running.
func (e *Engine) StartRound() (GameSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil && e.session.Status == SessionActive {
		return GameSession{}, ErrRoundInProgress
	}

	session := &GameSession{
		ID:                uuid.NewString(),
		UserID:            e.player.UserID,
		SessionName:       fmt.Sprintf("Investment Round %d", e.player.GamesPlayed+1),
		StartTime:         time.Now().UTC(),
		DurationMinutes:   e.roundSecs / 60,
		Status:            SessionActive,
		TimeRemainingSecs: e.roundSecs,
	}
	e.session = session
	e.settlement = nil
	e.ledger.Reset()
	e.feed.Rewind()
	e.feed.Start()
	e.timer.Cancel()
	e.timer.Start(e.roundSecs)
	e.syncPlayer()

	e.log.Info("round started", "session_id", session.ID, "name", session.SessionName, "duration_secs", e.roundSecs)
	e.notifier.Notify(newNotification(NotifyInfo, "Round Started",
		fmt.Sprintf("%s is live. You have %d minutes.", session.SessionName, session.DurationMinutes)))
	return *session, nil
}

// Invest buys into a startup. Rejected outside an active round, below the
// startup's reputation bar, or beyond available cash; failed commands leave
// state untouched.
func (e *Engine) Invest(startupID string, shares, amountMicros int64) (Investment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || e.session.Status != SessionActive {
		return Investment{}, ErrNoActiveRound
	}
	startup, ok := e.catalog.StartupByID(startupID)
	if !ok {
		return Investment{}, ErrStartupNotFound
	}
	if e.player.ReputationScore < startup.ReputationRequired {
		return Investment{}, ErrReputationLocked
	}
	inv, err := e.ledger.Buy(e.player.UserID, e.session.ID, startupID, shares, amountMicros)
	if err != nil {
		return Investment{}, err
	}
	e.syncPlayer()
	e.log.Info("invested", "startup_id", startupID, "shares", shares, "amount_micros", amountMicros)
	return inv, nil
}

// Divest exits an active holding at its current value.
func (e *Engine) Divest(investmentID string) (Investment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || e.session.Status != SessionActive {
		return Investment{}, ErrNoActiveRound
	}
	inv, err := e.ledger.Sell(investmentID)
	if err != nil {
		return Investment{}, err
	}
	e.syncPlayer()
	e.log.Info("divested", "investment_id", investmentID, "proceeds_micros", inv.CurrentValueMicros)
	return inv, nil
}

// Tick advances one second of round time. Event release is sequenced before
// timer expiry so a settlement never races a due event.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || e.session.Status != SessionActive {
		return
	}
	if ev, ok := e.feed.Tick(); ok {
		touched := e.ledger.ApplyEvent(MarketEvent{
			ID:               ev.ID,
			StartupID:        ev.StartupID,
			EventType:        ev.EventType,
			ImpactMultiplier: ev.ImpactMultiplier,
			Description:      ev.Description,
			OccurredAt:       time.Now().UTC(),
		})
		e.syncPlayer()
		e.log.Info("market event released", "event_id", ev.ID, "startup_id", ev.StartupID,
			"multiplier", ev.ImpactMultiplier, "holdings_touched", touched)
		kind := NotifySuccess
		if ev.ImpactMultiplier < 1 {
			kind = NotifyWarning
		}
		e.notifier.Notify(newNotification(kind, "Market News", ev.Description))
	}
	if e.timer.Tick() {
		e.settleLocked(true)
		return
	}
	e.session.TimeRemainingSecs = e.timer.RemainingSecs()
}

// EndRound settles early at the player's request.
func (e *Engine) EndRound() (SettlementResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil || e.session.Status != SessionActive {
		return SettlementResult{}, ErrNoActiveRound
	}
	e.timer.Stop()
	e.settleLocked(false)
	return *e.settlement, nil
}

// settleLocked computes the round result and closes the session. Callers
// hold e.mu.
func (e *Engine) settleLocked(expired bool) {
	e.feed.Stop()

	finalValue := e.ledger.FinalValueMicros()
	totalReturn := finalValue - StartingCashMicros
	returnPct := float64(totalReturn) / float64(StartingCashMicros) * 100
	delta := ReputationChange(returnPct)
	newScore := clampReputation(e.player.ReputationScore + delta)

	result := &SettlementResult{
		FinalValueMicros:      finalValue,
		TotalReturnMicros:     totalReturn,
		ReturnPct:             returnPct,
		ReputationChange:      delta,
		NewReputation:         newScore,
		SuccessfulInvestments: e.ledger.ProfitableCount(),
		Expired:               expired,
	}
	e.settlement = result

	e.player.ReputationScore = newScore
	e.player.GamesPlayed++
	if returnPct > 20 {
		e.player.SuccessfulExits++
	}
	e.syncPlayer()

	e.session.Status = SessionCompleted
	e.session.FinalPortfolioValueMicros = finalValue
	e.session.ReputationGained = delta
	e.session.TimeRemainingSecs = 0

	e.log.Info("round settled", "session_id", e.session.ID, "expired", expired,
		"final_value_micros", finalValue, "return_pct", math.Round(returnPct*100)/100,
		"reputation_change", delta)

	kind := NotifySuccess
	title := "Round Complete"
	if delta < 0 {
		kind = NotifyWarning
	}
	if expired {
		title = "Time's Up"
	}
	e.notifier.Notify(newNotification(kind, title,
		fmt.Sprintf("Final value $%.2f (%+.1f%%), reputation %+d.",
			MicrosToDollars(finalValue), returnPct, delta)))
}

// ResetToMenu discards the session and restores the starting stake. Valid
// from any state; a running timer is cancelled without an expiry signal.
func (e *Engine) ResetToMenu() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.timer.Cancel()
	e.feed.Rewind()
	e.ledger.Reset()
	e.session = nil
	e.settlement = nil
	e.syncPlayer()
	e.log.Info("reset to menu")
}

// syncPlayer mirrors ledger totals onto the player snapshot. Callers hold e.mu.
func (e *Engine) syncPlayer() {
	e.player.CashMicros = e.ledger.CashMicros()
	e.player.PortfolioValueMicros = e.ledger.TotalMicros()
	e.player.UpdatedAt = time.Now().UTC()
}

// State returns a read-only snapshot for presentation layers.
func (e *Engine) State() StateView {
	e.mu.Lock()
	defer e.mu.Unlock()

	view := StateView{
		Player:      e.player,
		Tier:        e.tierViewLocked(),
		Investments: e.ledger.Investments(),
	}
	if e.session != nil {
		s := *e.session
		if s.Status == SessionActive {
			s.TimeRemainingSecs = e.timer.RemainingSecs()
		}
		view.Session = &s
	}
	if e.settlement != nil {
		r := *e.settlement
		view.Settlement = &r
	}
	return view
}

func (e *Engine) tierViewLocked() TierView {
	score := e.player.ReputationScore
	return TierView{
		Tier:             TierOf(score),
		Score:            score,
		Level:            Level(score),
		NextThreshold:    NextTierThreshold(score),
		ProgressFraction: TierProgress(score),
	}
}

// Startups lists the catalog annotated against the player's reputation.
// Locked deals stay visible so the player can see what a higher tier buys.
func (e *Engine) Startups() []StartupView {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]StartupView, 0, len(e.catalog.Startups))
	for _, s := range e.catalog.Startups {
		out = append(out, StartupView{
			Startup:             s,
			PricePerShareMicros: PricePerShareMicros(s.ValuationMicros, s.AvailableShares),
			Locked:              e.player.ReputationScore < s.ReputationRequired,
		})
	}
	return out
}

func (e *Engine) StartupByID(id string) (StartupView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.catalog.StartupByID(id)
	if !ok {
		return StartupView{}, ErrStartupNotFound
	}
	return StartupView{
		Startup:             s,
		PricePerShareMicros: PricePerShareMicros(s.ValuationMicros, s.AvailableShares),
		Locked:              e.player.ReputationScore < s.ReputationRequired,
	}, nil
}

// ReleasedEvents is this round's news reel so far, oldest first.
func (e *Engine) ReleasedEvents() []MarketEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.feed.Released()
}

// Leaderboard merges the static field with the live player, sorted by
// reputation.
func (e *Engine) Leaderboard() []LeaderboardRow {
	e.mu.Lock()
	defer e.mu.Unlock()
	return buildLeaderboard(e.catalog.Leaderboard, e.player)
}

// Achievements evaluates the fixed achievement set against current progress.
func (e *Engine) Achievements() []Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()
	return computeAchievements(e.player, e.ledger.Investments())
}
