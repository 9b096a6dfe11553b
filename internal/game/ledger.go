package game

import (
	"time"

	"github.com/google/uuid"
)

// Ledger owns the round's cash and investment set. Not safe for concurrent
// use on its own; the engine serializes access.
type Ledger struct {
	catalog     *Catalog
	cashMicros  int64
	totalMicros int64
	investments []*Investment
}

func NewLedger(catalog *Catalog) *Ledger {
	return &Ledger{
		catalog:     catalog,
		cashMicros:  StartingCashMicros,
		totalMicros: StartingCashMicros,
	}
}

func (l *Ledger) CashMicros() int64 { return l.cashMicros }

func (l *Ledger) TotalMicros() int64 { return l.totalMicros }

// Investments returns copies so callers cannot mutate ledger state.
func (l *Ledger) Investments() []Investment {
	out := make([]Investment, 0, len(l.investments))
	for _, inv := range l.investments {
		out = append(out, *inv)
	}
	return out
}

func (l *Ledger) find(investmentID string) *Investment {
	for _, inv := range l.investments {
		if inv.ID == investmentID {
			return inv
		}
	}
	return nil
}

// Buy records a new active investment worth exactly amountMicros. The caller
// is trusted to have priced the shares; the ledger only guards cash and the
// startup's existence.
func (l *Ledger) Buy(userID, sessionID, startupID string, shares, amountMicros int64) (Investment, error) {
	if shares <= 0 {
		return Investment{}, ErrInvalidShares
	}
	if amountMicros <= 0 {
		return Investment{}, ErrInvalidAmount
	}
	if _, ok := l.catalog.StartupByID(startupID); !ok {
		return Investment{}, ErrStartupNotFound
	}
	if amountMicros > l.cashMicros {
		return Investment{}, ErrInsufficientFunds
	}
	inv := &Investment{
		ID:                  uuid.NewString(),
		UserID:              userID,
		SessionID:           sessionID,
		StartupID:           startupID,
		SharesPurchased:     shares,
		PurchasePriceMicros: amountMicros,
		PurchaseTime:        time.Now().UTC(),
		CurrentValueMicros:  amountMicros,
		Status:              InvestmentActive,
	}
	l.investments = append(l.investments, inv)
	l.cashMicros -= amountMicros
	l.recompute()
	return *inv, nil
}

// Sell exits an active investment at its current value. Exited holdings stop
// receiving market events but stay on the books until reset.
func (l *Ledger) Sell(investmentID string) (Investment, error) {
	inv := l.find(investmentID)
	if inv == nil {
		return Investment{}, ErrInvestmentNotFound
	}
	if inv.Status != InvestmentActive {
		return Investment{}, ErrInvestmentNotActive
	}
	inv.Status = InvestmentExited
	l.cashMicros += inv.CurrentValueMicros
	l.recompute()
	return *inv, nil
}

// ApplyEvent scales every active holding in the event's startup, then
// recomputes the total from the mutated list. Returns how many holdings
// moved.
func (l *Ledger) ApplyEvent(event MarketEvent) int {
	touched := 0
	for _, inv := range l.investments {
		if inv.Status != InvestmentActive || inv.StartupID != event.StartupID {
			continue
		}
		inv.CurrentValueMicros = applyMultiplier(inv.CurrentValueMicros, event.ImpactMultiplier)
		touched++
	}
	l.recompute()
	return touched
}

// Reset clears the book and restores the starting stake.
func (l *Ledger) Reset() {
	l.investments = nil
	l.cashMicros = StartingCashMicros
	l.totalMicros = StartingCashMicros
}

// FinalValueMicros is the settlement total: cash plus every holding's current
// value, exited ones included.
func (l *Ledger) FinalValueMicros() int64 {
	total := l.cashMicros
	for _, inv := range l.investments {
		total += inv.CurrentValueMicros
	}
	return total
}

// ProfitableCount counts holdings currently worth more than they cost.
func (l *Ledger) ProfitableCount() int64 {
	var n int64
	for _, inv := range l.investments {
		if inv.CurrentValueMicros > inv.PurchasePriceMicros {
			n++
		}
	}
	return n
}

func (l *Ledger) recompute() {
	total := l.cashMicros
	for _, inv := range l.investments {
		if inv.Status == InvestmentActive {
			total += inv.CurrentValueMicros
		}
	}
	l.totalMicros = total
}
