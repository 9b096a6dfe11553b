package game

import "testing"

func testCatalog() *Catalog {
	return &Catalog{
		Startups: []Startup{
			{ID: "alpha", Name: "Alpha", ValuationMicros: 200_000 * MicrosPerDollar, AvailableShares: 2000},
			{ID: "beta", Name: "Beta", ValuationMicros: 1_000_000 * MicrosPerDollar, AvailableShares: 500},
		},
		Events: []MarketEvent{
			{ID: "ev1", StartupID: "alpha", EventType: EventGrowth, ImpactMultiplier: 1.5, Description: "Alpha lands a contract"},
			{ID: "ev2", StartupID: "beta", EventType: EventFailure, ImpactMultiplier: 0.5, Description: "Beta loses its lead"},
		},
	}
}

func checkInvariant(t *testing.T, l *Ledger) {
	t.Helper()
	total := l.CashMicros()
	for _, inv := range l.Investments() {
		if inv.Status == InvestmentActive {
			total += inv.CurrentValueMicros
		}
	}
	if total != l.TotalMicros() {
		t.Fatalf("invariant broken: cash+active=%d total=%d", total, l.TotalMicros())
	}
	if l.CashMicros() < 0 {
		t.Fatalf("cash went negative: %d", l.CashMicros())
	}
}

func TestLedgerBuy(t *testing.T) {
	l := NewLedger(testCatalog())

	inv, err := l.Buy("u1", "s1", "alpha", 10, 1_000*MicrosPerDollar)
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if inv.CurrentValueMicros != inv.PurchasePriceMicros {
		t.Fatalf("new investment not valued at cost")
	}
	if l.CashMicros() != StartingCashMicros-1_000*MicrosPerDollar {
		t.Fatalf("cash not debited: %d", l.CashMicros())
	}
	checkInvariant(t, l)
}

func TestLedgerBuyRejections(t *testing.T) {
	l := NewLedger(testCatalog())
	before := l.CashMicros()

	cases := []struct {
		name      string
		startupID string
		shares    int64
		amount    int64
		want      error
	}{
		{"unknown startup", "ghost", 1, MicrosPerDollar, ErrStartupNotFound},
		{"over budget", "alpha", 1, StartingCashMicros + 1, ErrInsufficientFunds},
		{"zero shares", "alpha", 0, MicrosPerDollar, ErrInvalidShares},
		{"zero amount", "alpha", 1, 0, ErrInvalidAmount},
	}
	for _, tc := range cases {
		if _, err := l.Buy("u1", "s1", tc.startupID, tc.shares, tc.amount); err != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, err, tc.want)
		}
		if l.CashMicros() != before {
			t.Fatalf("%s: cash changed on rejected buy", tc.name)
		}
		if len(l.Investments()) != 0 {
			t.Fatalf("%s: investment recorded on rejected buy", tc.name)
		}
	}
	checkInvariant(t, l)
}

func TestLedgerSell(t *testing.T) {
	l := NewLedger(testCatalog())
	inv, err := l.Buy("u1", "s1", "alpha", 10, 1_000*MicrosPerDollar)
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}

	sold, err := l.Sell(inv.ID)
	if err != nil {
		t.Fatalf("sell failed: %v", err)
	}
	if sold.Status != InvestmentExited {
		t.Fatalf("status not exited: %s", sold.Status)
	}
	if l.CashMicros() != StartingCashMicros {
		t.Fatalf("proceeds not credited: %d", l.CashMicros())
	}
	checkInvariant(t, l)

	if _, err := l.Sell(inv.ID); err != ErrInvestmentNotActive {
		t.Fatalf("double sell: got %v want %v", err, ErrInvestmentNotActive)
	}
	if _, err := l.Sell("missing"); err != ErrInvestmentNotFound {
		t.Fatalf("unknown sell: got %v want %v", err, ErrInvestmentNotFound)
	}
	checkInvariant(t, l)
}

func TestLedgerApplyEventScoping(t *testing.T) {
	cat := testCatalog()
	l := NewLedger(cat)
	a, _ := l.Buy("u1", "s1", "alpha", 10, 1_000*MicrosPerDollar)
	b, _ := l.Buy("u1", "s1", "beta", 5, 2_000*MicrosPerDollar)

	touched := l.ApplyEvent(cat.Events[0]) // alpha x1.5
	if touched != 1 {
		t.Fatalf("touched=%d want 1", touched)
	}
	checkInvariant(t, l)

	var gotA, gotB int64
	for _, inv := range l.Investments() {
		switch inv.ID {
		case a.ID:
			gotA = inv.CurrentValueMicros
		case b.ID:
			gotB = inv.CurrentValueMicros
		}
	}
	if gotA != 1_500*MicrosPerDollar {
		t.Fatalf("alpha holding=%d want %d", gotA, 1_500*MicrosPerDollar)
	}
	if gotB != 2_000*MicrosPerDollar {
		t.Fatalf("beta holding moved: %d", gotB)
	}

	wantTotal := StartingCashMicros + 500*MicrosPerDollar
	if l.TotalMicros() != wantTotal {
		t.Fatalf("total=%d want %d", l.TotalMicros(), wantTotal)
	}
}

func TestLedgerApplyEventSkipsExited(t *testing.T) {
	cat := testCatalog()
	l := NewLedger(cat)
	a, _ := l.Buy("u1", "s1", "alpha", 10, 1_000*MicrosPerDollar)
	if _, err := l.Sell(a.ID); err != nil {
		t.Fatalf("sell failed: %v", err)
	}

	if touched := l.ApplyEvent(cat.Events[0]); touched != 0 {
		t.Fatalf("exited holding mutated, touched=%d", touched)
	}
	for _, inv := range l.Investments() {
		if inv.CurrentValueMicros != 1_000*MicrosPerDollar {
			t.Fatalf("exited value changed: %d", inv.CurrentValueMicros)
		}
	}
	checkInvariant(t, l)
}

func TestLedgerReset(t *testing.T) {
	l := NewLedger(testCatalog())
	if _, err := l.Buy("u1", "s1", "alpha", 10, 1_000*MicrosPerDollar); err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	l.Reset()
	if l.CashMicros() != StartingCashMicros || l.TotalMicros() != StartingCashMicros {
		t.Fatalf("reset did not restore stake: cash=%d total=%d", l.CashMicros(), l.TotalMicros())
	}
	if len(l.Investments()) != 0 {
		t.Fatalf("investments survived reset")
	}
}

func TestLedgerInvariantAcrossSequence(t *testing.T) {
	cat := testCatalog()
	l := NewLedger(cat)

	a, _ := l.Buy("u1", "s1", "alpha", 10, 1_000*MicrosPerDollar)
	checkInvariant(t, l)
	l.Buy("u1", "s1", "beta", 2, 4_000*MicrosPerDollar)
	checkInvariant(t, l)
	l.ApplyEvent(cat.Events[0])
	checkInvariant(t, l)
	l.ApplyEvent(cat.Events[1])
	checkInvariant(t, l)
	l.Sell(a.ID)
	checkInvariant(t, l)
	l.ApplyEvent(cat.Events[0])
	checkInvariant(t, l)
}

func TestLedgerFinalValueCountsExited(t *testing.T) {
	cat := testCatalog()
	l := NewLedger(cat)
	a, _ := l.Buy("u1", "s1", "alpha", 10, 1_000*MicrosPerDollar)
	l.ApplyEvent(cat.Events[0])
	l.Sell(a.ID)

	// Settlement totals include exited holdings on top of the credited cash.
	want := StartingCashMicros + 500*MicrosPerDollar + 1_500*MicrosPerDollar
	if got := l.FinalValueMicros(); got != want {
		t.Fatalf("final value=%d want %d", got, want)
	}
}
