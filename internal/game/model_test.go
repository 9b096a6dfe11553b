package game

import "testing"

func TestTierOf(t *testing.T) {
	tests := []struct {
		score int64
		want  string
	}{
		{0, "Rookie"},
		{199, "Rookie"},
		{200, "Beginner"},
		{250, "Beginner"},
		{500, "Developing"},
		{1000, "Intermediate"},
		{1500, "Advanced"},
		{2000, "Expert"},
		{3000, "Elite"},
		{3999, "Elite"},
		{4000, "Legendary"},
		{999_999, "Legendary"},
	}
	for _, tc := range tests {
		got := TierOf(tc.score)
		if got.Name != tc.want {
			t.Fatalf("score=%d got=%q want=%q", tc.score, got.Name, tc.want)
		}
	}
}

func TestTierOfMonotonic(t *testing.T) {
	rank := map[string]int{
		"Rookie": 0, "Beginner": 1, "Developing": 2, "Intermediate": 3,
		"Advanced": 4, "Expert": 5, "Elite": 6, "Legendary": 7,
	}
	prev := -1
	for score := int64(0); score <= 4500; score += 50 {
		r, ok := rank[TierOf(score).Name]
		if !ok {
			t.Fatalf("unknown tier %q at score %d", TierOf(score).Name, score)
		}
		if r < prev {
			t.Fatalf("tier rank regressed at score %d", score)
		}
		prev = r
	}
}

func TestNextTierThreshold(t *testing.T) {
	tests := []struct {
		score int64
		want  int64
	}{
		{0, 500},
		{1, 500},
		{499, 500},
		{500, 1000},
		{750, 1000},
		{1000, 1500},
	}
	for _, tc := range tests {
		if got := NextTierThreshold(tc.score); got != tc.want {
			t.Fatalf("score=%d got=%d want=%d", tc.score, got, tc.want)
		}
	}
}

func TestTierProgress(t *testing.T) {
	if got := TierProgress(250); got != 0.5 {
		t.Fatalf("progress at 250: got %v want 0.5", got)
	}
	if got := TierProgress(500); got != 0 {
		t.Fatalf("progress at exact band boundary: got %v want 0", got)
	}
	if got := TierProgress(-10); got != 0 {
		t.Fatalf("progress below zero: got %v want 0", got)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		score int64
		want  int64
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{2750, 6},
	}
	for _, tc := range tests {
		if got := Level(tc.score); got != tc.want {
			t.Fatalf("score=%d got=%d want=%d", tc.score, got, tc.want)
		}
	}
}

func TestReputationChange(t *testing.T) {
	tests := []struct {
		returnPct float64
		want      int64
	}{
		{120, 200},
		{50.1, 200},
		{50, 100},
		{21, 100},
		{20, 50},
		{0.5, 50},
		{0, 0},
		{-5, -25},
		{-19.9, -25},
		{-20, -100},
		{-80, -100},
	}
	for _, tc := range tests {
		if got := ReputationChange(tc.returnPct); got != tc.want {
			t.Fatalf("returnPct=%v got=%d want=%d", tc.returnPct, got, tc.want)
		}
	}
}

func TestClampReputation(t *testing.T) {
	if got := clampReputation(-40); got != 0 {
		t.Fatalf("expected floor at 0, got %d", got)
	}
	if got := clampReputation(300); got != 300 {
		t.Fatalf("expected passthrough, got %d", got)
	}
}

func TestApplyMultiplier(t *testing.T) {
	if got := applyMultiplier(1_000*MicrosPerDollar, 1.5); got != 1_500*MicrosPerDollar {
		t.Fatalf("got %d want %d", got, 1_500*MicrosPerDollar)
	}
	if got := applyMultiplier(100*MicrosPerDollar, 0); got != 0 {
		t.Fatalf("zero multiplier: got %d want 0", got)
	}
	if got := applyMultiplier(1, 0.1); got < 0 {
		t.Fatalf("value went negative: %d", got)
	}
}

func TestPricePerShareMicros(t *testing.T) {
	got := PricePerShareMicros(500_000*MicrosPerDollar, 2000)
	want := int64(250) * MicrosPerDollar
	if got != want {
		t.Fatalf("got %d want %d", got, want)
	}
	if got := PricePerShareMicros(100, 0); got != 0 {
		t.Fatalf("zero shares should price at 0, got %d", got)
	}
}

func TestDollarsMicrosRoundTrip(t *testing.T) {
	if got := DollarsToMicros(1234.56); got != 1_234_560_000 {
		t.Fatalf("got %d", got)
	}
	if got := MicrosToDollars(2_500_000); got != 2.5 {
		t.Fatalf("got %v", got)
	}
}
