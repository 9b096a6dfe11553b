package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"venture/internal/game"

	"github.com/fatih/color"
)

var (
	stdinReader = bufio.NewReader(os.Stdin)
	accent      = color.New(color.FgCyan, color.Bold)
	success     = color.New(color.FgGreen, color.Bold)
	warn        = color.New(color.FgYellow, color.Bold)
	danger      = color.New(color.FgRed, color.Bold)
	neutral     = color.New(color.FgHiWhite)
)

// tierColors maps the reputation model's color tokens onto terminal styles.
var tierColors = map[string]*color.Color{
	"purple": color.New(color.FgMagenta, color.Bold),
	"gold":   color.New(color.FgYellow, color.Bold),
	"blue":   color.New(color.FgBlue, color.Bold),
	"green":  color.New(color.FgGreen, color.Bold),
	"orange": color.New(color.FgHiYellow),
	"cyan":   color.New(color.FgCyan),
	"lime":   color.New(color.FgHiGreen),
	"gray":   color.New(color.FgHiBlack),
}

type startupsPayload struct {
	Startups []game.StartupView `json:"startups"`
}

type investmentsPayload struct {
	Investments []game.Investment `json:"investments"`
}

type eventsPayload struct {
	Events []game.MarketEvent `json:"events"`
}

type notificationsPayload struct {
	Notifications []game.Notification `json:"notifications"`
}

type leaderboardPayload struct {
	Rows []game.LeaderboardRow `json:"rows"`
}

type achievementsPayload struct {
	Achievements []game.Achievement `json:"achievements"`
}

func printSuccess(msg string) {
	success.Println(msg)
}

func printWarn(msg string) {
	warn.Println(msg)
}

func printInfo(msg string) {
	neutral.Println(msg)
}

func promptRequired(label string) (string, error) {
	for {
		fmt.Printf("%s: ", label)
		text, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(text)
		if text != "" {
			return text, nil
		}
		printWarn(label + " is required.")
	}
}

func promptInt64(label string, min int64) (int64, error) {
	for {
		text, err := promptRequired(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			printWarn("Enter a whole number.")
			continue
		}
		if v < min {
			printWarn(fmt.Sprintf("Value must be >= %d", min))
			continue
		}
		return v, nil
	}
}

func tierColor(token string) *color.Color {
	if c, ok := tierColors[token]; ok {
		return c
	}
	return neutral
}

func renderDash(raw map[string]any) error {
	state, err := decodeInto[game.StateView](raw)
	if err != nil {
		return err
	}

	accent.Println("\n== VENTURE DASHBOARD ==")
	tc := tierColor(state.Tier.ColorToken)
	fmt.Printf("Investor:     %s\n", state.Player.Username)
	fmt.Printf("Tier:         %s (level %d)\n", tc.Sprint(state.Tier.Name), state.Tier.Level)
	fmt.Printf("Reputation:   %s / %s (%.0f%% of band)\n",
		comma(state.Tier.Score), comma(state.Tier.NextThreshold), state.Tier.ProgressFraction*100)
	fmt.Printf("Cash:         $%s\n", formatMicros(state.Player.CashMicros))
	fmt.Printf("Portfolio:    $%s\n", formatMicros(state.Player.PortfolioValueMicros))
	fmt.Printf("Games:        %d played, %d successful exits (%.0f%% win rate)\n",
		state.Player.GamesPlayed, state.Player.SuccessfulExits, state.Player.WinRate()*100)

	if state.Session != nil {
		fmt.Println()
		accent.Printf("%s\n", state.Session.SessionName)
		fmt.Printf("Status:       %s\n", state.Session.Status)
		if state.Session.Status == game.SessionActive {
			remaining := state.Session.TimeRemainingSecs
			clock := fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
			if remaining <= 60 {
				clock = danger.Sprint(clock)
			}
			fmt.Printf("Time left:    %s\n", clock)
		} else {
			fmt.Printf("Final value:  $%s\n", formatMicros(state.Session.FinalPortfolioValueMicros))
		}
	} else {
		printInfo("No round in progress. Run `vnt start`.")
	}

	if state.Settlement != nil {
		fmt.Println()
		accent.Println("Last Settlement")
		renderSettlementBody(*state.Settlement)
	}

	if len(state.Investments) > 0 {
		fmt.Println()
		accent.Println("Holdings")
		renderInvestmentRows(state.Investments)
	}
	fmt.Println()
	return nil
}

func renderStartups(raw map[string]any) error {
	payload, err := decodeInto[startupsPayload](raw)
	if err != nil {
		return err
	}
	accent.Println("\n== STARTUP DEALS ==")
	if len(payload.Startups) == 0 {
		printInfo("No deals in the catalog.")
		return nil
	}
	fmt.Printf("%-20s %-26s %-22s %-9s %-7s %14s %10s %8s %-7s\n",
		"ID", "NAME", "INDUSTRY", "STAGE", "RISK", "VALUATION", "PRICE/SH", "REP REQ", "ACCESS")
	for _, s := range payload.Startups {
		access := success.Sprint("open")
		if s.Locked {
			access = danger.Sprint("locked")
		}
		fmt.Printf("%-20s %-26s %-22s %-9s %-7s %14s %10s %8d %-7s\n",
			s.ID,
			truncate(s.Name, 26),
			truncate(s.Industry, 22),
			s.FundingStage,
			s.RiskLevel,
			"$"+formatMicros(s.ValuationMicros),
			"$"+formatMicros(s.PricePerShareMicros),
			s.ReputationRequired,
			access,
		)
	}
	fmt.Println()
	return nil
}

func renderStartupDetail(raw map[string]any) error {
	s, err := decodeInto[game.StartupView](raw)
	if err != nil {
		return err
	}
	accent.Printf("\n== %s ==\n", s.Name)
	fmt.Printf("Industry:     %s\n", s.Industry)
	fmt.Printf("Stage:        %s\n", s.FundingStage)
	fmt.Printf("Risk:         %s\n", s.RiskLevel)
	fmt.Printf("Valuation:    $%s\n", formatMicros(s.ValuationMicros))
	fmt.Printf("Price/share:  $%s (%s shares available)\n", formatMicros(s.PricePerShareMicros), comma(s.AvailableShares))
	fmt.Printf("Growth:       %.1fx potential\n", s.GrowthPotential)
	fmt.Printf("Reputation:   %d required\n", s.ReputationRequired)
	if s.Locked {
		printWarn("Locked at your current reputation.")
	}
	fmt.Println(s.Description)
	fmt.Println()
	return nil
}

func renderInvestments(raw map[string]any) error {
	payload, err := decodeInto[investmentsPayload](raw)
	if err != nil {
		return err
	}
	accent.Println("\n== INVESTMENTS ==")
	if len(payload.Investments) == 0 {
		printInfo("No investments this round.")
		return nil
	}
	renderInvestmentRows(payload.Investments)
	fmt.Println()
	return nil
}

func renderInvestmentRows(investments []game.Investment) {
	fmt.Printf("%-36s %-20s %8s %12s %12s %12s %-7s\n",
		"ID", "STARTUP", "SHARES", "COST", "VALUE", "P/L", "STATUS")
	for _, inv := range investments {
		pl := inv.CurrentValueMicros - inv.PurchasePriceMicros
		fmt.Printf("%-36s %-20s %8d %12s %12s %12s %-7s\n",
			inv.ID,
			truncate(inv.StartupID, 20),
			inv.SharesPurchased,
			"$"+formatMicros(inv.PurchasePriceMicros),
			"$"+formatMicros(inv.CurrentValueMicros),
			colorizeMicros(pl),
			inv.Status,
		)
	}
}

func renderEvents(raw map[string]any) error {
	payload, err := decodeInto[eventsPayload](raw)
	if err != nil {
		return err
	}
	accent.Println("\n== MARKET NEWS ==")
	if len(payload.Events) == 0 {
		printInfo("No news released yet.")
		return nil
	}
	for _, ev := range payload.Events {
		marker := success.Sprint("▲")
		if ev.ImpactMultiplier < 1 {
			marker = danger.Sprint("▼")
		}
		fmt.Printf("%s [%s] %s (x%.1f)\n", marker, ev.EventType, ev.Description, ev.ImpactMultiplier)
	}
	fmt.Println()
	return nil
}

func renderNotifications(raw map[string]any) error {
	payload, err := decodeInto[notificationsPayload](raw)
	if err != nil {
		return err
	}
	accent.Println("\n== NOTIFICATIONS ==")
	if len(payload.Notifications) == 0 {
		printInfo("Nothing to show.")
		return nil
	}
	for _, n := range payload.Notifications {
		line := fmt.Sprintf("[%s] %s — %s", n.CreatedAt.Local().Format("15:04:05"), n.Title, n.Message)
		switch n.Type {
		case game.NotifySuccess:
			success.Println(line)
		case game.NotifyWarning:
			warn.Println(line)
		default:
			neutral.Println(line)
		}
	}
	fmt.Println()
	return nil
}

func renderLeaderboard(raw map[string]any) error {
	payload, err := decodeInto[leaderboardPayload](raw)
	if err != nil {
		return err
	}
	accent.Println("\n== LEADERBOARD ==")
	fmt.Printf("%-6s %-18s %12s %10s %8s %9s\n", "RANK", "INVESTOR", "REPUTATION", "RETURNS", "EXITS", "WIN RATE")
	for _, row := range payload.Rows {
		name := row.Username
		if row.IsPlayer {
			name = accent.Sprint(name + " (you)")
		}
		fmt.Printf("%-6d %-18s %12s %9.1fx %8d %8.0f%%\n",
			row.Rank,
			name,
			comma(row.ReputationScore),
			row.TotalReturns,
			row.SuccessfulExits,
			row.WinRate*100,
		)
	}
	fmt.Println()
	return nil
}

func renderAchievements(raw map[string]any) error {
	payload, err := decodeInto[achievementsPayload](raw)
	if err != nil {
		return err
	}
	accent.Println("\n== ACHIEVEMENTS ==")
	for _, a := range payload.Achievements {
		mark := neutral.Sprint("[ ]")
		if a.Unlocked {
			mark = success.Sprint("[x]")
		}
		progress := a.Progress
		if progress > a.Requirement {
			progress = a.Requirement
		}
		fmt.Printf("%s %-22s %s (%.0f/%.0f) — %s\n",
			mark, a.Title, a.Description, progress, a.Requirement, a.Reward)
	}
	fmt.Println()
	return nil
}

func renderSession(raw map[string]any) error {
	s, err := decodeInto[game.GameSession](raw)
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("%s started: %d minutes on the clock, $%s to invest.",
		s.SessionName, s.DurationMinutes, formatMicros(game.StartingCashMicros)))
	return nil
}

func renderSettlement(raw map[string]any) error {
	result, err := decodeInto[game.SettlementResult](raw)
	if err != nil {
		return err
	}
	accent.Println("\n== ROUND SETTLED ==")
	renderSettlementBody(result)
	fmt.Println()
	return nil
}

func renderSettlementBody(result game.SettlementResult) {
	fmt.Printf("Final value:  $%s\n", formatMicros(result.FinalValueMicros))
	fmt.Printf("Return:       %s (%s)\n", colorizeMicros(result.TotalReturnMicros), colorizePercent(result.ReturnPct))
	fmt.Printf("Reputation:   %+d → %s\n", result.ReputationChange, comma(result.NewReputation))
	fmt.Printf("Winners:      %d profitable holdings\n", result.SuccessfulInvestments)
	if result.Expired {
		printInfo("Round ended on the clock.")
	}
}

func decodeInto[T any](in any) (T, error) {
	var out T
	raw, err := json.Marshal(in)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

func colorizeMicros(v int64) string {
	text := signedMicros(v)
	switch {
	case v > 0:
		return success.Sprint(text)
	case v < 0:
		return danger.Sprint(text)
	default:
		return neutral.Sprint(text)
	}
}

func colorizePercent(v float64) string {
	text := fmt.Sprintf("%+.2f%%", v)
	switch {
	case v > 0:
		return success.Sprint(text)
	case v < 0:
		return danger.Sprint(text)
	default:
		return neutral.Sprint(text)
	}
}

func formatMicros(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := v / game.MicrosPerDollar
	frac := (v % game.MicrosPerDollar) / 10_000
	return fmt.Sprintf("%s%s.%02d", sign, comma(whole), frac)
}

func signedMicros(v int64) string {
	if v > 0 {
		return "+$" + formatMicros(v)
	}
	if v < 0 {
		return "-$" + formatMicros(-v)
	}
	return "$" + formatMicros(v)
}

func comma(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
		if len(s) > pre {
			b.WriteByte(',')
		}
	}
	for i := pre; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
