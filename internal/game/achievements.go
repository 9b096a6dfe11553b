package game

// computeAchievements is a pure read over player stats and the current
// investment list. Unlocks are recomputed on every query, never stored.
func computeAchievements(player Player, investments []Investment) []Achievement {
	totalInvestments := float64(len(investments))
	var profitable float64
	var totalReturnMicros int64
	for _, inv := range investments {
		if inv.CurrentValueMicros > inv.PurchasePriceMicros {
			profitable++
		}
		totalReturnMicros += inv.CurrentValueMicros - inv.PurchasePriceMicros
	}
	winRatePct := 0.0
	if totalInvestments > 0 {
		winRatePct = profitable / totalInvestments * 100
	}
	totalReturn := MicrosToDollars(totalReturnMicros)
	if totalReturn < 0 {
		totalReturn = 0
	}
	consistentProgress := 0.0
	if totalInvestments >= 5 {
		consistentProgress = winRatePct
	}
	score := float64(player.ReputationScore)

	return []Achievement{
		{
			ID:          "first_investment",
			Title:       "First Steps",
			Description: "Make your first investment",
			Category:    "investment",
			Requirement: 1,
			Progress:    totalInvestments,
			Unlocked:    totalInvestments >= 1,
			Reward:      "+50 Reputation",
		},
		{
			ID:          "portfolio_builder",
			Title:       "Portfolio Builder",
			Description: "Invest in 5 different startups",
			Category:    "investment",
			Requirement: 5,
			Progress:    totalInvestments,
			Unlocked:    totalInvestments >= 5,
			Reward:      "+100 Reputation",
		},
		{
			ID:          "diversified_investor",
			Title:       "Diversified Investor",
			Description: "Invest in 10 different startups",
			Category:    "investment",
			Requirement: 10,
			Progress:    totalInvestments,
			Unlocked:    totalInvestments >= 10,
			Reward:      "+200 Reputation",
		},
		{
			ID:          "profit_maker",
			Title:       "Profit Maker",
			Description: "Earn $50,000 in total returns",
			Category:    "performance",
			Requirement: 50_000,
			Progress:    totalReturn,
			Unlocked:    totalReturn >= 50_000,
			Reward:      "+150 Reputation",
		},
		{
			ID:          "high_roller",
			Title:       "High Roller",
			Description: "Earn $200,000 in total returns",
			Category:    "performance",
			Requirement: 200_000,
			Progress:    totalReturn,
			Unlocked:    totalReturn >= 200_000,
			Reward:      "+500 Reputation",
		},
		{
			ID:          "consistent_winner",
			Title:       "Consistent Winner",
			Description: "Achieve 80% win rate with 5+ investments",
			Category:    "performance",
			Requirement: 80,
			Progress:    consistentProgress,
			Unlocked:    totalInvestments >= 5 && winRatePct >= 80,
			Reward:      "+300 Reputation",
		},
		{
			ID:          "reputation_novice",
			Title:       "Rising Star",
			Description: "Reach 2000 reputation",
			Category:    "reputation",
			Requirement: 2000,
			Progress:    score,
			Unlocked:    score >= 2000,
			Reward:      "Unlock Elite Startups",
		},
		{
			ID:          "reputation_expert",
			Title:       "Investment Expert",
			Description: "Reach 3000 reputation",
			Category:    "reputation",
			Requirement: 3000,
			Progress:    score,
			Unlocked:    score >= 3000,
			Reward:      "Unlock Legendary Startups",
		},
	}
}
