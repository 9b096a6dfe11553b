package game

import "sort"

// buildLeaderboard merges the catalog's static field with the live player and
// ranks everyone by reputation. Ties keep the static ordering; the player
// wins a tie, which reads better on screen.
func buildLeaderboard(field []LeaderboardRow, player Player) []LeaderboardRow {
	rows := make([]LeaderboardRow, 0, len(field)+1)
	rows = append(rows, field...)

	playerRow := LeaderboardRow{
		Username:        player.Username,
		ReputationScore: player.ReputationScore,
		SuccessfulExits: player.SuccessfulExits,
		WinRate:         player.WinRate(),
		IsPlayer:        true,
	}
	if player.GamesPlayed > 0 {
		playerRow.TotalReturns = MicrosToDollars(player.PortfolioValueMicros) / MicrosToDollars(StartingCashMicros)
	}
	rows = append(rows, playerRow)

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ReputationScore != rows[j].ReputationScore {
			return rows[i].ReputationScore > rows[j].ReputationScore
		}
		return rows[i].IsPlayer && !rows[j].IsPlayer
	})
	for i := range rows {
		rows[i].Rank = int64(i + 1)
	}
	return rows
}
