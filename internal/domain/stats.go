package domain

// GameStats is the aggregate snapshot behind the admin dashboard.
type GameStats struct {
	TotalPlayers    int     `json:"total_players"`
	AverageLevel    float64 `json:"average_level"`
	ActiveStreaks   int     `json:"active_streaks"`
	CreaturesCaught int     `json:"creatures_caught"`
	RewardsRolled   int     `json:"rewards_rolled"`
}
