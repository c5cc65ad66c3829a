package models

import (
	"time"

	"github.com/google/uuid"
)

// StatLine is the raw weekly counters fantasy points are computed from.
type StatLine struct {
	GamesPlayed        int `json:"games_played"`
	Goals              int `json:"goals"`
	Assists            int `json:"assists"`
	PlusMinus          int `json:"plus_minus"`
	PenaltyMinutes     int `json:"penalty_minutes"`
	PowerPlayGoals     int `json:"power_play_goals"`
	PowerPlayAssists   int `json:"power_play_assists"`
	ShortHandedGoals   int `json:"short_handed_goals"`
	ShortHandedAssists int `json:"short_handed_assists"`
	ShotsOnGoal        int `json:"shots_on_goal"`
	Hits               int `json:"hits"`
	BlockedShots       int `json:"blocked_shots"`

	// Goalie
	Wins         int `json:"wins"`
	Losses       int `json:"losses"`
	GoalsAgainst int `json:"goals_against"`
	Saves        int `json:"saves"`
	Shutouts     int `json:"shutouts"`
}

// PlayerFantasyStats is a player's computed fantasy output for one week
// while rostered on a specific fantasy team.
type PlayerFantasyStats struct {
	ID            uuid.UUID `json:"id"`
	PlayerID      uuid.UUID `json:"player_id"`
	WeekID        uuid.UUID `json:"week_id"`
	FantasyTeamID uuid.UUID `json:"fantasy_team_id"`

	StatLine

	TotalFantasyPoints float64 `json:"total_fantasy_points"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
