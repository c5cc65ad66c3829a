package models

// ScoringSettings holds the per-league fantasy point weights applied to
// raw statistics. Stored on the league as JSONB.
type ScoringSettings struct {
	// Skater stats
	Goals              float64 `json:"goals" yaml:"goals"`
	Assists            float64 `json:"assists" yaml:"assists"`
	PlusMinus          float64 `json:"plus_minus" yaml:"plus_minus"`
	PenaltyMinutes     float64 `json:"penalty_minutes" yaml:"penalty_minutes"`
	PowerPlayGoals     float64 `json:"power_play_goals" yaml:"power_play_goals"`
	PowerPlayAssists   float64 `json:"power_play_assists" yaml:"power_play_assists"`
	ShortHandedGoals   float64 `json:"short_handed_goals" yaml:"short_handed_goals"`
	ShortHandedAssists float64 `json:"short_handed_assists" yaml:"short_handed_assists"`
	ShotsOnGoal        float64 `json:"shots_on_goal" yaml:"shots_on_goal"`
	Hits               float64 `json:"hits" yaml:"hits"`
	BlockedShots       float64 `json:"blocked_shots" yaml:"blocked_shots"`

	// Goalie stats
	Wins         float64 `json:"wins" yaml:"wins"`
	Losses       float64 `json:"losses" yaml:"losses"`
	GoalsAgainst float64 `json:"goals_against" yaml:"goals_against"`
	Saves        float64 `json:"saves" yaml:"saves"`
	Shutouts     float64 `json:"shutouts" yaml:"shutouts"`
}

// DefaultScoringSettings returns the standard point weights used when a
// league does not override them.
func DefaultScoringSettings() ScoringSettings {
	return ScoringSettings{
		Goals:              6.0,
		Assists:            4.0,
		PlusMinus:          1.0,
		PenaltyMinutes:     0.5,
		PowerPlayGoals:     1.0,
		PowerPlayAssists:   0.5,
		ShortHandedGoals:   2.0,
		ShortHandedAssists: 1.0,
		ShotsOnGoal:        0.4,
		Hits:               0.6,
		BlockedShots:       1.0,
		Wins:               4.0,
		Losses:             -1.0,
		GoalsAgainst:       -1.0,
		Saves:              0.6,
		Shutouts:           5.0,
	}
}
