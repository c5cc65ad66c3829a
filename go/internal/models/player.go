package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PositionCategory groups positions into forward/defense/goalie
type PositionCategory string

const (
	PositionCategoryForward PositionCategory = "forward"
	PositionCategoryDefense PositionCategory = "defense"
	PositionCategoryGoalie  PositionCategory = "goalie"
)

// Position represents a hockey position, e.g. Center (C)
type Position struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Abbreviation string           `json:"abbreviation"`
	Category     PositionCategory `json:"category"`
}

// Handedness is a shooting or catching hand
type Handedness string

const (
	HandednessLeft  Handedness = "L"
	HandednessRight Handedness = "R"
)

// Player represents an NHL player
type Player struct {
	ID           uuid.UUID   `json:"id"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	JerseyNumber *int        `json:"jersey_number,omitempty"` // 1-99
	HeightInches *int        `json:"height_inches,omitempty"`
	WeightLbs    *int        `json:"weight_lbs,omitempty"`
	BirthDate    *time.Time  `json:"birth_date,omitempty"`
	BirthCity    *string     `json:"birth_city,omitempty"`
	BirthCountry *string     `json:"birth_country,omitempty"`
	Nationality  *string     `json:"nationality,omitempty"`
	PositionID   uuid.UUID   `json:"position_id"`
	Shoots       *Handedness `json:"shoots,omitempty"`
	Catches      *Handedness `json:"catches,omitempty"` // goalies
	DraftYear    *int        `json:"draft_year,omitempty"`
	DraftRound   *int        `json:"draft_round,omitempty"`
	DraftPick    *int        `json:"draft_pick,omitempty"`
	DraftTeamID  *uuid.UUID  `json:"draft_team_id,omitempty"`
	IsActive     bool        `json:"is_active"`
	IsRookie     bool        `json:"is_rookie"`
	NHLID        *string     `json:"nhl_id,omitempty"` // external id for data imports
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// FullName returns "First Last"
func (p Player) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// Age returns the player's age in whole years at the given time,
// or nil when the birth date is unknown.
func (p Player) Age(now time.Time) *int {
	if p.BirthDate == nil {
		return nil
	}
	b := *p.BirthDate
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	return &age
}

// HeightDisplay renders height in feet'inches" format, e.g. `6'2"`
func (p Player) HeightDisplay() string {
	if p.HeightInches == nil {
		return ""
	}
	return fmt.Sprintf("%d'%d\"", *p.HeightInches/12, *p.HeightInches%12)
}

// PlayerTeamHistory records a player's stint with a team during a season
type PlayerTeamHistory struct {
	ID           uuid.UUID  `json:"id"`
	PlayerID     uuid.UUID  `json:"player_id"`
	TeamID       uuid.UUID  `json:"team_id"`
	SeasonID     uuid.UUID  `json:"season_id"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"` // nil while the stint is open
	JerseyNumber *int       `json:"jersey_number,omitempty"`
	IsCurrent    bool       `json:"is_current"`
}

// PlayerSeasonStats holds a player's aggregate statistics for one season
// with one team. Derived fields (points, percentages) are computed on write.
type PlayerSeasonStats struct {
	ID       uuid.UUID `json:"id"`
	PlayerID uuid.UUID `json:"player_id"`
	TeamID   uuid.UUID `json:"team_id"`
	SeasonID uuid.UUID `json:"season_id"`

	GamesPlayed int `json:"games_played"`

	// Skater scoring
	Goals          int `json:"goals"`
	Assists        int `json:"assists"`
	Points         int `json:"points"`
	PlusMinus      int `json:"plus_minus"`
	PenaltyMinutes int `json:"penalty_minutes"`

	PowerPlayGoals     int `json:"power_play_goals"`
	PowerPlayAssists   int `json:"power_play_assists"`
	PowerPlayPoints    int `json:"power_play_points"`
	ShortHandedGoals   int `json:"short_handed_goals"`
	ShortHandedAssists int `json:"short_handed_assists"`
	ShortHandedPoints  int `json:"short_handed_points"`

	ShotsOnGoal        int     `json:"shots_on_goal"`
	ShootingPercentage float64 `json:"shooting_percentage"`

	TimeOnIceSeconds        int `json:"time_on_ice_seconds"`
	AverageTimeOnIceSeconds int `json:"average_time_on_ice_seconds"`

	// Goalie
	Wins                int     `json:"wins"`
	Losses              int     `json:"losses"`
	OvertimeLosses      int     `json:"overtime_losses"`
	Shutouts            int     `json:"shutouts"`
	GoalsAgainst        int     `json:"goals_against"`
	ShotsAgainst        int     `json:"shots_against"`
	Saves               int     `json:"saves"`
	GoalsAgainstAverage float64 `json:"goals_against_average"`
	SavePercentage      float64 `json:"save_percentage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AverageTimeOnIceDisplay renders average TOI as MM:SS
func (s PlayerSeasonStats) AverageTimeOnIceDisplay() string {
	return fmt.Sprintf("%d:%02d", s.AverageTimeOnIceSeconds/60, s.AverageTimeOnIceSeconds%60)
}
