package player

import (
	"time"

	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// CreatePositionRequest represents the data needed to create a position
type CreatePositionRequest struct {
	Name         string                  `json:"name" validate:"required"`
	Abbreviation string                  `json:"abbreviation" validate:"required"`
	Category     models.PositionCategory `json:"category" validate:"required"`
}

// CreatePlayerRequest represents the data needed to create a player
type CreatePlayerRequest struct {
	FirstName    string             `json:"first_name" validate:"required"`
	LastName     string             `json:"last_name" validate:"required"`
	PositionID   uuid.UUID          `json:"position_id" validate:"required"`
	JerseyNumber *int               `json:"jersey_number,omitempty"`
	HeightInches *int               `json:"height_inches,omitempty"`
	WeightLbs    *int               `json:"weight_lbs,omitempty"`
	BirthDate    *time.Time         `json:"birth_date,omitempty"`
	BirthCity    *string            `json:"birth_city,omitempty"`
	BirthCountry *string            `json:"birth_country,omitempty"`
	Nationality  *string            `json:"nationality,omitempty"`
	Shoots       *models.Handedness `json:"shoots,omitempty"`
	Catches      *models.Handedness `json:"catches,omitempty"`
	DraftYear    *int               `json:"draft_year,omitempty"`
	DraftRound   *int               `json:"draft_round,omitempty"`
	DraftPick    *int               `json:"draft_pick,omitempty"`
	DraftTeamID  *uuid.UUID         `json:"draft_team_id,omitempty"`
	IsRookie     bool               `json:"is_rookie"`
	NHLID        *string            `json:"nhl_id,omitempty"`
}

// UpdatePlayerRequest represents the data that can be updated for a player
type UpdatePlayerRequest struct {
	FirstName    *string            `json:"first_name,omitempty"`
	LastName     *string            `json:"last_name,omitempty"`
	PositionID   *uuid.UUID         `json:"position_id,omitempty"`
	JerseyNumber *int               `json:"jersey_number,omitempty"`
	HeightInches *int               `json:"height_inches,omitempty"`
	WeightLbs    *int               `json:"weight_lbs,omitempty"`
	Shoots       *models.Handedness `json:"shoots,omitempty"`
	Catches      *models.Handedness `json:"catches,omitempty"`
	IsActive     *bool              `json:"is_active,omitempty"`
	IsRookie     *bool              `json:"is_rookie,omitempty"`
}

// AssignTeamRequest moves a player to a team for a season. Any open stint
// is closed the day the new one starts.
type AssignTeamRequest struct {
	TeamID       uuid.UUID `json:"team_id" validate:"required"`
	SeasonID     uuid.UUID `json:"season_id" validate:"required"`
	StartDate    time.Time `json:"start_date" validate:"required"`
	JerseyNumber *int      `json:"jersey_number,omitempty"`
}

// UpsertSeasonStatsRequest carries the raw counters for a player's season.
// Derived fields (points, percentages, averages) are computed before the write.
type UpsertSeasonStatsRequest struct {
	PlayerID           uuid.UUID `json:"player_id" validate:"required"`
	TeamID             uuid.UUID `json:"team_id" validate:"required"`
	SeasonID           uuid.UUID `json:"season_id" validate:"required"`
	GamesPlayed        int       `json:"games_played"`
	Goals              int       `json:"goals"`
	Assists            int       `json:"assists"`
	PlusMinus          int       `json:"plus_minus"`
	PenaltyMinutes     int       `json:"penalty_minutes"`
	PowerPlayGoals     int       `json:"power_play_goals"`
	PowerPlayAssists   int       `json:"power_play_assists"`
	ShortHandedGoals   int       `json:"short_handed_goals"`
	ShortHandedAssists int       `json:"short_handed_assists"`
	ShotsOnGoal        int       `json:"shots_on_goal"`
	TimeOnIceSeconds   int       `json:"time_on_ice_seconds"`
	Wins               int       `json:"wins"`
	Losses             int       `json:"losses"`
	OvertimeLosses     int       `json:"overtime_losses"`
	Shutouts           int       `json:"shutouts"`
	GoalsAgainst       int       `json:"goals_against"`
	ShotsAgainst       int       `json:"shots_against"`
	Saves              int       `json:"saves"`
}

// ListPlayersFilter narrows player listings
type ListPlayersFilter struct {
	PositionID *uuid.UUID
	TeamID     *uuid.UUID
	ActiveOnly bool
	Search     string
}
