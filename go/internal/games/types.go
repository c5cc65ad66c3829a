package games

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// CreateGameRequest represents the data needed to schedule a game
type CreateGameRequest struct {
	HomeTeamID uuid.UUID       `json:"home_team_id" validate:"required"`
	AwayTeamID uuid.UUID       `json:"away_team_id" validate:"required"`
	SeasonID   uuid.UUID       `json:"season_id" validate:"required"`
	GameDate   time.Time       `json:"game_date" validate:"required"`
	GameType   models.GameType `json:"game_type"`
	Venue      *string         `json:"venue,omitempty"`
	NHLGameID  *string         `json:"nhl_game_id,omitempty"`
}

// UpdateGameRequest represents mutable game fields
type UpdateGameRequest struct {
	GameDate      *time.Time         `json:"game_date,omitempty"`
	Status        *models.GameStatus `json:"status,omitempty"`
	HomeScore     *int               `json:"home_score,omitempty"`
	AwayScore     *int               `json:"away_score,omitempty"`
	PeriodsPlayed *int               `json:"periods_played,omitempty"`
	Attendance    *int               `json:"attendance,omitempty"`
	Venue         *string            `json:"venue,omitempty"`
}

// FinalizeGameRequest settles a game with its final result
type FinalizeGameRequest struct {
	HomeScore       int  `json:"home_score"`
	AwayScore       int  `json:"away_score"`
	PeriodsPlayed   int  `json:"periods_played"`
	OvertimePeriods int  `json:"overtime_periods"`
	Shootout        bool `json:"shootout"`
	Attendance      *int `json:"attendance,omitempty"`
}

// RecordEventRequest appends an in-game event
type RecordEventRequest struct {
	EventType         models.GameEventType `json:"event_type" validate:"required"`
	Period            int                  `json:"period" validate:"required"`
	TimeInPeriod      string               `json:"time_in_period" validate:"required"`
	GameTimeSeconds   int                  `json:"game_time_seconds"`
	PrimaryPlayerID   uuid.UUID            `json:"primary_player_id" validate:"required"`
	SecondaryPlayerID *uuid.UUID           `json:"secondary_player_id,omitempty"`
	TeamID            uuid.UUID            `json:"team_id" validate:"required"`
	Details           json.RawMessage      `json:"details,omitempty"`
}

// RecordGoalRequest records a goal. The game score is bumped in the same
// transaction as the goal row.
type RecordGoalRequest struct {
	ScorerID         uuid.UUID       `json:"scorer_id" validate:"required"`
	Assist1ID        *uuid.UUID      `json:"assist1_id,omitempty"`
	Assist2ID        *uuid.UUID      `json:"assist2_id,omitempty"`
	TeamID           uuid.UUID       `json:"team_id" validate:"required"`
	Period           int             `json:"period" validate:"required"`
	TimeInPeriod     string          `json:"time_in_period" validate:"required"`
	GameTimeSeconds  int             `json:"game_time_seconds"`
	GoalType         models.GoalType `json:"goal_type"`
	HomePlayersOnIce int             `json:"home_players_on_ice"`
	AwayPlayersOnIce int             `json:"away_players_on_ice"`
}

// UpsertGameStatsRequest carries a player's raw stat line for one game
type UpsertGameStatsRequest struct {
	PlayerID         uuid.UUID `json:"player_id" validate:"required"`
	TeamID           uuid.UUID `json:"team_id" validate:"required"`
	Played           bool      `json:"played"`
	Starter          bool      `json:"starter"`
	Goals            int       `json:"goals"`
	Assists          int       `json:"assists"`
	PlusMinus        int       `json:"plus_minus"`
	PenaltyMinutes   int       `json:"penalty_minutes"`
	ShotsOnGoal      int       `json:"shots_on_goal"`
	ShotsMissed      int       `json:"shots_missed"`
	ShotsBlocked     int       `json:"shots_blocked"`
	TimeOnIceSeconds int       `json:"time_on_ice_seconds"`
	Hits             int       `json:"hits"`
	BlockedShots     int       `json:"blocked_shots"`
	FaceoffWins      int       `json:"faceoff_wins"`
	FaceoffAttempts  int       `json:"faceoff_attempts"`
	Saves            int       `json:"saves"`
	GoalsAgainst     int       `json:"goals_against"`
	ShotsAgainst     int       `json:"shots_against"`
}

// ListGamesFilter narrows game listings
type ListGamesFilter struct {
	TeamID   *uuid.UUID
	SeasonID *uuid.UUID
	Status   *models.GameStatus
	From     *time.Time
	To       *time.Time
}
