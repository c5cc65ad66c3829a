package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GameType represents the kind of game being played
type GameType string

const (
	GameTypeRegular   GameType = "regular"
	GameTypePlayoff   GameType = "playoff"
	GameTypePreseason GameType = "preseason"
	GameTypeAllStar   GameType = "all_star"
)

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	GameStatusScheduled  GameStatus = "scheduled"
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusFinal      GameStatus = "final"
	GameStatusOvertime   GameStatus = "overtime" // final after OT
	GameStatusShootout   GameStatus = "shootout" // final after SO
	GameStatusPostponed  GameStatus = "postponed"
	GameStatusCancelled  GameStatus = "cancelled"
)

// Finished reports whether the game reached a final result.
func (s GameStatus) Finished() bool {
	return s == GameStatusFinal || s == GameStatusOvertime || s == GameStatusShootout
}

// Game represents a single NHL game
type Game struct {
	ID              uuid.UUID  `json:"id"`
	HomeTeamID      uuid.UUID  `json:"home_team_id"`
	AwayTeamID      uuid.UUID  `json:"away_team_id"`
	SeasonID        uuid.UUID  `json:"season_id"`
	GameDate        time.Time  `json:"game_date"`
	GameType        GameType   `json:"game_type"`
	HomeScore       int        `json:"home_score"`
	AwayScore       int        `json:"away_score"`
	Status          GameStatus `json:"status"`
	PeriodsPlayed   int        `json:"periods_played"`
	OvertimePeriods int        `json:"overtime_periods"`
	Shootout        bool       `json:"shootout"`
	Attendance      *int       `json:"attendance,omitempty"`
	Venue           *string    `json:"venue,omitempty"`
	NHLGameID       *string    `json:"nhl_game_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// WinnerTeamID returns the winning team's id, or nil for unfinished
// games and ties.
func (g Game) WinnerTeamID() *uuid.UUID {
	if !g.Status.Finished() {
		return nil
	}
	switch {
	case g.HomeScore > g.AwayScore:
		return &g.HomeTeamID
	case g.AwayScore > g.HomeScore:
		return &g.AwayTeamID
	}
	return nil
}

// LoserTeamID returns the losing team's id, or nil for unfinished
// games and ties.
func (g Game) LoserTeamID() *uuid.UUID {
	if !g.Status.Finished() {
		return nil
	}
	switch {
	case g.HomeScore > g.AwayScore:
		return &g.AwayTeamID
	case g.AwayScore > g.HomeScore:
		return &g.HomeTeamID
	}
	return nil
}

// IsOvertimeGame reports whether the game ended in OT or a shootout.
func (g Game) IsOvertimeGame() bool {
	return g.Status == GameStatusOvertime || g.Status == GameStatusShootout
}

// GameEventType classifies in-game events
type GameEventType string

const (
	GameEventGoal        GameEventType = "goal"
	GameEventAssist      GameEventType = "assist"
	GameEventPenalty     GameEventType = "penalty"
	GameEventSave        GameEventType = "save"
	GameEventShot        GameEventType = "shot"
	GameEventHit         GameEventType = "hit"
	GameEventBlockedShot GameEventType = "blocked_shot"
	GameEventFaceoff     GameEventType = "faceoff"
	GameEventGiveaway    GameEventType = "giveaway"
	GameEventTakeaway    GameEventType = "takeaway"
)

// GameEvent is a single event inside a game (goal, penalty, hit, ...)
type GameEvent struct {
	ID                uuid.UUID       `json:"id"`
	GameID            uuid.UUID       `json:"game_id"`
	EventType         GameEventType   `json:"event_type"`
	Period            int             `json:"period"`
	TimeInPeriod      string          `json:"time_in_period"` // e.g. "12:34"
	GameTimeSeconds   int             `json:"game_time_seconds"`
	PrimaryPlayerID   uuid.UUID       `json:"primary_player_id"`
	SecondaryPlayerID *uuid.UUID      `json:"secondary_player_id,omitempty"`
	TeamID            uuid.UUID       `json:"team_id"`
	Details           json.RawMessage `json:"details,omitempty"` // event-specific JSONB payload
	CreatedAt         time.Time       `json:"created_at"`
}

// GoalType represents the strength situation a goal was scored in
type GoalType string

const (
	GoalTypeEvenStrength GoalType = "even_strength"
	GoalTypePowerPlay    GoalType = "power_play"
	GoalTypeShortHanded  GoalType = "short_handed"
	GoalTypePenaltyShot  GoalType = "penalty_shot"
	GoalTypeEmptyNet     GoalType = "empty_net"
)

// Goal holds detailed goal information
type Goal struct {
	ID                uuid.UUID  `json:"id"`
	GameID            uuid.UUID  `json:"game_id"`
	ScorerID          uuid.UUID  `json:"scorer_id"`
	Assist1ID         *uuid.UUID `json:"assist1_id,omitempty"`
	Assist2ID         *uuid.UUID `json:"assist2_id,omitempty"`
	TeamID            uuid.UUID  `json:"team_id"`
	Period            int        `json:"period"`
	TimeInPeriod      string     `json:"time_in_period"`
	GameTimeSeconds   int        `json:"game_time_seconds"`
	GoalType          GoalType   `json:"goal_type"`
	HomePlayersOnIce  int        `json:"home_players_on_ice"`
	AwayPlayersOnIce  int        `json:"away_players_on_ice"`
}

// PlayerGameStats holds a player's statistics for one game
type PlayerGameStats struct {
	ID       uuid.UUID `json:"id"`
	PlayerID uuid.UUID `json:"player_id"`
	GameID   uuid.UUID `json:"game_id"`
	TeamID   uuid.UUID `json:"team_id"` // team they played for in this game

	Played  bool `json:"played"`
	Starter bool `json:"starter"`

	Goals          int `json:"goals"`
	Assists        int `json:"assists"`
	Points         int `json:"points"`
	PlusMinus      int `json:"plus_minus"`
	PenaltyMinutes int `json:"penalty_minutes"`

	ShotsOnGoal  int `json:"shots_on_goal"`
	ShotsMissed  int `json:"shots_missed"`
	ShotsBlocked int `json:"shots_blocked"`

	TimeOnIceSeconds int `json:"time_on_ice_seconds"`

	Hits         int `json:"hits"`
	BlockedShots int `json:"blocked_shots"`

	FaceoffWins     int `json:"faceoff_wins"`
	FaceoffAttempts int `json:"faceoff_attempts"`

	// Goalie
	Saves        int `json:"saves"`
	GoalsAgainst int `json:"goals_against"`
	ShotsAgainst int `json:"shots_against"`
}

// FaceoffPercentage returns the faceoff win rate as a percentage.
func (s PlayerGameStats) FaceoffPercentage() float64 {
	if s.FaceoffAttempts == 0 {
		return 0
	}
	return float64(s.FaceoffWins) / float64(s.FaceoffAttempts) * 100
}

// SavePercentage returns saves over shots against.
func (s PlayerGameStats) SavePercentage() float64 {
	if s.ShotsAgainst == 0 {
		return 0
	}
	return float64(s.Saves) / float64(s.ShotsAgainst)
}

// TimeOnIceDisplay renders TOI as MM:SS
func (s PlayerGameStats) TimeOnIceDisplay() string {
	return fmt.Sprintf("%d:%02d", s.TimeOnIceSeconds/60, s.TimeOnIceSeconds%60)
}
