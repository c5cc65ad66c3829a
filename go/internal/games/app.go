package games

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// GamesRepository defines what the app layer needs from the repository
type GamesRepository interface {
	CreateGame(ctx context.Context, req CreateGameRequest) (*models.Game, error)
	GetGame(ctx context.Context, id uuid.UUID) (*models.Game, error)
	ListGames(ctx context.Context, filter ListGamesFilter) ([]models.Game, error)
	UpdateGame(ctx context.Context, id uuid.UUID, req UpdateGameRequest) (*models.Game, error)
	FinalizeGame(ctx context.Context, id uuid.UUID, status models.GameStatus, req FinalizeGameRequest) (*models.Game, error)
	DeleteGame(ctx context.Context, id uuid.UUID) error
	RecordEvent(ctx context.Context, gameID uuid.UUID, req RecordEventRequest) (*models.GameEvent, error)
	ListEvents(ctx context.Context, gameID uuid.UUID) ([]models.GameEvent, error)
	RecordGoal(ctx context.Context, gameID uuid.UUID, req RecordGoalRequest) (*models.Goal, error)
	ListGoals(ctx context.Context, gameID uuid.UUID) ([]models.Goal, error)
	UpsertGameStats(ctx context.Context, stats models.PlayerGameStats) (*models.PlayerGameStats, error)
	ListGameStats(ctx context.Context, gameID uuid.UUID) ([]models.PlayerGameStats, error)
	ListPlayerGameStatsBetween(ctx context.Context, playerID uuid.UUID, from, to time.Time) ([]models.PlayerGameStats, error)
}

// App handles game business logic
type App struct {
	repo GamesRepository
}

// NewApp creates a new games App
func NewApp(repo GamesRepository) *App {
	return &App{repo: repo}
}

// CreateGame schedules a new game with validation
func (a *App) CreateGame(ctx context.Context, req CreateGameRequest) (*models.Game, error) {
	if req.HomeTeamID == req.AwayTeamID {
		return nil, fmt.Errorf("validation failed: a team cannot play itself")
	}
	switch req.GameType {
	case "", models.GameTypeRegular, models.GameTypePlayoff, models.GameTypePreseason, models.GameTypeAllStar:
	default:
		return nil, fmt.Errorf("validation failed: unknown game type %q", req.GameType)
	}

	game, err := a.repo.CreateGame(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info().
		Str("game_id", game.ID.String()).
		Time("game_date", game.GameDate).
		Msg("scheduled game")
	return game, nil
}

// GetGame retrieves a game by ID
func (a *App) GetGame(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	return a.repo.GetGame(ctx, id)
}

// ListGames retrieves games matching the filter
func (a *App) ListGames(ctx context.Context, filter ListGamesFilter) ([]models.Game, error) {
	return a.repo.ListGames(ctx, filter)
}

// UpdateGame updates mutable fields on a game
func (a *App) UpdateGame(ctx context.Context, id uuid.UUID, req UpdateGameRequest) (*models.Game, error) {
	if req.Status != nil {
		switch *req.Status {
		case models.GameStatusScheduled, models.GameStatusInProgress, models.GameStatusFinal,
			models.GameStatusOvertime, models.GameStatusShootout, models.GameStatusPostponed,
			models.GameStatusCancelled:
		default:
			return nil, fmt.Errorf("validation failed: unknown game status %q", *req.Status)
		}
	}
	return a.repo.UpdateGame(ctx, id, req)
}

// FinalizeGame settles a game. The final status is derived from how the game
// ended: shootout beats overtime, overtime beats regulation.
func (a *App) FinalizeGame(ctx context.Context, id uuid.UUID, req FinalizeGameRequest) (*models.Game, error) {
	if req.HomeScore < 0 || req.AwayScore < 0 {
		return nil, fmt.Errorf("validation failed: scores cannot be negative")
	}

	game, err := a.repo.GetGame(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	if game.Status.Finished() {
		return nil, fmt.Errorf("game %s is already finished", id)
	}

	status := models.GameStatusFinal
	switch {
	case req.Shootout:
		status = models.GameStatusShootout
	case req.OvertimePeriods > 0:
		status = models.GameStatusOvertime
	}
	if status != models.GameStatusFinal && req.HomeScore == req.AwayScore {
		return nil, fmt.Errorf("validation failed: overtime and shootout games cannot end tied")
	}

	out, err := a.repo.FinalizeGame(ctx, id, status, req)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize game: %w", err)
	}

	log.Info().
		Str("game_id", out.ID.String()).
		Int("home_score", out.HomeScore).
		Int("away_score", out.AwayScore).
		Str("status", string(out.Status)).
		Msg("finalized game")
	return out, nil
}

// DeleteGame deletes a game by ID
func (a *App) DeleteGame(ctx context.Context, id uuid.UUID) error {
	return a.repo.DeleteGame(ctx, id)
}

// RecordEvent appends an in-game event with validation
func (a *App) RecordEvent(ctx context.Context, gameID uuid.UUID, req RecordEventRequest) (*models.GameEvent, error) {
	if req.Period < 1 {
		return nil, fmt.Errorf("validation failed: period must be at least 1")
	}

	game, err := a.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	if game.Status.Finished() {
		return nil, fmt.Errorf("cannot record events on a finished game")
	}

	return a.repo.RecordEvent(ctx, gameID, req)
}

// ListEvents returns a game's events
func (a *App) ListEvents(ctx context.Context, gameID uuid.UUID) ([]models.GameEvent, error) {
	return a.repo.ListEvents(ctx, gameID)
}

// RecordGoal records a goal with validation. A player cannot assist on
// their own goal and the two assists must differ.
func (a *App) RecordGoal(ctx context.Context, gameID uuid.UUID, req RecordGoalRequest) (*models.Goal, error) {
	if req.Assist1ID != nil && *req.Assist1ID == req.ScorerID {
		return nil, fmt.Errorf("validation failed: scorer cannot assist their own goal")
	}
	if req.Assist2ID != nil && *req.Assist2ID == req.ScorerID {
		return nil, fmt.Errorf("validation failed: scorer cannot assist their own goal")
	}
	if req.Assist1ID != nil && req.Assist2ID != nil && *req.Assist1ID == *req.Assist2ID {
		return nil, fmt.Errorf("validation failed: assists must be different players")
	}
	if req.Period < 1 {
		return nil, fmt.Errorf("validation failed: period must be at least 1")
	}

	game, err := a.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}
	if game.Status.Finished() {
		return nil, fmt.Errorf("cannot record goals on a finished game")
	}
	if req.TeamID != game.HomeTeamID && req.TeamID != game.AwayTeamID {
		return nil, fmt.Errorf("validation failed: team %s is not playing in game %s", req.TeamID, gameID)
	}

	goal, err := a.repo.RecordGoal(ctx, gameID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to record goal: %w", err)
	}

	log.Info().
		Str("game_id", gameID.String()).
		Str("scorer_id", req.ScorerID.String()).
		Str("goal_type", string(goal.GoalType)).
		Msg("recorded goal")
	return goal, nil
}

// ListGoals returns a game's goals
func (a *App) ListGoals(ctx context.Context, gameID uuid.UUID) ([]models.Goal, error) {
	return a.repo.ListGoals(ctx, gameID)
}

// UpsertGameStats writes a player's stat line for a game. Points are always
// recomputed from goals and assists.
func (a *App) UpsertGameStats(ctx context.Context, gameID uuid.UUID, req UpsertGameStatsRequest) (*models.PlayerGameStats, error) {
	if req.TimeOnIceSeconds < 0 {
		return nil, fmt.Errorf("validation failed: time on ice cannot be negative")
	}
	if req.FaceoffWins > req.FaceoffAttempts {
		return nil, fmt.Errorf("validation failed: faceoff wins cannot exceed attempts")
	}

	stats := models.PlayerGameStats{
		PlayerID:         req.PlayerID,
		GameID:           gameID,
		TeamID:           req.TeamID,
		Played:           req.Played,
		Starter:          req.Starter,
		Goals:            req.Goals,
		Assists:          req.Assists,
		Points:           req.Goals + req.Assists,
		PlusMinus:        req.PlusMinus,
		PenaltyMinutes:   req.PenaltyMinutes,
		ShotsOnGoal:      req.ShotsOnGoal,
		ShotsMissed:      req.ShotsMissed,
		ShotsBlocked:     req.ShotsBlocked,
		TimeOnIceSeconds: req.TimeOnIceSeconds,
		Hits:             req.Hits,
		BlockedShots:     req.BlockedShots,
		FaceoffWins:      req.FaceoffWins,
		FaceoffAttempts:  req.FaceoffAttempts,
		Saves:            req.Saves,
		GoalsAgainst:     req.GoalsAgainst,
		ShotsAgainst:     req.ShotsAgainst,
	}
	return a.repo.UpsertGameStats(ctx, stats)
}

// ListGameStats returns all player stat lines for a game
func (a *App) ListGameStats(ctx context.Context, gameID uuid.UUID) ([]models.PlayerGameStats, error) {
	return a.repo.ListGameStats(ctx, gameID)
}

// ListPlayerGameStatsBetween returns a player's lines from finished games in
// the half-open range [from, to), oldest first
func (a *App) ListPlayerGameStatsBetween(ctx context.Context, playerID uuid.UUID, from, to time.Time) ([]models.PlayerGameStats, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("validation failed: to must be after from")
	}
	return a.repo.ListPlayerGameStatsBetween(ctx, playerID, from, to)
}
