package player

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	CreatePosition(ctx context.Context, req CreatePositionRequest) (*models.Position, error)
	GetPosition(ctx context.Context, id uuid.UUID) (*models.Position, error)
	ListPositions(ctx context.Context) ([]models.Position, error)
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetPlayerByNHLID(ctx context.Context, nhlID string) (*models.Player, error)
	ListPlayers(ctx context.Context, filter ListPlayersFilter) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id uuid.UUID, req UpdatePlayerRequest) (*models.Player, error)
	DeletePlayer(ctx context.Context, id uuid.UUID) error
	AssignTeam(ctx context.Context, playerID uuid.UUID, req AssignTeamRequest) (*models.PlayerTeamHistory, error)
	GetCurrentTeam(ctx context.Context, playerID uuid.UUID) (*models.PlayerTeamHistory, error)
	ListTeamHistory(ctx context.Context, playerID uuid.UUID) ([]models.PlayerTeamHistory, error)
	UpsertSeasonStats(ctx context.Context, stats models.PlayerSeasonStats) (*models.PlayerSeasonStats, error)
	GetSeasonStats(ctx context.Context, playerID, teamID, seasonID uuid.UUID) (*models.PlayerSeasonStats, error)
	ListSeasonStatsByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.PlayerSeasonStats, error)
	ListSeasonStatsBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.PlayerSeasonStats, error)
}

// App handles player business logic
type App struct {
	repo PlayerRepository
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository) *App {
	return &App{repo: repo}
}

// CreatePosition creates a new position with validation
func (a *App) CreatePosition(ctx context.Context, req CreatePositionRequest) (*models.Position, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Abbreviation) == "" {
		return nil, fmt.Errorf("validation failed: position name and abbreviation are required")
	}
	switch req.Category {
	case models.PositionCategoryForward, models.PositionCategoryDefense, models.PositionCategoryGoalie:
	default:
		return nil, fmt.Errorf("validation failed: unknown position category %q", req.Category)
	}
	return a.repo.CreatePosition(ctx, req)
}

// GetPosition retrieves a position by ID
func (a *App) GetPosition(ctx context.Context, id uuid.UUID) (*models.Position, error) {
	return a.repo.GetPosition(ctx, id)
}

// ListPositions retrieves all positions
func (a *App) ListPositions(ctx context.Context) ([]models.Position, error) {
	return a.repo.ListPositions(ctx)
}

// CreatePlayer creates a new player with validation
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	if err := validateCreatePlayerRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Verify the position exists
	if _, err := a.repo.GetPosition(ctx, req.PositionID); err != nil {
		return nil, fmt.Errorf("position not found: %w", err)
	}

	p, err := a.repo.CreatePlayer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	log.Info().Str("player", p.FullName()).Msg("created player")
	return p, nil
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	return a.repo.GetPlayer(ctx, id)
}

// GetPlayerByNHLID retrieves a player by external NHL identifier
func (a *App) GetPlayerByNHLID(ctx context.Context, nhlID string) (*models.Player, error) {
	return a.repo.GetPlayerByNHLID(ctx, nhlID)
}

// ListPlayers retrieves players matching the filter
func (a *App) ListPlayers(ctx context.Context, filter ListPlayersFilter) ([]models.Player, error) {
	return a.repo.ListPlayers(ctx, filter)
}

// UpdatePlayer updates an existing player with validation
func (a *App) UpdatePlayer(ctx context.Context, id uuid.UUID, req UpdatePlayerRequest) (*models.Player, error) {
	if req.JerseyNumber != nil && (*req.JerseyNumber < 1 || *req.JerseyNumber > 99) {
		return nil, fmt.Errorf("validation failed: jersey number must be between 1 and 99")
	}
	if req.PositionID != nil {
		if _, err := a.repo.GetPosition(ctx, *req.PositionID); err != nil {
			return nil, fmt.Errorf("position not found: %w", err)
		}
	}

	p, err := a.repo.UpdatePlayer(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	log.Info().Str("player", p.FullName()).Msg("updated player")
	return p, nil
}

// DeletePlayer deletes a player by ID
func (a *App) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	p, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return fmt.Errorf("player not found: %w", err)
	}

	if err := a.repo.DeletePlayer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	log.Info().Str("player", p.FullName()).Msg("deleted player")
	return nil
}

// AssignTeam moves a player to a team for a season
func (a *App) AssignTeam(ctx context.Context, playerID uuid.UUID, req AssignTeamRequest) (*models.PlayerTeamHistory, error) {
	if req.JerseyNumber != nil && (*req.JerseyNumber < 1 || *req.JerseyNumber > 99) {
		return nil, fmt.Errorf("validation failed: jersey number must be between 1 and 99")
	}

	stint, err := a.repo.AssignTeam(ctx, playerID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to assign team: %w", err)
	}

	log.Info().
		Str("player_id", playerID.String()).
		Str("team_id", req.TeamID.String()).
		Msg("assigned player to team")
	return stint, nil
}

// GetCurrentTeam returns the player's open stint
func (a *App) GetCurrentTeam(ctx context.Context, playerID uuid.UUID) (*models.PlayerTeamHistory, error) {
	return a.repo.GetCurrentTeam(ctx, playerID)
}

// ListTeamHistory returns all of a player's stints
func (a *App) ListTeamHistory(ctx context.Context, playerID uuid.UUID) ([]models.PlayerTeamHistory, error) {
	return a.repo.ListTeamHistory(ctx, playerID)
}

// UpsertSeasonStats writes a player's season stat line. Derived values are
// always recomputed from the raw counters, never trusted from the caller.
func (a *App) UpsertSeasonStats(ctx context.Context, req UpsertSeasonStatsRequest) (*models.PlayerSeasonStats, error) {
	if req.GamesPlayed < 0 {
		return nil, fmt.Errorf("validation failed: games played cannot be negative")
	}

	stats := DeriveSeasonStats(req)
	out, err := a.repo.UpsertSeasonStats(ctx, stats)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert season stats: %w", err)
	}

	log.Info().
		Str("player_id", req.PlayerID.String()).
		Int("points", out.Points).
		Msg("upserted season stats")
	return out, nil
}

// GetSeasonStats returns a player's stat line for a season with a team
func (a *App) GetSeasonStats(ctx context.Context, playerID, teamID, seasonID uuid.UUID) (*models.PlayerSeasonStats, error) {
	return a.repo.GetSeasonStats(ctx, playerID, teamID, seasonID)
}

// ListSeasonStatsByPlayer returns all of a player's season stat lines
func (a *App) ListSeasonStatsByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.PlayerSeasonStats, error) {
	return a.repo.ListSeasonStatsByPlayer(ctx, playerID)
}

// ListSeasonStatsBySeason returns all stat lines for a season
func (a *App) ListSeasonStatsBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.PlayerSeasonStats, error) {
	return a.repo.ListSeasonStatsBySeason(ctx, seasonID)
}

// DeriveSeasonStats computes the derived fields of a season stat line from
// its raw counters: points totals, shooting and save percentages, goals
// against average over 60-minute games, and average time on ice.
func DeriveSeasonStats(req UpsertSeasonStatsRequest) models.PlayerSeasonStats {
	stats := models.PlayerSeasonStats{
		PlayerID:           req.PlayerID,
		TeamID:             req.TeamID,
		SeasonID:           req.SeasonID,
		GamesPlayed:        req.GamesPlayed,
		Goals:              req.Goals,
		Assists:            req.Assists,
		Points:             req.Goals + req.Assists,
		PlusMinus:          req.PlusMinus,
		PenaltyMinutes:     req.PenaltyMinutes,
		PowerPlayGoals:     req.PowerPlayGoals,
		PowerPlayAssists:   req.PowerPlayAssists,
		PowerPlayPoints:    req.PowerPlayGoals + req.PowerPlayAssists,
		ShortHandedGoals:   req.ShortHandedGoals,
		ShortHandedAssists: req.ShortHandedAssists,
		ShortHandedPoints:  req.ShortHandedGoals + req.ShortHandedAssists,
		ShotsOnGoal:        req.ShotsOnGoal,
		TimeOnIceSeconds:   req.TimeOnIceSeconds,
		Wins:               req.Wins,
		Losses:             req.Losses,
		OvertimeLosses:     req.OvertimeLosses,
		Shutouts:           req.Shutouts,
		GoalsAgainst:       req.GoalsAgainst,
		ShotsAgainst:       req.ShotsAgainst,
		Saves:              req.Saves,
	}
	if req.ShotsOnGoal > 0 {
		stats.ShootingPercentage = round2(float64(req.Goals) / float64(req.ShotsOnGoal) * 100)
	}
	if req.GamesPlayed > 0 {
		stats.AverageTimeOnIceSeconds = req.TimeOnIceSeconds / req.GamesPlayed
		stats.GoalsAgainstAverage = round2(float64(req.GoalsAgainst) / float64(req.GamesPlayed))
	}
	if req.ShotsAgainst > 0 {
		stats.SavePercentage = round3(float64(req.Saves) / float64(req.ShotsAgainst))
	}
	return stats
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func validateCreatePlayerRequest(req CreatePlayerRequest) error {
	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("last name is required")
	}
	if req.JerseyNumber != nil && (*req.JerseyNumber < 1 || *req.JerseyNumber > 99) {
		return fmt.Errorf("jersey number must be between 1 and 99")
	}
	if req.Shoots != nil && *req.Shoots != models.HandednessLeft && *req.Shoots != models.HandednessRight {
		return fmt.Errorf("shoots must be L or R")
	}
	if req.Catches != nil && *req.Catches != models.HandednessLeft && *req.Catches != models.HandednessRight {
		return fmt.Errorf("catches must be L or R")
	}
	return nil
}
