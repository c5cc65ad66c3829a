package fantasyteam

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// FantasyTeamRepository defines what the app layer needs from the repository
type FantasyTeamRepository interface {
	CreateTeam(ctx context.Context, req CreateFantasyTeamRequest) (*models.FantasyTeam, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error)
	ListTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error)
	ListTeamsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateFantasyTeamRequest) (*models.FantasyTeam, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	ApplyResult(ctx context.Context, id uuid.UUID, result RecordResult) (*models.FantasyTeam, error)
}

// LeagueChecker is the slice of the leagues app needed to enforce capacity
type LeagueChecker interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	IsFull(ctx context.Context, id uuid.UUID) (bool, error)
}

// App handles fantasy team business logic
type App struct {
	repo    FantasyTeamRepository
	leagues LeagueChecker
}

// NewApp creates a new fantasy team App
func NewApp(repo FantasyTeamRepository, leagues LeagueChecker) *App {
	return &App{repo: repo, leagues: leagues}
}

// CreateTeam joins a league with a new team. Full or inactive leagues
// reject new teams.
func (a *App) CreateTeam(ctx context.Context, req CreateFantasyTeamRequest) (*models.FantasyTeam, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("validation failed: team name is required")
	}

	league, err := a.leagues.GetLeague(ctx, req.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("league not found: %w", err)
	}
	if !league.IsActive {
		return nil, fmt.Errorf("league %s is not active", league.Name)
	}
	full, err := a.leagues.IsFull(ctx, req.LeagueID)
	if err != nil {
		return nil, err
	}
	if full {
		return nil, fmt.Errorf("league %s is full", league.Name)
	}

	team, err := a.repo.CreateTeam(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create fantasy team: %w", err)
	}

	log.Info().
		Str("team", team.Name).
		Str("league_id", team.LeagueID.String()).
		Msg("created fantasy team")
	return team, nil
}

// GetTeam retrieves a fantasy team by ID
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	return a.repo.GetTeam(ctx, id)
}

// GetStandings returns the league's teams ordered by total points, with win
// percentage breaking ties
func (a *App) GetStandings(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error) {
	teams, err := a.repo.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].TotalPoints != teams[j].TotalPoints {
			return teams[i].TotalPoints > teams[j].TotalPoints
		}
		return teams[i].WinPercentage() > teams[j].WinPercentage()
	})
	return teams, nil
}

// ListTeamsByOwner returns all of a user's teams
func (a *App) ListTeamsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error) {
	return a.repo.ListTeamsByOwner(ctx, ownerID)
}

// UpdateTeam updates a fantasy team with validation
func (a *App) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateFantasyTeamRequest) (*models.FantasyTeam, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("validation failed: team name cannot be empty")
	}

	team, err := a.repo.UpdateTeam(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update fantasy team: %w", err)
	}

	log.Info().Str("team", team.Name).Msg("updated fantasy team")
	return team, nil
}

// DeleteTeam removes a team from its league
func (a *App) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("fantasy team not found: %w", err)
	}

	if err := a.repo.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("failed to delete fantasy team: %w", err)
	}

	log.Info().Str("team", team.Name).Msg("deleted fantasy team")
	return nil
}

// ApplyResult bumps a team's record after a matchup settles
func (a *App) ApplyResult(ctx context.Context, id uuid.UUID, result RecordResult) (*models.FantasyTeam, error) {
	return a.repo.ApplyResult(ctx, id, result)
}
