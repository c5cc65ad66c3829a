package teams

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateConference(ctx context.Context, req CreateConferenceRequest) (*models.Conference, error)
	GetConference(ctx context.Context, id uuid.UUID) (*models.Conference, error)
	ListConferences(ctx context.Context) ([]models.Conference, error)
	CreateDivision(ctx context.Context, req CreateDivisionRequest) (*models.Division, error)
	GetDivision(ctx context.Context, id uuid.UUID) (*models.Division, error)
	ListDivisions(ctx context.Context) ([]models.Division, error)
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetTeamByAbbreviation(ctx context.Context, abbreviation string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListTeamsByDivision(ctx context.Context, divisionID uuid.UUID) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error)
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	GetCurrentSeason(ctx context.Context) (*models.Season, error)
	ListSeasons(ctx context.Context) ([]models.Season, error)
	SetCurrentSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
}

// App handles reference-data business logic
type App struct {
	repo TeamsRepository
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository) *App {
	return &App{repo: repo}
}

// CreateConference creates a new conference with validation
func (a *App) CreateConference(ctx context.Context, req CreateConferenceRequest) (*models.Conference, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("validation failed: conference name is required")
	}
	if strings.TrimSpace(req.Abbreviation) == "" {
		return nil, fmt.Errorf("validation failed: conference abbreviation is required")
	}

	conf, err := a.repo.CreateConference(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create conference: %w", err)
	}

	log.Info().Str("name", conf.Name).Str("abbreviation", conf.Abbreviation).Msg("created conference")
	return conf, nil
}

// GetConference retrieves a conference by ID
func (a *App) GetConference(ctx context.Context, id uuid.UUID) (*models.Conference, error) {
	return a.repo.GetConference(ctx, id)
}

// ListConferences retrieves all conferences
func (a *App) ListConferences(ctx context.Context) ([]models.Conference, error) {
	return a.repo.ListConferences(ctx)
}

// CreateDivision creates a new division with validation
func (a *App) CreateDivision(ctx context.Context, req CreateDivisionRequest) (*models.Division, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("validation failed: division name is required")
	}
	if strings.TrimSpace(req.Abbreviation) == "" {
		return nil, fmt.Errorf("validation failed: division abbreviation is required")
	}

	// Verify the conference exists
	if _, err := a.repo.GetConference(ctx, req.ConferenceID); err != nil {
		return nil, fmt.Errorf("conference not found: %w", err)
	}

	div, err := a.repo.CreateDivision(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create division: %w", err)
	}

	log.Info().Str("name", div.Name).Str("abbreviation", div.Abbreviation).Msg("created division")
	return div, nil
}

// GetDivision retrieves a division by ID
func (a *App) GetDivision(ctx context.Context, id uuid.UUID) (*models.Division, error) {
	return a.repo.GetDivision(ctx, id)
}

// ListDivisions retrieves all divisions
func (a *App) ListDivisions(ctx context.Context) ([]models.Division, error) {
	return a.repo.ListDivisions(ctx)
}

// CreateTeam creates a new team with validation
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	if err := a.validateCreateTeamRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Verify the division exists
	if _, err := a.repo.GetDivision(ctx, req.DivisionID); err != nil {
		return nil, fmt.Errorf("division not found: %w", err)
	}

	team, err := a.repo.CreateTeam(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Info().Str("team", team.FullName()).Str("abbreviation", team.Abbreviation).Msg("created team")
	return team, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return a.repo.GetTeam(ctx, id)
}

// GetTeamByAbbreviation retrieves a team by abbreviation
func (a *App) GetTeamByAbbreviation(ctx context.Context, abbreviation string) (*models.Team, error) {
	return a.repo.GetTeamByAbbreviation(ctx, strings.ToUpper(abbreviation))
}

// ListTeams retrieves all teams
func (a *App) ListTeams(ctx context.Context) ([]models.Team, error) {
	return a.repo.ListTeams(ctx)
}

// ListTeamsByDivision retrieves all teams in a division
func (a *App) ListTeamsByDivision(ctx context.Context, divisionID uuid.UUID) ([]models.Team, error) {
	return a.repo.ListTeamsByDivision(ctx, divisionID)
}

// UpdateTeam updates an existing team with validation
func (a *App) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("validation failed: team name cannot be empty")
	}
	if req.Abbreviation != nil && strings.TrimSpace(*req.Abbreviation) == "" {
		return nil, fmt.Errorf("validation failed: team abbreviation cannot be empty")
	}

	team, err := a.repo.UpdateTeam(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	log.Info().Str("team", team.FullName()).Msg("updated team")
	return team, nil
}

// DeleteTeam deletes a team by ID
func (a *App) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("team not found: %w", err)
	}

	if err := a.repo.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	log.Info().Str("team", team.FullName()).Msg("deleted team")
	return nil
}

// CreateSeason creates a new season with validation
func (a *App) CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("validation failed: season name is required")
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("validation failed: season end date must be after start date")
	}

	season, err := a.repo.CreateSeason(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	log.Info().Str("season", season.Name).Bool("current", season.IsCurrent).Msg("created season")
	return season, nil
}

// GetSeason retrieves a season by ID
func (a *App) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	return a.repo.GetSeason(ctx, id)
}

// GetCurrentSeason retrieves the season flagged as current
func (a *App) GetCurrentSeason(ctx context.Context) (*models.Season, error) {
	return a.repo.GetCurrentSeason(ctx)
}

// ListSeasons retrieves all seasons
func (a *App) ListSeasons(ctx context.Context) ([]models.Season, error) {
	return a.repo.ListSeasons(ctx)
}

// SetCurrentSeason marks a season as the current one
func (a *App) SetCurrentSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	season, err := a.repo.SetCurrentSeason(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to set current season: %w", err)
	}

	log.Info().Str("season", season.Name).Msg("set current season")
	return season, nil
}

func (a *App) validateCreateTeamRequest(req CreateTeamRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(req.City) == "" {
		return fmt.Errorf("team city is required")
	}
	if strings.TrimSpace(req.Abbreviation) == "" {
		return fmt.Errorf("team abbreviation is required")
	}
	if len(req.Abbreviation) > 10 {
		return fmt.Errorf("team abbreviation must be at most 10 characters")
	}
	return nil
}
