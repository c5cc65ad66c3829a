package leagues

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListLeagues(ctx context.Context, filter ListLeaguesFilter) ([]models.League, error)
	UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error)
	DeleteLeague(ctx context.Context, id uuid.UUID) error
	CountTeams(ctx context.Context, leagueID uuid.UUID) (int, error)
}

// App handles league business logic
type App struct {
	repo     LeaguesRepository
	defaults models.ScoringSettings
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository) *App {
	return &App{repo: repo, defaults: models.DefaultScoringSettings()}
}

// WithScoringDefaults overrides the weights applied to leagues created
// without explicit scoring settings
func (a *App) WithScoringDefaults(s models.ScoringSettings) *App {
	a.defaults = s
	return a
}

// CreateLeague creates a new league with validation
func (a *App) CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error) {
	if err := validateCreateLeagueRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.ScoringSettings == nil {
		defaults := a.defaults
		req.ScoringSettings = &defaults
	}

	league, err := a.repo.CreateLeague(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	log.Info().
		Str("league", league.Name).
		Str("league_id", league.ID.String()).
		Int("max_teams", league.MaxTeams).
		Msg("created league")
	return league, nil
}

// GetLeague retrieves a league by ID
func (a *App) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return a.repo.GetLeague(ctx, id)
}

// ListLeagues retrieves leagues matching the filter
func (a *App) ListLeagues(ctx context.Context, filter ListLeaguesFilter) ([]models.League, error) {
	return a.repo.ListLeagues(ctx, filter)
}

// UpdateLeague updates an existing league with validation
func (a *App) UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("validation failed: league name cannot be empty")
	}
	if req.MaxTeams != nil {
		if *req.MaxTeams < 4 || *req.MaxTeams > 20 {
			return nil, fmt.Errorf("validation failed: max teams must be between 4 and 20")
		}
		count, err := a.repo.CountTeams(ctx, id)
		if err != nil {
			return nil, err
		}
		if count > *req.MaxTeams {
			return nil, fmt.Errorf("validation failed: league already has %d teams", count)
		}
	}

	league, err := a.repo.UpdateLeague(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update league: %w", err)
	}

	log.Info().Str("league", league.Name).Msg("updated league")
	return league, nil
}

// DeleteLeague deletes a league by ID
func (a *App) DeleteLeague(ctx context.Context, id uuid.UUID) error {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return fmt.Errorf("league not found: %w", err)
	}

	if err := a.repo.DeleteLeague(ctx, id); err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}

	log.Info().Str("league", league.Name).Msg("deleted league")
	return nil
}

// IsFull reports whether the league has reached its team cap
func (a *App) IsFull(ctx context.Context, id uuid.UUID) (bool, error) {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return false, err
	}
	count, err := a.repo.CountTeams(ctx, id)
	if err != nil {
		return false, err
	}
	return count >= league.MaxTeams, nil
}

func validateCreateLeagueRequest(req CreateLeagueRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if req.MaxTeams != 0 && (req.MaxTeams < 4 || req.MaxTeams > 20) {
		return fmt.Errorf("max teams must be between 4 and 20")
	}
	if req.RosterSize != 0 && req.StartingLineupSize != 0 && req.StartingLineupSize > req.RosterSize {
		return fmt.Errorf("starting lineup cannot exceed roster size")
	}
	switch req.ScoringSystem {
	case "", models.ScoringSystemPoints, models.ScoringSystemCategories,
		models.ScoringSystemRotisserie, models.ScoringSystemHeadToHead:
	default:
		return fmt.Errorf("unknown scoring system %q", req.ScoringSystem)
	}
	switch req.DraftType {
	case "", models.DraftTypeSnake, models.DraftTypeLinear, models.DraftTypeAuction:
	default:
		return fmt.Errorf("unknown draft type %q", req.DraftType)
	}
	return nil
}
