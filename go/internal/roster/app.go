package roster

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// RosterRepository defines what the app layer needs from the repository
type RosterRepository interface {
	AddPlayer(ctx context.Context, teamID uuid.UUID, req AddPlayerRequest) (*models.RosterSlot, error)
	DropPlayer(ctx context.Context, teamID, playerID uuid.UUID) error
	MovePlayer(ctx context.Context, teamID, playerID uuid.UUID, slot models.SlotPosition) (*models.RosterSlot, error)
	ListRoster(ctx context.Context, teamID uuid.UUID) ([]models.RosterSlot, error)
	GetSlot(ctx context.Context, teamID, playerID uuid.UUID) (*models.RosterSlot, error)
	CountRoster(ctx context.Context, teamID uuid.UUID) (int, error)
	IsPlayerRosteredInLeague(ctx context.Context, leagueID, playerID uuid.UUID) (bool, error)
}

// TeamGetter is the slice of the fantasy team app the roster layer needs
type TeamGetter interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error)
}

// LeagueGetter is the slice of the leagues app the roster layer needs
type LeagueGetter interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
}

// PlayerGetter is the slice of the player app the roster layer needs
type PlayerGetter interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetPosition(ctx context.Context, id uuid.UUID) (*models.Position, error)
}

// App handles roster business logic
type App struct {
	repo    RosterRepository
	teams   TeamGetter
	leagues LeagueGetter
	players PlayerGetter
}

// NewApp creates a new roster App
func NewApp(repo RosterRepository, teams TeamGetter, leagues LeagueGetter, players PlayerGetter) *App {
	return &App{repo: repo, teams: teams, leagues: leagues, players: players}
}

// AddPlayer places a player on a team's roster. The roster must have room,
// the player must be free in the league, and the slot must fit the
// player's position.
func (a *App) AddPlayer(ctx context.Context, teamID uuid.UUID, req AddPlayerRequest) (*models.RosterSlot, error) {
	team, err := a.teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("fantasy team not found: %w", err)
	}
	league, err := a.leagues.GetLeague(ctx, team.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("league not found: %w", err)
	}

	count, err := a.repo.CountRoster(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if count >= league.RosterSize {
		return nil, fmt.Errorf("roster is full (%d/%d)", count, league.RosterSize)
	}

	taken, err := a.repo.IsPlayerRosteredInLeague(ctx, team.LeagueID, req.PlayerID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("player %s is already rostered in league %s: %w", req.PlayerID, team.LeagueID, ErrAlreadyExists)
	}

	if err := a.checkSlotFits(ctx, req.PlayerID, req.Slot); err != nil {
		return nil, err
	}

	slot, err := a.repo.AddPlayer(ctx, teamID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to add player: %w", err)
	}

	log.Info().
		Str("team_id", teamID.String()).
		Str("player_id", req.PlayerID.String()).
		Str("slot", string(req.Slot)).
		Msg("added player to roster")
	return slot, nil
}

// DropPlayer removes a player from the team's roster
func (a *App) DropPlayer(ctx context.Context, teamID, playerID uuid.UUID) error {
	if err := a.repo.DropPlayer(ctx, teamID, playerID); err != nil {
		return fmt.Errorf("failed to drop player: %w", err)
	}

	log.Info().
		Str("team_id", teamID.String()).
		Str("player_id", playerID.String()).
		Msg("dropped player from roster")
	return nil
}

// MovePlayer changes the slot a rostered player occupies. Moving into a
// starting slot is rejected when the lineup is already full.
func (a *App) MovePlayer(ctx context.Context, teamID, playerID uuid.UUID, req MovePlayerRequest) (*models.RosterSlot, error) {
	if err := a.checkSlotFits(ctx, playerID, req.Slot); err != nil {
		return nil, err
	}

	current, err := a.repo.GetSlot(ctx, teamID, playerID)
	if err != nil {
		return nil, err
	}

	if req.Slot.Starting() && !current.Slot.Starting() {
		team, err := a.teams.GetTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("fantasy team not found: %w", err)
		}
		league, err := a.leagues.GetLeague(ctx, team.LeagueID)
		if err != nil {
			return nil, fmt.Errorf("league not found: %w", err)
		}
		slots, err := a.repo.ListRoster(ctx, teamID)
		if err != nil {
			return nil, err
		}
		starters := 0
		for _, s := range slots {
			if s.Slot.Starting() {
				starters++
			}
		}
		if starters >= league.StartingLineupSize {
			return nil, fmt.Errorf("starting lineup is full (%d/%d)", starters, league.StartingLineupSize)
		}
	}

	slot, err := a.repo.MovePlayer(ctx, teamID, playerID, req.Slot)
	if err != nil {
		return nil, fmt.Errorf("failed to move player: %w", err)
	}

	log.Info().
		Str("team_id", teamID.String()).
		Str("player_id", playerID.String()).
		Str("slot", string(req.Slot)).
		Msg("moved player")
	return slot, nil
}

// ListRoster returns a team's roster
func (a *App) ListRoster(ctx context.Context, teamID uuid.UUID) ([]models.RosterSlot, error) {
	return a.repo.ListRoster(ctx, teamID)
}

// GetSlot looks up a single player's slot on a team
func (a *App) GetSlot(ctx context.Context, teamID, playerID uuid.UUID) (*models.RosterSlot, error) {
	return a.repo.GetSlot(ctx, teamID, playerID)
}

// checkSlotFits verifies the slot is legal for the player's position.
// Bench and IR take anyone.
func (a *App) checkSlotFits(ctx context.Context, playerID uuid.UUID, slot models.SlotPosition) error {
	switch slot {
	case models.SlotPositionCenter, models.SlotPositionLeftWing, models.SlotPositionRightWing,
		models.SlotPositionLeftDefense, models.SlotPositionRightDefense, models.SlotPositionGoalie,
		models.SlotPositionBench, models.SlotPositionIR:
	default:
		return fmt.Errorf("validation failed: unknown slot %q", slot)
	}
	if !slot.Starting() {
		return nil
	}

	p, err := a.players.GetPlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("player not found: %w", err)
	}
	pos, err := a.players.GetPosition(ctx, p.PositionID)
	if err != nil {
		return fmt.Errorf("position not found: %w", err)
	}

	ok := false
	switch pos.Category {
	case models.PositionCategoryForward:
		ok = slot == models.SlotPositionCenter || slot == models.SlotPositionLeftWing || slot == models.SlotPositionRightWing
	case models.PositionCategoryDefense:
		ok = slot == models.SlotPositionLeftDefense || slot == models.SlotPositionRightDefense
	case models.PositionCategoryGoalie:
		ok = slot == models.SlotPositionGoalie
	}
	if !ok {
		return fmt.Errorf("validation failed: %s cannot fill slot %s", pos.Category, slot)
	}
	return nil
}
