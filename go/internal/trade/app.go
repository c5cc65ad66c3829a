package trade

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rinkside/fantasyhockey/go/internal/models"
	"github.com/rinkside/fantasyhockey/go/internal/outbox"
)

// TradeRepository defines what the app layer needs from the repository
type TradeRepository interface {
	CreateTrade(ctx context.Context, leagueID uuid.UUID, req ProposeTradeRequest) (*TradeWithPlayers, error)
	GetTrade(ctx context.Context, id uuid.UUID) (*TradeWithPlayers, error)
	ListTradesByTeam(ctx context.Context, teamID uuid.UUID) ([]TradeWithPlayers, error)
	AcceptTrade(ctx context.Context, id, leagueID uuid.UUID) (*TradeWithPlayers, error)
	SettleTrade(ctx context.Context, id, leagueID uuid.UUID, status models.TradeStatus, eventType string) (*TradeWithPlayers, error)
}

// TeamGetter is the slice of the fantasy team app the trade layer needs
type TeamGetter interface {
	GetTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error)
}

// RosterChecker verifies a player is on a specific roster
type RosterChecker interface {
	GetSlot(ctx context.Context, teamID, playerID uuid.UUID) (*models.RosterSlot, error)
}

// App handles trade business logic
type App struct {
	repo   TradeRepository
	teams  TeamGetter
	roster RosterChecker
}

// NewApp creates a new trade App
func NewApp(repo TradeRepository, teams TeamGetter, roster RosterChecker) *App {
	return &App{repo: repo, teams: teams, roster: roster}
}

// ProposeTrade validates and creates a trade offer. Both teams must be in
// the same league and every offered player on the roster they are leaving.
func (a *App) ProposeTrade(ctx context.Context, req ProposeTradeRequest) (*TradeWithPlayers, error) {
	if req.FromTeamID == req.ToTeamID {
		return nil, fmt.Errorf("validation failed: a team cannot trade with itself")
	}
	if len(req.Players) == 0 {
		return nil, fmt.Errorf("validation failed: a trade must include at least one player")
	}

	fromTeam, err := a.teams.GetTeam(ctx, req.FromTeamID)
	if err != nil {
		return nil, fmt.Errorf("offering team not found: %w", err)
	}
	toTeam, err := a.teams.GetTeam(ctx, req.ToTeamID)
	if err != nil {
		return nil, fmt.Errorf("receiving team not found: %w", err)
	}
	if fromTeam.LeagueID != toTeam.LeagueID {
		return nil, fmt.Errorf("validation failed: teams are in different leagues")
	}

	for _, p := range req.Players {
		if p.FromTeamID != req.FromTeamID && p.FromTeamID != req.ToTeamID {
			return nil, fmt.Errorf("validation failed: player %s is not moving from either team", p.PlayerID)
		}
		if p.ToTeamID != req.FromTeamID && p.ToTeamID != req.ToTeamID {
			return nil, fmt.Errorf("validation failed: player %s is not moving to either team", p.PlayerID)
		}
		if p.FromTeamID == p.ToTeamID {
			return nil, fmt.Errorf("validation failed: player %s is not changing teams", p.PlayerID)
		}
		if _, err := a.roster.GetSlot(ctx, p.FromTeamID, p.PlayerID); err != nil {
			return nil, fmt.Errorf("player %s is not on team %s: %w", p.PlayerID, p.FromTeamID, err)
		}
	}

	t, err := a.repo.CreateTrade(ctx, fromTeam.LeagueID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to propose trade: %w", err)
	}

	log.Info().
		Str("trade_id", t.ID.String()).
		Str("from_team", fromTeam.Name).
		Str("to_team", toTeam.Name).
		Int("players", len(t.Players)).
		Msg("proposed trade")
	return t, nil
}

// GetTrade retrieves a trade by ID
func (a *App) GetTrade(ctx context.Context, id uuid.UUID) (*TradeWithPlayers, error) {
	return a.repo.GetTrade(ctx, id)
}

// ListTradesByTeam returns trades the team proposed or received
func (a *App) ListTradesByTeam(ctx context.Context, teamID uuid.UUID) ([]TradeWithPlayers, error) {
	return a.repo.ListTradesByTeam(ctx, teamID)
}

// AcceptTrade completes a pending trade, swapping the rosters atomically
func (a *App) AcceptTrade(ctx context.Context, id uuid.UUID) (*TradeWithPlayers, error) {
	leagueID, err := a.leagueForTrade(ctx, id)
	if err != nil {
		return nil, err
	}

	t, err := a.repo.AcceptTrade(ctx, id, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to accept trade: %w", err)
	}

	log.Info().Str("trade_id", id.String()).Msg("accepted trade")
	return t, nil
}

// RejectTrade declines a pending trade
func (a *App) RejectTrade(ctx context.Context, id uuid.UUID) (*TradeWithPlayers, error) {
	leagueID, err := a.leagueForTrade(ctx, id)
	if err != nil {
		return nil, err
	}

	t, err := a.repo.SettleTrade(ctx, id, leagueID, models.TradeStatusRejected, outbox.EventTradeRejected)
	if err != nil {
		return nil, fmt.Errorf("failed to reject trade: %w", err)
	}

	log.Info().Str("trade_id", id.String()).Msg("rejected trade")
	return t, nil
}

// CancelTrade withdraws a pending trade
func (a *App) CancelTrade(ctx context.Context, id uuid.UUID) (*TradeWithPlayers, error) {
	leagueID, err := a.leagueForTrade(ctx, id)
	if err != nil {
		return nil, err
	}

	t, err := a.repo.SettleTrade(ctx, id, leagueID, models.TradeStatusCancelled, outbox.EventTradeCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel trade: %w", err)
	}

	log.Info().Str("trade_id", id.String()).Msg("cancelled trade")
	return t, nil
}

func (a *App) leagueForTrade(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	t, err := a.repo.GetTrade(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("trade not found: %w", err)
	}
	team, err := a.teams.GetTeam(ctx, t.FromTeamID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("offering team not found: %w", err)
	}
	return team.LeagueID, nil
}
