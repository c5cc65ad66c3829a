package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rinkside/fantasyhockey/go/internal/models"
	"github.com/rinkside/fantasyhockey/go/internal/sqlutil"
)

var (
	// ErrNotFound is returned when the requested slot does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when the player is already rostered
	ErrAlreadyExists = errors.New("already exists")
)

// Repository implements roster data access operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new roster repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type slotRow struct {
	ID            uuid.UUID `db:"id"`
	FantasyTeamID uuid.UUID `db:"fantasy_team_id"`
	PlayerID      uuid.UUID `db:"player_id"`
	Slot          string    `db:"slot"`
	AcquiredAt    time.Time `db:"acquired_at"`
}

// AddPlayer places a player into a slot on the team's roster
func (r *Repository) AddPlayer(ctx context.Context, teamID uuid.UUID, req AddPlayerRequest) (*models.RosterSlot, error) {
	var row slotRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO roster_slots (fantasy_team_id, player_id, slot)
		VALUES ($1, $2, $3)
		RETURNING id, fantasy_team_id, player_id, slot, acquired_at`,
		teamID, req.PlayerID, req.Slot)
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("player %s on team %s: %w", req.PlayerID, teamID, ErrAlreadyExists)
		}
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("team or player: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to add player to roster: %w", err)
	}
	return slotRowToModel(row), nil
}

// DropPlayer removes a player from the team's roster
func (r *Repository) DropPlayer(ctx context.Context, teamID, playerID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM roster_slots WHERE fantasy_team_id = $1 AND player_id = $2`,
		teamID, playerID)
	if err != nil {
		return fmt.Errorf("failed to drop player: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("player %s on team %s: %w", playerID, teamID, ErrNotFound)
	}
	return nil
}

// MovePlayer changes the slot a rostered player occupies
func (r *Repository) MovePlayer(ctx context.Context, teamID, playerID uuid.UUID, slot models.SlotPosition) (*models.RosterSlot, error) {
	var row slotRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE roster_slots SET slot = $3
		WHERE fantasy_team_id = $1 AND player_id = $2
		RETURNING id, fantasy_team_id, player_id, slot, acquired_at`,
		teamID, playerID, slot)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %s on team %s: %w", playerID, teamID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to move player: %w", err)
	}
	return slotRowToModel(row), nil
}

// ListRoster returns a team's roster, starters before bench and IR
func (r *Repository) ListRoster(ctx context.Context, teamID uuid.UUID) ([]models.RosterSlot, error) {
	var rows []slotRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, fantasy_team_id, player_id, slot, acquired_at
		FROM roster_slots
		WHERE fantasy_team_id = $1
		ORDER BY CASE slot
			WHEN 'C' THEN 0 WHEN 'LW' THEN 1 WHEN 'RW' THEN 2
			WHEN 'LD' THEN 3 WHEN 'RD' THEN 4 WHEN 'G' THEN 5
			WHEN 'BN' THEN 6 ELSE 7 END, acquired_at`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	out := make([]models.RosterSlot, len(rows))
	for i, row := range rows {
		out[i] = *slotRowToModel(row)
	}
	return out, nil
}

// GetSlot returns the roster slot holding the given player on the team
func (r *Repository) GetSlot(ctx context.Context, teamID, playerID uuid.UUID) (*models.RosterSlot, error) {
	var row slotRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, fantasy_team_id, player_id, slot, acquired_at
		FROM roster_slots
		WHERE fantasy_team_id = $1 AND player_id = $2`, teamID, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %s on team %s: %w", playerID, teamID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get roster slot: %w", err)
	}
	return slotRowToModel(row), nil
}

// CountRoster returns the number of players on the team's roster
func (r *Repository) CountRoster(ctx context.Context, teamID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM roster_slots WHERE fantasy_team_id = $1`, teamID)
	if err != nil {
		return 0, fmt.Errorf("failed to count roster: %w", err)
	}
	return count, nil
}

// IsPlayerRosteredInLeague reports whether the player is on any roster in
// the league.
func (r *Repository) IsPlayerRosteredInLeague(ctx context.Context, leagueID, playerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM roster_slots rs
			JOIN fantasy_teams ft ON ft.id = rs.fantasy_team_id
			WHERE ft.league_id = $1 AND rs.player_id = $2
		)`, leagueID, playerID)
	if err != nil {
		return false, fmt.Errorf("failed to check league rosters: %w", err)
	}
	return exists, nil
}

func slotRowToModel(row slotRow) *models.RosterSlot {
	return &models.RosterSlot{
		ID:            row.ID,
		FantasyTeamID: row.FantasyTeamID,
		PlayerID:      row.PlayerID,
		Slot:          models.SlotPosition(row.Slot),
		AcquiredAt:    row.AcquiredAt,
	}
}
