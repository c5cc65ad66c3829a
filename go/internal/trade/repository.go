package trade

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rinkside/fantasyhockey/go/internal/models"
	"github.com/rinkside/fantasyhockey/go/internal/outbox"
	"github.com/rinkside/fantasyhockey/go/internal/sqlutil"
)

var (
	// ErrNotFound is returned when the requested trade does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned on unique constraint violations
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotPending is returned when responding to a settled trade
	ErrNotPending = errors.New("trade is not pending")
	// ErrPlayerNotOnRoster is returned when a traded player has left the
	// offering roster between proposal and acceptance
	ErrPlayerNotOnRoster = errors.New("player is no longer on the offering roster")
)

// Repository implements trade data access operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new trade repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type tradeRow struct {
	ID          uuid.UUID    `db:"id"`
	FromTeamID  uuid.UUID    `db:"from_team_id"`
	ToTeamID    uuid.UUID    `db:"to_team_id"`
	Status      string       `db:"status"`
	Message     string       `db:"message"`
	ProposedAt  time.Time    `db:"proposed_at"`
	RespondedAt sql.NullTime `db:"responded_at"`
	CompletedAt sql.NullTime `db:"completed_at"`
}

type tradePlayerRow struct {
	ID         uuid.UUID `db:"id"`
	TradeID    uuid.UUID `db:"trade_id"`
	PlayerID   uuid.UUID `db:"player_id"`
	FromTeamID uuid.UUID `db:"from_team_id"`
	ToTeamID   uuid.UUID `db:"to_team_id"`
}

const tradeColumns = `id, from_team_id, to_team_id, status, message, proposed_at, responded_at, completed_at`

// CreateTrade inserts the trade and its players, and stages the proposal
// event, all in one transaction.
func (r *Repository) CreateTrade(ctx context.Context, leagueID uuid.UUID, req ProposeTradeRequest) (*TradeWithPlayers, error) {
	var out TradeWithPlayers
	err := sqlutil.Run(ctx, r.db, func(tx *sqlx.Tx) error {
		var row tradeRow
		err := tx.GetContext(ctx, &row, `
			INSERT INTO trades (from_team_id, to_team_id, message)
			VALUES ($1, $2, $3)
			RETURNING `+tradeColumns,
			req.FromTeamID, req.ToTeamID, req.Message)
		if err != nil {
			if sqlutil.IsForeignKeyViolation(err) {
				return fmt.Errorf("fantasy team: %w", ErrNotFound)
			}
			return fmt.Errorf("failed to create trade: %w", err)
		}

		players := make([]models.TradePlayer, 0, len(req.Players))
		for _, p := range req.Players {
			var prow tradePlayerRow
			err := tx.GetContext(ctx, &prow, `
				INSERT INTO trade_players (trade_id, player_id, from_team_id, to_team_id)
				VALUES ($1, $2, $3, $4)
				RETURNING id, trade_id, player_id, from_team_id, to_team_id`,
				row.ID, p.PlayerID, p.FromTeamID, p.ToTeamID)
			if err != nil {
				if sqlutil.IsForeignKeyViolation(err) {
					return fmt.Errorf("player or team: %w", ErrNotFound)
				}
				return fmt.Errorf("failed to add trade player: %w", err)
			}
			players = append(players, *tradePlayerRowToModel(prow))
		}

		out = TradeWithPlayers{Trade: *tradeRowToModel(row), Players: players}

		return outbox.Enqueue(ctx, tx, leagueID, outbox.EventTradeProposed, out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTrade retrieves a trade and its players
func (r *Repository) GetTrade(ctx context.Context, id uuid.UUID) (*TradeWithPlayers, error) {
	var row tradeRow
	err := r.db.GetContext(ctx, &row, `SELECT `+tradeColumns+` FROM trades WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trade %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}

	players, err := r.listTradePlayers(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TradeWithPlayers{Trade: *tradeRowToModel(row), Players: players}, nil
}

// ListTradesByTeam returns trades the team proposed or received, newest first
func (r *Repository) ListTradesByTeam(ctx context.Context, teamID uuid.UUID) ([]TradeWithPlayers, error) {
	var rows []tradeRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+tradeColumns+` FROM trades
		WHERE from_team_id = $1 OR to_team_id = $1
		ORDER BY proposed_at DESC`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}

	out := make([]TradeWithPlayers, 0, len(rows))
	for _, row := range rows {
		players, err := r.listTradePlayers(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, TradeWithPlayers{Trade: *tradeRowToModel(row), Players: players})
	}
	return out, nil
}

// AcceptTrade completes a pending trade atomically: every traded player is
// verified to still be on the offering roster, moved to the receiving team's
// bench, and the acceptance event staged, all in one transaction.
func (r *Repository) AcceptTrade(ctx context.Context, id, leagueID uuid.UUID) (*TradeWithPlayers, error) {
	var out TradeWithPlayers
	err := sqlutil.Run(ctx, r.db, func(tx *sqlx.Tx) error {
		var row tradeRow
		err := tx.GetContext(ctx, &row, `SELECT `+tradeColumns+` FROM trades WHERE id = $1 FOR UPDATE`, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("trade %s: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to lock trade: %w", err)
		}
		if models.TradeStatus(row.Status) != models.TradeStatusPending {
			return fmt.Errorf("trade %s has status %s: %w", id, row.Status, ErrNotPending)
		}

		var prows []tradePlayerRow
		err = tx.SelectContext(ctx, &prows, `
			SELECT id, trade_id, player_id, from_team_id, to_team_id
			FROM trade_players WHERE trade_id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to load trade players: %w", err)
		}

		players := make([]models.TradePlayer, 0, len(prows))
		for _, p := range prows {
			res, err := tx.ExecContext(ctx, `
				UPDATE roster_slots
				SET fantasy_team_id = $3, slot = 'BN', acquired_at = now()
				WHERE fantasy_team_id = $1 AND player_id = $2`,
				p.FromTeamID, p.PlayerID, p.ToTeamID)
			if err != nil {
				return fmt.Errorf("failed to move player %s: %w", p.PlayerID, err)
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return fmt.Errorf("player %s: %w", p.PlayerID, ErrPlayerNotOnRoster)
			}
			players = append(players, *tradePlayerRowToModel(p))
		}

		err = tx.GetContext(ctx, &row, `
			UPDATE trades
			SET status = 'completed', responded_at = now(), completed_at = now()
			WHERE id = $1
			RETURNING `+tradeColumns, id)
		if err != nil {
			return fmt.Errorf("failed to complete trade: %w", err)
		}

		out = TradeWithPlayers{Trade: *tradeRowToModel(row), Players: players}

		return outbox.Enqueue(ctx, tx, leagueID, outbox.EventTradeAccepted, out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SettleTrade moves a pending trade to rejected or cancelled and stages the
// matching event.
func (r *Repository) SettleTrade(ctx context.Context, id, leagueID uuid.UUID, status models.TradeStatus, eventType string) (*TradeWithPlayers, error) {
	var out TradeWithPlayers
	err := sqlutil.Run(ctx, r.db, func(tx *sqlx.Tx) error {
		var row tradeRow
		err := tx.GetContext(ctx, &row, `
			UPDATE trades
			SET status = $2, responded_at = now()
			WHERE id = $1 AND status = 'pending'
			RETURNING `+tradeColumns, id, status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("trade %s: %w", id, ErrNotPending)
			}
			return fmt.Errorf("failed to settle trade: %w", err)
		}

		players, err := r.listTradePlayersTx(ctx, tx, id)
		if err != nil {
			return err
		}
		out = TradeWithPlayers{Trade: *tradeRowToModel(row), Players: players}

		return outbox.Enqueue(ctx, tx, leagueID, eventType, out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repository) listTradePlayers(ctx context.Context, tradeID uuid.UUID) ([]models.TradePlayer, error) {
	var rows []tradePlayerRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, trade_id, player_id, from_team_id, to_team_id
		FROM trade_players WHERE trade_id = $1`, tradeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trade players: %w", err)
	}
	out := make([]models.TradePlayer, len(rows))
	for i, row := range rows {
		out[i] = *tradePlayerRowToModel(row)
	}
	return out, nil
}

func (r *Repository) listTradePlayersTx(ctx context.Context, tx *sqlx.Tx, tradeID uuid.UUID) ([]models.TradePlayer, error) {
	var rows []tradePlayerRow
	err := tx.SelectContext(ctx, &rows, `
		SELECT id, trade_id, player_id, from_team_id, to_team_id
		FROM trade_players WHERE trade_id = $1`, tradeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trade players: %w", err)
	}
	out := make([]models.TradePlayer, len(rows))
	for i, row := range rows {
		out[i] = *tradePlayerRowToModel(row)
	}
	return out, nil
}

func tradeRowToModel(row tradeRow) *models.Trade {
	return &models.Trade{
		ID:          row.ID,
		FromTeamID:  row.FromTeamID,
		ToTeamID:    row.ToTeamID,
		Status:      models.TradeStatus(row.Status),
		Message:     row.Message,
		ProposedAt:  row.ProposedAt,
		RespondedAt: sqlutil.FromSqlTime(row.RespondedAt),
		CompletedAt: sqlutil.FromSqlTime(row.CompletedAt),
	}
}

func tradePlayerRowToModel(row tradePlayerRow) *models.TradePlayer {
	return &models.TradePlayer{
		ID:         row.ID,
		TradeID:    row.TradeID,
		PlayerID:   row.PlayerID,
		FromTeamID: row.FromTeamID,
		ToTeamID:   row.ToTeamID,
	}
}
