package outbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository implements outbox data access operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new outbox repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type eventRow struct {
	ID        uuid.UUID       `db:"id"`
	LeagueID  uuid.UUID       `db:"league_id"`
	EventType string          `db:"event_type"`
	Payload   json.RawMessage `db:"payload"`
	CreatedAt time.Time       `db:"created_at"`
	SentAt    sql.NullTime    `db:"sent_at"`
}

// Enqueue stages an event inside the caller's transaction so it commits or
// rolls back with the domain write it describes.
func Enqueue(ctx context.Context, tx *sqlx.Tx, leagueID uuid.UUID, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode outbox payload: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO fantasy_outbox (id, league_id, event_type, payload)
		VALUES ($1, $2, $3, $4)`,
		uuid.New(), leagueID, eventType, raw)
	if err != nil {
		return fmt.Errorf("failed to enqueue outbox event: %w", err)
	}
	return nil
}

// FetchUnsent locks and returns up to limit pending events, oldest first.
// Locked rows are skipped so concurrent workers never double-publish.
func (r *Repository) FetchUnsent(ctx context.Context, tx *sqlx.Tx, limit int) ([]Event, error) {
	var rows []eventRow
	err := tx.SelectContext(ctx, &rows, `
		SELECT id, league_id, event_type, payload, created_at, sent_at
		FROM fantasy_outbox
		WHERE status = 'pending'
		ORDER BY created_at
		LIMIT $1
		FOR UPDATE SKIP LOCKED`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent events: %w", err)
	}
	out := make([]Event, len(rows))
	for i, row := range rows {
		out[i] = Event{
			ID:        row.ID,
			LeagueID:  row.LeagueID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		}
		if row.SentAt.Valid {
			t := row.SentAt.Time
			out[i].SentAt = &t
		}
	}
	return out, nil
}

// MarkSent flags the given events as published
func (r *Repository) MarkSent(ctx context.Context, tx *sqlx.Tx, ids []uuid.UUID) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE fantasy_outbox
		SET status = 'published', sent_at = now()
		WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to mark events sent: %w", err)
	}
	return nil
}

// MarkFailed bumps the attempt counter and flags events that exhausted
// their retries.
func (r *Repository) MarkFailed(ctx context.Context, tx *sqlx.Tx, ids []uuid.UUID, maxAttempts int) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE fantasy_outbox
		SET attempts = attempts + 1,
		    status = CASE WHEN attempts + 1 >= $2 THEN 'failed' ELSE 'pending' END
		WHERE id = ANY($1)`, pq.Array(ids), maxAttempts)
	if err != nil {
		return fmt.Errorf("failed to mark events failed: %w", err)
	}
	return nil
}
