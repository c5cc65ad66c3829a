package fantasyteam

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
	// ErrNotFound is returned when the requested team does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when the owner already has a team in the league
	ErrAlreadyExists = errors.New("already exists")
)

// Repository implements fantasy team data access operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new fantasy team repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type teamRow struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	OwnerID     uuid.UUID      `db:"owner_id"`
	LeagueID    uuid.UUID      `db:"league_id"`
	LogoURL     sql.NullString `db:"logo_url"`
	Wins        int            `db:"wins"`
	Losses      int            `db:"losses"`
	Ties        int            `db:"ties"`
	TotalPoints float64        `db:"total_points"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

const teamColumns = `id, name, owner_id, league_id, logo_url, wins, losses, ties,
	total_points, created_at, updated_at`

// CreateTeam creates a new fantasy team
func (r *Repository) CreateTeam(ctx context.Context, req CreateFantasyTeamRequest) (*models.FantasyTeam, error) {
	var row teamRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO fantasy_teams (name, owner_id, league_id, logo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING `+teamColumns,
		req.Name, req.OwnerID, req.LeagueID, sqlutil.ToSqlString(req.LogoURL))
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("owner %s already has a team in league %s: %w", req.OwnerID, req.LeagueID, ErrAlreadyExists)
		}
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("owner or league: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create fantasy team: %w", err)
	}
	return teamRowToModel(row), nil
}

// GetTeam retrieves a fantasy team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	var row teamRow
	err := r.db.GetContext(ctx, &row, `SELECT `+teamColumns+` FROM fantasy_teams WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("fantasy team %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get fantasy team: %w", err)
	}
	return teamRowToModel(row), nil
}

// ListTeamsByLeague returns the league's teams in standings order: total
// points first, wins and ties as tiebreaks.
func (r *Repository) ListTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error) {
	var rows []teamRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+teamColumns+` FROM fantasy_teams
		WHERE league_id = $1
		ORDER BY total_points DESC, wins DESC, ties DESC`, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fantasy teams: %w", err)
	}
	out := make([]models.FantasyTeam, len(rows))
	for i, row := range rows {
		out[i] = *teamRowToModel(row)
	}
	return out, nil
}

// ListTeamsByOwner returns all of a user's teams across leagues
func (r *Repository) ListTeamsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error) {
	var rows []teamRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+teamColumns+` FROM fantasy_teams
		WHERE owner_id = $1
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fantasy teams: %w", err)
	}
	out := make([]models.FantasyTeam, len(rows))
	for i, row := range rows {
		out[i] = *teamRowToModel(row)
	}
	return out, nil
}

// UpdateTeam updates a fantasy team's name or logo
func (r *Repository) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateFantasyTeamRequest) (*models.FantasyTeam, error) {
	var row teamRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE fantasy_teams SET
			name = COALESCE($2, name),
			logo_url = COALESCE($3, logo_url),
			updated_at = now()
		WHERE id = $1
		RETURNING `+teamColumns,
		id, req.Name, sqlutil.ToSqlString(req.LogoURL))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("fantasy team %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update fantasy team: %w", err)
	}
	return teamRowToModel(row), nil
}

// DeleteTeam deletes a fantasy team by ID
func (r *Repository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fantasy_teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fantasy team: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("fantasy team %s: %w", id, ErrNotFound)
	}
	return nil
}

// ApplyResult bumps a team's record and running point total
func (r *Repository) ApplyResult(ctx context.Context, id uuid.UUID, result RecordResult) (*models.FantasyTeam, error) {
	var row teamRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE fantasy_teams SET
			wins = wins + $2,
			losses = losses + $3,
			ties = ties + $4,
			total_points = total_points + $5,
			updated_at = now()
		WHERE id = $1
		RETURNING `+teamColumns,
		id, result.Wins, result.Losses, result.Ties, result.Points)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("fantasy team %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to apply result: %w", err)
	}
	return teamRowToModel(row), nil
}

func teamRowToModel(row teamRow) *models.FantasyTeam {
	return &models.FantasyTeam{
		ID:          row.ID,
		Name:        row.Name,
		OwnerID:     row.OwnerID,
		LeagueID:    row.LeagueID,
		LogoURL:     sqlutil.FromSqlStringPtr(row.LogoURL),
		Wins:        row.Wins,
		Losses:      row.Losses,
		Ties:        row.Ties,
		TotalPoints: row.TotalPoints,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
