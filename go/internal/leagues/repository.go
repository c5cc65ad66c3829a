package leagues

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sqlc-dev/pqtype"

	"github.com/rinkside/fantasyhockey/go/internal/models"
	"github.com/rinkside/fantasyhockey/go/internal/sqlutil"
)

var (
	// ErrNotFound is returned when the requested league does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned on unique constraint violations
	ErrAlreadyExists = errors.New("already exists")
)

// Repository implements league data access operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new leagues repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type leagueRow struct {
	ID                 uuid.UUID             `db:"id"`
	Name               string                `db:"name"`
	Description        string                `db:"description"`
	SeasonID           uuid.UUID             `db:"season_id"`
	MaxTeams           int                   `db:"max_teams"`
	RosterSize         int                   `db:"roster_size"`
	StartingLineupSize int                   `db:"starting_lineup_size"`
	ScoringSystem      string                `db:"scoring_system"`
	DraftType          string                `db:"draft_type"`
	DraftDate          sql.NullTime          `db:"draft_date"`
	IsDrafted          bool                  `db:"is_drafted"`
	IsActive           bool                  `db:"is_active"`
	IsPublic           bool                  `db:"is_public"`
	CommissionerID     uuid.UUID             `db:"commissioner_id"`
	ScoringSettings    pqtype.NullRawMessage `db:"scoring_settings"`
	CreatedAt          time.Time             `db:"created_at"`
	UpdatedAt          time.Time             `db:"updated_at"`
}

const leagueColumns = `id, name, description, season_id, max_teams, roster_size,
	starting_lineup_size, scoring_system, draft_type, draft_date, is_drafted,
	is_active, is_public, commissioner_id, scoring_settings, created_at, updated_at`

// CreateLeague creates a new league. Zero-valued knobs fall back to the
// schema defaults and the standard scoring weights.
func (r *Repository) CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error) {
	settings := models.DefaultScoringSettings()
	if req.ScoringSettings != nil {
		settings = *req.ScoringSettings
	}
	settingsJSON, err := scoringSettingsToSql(&settings)
	if err != nil {
		return nil, err
	}

	maxTeams := req.MaxTeams
	if maxTeams == 0 {
		maxTeams = 12
	}
	rosterSize := req.RosterSize
	if rosterSize == 0 {
		rosterSize = 23
	}
	lineupSize := req.StartingLineupSize
	if lineupSize == 0 {
		lineupSize = 9
	}
	scoringSystem := req.ScoringSystem
	if scoringSystem == "" {
		scoringSystem = models.ScoringSystemPoints
	}
	draftType := req.DraftType
	if draftType == "" {
		draftType = models.DraftTypeSnake
	}

	var row leagueRow
	err = r.db.GetContext(ctx, &row, `
		INSERT INTO leagues (name, description, season_id, max_teams, roster_size,
			starting_lineup_size, scoring_system, draft_type, draft_date, is_public,
			commissioner_id, scoring_settings)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+leagueColumns,
		req.Name, req.Description, req.SeasonID, maxTeams, rosterSize, lineupSize,
		scoringSystem, draftType, sqlutil.ToSqlTime(req.DraftDate), req.IsPublic,
		req.CommissionerID, settingsJSON)
	if err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("season or commissioner: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create league: %w", err)
	}
	return leagueRowToModel(row)
}

// GetLeague retrieves a league by ID
func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	var row leagueRow
	err := r.db.GetContext(ctx, &row, `SELECT `+leagueColumns+` FROM leagues WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("league %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return leagueRowToModel(row)
}

// ListLeagues retrieves leagues matching the filter, newest first
func (r *Repository) ListLeagues(ctx context.Context, filter ListLeaguesFilter) ([]models.League, error) {
	query := `SELECT ` + leagueColumns + ` FROM leagues`
	var conds []string
	var args []interface{}

	if filter.SeasonID != nil {
		conds = append(conds, fmt.Sprintf("season_id = $%d", len(args)+1))
		args = append(args, *filter.SeasonID)
	}
	if filter.CommissionerID != nil {
		conds = append(conds, fmt.Sprintf("commissioner_id = $%d", len(args)+1))
		args = append(args, *filter.CommissionerID)
	}
	if filter.PublicOnly {
		conds = append(conds, "is_public")
	}
	if filter.ActiveOnly {
		conds = append(conds, "is_active")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	var rows []leagueRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	out := make([]models.League, 0, len(rows))
	for _, row := range rows {
		league, err := leagueRowToModel(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *league)
	}
	return out, nil
}

// UpdateLeague updates an existing league
func (r *Repository) UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error) {
	settingsJSON, err := scoringSettingsToSql(req.ScoringSettings)
	if err != nil {
		return nil, err
	}

	var row leagueRow
	err = r.db.GetContext(ctx, &row, `
		UPDATE leagues SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			max_teams = COALESCE($4, max_teams),
			draft_date = COALESCE($5, draft_date),
			is_drafted = COALESCE($6, is_drafted),
			is_active = COALESCE($7, is_active),
			is_public = COALESCE($8, is_public),
			scoring_settings = COALESCE($9, scoring_settings),
			updated_at = now()
		WHERE id = $1
		RETURNING `+leagueColumns,
		id, req.Name, req.Description, req.MaxTeams, sqlutil.ToSqlTime(req.DraftDate),
		req.IsDrafted, req.IsActive, req.IsPublic, settingsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("league %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update league: %w", err)
	}
	return leagueRowToModel(row)
}

// DeleteLeague deletes a league by ID
func (r *Repository) DeleteLeague(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leagues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("league %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountTeams returns how many fantasy teams have joined the league
func (r *Repository) CountTeams(ctx context.Context, leagueID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM fantasy_teams WHERE league_id = $1`, leagueID)
	if err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return count, nil
}

func leagueRowToModel(row leagueRow) (*models.League, error) {
	league := &models.League{
		ID:                 row.ID,
		Name:               row.Name,
		Description:        row.Description,
		SeasonID:           row.SeasonID,
		MaxTeams:           row.MaxTeams,
		RosterSize:         row.RosterSize,
		StartingLineupSize: row.StartingLineupSize,
		ScoringSystem:      models.ScoringSystem(row.ScoringSystem),
		DraftType:          models.DraftType(row.DraftType),
		DraftDate:          sqlutil.FromSqlTime(row.DraftDate),
		IsDrafted:          row.IsDrafted,
		IsActive:           row.IsActive,
		IsPublic:           row.IsPublic,
		CommissionerID:     row.CommissionerID,
		ScoringSettings:    models.DefaultScoringSettings(),
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
	if row.ScoringSettings.Valid {
		if err := json.Unmarshal(row.ScoringSettings.RawMessage, &league.ScoringSettings); err != nil {
			return nil, fmt.Errorf("failed to decode scoring settings for league %s: %w", row.ID, err)
		}
	}
	return league, nil
}

func scoringSettingsToSql(s *models.ScoringSettings) (pqtype.NullRawMessage, error) {
	if s == nil {
		return pqtype.NullRawMessage{}, nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return pqtype.NullRawMessage{}, fmt.Errorf("failed to encode scoring settings: %w", err)
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}
