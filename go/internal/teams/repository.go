package teams

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
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned on unique constraint conflicts
	ErrAlreadyExists = errors.New("already exists")
)

// Repository implements reference-data access for conferences, divisions,
// teams and seasons.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new teams repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type conferenceRow struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Abbreviation string    `db:"abbreviation"`
	CreatedAt    time.Time `db:"created_at"`
}

type divisionRow struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Abbreviation string    `db:"abbreviation"`
	ConferenceID uuid.UUID `db:"conference_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type teamRow struct {
	ID             uuid.UUID      `db:"id"`
	Name           string         `db:"name"`
	City           string         `db:"city"`
	Abbreviation   string         `db:"abbreviation"`
	DivisionID     uuid.UUID      `db:"division_id"`
	FoundedYear    sql.NullInt32  `db:"founded_year"`
	ArenaName      sql.NullString `db:"arena_name"`
	ArenaCapacity  sql.NullInt32  `db:"arena_capacity"`
	PrimaryColor   sql.NullString `db:"primary_color"`
	SecondaryColor sql.NullString `db:"secondary_color"`
	LogoURL        sql.NullString `db:"logo_url"`
	IsActive       bool           `db:"is_active"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type seasonRow struct {
	ID                uuid.UUID    `db:"id"`
	Name              string       `db:"name"`
	StartDate         time.Time    `db:"start_date"`
	EndDate           time.Time    `db:"end_date"`
	PlayoffsStartDate sql.NullTime `db:"playoffs_start_date"`
	IsCurrent         bool         `db:"is_current"`
	CreatedAt         time.Time    `db:"created_at"`
}

// CreateConference creates a new conference
func (r *Repository) CreateConference(ctx context.Context, req CreateConferenceRequest) (*models.Conference, error) {
	var row conferenceRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO conferences (name, abbreviation)
		VALUES ($1, $2)
		RETURNING id, name, abbreviation, created_at`,
		req.Name, req.Abbreviation)
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("conference %q: %w", req.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create conference: %w", err)
	}
	return conferenceRowToModel(row), nil
}

// GetConference retrieves a conference by ID
func (r *Repository) GetConference(ctx context.Context, id uuid.UUID) (*models.Conference, error) {
	var row conferenceRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, name, abbreviation, created_at FROM conferences WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("conference %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get conference: %w", err)
	}
	return conferenceRowToModel(row), nil
}

// ListConferences retrieves all conferences ordered by name
func (r *Repository) ListConferences(ctx context.Context) ([]models.Conference, error) {
	var rows []conferenceRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, name, abbreviation, created_at FROM conferences ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list conferences: %w", err)
	}
	confs := make([]models.Conference, len(rows))
	for i, row := range rows {
		confs[i] = *conferenceRowToModel(row)
	}
	return confs, nil
}

// CreateDivision creates a new division
func (r *Repository) CreateDivision(ctx context.Context, req CreateDivisionRequest) (*models.Division, error) {
	var row divisionRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO divisions (name, abbreviation, conference_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, abbreviation, conference_id, created_at`,
		req.Name, req.Abbreviation, req.ConferenceID)
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("division %q: %w", req.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create division: %w", err)
	}
	return divisionRowToModel(row), nil
}

// GetDivision retrieves a division by ID
func (r *Repository) GetDivision(ctx context.Context, id uuid.UUID) (*models.Division, error) {
	var row divisionRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, name, abbreviation, conference_id, created_at FROM divisions WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("division %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get division: %w", err)
	}
	return divisionRowToModel(row), nil
}

// ListDivisions retrieves all divisions ordered by conference then name
func (r *Repository) ListDivisions(ctx context.Context) ([]models.Division, error) {
	var rows []divisionRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT d.id, d.name, d.abbreviation, d.conference_id, d.created_at
		FROM divisions d
		JOIN conferences c ON c.id = d.conference_id
		ORDER BY c.name, d.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list divisions: %w", err)
	}
	divs := make([]models.Division, len(rows))
	for i, row := range rows {
		divs[i] = *divisionRowToModel(row)
	}
	return divs, nil
}

const teamColumns = `id, name, city, abbreviation, division_id, founded_year, arena_name,
	arena_capacity, primary_color, secondary_color, logo_url, is_active, created_at, updated_at`

// CreateTeam creates a new team
func (r *Repository) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	var row teamRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO teams (name, city, abbreviation, division_id, founded_year, arena_name,
			arena_capacity, primary_color, secondary_color, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+teamColumns,
		req.Name, req.City, req.Abbreviation, req.DivisionID,
		sqlutil.ToSqlInt32(req.FoundedYear), sqlutil.ToSqlString(req.ArenaName),
		sqlutil.ToSqlInt32(req.ArenaCapacity), sqlutil.ToSqlString(req.PrimaryColor),
		sqlutil.ToSqlString(req.SecondaryColor), sqlutil.ToSqlString(req.LogoURL))
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("team %s: %w", req.Abbreviation, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return r.teamRowToModel(row), nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var row teamRow
	err := r.db.GetContext(ctx, &row, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("team %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return r.teamRowToModel(row), nil
}

// GetTeamByAbbreviation retrieves a team by its abbreviation, e.g. "BOS"
func (r *Repository) GetTeamByAbbreviation(ctx context.Context, abbreviation string) (*models.Team, error) {
	var row teamRow
	err := r.db.GetContext(ctx, &row, `SELECT `+teamColumns+` FROM teams WHERE abbreviation = $1`, abbreviation)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("team %s: %w", abbreviation, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get team by abbreviation: %w", err)
	}
	return r.teamRowToModel(row), nil
}

// ListTeams retrieves all teams ordered by city then name
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	var rows []teamRow
	err := r.db.SelectContext(ctx, &rows, `SELECT `+teamColumns+` FROM teams ORDER BY city, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return r.teamRowsToModels(rows), nil
}

// ListTeamsByDivision retrieves all teams in a division
func (r *Repository) ListTeamsByDivision(ctx context.Context, divisionID uuid.UUID) ([]models.Team, error) {
	var rows []teamRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+teamColumns+` FROM teams WHERE division_id = $1 ORDER BY city, name`, divisionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by division: %w", err)
	}
	return r.teamRowsToModels(rows), nil
}

// UpdateTeam updates an existing team
func (r *Repository) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	var row teamRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE teams SET
			name = COALESCE($2, name),
			city = COALESCE($3, city),
			abbreviation = COALESCE($4, abbreviation),
			founded_year = COALESCE($5, founded_year),
			arena_name = COALESCE($6, arena_name),
			arena_capacity = COALESCE($7, arena_capacity),
			primary_color = COALESCE($8, primary_color),
			secondary_color = COALESCE($9, secondary_color),
			logo_url = COALESCE($10, logo_url),
			is_active = COALESCE($11, is_active),
			updated_at = now()
		WHERE id = $1
		RETURNING `+teamColumns,
		id, req.Name, req.City, req.Abbreviation, sqlutil.ToSqlInt32(req.FoundedYear),
		req.ArenaName, sqlutil.ToSqlInt32(req.ArenaCapacity), req.PrimaryColor,
		req.SecondaryColor, req.LogoURL, req.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("team %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return r.teamRowToModel(row), nil
}

// DeleteTeam deletes a team by ID
func (r *Repository) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("team %s: %w", id, ErrNotFound)
	}
	return nil
}

// CreateSeason creates a new season
func (r *Repository) CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error) {
	var season *models.Season
	err := sqlutil.Run(ctx, r.db, func(tx *sqlx.Tx) error {
		if req.IsCurrent {
			if _, err := tx.ExecContext(ctx, `UPDATE seasons SET is_current = FALSE WHERE is_current`); err != nil {
				return fmt.Errorf("failed to clear current season: %w", err)
			}
		}
		var row seasonRow
		err := tx.GetContext(ctx, &row, `
			INSERT INTO seasons (name, start_date, end_date, playoffs_start_date, is_current)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, name, start_date, end_date, playoffs_start_date, is_current, created_at`,
			req.Name, req.StartDate, req.EndDate, sqlutil.ToSqlTime(req.PlayoffsStartDate), req.IsCurrent)
		if err != nil {
			if sqlutil.IsUniqueViolation(err) {
				return fmt.Errorf("season %q: %w", req.Name, ErrAlreadyExists)
			}
			return fmt.Errorf("failed to create season: %w", err)
		}
		season = r.seasonRowToModel(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return season, nil
}

// GetSeason retrieves a season by ID
func (r *Repository) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	var row seasonRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, name, start_date, end_date, playoffs_start_date, is_current, created_at
		FROM seasons WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("season %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return r.seasonRowToModel(row), nil
}

// GetCurrentSeason retrieves the season flagged as current
func (r *Repository) GetCurrentSeason(ctx context.Context) (*models.Season, error) {
	var row seasonRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, name, start_date, end_date, playoffs_start_date, is_current, created_at
		FROM seasons WHERE is_current`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("current season: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get current season: %w", err)
	}
	return r.seasonRowToModel(row), nil
}

// ListSeasons retrieves all seasons, newest first
func (r *Repository) ListSeasons(ctx context.Context) ([]models.Season, error) {
	var rows []seasonRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, name, start_date, end_date, playoffs_start_date, is_current, created_at
		FROM seasons ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	seasons := make([]models.Season, len(rows))
	for i, row := range rows {
		seasons[i] = *r.seasonRowToModel(row)
	}
	return seasons, nil
}

// SetCurrentSeason flags the given season as current, clearing any other
// current season in the same transaction.
func (r *Repository) SetCurrentSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	var season *models.Season
	err := sqlutil.Run(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE seasons SET is_current = FALSE WHERE is_current`); err != nil {
			return fmt.Errorf("failed to clear current season: %w", err)
		}
		var row seasonRow
		err := tx.GetContext(ctx, &row, `
			UPDATE seasons SET is_current = TRUE WHERE id = $1
			RETURNING id, name, start_date, end_date, playoffs_start_date, is_current, created_at`, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("season %s: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to set current season: %w", err)
		}
		season = r.seasonRowToModel(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return season, nil
}

func conferenceRowToModel(row conferenceRow) *models.Conference {
	return &models.Conference{
		ID:           row.ID,
		Name:         row.Name,
		Abbreviation: row.Abbreviation,
		CreatedAt:    row.CreatedAt,
	}
}

func divisionRowToModel(row divisionRow) *models.Division {
	return &models.Division{
		ID:           row.ID,
		Name:         row.Name,
		Abbreviation: row.Abbreviation,
		ConferenceID: row.ConferenceID,
		CreatedAt:    row.CreatedAt,
	}
}

func (r *Repository) teamRowToModel(row teamRow) *models.Team {
	return &models.Team{
		ID:             row.ID,
		Name:           row.Name,
		City:           row.City,
		Abbreviation:   row.Abbreviation,
		DivisionID:     row.DivisionID,
		FoundedYear:    sqlutil.FromSqlInt32(row.FoundedYear),
		ArenaName:      sqlutil.FromSqlStringPtr(row.ArenaName),
		ArenaCapacity:  sqlutil.FromSqlInt32(row.ArenaCapacity),
		PrimaryColor:   sqlutil.FromSqlStringPtr(row.PrimaryColor),
		SecondaryColor: sqlutil.FromSqlStringPtr(row.SecondaryColor),
		LogoURL:        sqlutil.FromSqlStringPtr(row.LogoURL),
		IsActive:       row.IsActive,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func (r *Repository) teamRowsToModels(rows []teamRow) []models.Team {
	teams := make([]models.Team, len(rows))
	for i, row := range rows {
		teams[i] = *r.teamRowToModel(row)
	}
	return teams
}

func (r *Repository) seasonRowToModel(row seasonRow) *models.Season {
	return &models.Season{
		ID:                row.ID,
		Name:              row.Name,
		StartDate:         row.StartDate,
		EndDate:           row.EndDate,
		PlayoffsStartDate: sqlutil.FromSqlTime(row.PlayoffsStartDate),
		IsCurrent:         row.IsCurrent,
		CreatedAt:         row.CreatedAt,
	}
}
