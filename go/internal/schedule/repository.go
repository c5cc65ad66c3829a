package schedule

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
	// ErrNotFound is returned when the requested week or matchup does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a schedule already exists
	ErrAlreadyExists = errors.New("already exists")
)

// Repository implements schedule data access operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new schedule repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type weekRow struct {
	ID         uuid.UUID `db:"id"`
	LeagueID   uuid.UUID `db:"league_id"`
	WeekNumber int       `db:"week_number"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	IsPlayoffs bool      `db:"is_playoffs"`
}

type matchupRow struct {
	ID         uuid.UUID `db:"id"`
	WeekID     uuid.UUID `db:"week_id"`
	Team1ID    uuid.UUID `db:"team1_id"`
	Team2ID    uuid.UUID `db:"team2_id"`
	Team1Score float64   `db:"team1_score"`
	Team2Score float64   `db:"team2_score"`
	IsComplete bool      `db:"is_complete"`
}

// InsertSchedule writes all weeks and matchups for a league in one
// transaction. Fails when the league already has any week.
func (r *Repository) InsertSchedule(ctx context.Context, leagueID uuid.UUID, weeks []models.FantasyWeek, matchups map[int][][2]uuid.UUID) ([]WeekWithMatchups, error) {
	var out []WeekWithMatchups
	err := sqlutil.Run(ctx, r.db, func(tx *sqlx.Tx) error {
		var existing int
		if err := tx.GetContext(ctx, &existing,
			`SELECT COUNT(*) FROM fantasy_weeks WHERE league_id = $1`, leagueID); err != nil {
			return fmt.Errorf("failed to check existing schedule: %w", err)
		}
		if existing > 0 {
			return fmt.Errorf("league %s already has a schedule: %w", leagueID, ErrAlreadyExists)
		}

		for _, w := range weeks {
			var wrow weekRow
			err := tx.GetContext(ctx, &wrow, `
				INSERT INTO fantasy_weeks (league_id, week_number, start_date, end_date, is_playoffs)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id, league_id, week_number, start_date, end_date, is_playoffs`,
				leagueID, w.WeekNumber, w.StartDate, w.EndDate, w.IsPlayoffs)
			if err != nil {
				return fmt.Errorf("failed to insert week %d: %w", w.WeekNumber, err)
			}

			week := WeekWithMatchups{FantasyWeek: *weekRowToModel(wrow)}
			for _, pair := range matchups[w.WeekNumber] {
				var mrow matchupRow
				err := tx.GetContext(ctx, &mrow, `
					INSERT INTO matchups (week_id, team1_id, team2_id)
					VALUES ($1, $2, $3)
					RETURNING id, week_id, team1_id, team2_id, team1_score, team2_score, is_complete`,
					wrow.ID, pair[0], pair[1])
				if err != nil {
					return fmt.Errorf("failed to insert matchup for week %d: %w", w.WeekNumber, err)
				}
				week.Matchups = append(week.Matchups, *matchupRowToModel(mrow))
			}
			out = append(out, week)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateWeek adds a single week to a league
func (r *Repository) CreateWeek(ctx context.Context, leagueID uuid.UUID, req CreateWeekRequest) (*models.FantasyWeek, error) {
	var row weekRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO fantasy_weeks (league_id, week_number, start_date, end_date, is_playoffs)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, league_id, week_number, start_date, end_date, is_playoffs`,
		leagueID, req.WeekNumber, req.StartDate, req.EndDate, req.IsPlayoffs)
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("week %d in league %s: %w", req.WeekNumber, leagueID, ErrAlreadyExists)
		}
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("league %s: %w", leagueID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create week: %w", err)
	}
	return weekRowToModel(row), nil
}

// GetWeek retrieves a week by ID
func (r *Repository) GetWeek(ctx context.Context, id uuid.UUID) (*models.FantasyWeek, error) {
	var row weekRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, league_id, week_number, start_date, end_date, is_playoffs
		FROM fantasy_weeks WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("week %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get week: %w", err)
	}
	return weekRowToModel(row), nil
}

// GetWeekContaining returns the league's week covering the given date
func (r *Repository) GetWeekContaining(ctx context.Context, leagueID uuid.UUID, date time.Time) (*models.FantasyWeek, error) {
	var row weekRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, league_id, week_number, start_date, end_date, is_playoffs
		FROM fantasy_weeks
		WHERE league_id = $1 AND start_date <= $2 AND end_date >= $2`, leagueID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no week in league %s covers %s: %w", leagueID, date.Format("2006-01-02"), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get current week: %w", err)
	}
	return weekRowToModel(row), nil
}

// ListWeeks returns the league's weeks in order
func (r *Repository) ListWeeks(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyWeek, error) {
	var rows []weekRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, league_id, week_number, start_date, end_date, is_playoffs
		FROM fantasy_weeks
		WHERE league_id = $1
		ORDER BY week_number`, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}
	out := make([]models.FantasyWeek, len(rows))
	for i, row := range rows {
		out[i] = *weekRowToModel(row)
	}
	return out, nil
}

// GetMatchup retrieves a matchup by ID
func (r *Repository) GetMatchup(ctx context.Context, id uuid.UUID) (*models.Matchup, error) {
	var row matchupRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, week_id, team1_id, team2_id, team1_score, team2_score, is_complete
		FROM matchups WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("matchup %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get matchup: %w", err)
	}
	return matchupRowToModel(row), nil
}

// ListMatchupsByWeek returns a week's matchups
func (r *Repository) ListMatchupsByWeek(ctx context.Context, weekID uuid.UUID) ([]models.Matchup, error) {
	var rows []matchupRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, week_id, team1_id, team2_id, team1_score, team2_score, is_complete
		FROM matchups
		WHERE week_id = $1
		ORDER BY id`, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matchups: %w", err)
	}
	out := make([]models.Matchup, len(rows))
	for i, row := range rows {
		out[i] = *matchupRowToModel(row)
	}
	return out, nil
}

// UpdateMatchupScores writes both scores and the completion flag
func (r *Repository) UpdateMatchupScores(ctx context.Context, id uuid.UUID, team1Score, team2Score float64, complete bool) (*models.Matchup, error) {
	var row matchupRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE matchups SET team1_score = $2, team2_score = $3, is_complete = $4
		WHERE id = $1
		RETURNING id, week_id, team1_id, team2_id, team1_score, team2_score, is_complete`,
		id, team1Score, team2Score, complete)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("matchup %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update matchup: %w", err)
	}
	return matchupRowToModel(row), nil
}

func weekRowToModel(row weekRow) *models.FantasyWeek {
	return &models.FantasyWeek{
		ID:         row.ID,
		LeagueID:   row.LeagueID,
		WeekNumber: row.WeekNumber,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		IsPlayoffs: row.IsPlayoffs,
	}
}

func matchupRowToModel(row matchupRow) *models.Matchup {
	return &models.Matchup{
		ID:         row.ID,
		WeekID:     row.WeekID,
		Team1ID:    row.Team1ID,
		Team2ID:    row.Team2ID,
		Team1Score: row.Team1Score,
		Team2Score: row.Team2Score,
		IsComplete: row.IsComplete,
	}
}
