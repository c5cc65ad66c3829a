package games

import (
	"context"
	"database/sql"
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
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned on unique constraint violations
	ErrAlreadyExists = errors.New("already exists")
)

// Repository implements game data access operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new games repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type gameRow struct {
	ID              uuid.UUID      `db:"id"`
	HomeTeamID      uuid.UUID      `db:"home_team_id"`
	AwayTeamID      uuid.UUID      `db:"away_team_id"`
	SeasonID        uuid.UUID      `db:"season_id"`
	GameDate        time.Time      `db:"game_date"`
	GameType        string         `db:"game_type"`
	HomeScore       int            `db:"home_score"`
	AwayScore       int            `db:"away_score"`
	Status          string         `db:"status"`
	PeriodsPlayed   int            `db:"periods_played"`
	OvertimePeriods int            `db:"overtime_periods"`
	Shootout        bool           `db:"shootout"`
	Attendance      sql.NullInt32  `db:"attendance"`
	Venue           sql.NullString `db:"venue"`
	NHLGameID       sql.NullString `db:"nhl_game_id"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type eventRow struct {
	ID                uuid.UUID            `db:"id"`
	GameID            uuid.UUID            `db:"game_id"`
	EventType         string               `db:"event_type"`
	Period            int                  `db:"period"`
	TimeInPeriod      string               `db:"time_in_period"`
	GameTimeSeconds   int                  `db:"game_time_seconds"`
	PrimaryPlayerID   uuid.UUID            `db:"primary_player_id"`
	SecondaryPlayerID uuid.NullUUID        `db:"secondary_player_id"`
	TeamID            uuid.UUID            `db:"team_id"`
	Details           pqtype.NullRawMessage `db:"details"`
	CreatedAt         time.Time            `db:"created_at"`
}

type goalRow struct {
	ID               uuid.UUID     `db:"id"`
	GameID           uuid.UUID     `db:"game_id"`
	ScorerID         uuid.UUID     `db:"scorer_id"`
	Assist1ID        uuid.NullUUID `db:"assist1_id"`
	Assist2ID        uuid.NullUUID `db:"assist2_id"`
	TeamID           uuid.UUID     `db:"team_id"`
	Period           int           `db:"period"`
	TimeInPeriod     string        `db:"time_in_period"`
	GameTimeSeconds  int           `db:"game_time_seconds"`
	GoalType         string        `db:"goal_type"`
	HomePlayersOnIce int           `db:"home_players_on_ice"`
	AwayPlayersOnIce int           `db:"away_players_on_ice"`
}

type gameStatsRow struct {
	ID               uuid.UUID `db:"id"`
	PlayerID         uuid.UUID `db:"player_id"`
	GameID           uuid.UUID `db:"game_id"`
	TeamID           uuid.UUID `db:"team_id"`
	Played           bool      `db:"played"`
	Starter          bool      `db:"starter"`
	Goals            int       `db:"goals"`
	Assists          int       `db:"assists"`
	Points           int       `db:"points"`
	PlusMinus        int       `db:"plus_minus"`
	PenaltyMinutes   int       `db:"penalty_minutes"`
	ShotsOnGoal      int       `db:"shots_on_goal"`
	ShotsMissed      int       `db:"shots_missed"`
	ShotsBlocked     int       `db:"shots_blocked"`
	TimeOnIceSeconds int       `db:"time_on_ice_seconds"`
	Hits             int       `db:"hits"`
	BlockedShots     int       `db:"blocked_shots"`
	FaceoffWins      int       `db:"faceoff_wins"`
	FaceoffAttempts  int       `db:"faceoff_attempts"`
	Saves            int       `db:"saves"`
	GoalsAgainst     int       `db:"goals_against"`
	ShotsAgainst     int       `db:"shots_against"`
}

const gameColumns = `id, home_team_id, away_team_id, season_id, game_date, game_type,
	home_score, away_score, status, periods_played, overtime_periods, shootout,
	attendance, venue, nhl_game_id, created_at, updated_at`

const gameStatsColumns = `id, player_id, game_id, team_id, played, starter, goals, assists,
	points, plus_minus, penalty_minutes, shots_on_goal, shots_missed, shots_blocked,
	time_on_ice_seconds, hits, blocked_shots, faceoff_wins, faceoff_attempts,
	saves, goals_against, shots_against`

// CreateGame schedules a new game
func (r *Repository) CreateGame(ctx context.Context, req CreateGameRequest) (*models.Game, error) {
	gameType := req.GameType
	if gameType == "" {
		gameType = models.GameTypeRegular
	}
	var row gameRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO games (home_team_id, away_team_id, season_id, game_date, game_type, venue, nhl_game_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+gameColumns,
		req.HomeTeamID, req.AwayTeamID, req.SeasonID, req.GameDate, gameType,
		sqlutil.ToSqlString(req.Venue), sqlutil.ToSqlString(req.NHLGameID))
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("game: %w", ErrAlreadyExists)
		}
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("team or season: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return gameRowToModel(row), nil
}

// GetGame retrieves a game by ID
func (r *Repository) GetGame(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	var row gameRow
	err := r.db.GetContext(ctx, &row, `SELECT `+gameColumns+` FROM games WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("game %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return gameRowToModel(row), nil
}

// ListGames retrieves games matching the filter, newest first
func (r *Repository) ListGames(ctx context.Context, filter ListGamesFilter) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games`
	var conds []string
	var args []interface{}

	if filter.TeamID != nil {
		conds = append(conds, fmt.Sprintf("(home_team_id = $%d OR away_team_id = $%d)", len(args)+1, len(args)+1))
		args = append(args, *filter.TeamID)
	}
	if filter.SeasonID != nil {
		conds = append(conds, fmt.Sprintf("season_id = $%d", len(args)+1))
		args = append(args, *filter.SeasonID)
	}
	if filter.Status != nil {
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}
	if filter.From != nil {
		conds = append(conds, fmt.Sprintf("game_date >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conds = append(conds, fmt.Sprintf("game_date < $%d", len(args)+1))
		args = append(args, *filter.To)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY game_date DESC"

	var rows []gameRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	out := make([]models.Game, len(rows))
	for i, row := range rows {
		out[i] = *gameRowToModel(row)
	}
	return out, nil
}

// UpdateGame updates mutable fields on a game
func (r *Repository) UpdateGame(ctx context.Context, id uuid.UUID, req UpdateGameRequest) (*models.Game, error) {
	var row gameRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE games SET
			game_date = COALESCE($2, game_date),
			status = COALESCE($3, status),
			home_score = COALESCE($4, home_score),
			away_score = COALESCE($5, away_score),
			periods_played = COALESCE($6, periods_played),
			attendance = COALESCE($7, attendance),
			venue = COALESCE($8, venue),
			updated_at = now()
		WHERE id = $1
		RETURNING `+gameColumns,
		id, sqlutil.ToSqlTime(req.GameDate), statusToSql(req.Status),
		req.HomeScore, req.AwayScore, req.PeriodsPlayed,
		sqlutil.ToSqlInt32(req.Attendance), sqlutil.ToSqlString(req.Venue))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("game %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return gameRowToModel(row), nil
}

// FinalizeGame writes the final score and status in one statement
func (r *Repository) FinalizeGame(ctx context.Context, id uuid.UUID, status models.GameStatus, req FinalizeGameRequest) (*models.Game, error) {
	var row gameRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE games SET
			home_score = $2,
			away_score = $3,
			status = $4,
			periods_played = $5,
			overtime_periods = $6,
			shootout = $7,
			attendance = COALESCE($8, attendance),
			updated_at = now()
		WHERE id = $1
		RETURNING `+gameColumns,
		id, req.HomeScore, req.AwayScore, status, req.PeriodsPlayed,
		req.OvertimePeriods, req.Shootout, sqlutil.ToSqlInt32(req.Attendance))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("game %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to finalize game: %w", err)
	}
	return gameRowToModel(row), nil
}

// DeleteGame deletes a game by ID
func (r *Repository) DeleteGame(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("game %s: %w", id, ErrNotFound)
	}
	return nil
}

// RecordEvent appends an in-game event
func (r *Repository) RecordEvent(ctx context.Context, gameID uuid.UUID, req RecordEventRequest) (*models.GameEvent, error) {
	details := pqtype.NullRawMessage{RawMessage: req.Details, Valid: len(req.Details) > 0}
	var row eventRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO game_events (game_id, event_type, period, time_in_period, game_time_seconds,
			primary_player_id, secondary_player_id, team_id, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, game_id, event_type, period, time_in_period, game_time_seconds,
			primary_player_id, secondary_player_id, team_id, details, created_at`,
		gameID, req.EventType, req.Period, req.TimeInPeriod, req.GameTimeSeconds,
		req.PrimaryPlayerID, sqlutil.ToNullUUID(req.SecondaryPlayerID), req.TeamID, details)
	if err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("game, player or team: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to record event: %w", err)
	}
	return eventRowToModel(row), nil
}

// ListEvents returns a game's events in game-time order
func (r *Repository) ListEvents(ctx context.Context, gameID uuid.UUID) ([]models.GameEvent, error) {
	var rows []eventRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, game_id, event_type, period, time_in_period, game_time_seconds,
			primary_player_id, secondary_player_id, team_id, details, created_at
		FROM game_events
		WHERE game_id = $1
		ORDER BY game_time_seconds`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	out := make([]models.GameEvent, len(rows))
	for i, row := range rows {
		out[i] = *eventRowToModel(row)
	}
	return out, nil
}

// RecordGoal inserts the goal and bumps the scoring team's tally in the
// same transaction. The game must still be in progress.
func (r *Repository) RecordGoal(ctx context.Context, gameID uuid.UUID, req RecordGoalRequest) (*models.Goal, error) {
	goalType := req.GoalType
	if goalType == "" {
		goalType = models.GoalTypeEvenStrength
	}
	var row goalRow
	err := sqlutil.Run(ctx, r.db, func(tx *sqlx.Tx) error {
		var game gameRow
		err := tx.GetContext(ctx, &game, `SELECT `+gameColumns+` FROM games WHERE id = $1 FOR UPDATE`, gameID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("game %s: %w", gameID, ErrNotFound)
			}
			return fmt.Errorf("failed to lock game: %w", err)
		}

		err = tx.GetContext(ctx, &row, `
			INSERT INTO goals (game_id, scorer_id, assist1_id, assist2_id, team_id, period,
				time_in_period, game_time_seconds, goal_type, home_players_on_ice, away_players_on_ice)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, game_id, scorer_id, assist1_id, assist2_id, team_id, period,
				time_in_period, game_time_seconds, goal_type, home_players_on_ice, away_players_on_ice`,
			gameID, req.ScorerID, sqlutil.ToNullUUID(req.Assist1ID), sqlutil.ToNullUUID(req.Assist2ID),
			req.TeamID, req.Period, req.TimeInPeriod, req.GameTimeSeconds, goalType,
			req.HomePlayersOnIce, req.AwayPlayersOnIce)
		if err != nil {
			if sqlutil.IsForeignKeyViolation(err) {
				return fmt.Errorf("game, player or team: %w", ErrNotFound)
			}
			return fmt.Errorf("failed to record goal: %w", err)
		}

		scoreCol := "away_score"
		if req.TeamID == game.HomeTeamID {
			scoreCol = "home_score"
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE games SET `+scoreCol+` = `+scoreCol+` + 1, updated_at = now() WHERE id = $1`, gameID)
		if err != nil {
			return fmt.Errorf("failed to bump score: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return goalRowToModel(row), nil
}

// ListGoals returns a game's goals in game-time order
func (r *Repository) ListGoals(ctx context.Context, gameID uuid.UUID) ([]models.Goal, error) {
	var rows []goalRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, game_id, scorer_id, assist1_id, assist2_id, team_id, period,
			time_in_period, game_time_seconds, goal_type, home_players_on_ice, away_players_on_ice
		FROM goals
		WHERE game_id = $1
		ORDER BY game_time_seconds`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	out := make([]models.Goal, len(rows))
	for i, row := range rows {
		out[i] = *goalRowToModel(row)
	}
	return out, nil
}

// UpsertGameStats writes a player's stat line for a game, replacing any
// existing one. Points are passed in computed.
func (r *Repository) UpsertGameStats(ctx context.Context, stats models.PlayerGameStats) (*models.PlayerGameStats, error) {
	var row gameStatsRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO player_game_stats (player_id, game_id, team_id, played, starter, goals,
			assists, points, plus_minus, penalty_minutes, shots_on_goal, shots_missed,
			shots_blocked, time_on_ice_seconds, hits, blocked_shots, faceoff_wins,
			faceoff_attempts, saves, goals_against, shots_against)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21)
		ON CONFLICT (player_id, game_id) DO UPDATE SET
			team_id = EXCLUDED.team_id,
			played = EXCLUDED.played,
			starter = EXCLUDED.starter,
			goals = EXCLUDED.goals,
			assists = EXCLUDED.assists,
			points = EXCLUDED.points,
			plus_minus = EXCLUDED.plus_minus,
			penalty_minutes = EXCLUDED.penalty_minutes,
			shots_on_goal = EXCLUDED.shots_on_goal,
			shots_missed = EXCLUDED.shots_missed,
			shots_blocked = EXCLUDED.shots_blocked,
			time_on_ice_seconds = EXCLUDED.time_on_ice_seconds,
			hits = EXCLUDED.hits,
			blocked_shots = EXCLUDED.blocked_shots,
			faceoff_wins = EXCLUDED.faceoff_wins,
			faceoff_attempts = EXCLUDED.faceoff_attempts,
			saves = EXCLUDED.saves,
			goals_against = EXCLUDED.goals_against,
			shots_against = EXCLUDED.shots_against
		RETURNING `+gameStatsColumns,
		stats.PlayerID, stats.GameID, stats.TeamID, stats.Played, stats.Starter,
		stats.Goals, stats.Assists, stats.Points, stats.PlusMinus, stats.PenaltyMinutes,
		stats.ShotsOnGoal, stats.ShotsMissed, stats.ShotsBlocked, stats.TimeOnIceSeconds,
		stats.Hits, stats.BlockedShots, stats.FaceoffWins, stats.FaceoffAttempts,
		stats.Saves, stats.GoalsAgainst, stats.ShotsAgainst)
	if err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("player, game or team: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to upsert game stats: %w", err)
	}
	return gameStatsRowToModel(row), nil
}

// ListGameStats returns all player stat lines for a game
func (r *Repository) ListGameStats(ctx context.Context, gameID uuid.UUID) ([]models.PlayerGameStats, error) {
	var rows []gameStatsRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+gameStatsColumns+` FROM player_game_stats
		WHERE game_id = $1
		ORDER BY points DESC, goals DESC`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list game stats: %w", err)
	}
	out := make([]models.PlayerGameStats, len(rows))
	for i, row := range rows {
		out[i] = *gameStatsRowToModel(row)
	}
	return out, nil
}

// ListPlayerGameStatsBetween returns a player's stat lines for finished games
// in the half-open interval [from, to), oldest first.
func (r *Repository) ListPlayerGameStatsBetween(ctx context.Context, playerID uuid.UUID, from, to time.Time) ([]models.PlayerGameStats, error) {
	var rows []gameStatsRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+prefixColumns("s", gameStatsColumns)+`
		FROM player_game_stats s
		JOIN games g ON g.id = s.game_id
		WHERE s.player_id = $1
		  AND g.game_date >= $2 AND g.game_date < $3
		  AND g.status IN ('final', 'overtime', 'shootout')
		ORDER BY g.game_date`, playerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list player game stats: %w", err)
	}
	out := make([]models.PlayerGameStats, len(rows))
	for i, row := range rows {
		out[i] = *gameStatsRowToModel(row)
	}
	return out, nil
}

func gameRowToModel(row gameRow) *models.Game {
	return &models.Game{
		ID:              row.ID,
		HomeTeamID:      row.HomeTeamID,
		AwayTeamID:      row.AwayTeamID,
		SeasonID:        row.SeasonID,
		GameDate:        row.GameDate,
		GameType:        models.GameType(row.GameType),
		HomeScore:       row.HomeScore,
		AwayScore:       row.AwayScore,
		Status:          models.GameStatus(row.Status),
		PeriodsPlayed:   row.PeriodsPlayed,
		OvertimePeriods: row.OvertimePeriods,
		Shootout:        row.Shootout,
		Attendance:      sqlutil.FromSqlInt32(row.Attendance),
		Venue:           sqlutil.FromSqlStringPtr(row.Venue),
		NHLGameID:       sqlutil.FromSqlStringPtr(row.NHLGameID),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func eventRowToModel(row eventRow) *models.GameEvent {
	ev := &models.GameEvent{
		ID:                row.ID,
		GameID:            row.GameID,
		EventType:         models.GameEventType(row.EventType),
		Period:            row.Period,
		TimeInPeriod:      row.TimeInPeriod,
		GameTimeSeconds:   row.GameTimeSeconds,
		PrimaryPlayerID:   row.PrimaryPlayerID,
		SecondaryPlayerID: sqlutil.FromNullUUID(row.SecondaryPlayerID),
		TeamID:            row.TeamID,
		CreatedAt:         row.CreatedAt,
	}
	if row.Details.Valid {
		ev.Details = row.Details.RawMessage
	}
	return ev
}

func goalRowToModel(row goalRow) *models.Goal {
	return &models.Goal{
		ID:               row.ID,
		GameID:           row.GameID,
		ScorerID:         row.ScorerID,
		Assist1ID:        sqlutil.FromNullUUID(row.Assist1ID),
		Assist2ID:        sqlutil.FromNullUUID(row.Assist2ID),
		TeamID:           row.TeamID,
		Period:           row.Period,
		TimeInPeriod:     row.TimeInPeriod,
		GameTimeSeconds:  row.GameTimeSeconds,
		GoalType:         models.GoalType(row.GoalType),
		HomePlayersOnIce: row.HomePlayersOnIce,
		AwayPlayersOnIce: row.AwayPlayersOnIce,
	}
}

func gameStatsRowToModel(row gameStatsRow) *models.PlayerGameStats {
	return &models.PlayerGameStats{
		ID:               row.ID,
		PlayerID:         row.PlayerID,
		GameID:           row.GameID,
		TeamID:           row.TeamID,
		Played:           row.Played,
		Starter:          row.Starter,
		Goals:            row.Goals,
		Assists:          row.Assists,
		Points:           row.Points,
		PlusMinus:        row.PlusMinus,
		PenaltyMinutes:   row.PenaltyMinutes,
		ShotsOnGoal:      row.ShotsOnGoal,
		ShotsMissed:      row.ShotsMissed,
		ShotsBlocked:     row.ShotsBlocked,
		TimeOnIceSeconds: row.TimeOnIceSeconds,
		Hits:             row.Hits,
		BlockedShots:     row.BlockedShots,
		FaceoffWins:      row.FaceoffWins,
		FaceoffAttempts:  row.FaceoffAttempts,
		Saves:            row.Saves,
		GoalsAgainst:     row.GoalsAgainst,
		ShotsAgainst:     row.ShotsAgainst,
	}
}

func statusToSql(s *models.GameStatus) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*s), Valid: true}
}

// prefixColumns qualifies each column in a comma-separated list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
