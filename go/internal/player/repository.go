package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rinkside/fantasyhockey/go/internal/models"
	"github.com/rinkside/fantasyhockey/go/internal/sqlutil"
)

var (
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned on unique constraint violations
	ErrAlreadyExists = errors.New("already exists")
)

// Repository implements player data access operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new player repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type positionRow struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Abbreviation string    `db:"abbreviation"`
	Category     string    `db:"category"`
}

type playerRow struct {
	ID           uuid.UUID      `db:"id"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	JerseyNumber sql.NullInt32  `db:"jersey_number"`
	HeightInches sql.NullInt32  `db:"height_inches"`
	WeightLbs    sql.NullInt32  `db:"weight_lbs"`
	BirthDate    sql.NullTime   `db:"birth_date"`
	BirthCity    sql.NullString `db:"birth_city"`
	BirthCountry sql.NullString `db:"birth_country"`
	Nationality  sql.NullString `db:"nationality"`
	PositionID   uuid.UUID      `db:"position_id"`
	Shoots       sql.NullString `db:"shoots"`
	Catches      sql.NullString `db:"catches"`
	DraftYear    sql.NullInt32  `db:"draft_year"`
	DraftRound   sql.NullInt32  `db:"draft_round"`
	DraftPick    sql.NullInt32  `db:"draft_pick"`
	DraftTeamID  uuid.NullUUID  `db:"draft_team_id"`
	IsActive     bool           `db:"is_active"`
	IsRookie     bool           `db:"is_rookie"`
	NHLID        sql.NullString `db:"nhl_id"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type historyRow struct {
	ID           uuid.UUID     `db:"id"`
	PlayerID     uuid.UUID     `db:"player_id"`
	TeamID       uuid.UUID     `db:"team_id"`
	SeasonID     uuid.UUID     `db:"season_id"`
	StartDate    time.Time     `db:"start_date"`
	EndDate      sql.NullTime  `db:"end_date"`
	JerseyNumber sql.NullInt32 `db:"jersey_number"`
	IsCurrent    bool          `db:"is_current"`
}

type seasonStatsRow struct {
	ID                      uuid.UUID `db:"id"`
	PlayerID                uuid.UUID `db:"player_id"`
	TeamID                  uuid.UUID `db:"team_id"`
	SeasonID                uuid.UUID `db:"season_id"`
	GamesPlayed             int       `db:"games_played"`
	Goals                   int       `db:"goals"`
	Assists                 int       `db:"assists"`
	Points                  int       `db:"points"`
	PlusMinus               int       `db:"plus_minus"`
	PenaltyMinutes          int       `db:"penalty_minutes"`
	PowerPlayGoals          int       `db:"power_play_goals"`
	PowerPlayAssists        int       `db:"power_play_assists"`
	PowerPlayPoints         int       `db:"power_play_points"`
	ShortHandedGoals        int       `db:"short_handed_goals"`
	ShortHandedAssists      int       `db:"short_handed_assists"`
	ShortHandedPoints       int       `db:"short_handed_points"`
	ShotsOnGoal             int       `db:"shots_on_goal"`
	ShootingPercentage      float64   `db:"shooting_percentage"`
	TimeOnIceSeconds        int       `db:"time_on_ice_seconds"`
	AverageTimeOnIceSeconds int       `db:"average_time_on_ice_seconds"`
	Wins                    int       `db:"wins"`
	Losses                  int       `db:"losses"`
	OvertimeLosses          int       `db:"overtime_losses"`
	Shutouts                int       `db:"shutouts"`
	GoalsAgainst            int       `db:"goals_against"`
	ShotsAgainst            int       `db:"shots_against"`
	Saves                   int       `db:"saves"`
	GoalsAgainstAverage     float64   `db:"goals_against_average"`
	SavePercentage          float64   `db:"save_percentage"`
	CreatedAt               time.Time `db:"created_at"`
	UpdatedAt               time.Time `db:"updated_at"`
}

const playerColumns = `id, first_name, last_name, jersey_number, height_inches, weight_lbs,
	birth_date, birth_city, birth_country, nationality, position_id, shoots, catches,
	draft_year, draft_round, draft_pick, draft_team_id, is_active, is_rookie, nhl_id,
	created_at, updated_at`

const seasonStatsColumns = `id, player_id, team_id, season_id, games_played, goals, assists,
	points, plus_minus, penalty_minutes, power_play_goals, power_play_assists,
	power_play_points, short_handed_goals, short_handed_assists, short_handed_points,
	shots_on_goal, shooting_percentage, time_on_ice_seconds, average_time_on_ice_seconds,
	wins, losses, overtime_losses, shutouts, goals_against, shots_against, saves,
	goals_against_average, save_percentage, created_at, updated_at`

// CreatePosition creates a new position
func (r *Repository) CreatePosition(ctx context.Context, req CreatePositionRequest) (*models.Position, error) {
	var row positionRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO positions (name, abbreviation, category)
		VALUES ($1, $2, $3)
		RETURNING id, name, abbreviation, category`,
		req.Name, req.Abbreviation, req.Category)
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("position %q: %w", req.Name, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	return positionRowToModel(row), nil
}

// GetPosition retrieves a position by ID
func (r *Repository) GetPosition(ctx context.Context, id uuid.UUID) (*models.Position, error) {
	var row positionRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, name, abbreviation, category FROM positions WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("position %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	return positionRowToModel(row), nil
}

// ListPositions retrieves all positions ordered by abbreviation
func (r *Repository) ListPositions(ctx context.Context) ([]models.Position, error) {
	var rows []positionRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, name, abbreviation, category FROM positions ORDER BY abbreviation`)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	out := make([]models.Position, len(rows))
	for i, row := range rows {
		out[i] = *positionRowToModel(row)
	}
	return out, nil
}

// CreatePlayer creates a new player
func (r *Repository) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	var row playerRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO players (first_name, last_name, jersey_number, height_inches, weight_lbs,
			birth_date, birth_city, birth_country, nationality, position_id, shoots, catches,
			draft_year, draft_round, draft_pick, draft_team_id, is_rookie, nhl_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING `+playerColumns,
		req.FirstName, req.LastName,
		sqlutil.ToSqlInt32(req.JerseyNumber), sqlutil.ToSqlInt32(req.HeightInches), sqlutil.ToSqlInt32(req.WeightLbs),
		sqlutil.ToSqlTime(req.BirthDate), sqlutil.ToSqlString(req.BirthCity), sqlutil.ToSqlString(req.BirthCountry),
		sqlutil.ToSqlString(req.Nationality), req.PositionID,
		handednessToSql(req.Shoots), handednessToSql(req.Catches),
		sqlutil.ToSqlInt32(req.DraftYear), sqlutil.ToSqlInt32(req.DraftRound), sqlutil.ToSqlInt32(req.DraftPick),
		sqlutil.ToNullUUID(req.DraftTeamID), req.IsRookie, sqlutil.ToSqlString(req.NHLID))
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("player: %w", ErrAlreadyExists)
		}
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("player position or draft team: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return playerRowToModel(row), nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	var row playerRow
	err := r.db.GetContext(ctx, &row, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return playerRowToModel(row), nil
}

// GetPlayerByNHLID retrieves a player by external NHL identifier
func (r *Repository) GetPlayerByNHLID(ctx context.Context, nhlID string) (*models.Player, error) {
	var row playerRow
	err := r.db.GetContext(ctx, &row, `SELECT `+playerColumns+` FROM players WHERE nhl_id = $1`, nhlID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player nhl_id=%s: %w", nhlID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get player by nhl id: %w", err)
	}
	return playerRowToModel(row), nil
}

// ListPlayers retrieves players matching the filter, ordered by name
func (r *Repository) ListPlayers(ctx context.Context, filter ListPlayersFilter) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players`
	var conds []string
	var args []interface{}

	if filter.TeamID != nil {
		query = `SELECT ` + prefixColumns("p", playerColumns) + `
			FROM players p
			JOIN player_team_history h ON h.player_id = p.id AND h.is_current`
		conds = append(conds, fmt.Sprintf("h.team_id = $%d", len(args)+1))
		args = append(args, *filter.TeamID)
	}
	if filter.PositionID != nil {
		conds = append(conds, fmt.Sprintf("position_id = $%d", len(args)+1))
		args = append(args, *filter.PositionID)
	}
	if filter.ActiveOnly {
		conds = append(conds, "is_active")
	}
	if filter.Search != "" {
		conds = append(conds, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY last_name, first_name"

	var rows []playerRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	out := make([]models.Player, len(rows))
	for i, row := range rows {
		out[i] = *playerRowToModel(row)
	}
	return out, nil
}

// UpdatePlayer updates an existing player
func (r *Repository) UpdatePlayer(ctx context.Context, id uuid.UUID, req UpdatePlayerRequest) (*models.Player, error) {
	var row playerRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE players SET
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			position_id = COALESCE($4, position_id),
			jersey_number = COALESCE($5, jersey_number),
			height_inches = COALESCE($6, height_inches),
			weight_lbs = COALESCE($7, weight_lbs),
			shoots = COALESCE($8, shoots),
			catches = COALESCE($9, catches),
			is_active = COALESCE($10, is_active),
			is_rookie = COALESCE($11, is_rookie),
			updated_at = now()
		WHERE id = $1
		RETURNING `+playerColumns,
		id, req.FirstName, req.LastName, sqlutil.ToNullUUID(req.PositionID),
		sqlutil.ToSqlInt32(req.JerseyNumber), sqlutil.ToSqlInt32(req.HeightInches),
		sqlutil.ToSqlInt32(req.WeightLbs), handednessToSql(req.Shoots), handednessToSql(req.Catches),
		req.IsActive, req.IsRookie)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return playerRowToModel(row), nil
}

// DeletePlayer deletes a player by ID
func (r *Repository) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("player %s: %w", id, ErrNotFound)
	}
	return nil
}

// AssignTeam opens a new current stint for the player, closing any open one.
// Both writes happen in a single transaction.
func (r *Repository) AssignTeam(ctx context.Context, playerID uuid.UUID, req AssignTeamRequest) (*models.PlayerTeamHistory, error) {
	var row historyRow
	err := sqlutil.Run(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `
			UPDATE player_team_history
			SET is_current = FALSE, end_date = $2
			WHERE player_id = $1 AND is_current`,
			playerID, req.StartDate)
		if err != nil {
			return fmt.Errorf("failed to close open stint: %w", err)
		}
		err = tx.GetContext(ctx, &row, `
			INSERT INTO player_team_history (player_id, team_id, season_id, start_date, jersey_number, is_current)
			VALUES ($1, $2, $3, $4, $5, TRUE)
			RETURNING id, player_id, team_id, season_id, start_date, end_date, jersey_number, is_current`,
			playerID, req.TeamID, req.SeasonID, req.StartDate, sqlutil.ToSqlInt32(req.JerseyNumber))
		if err != nil {
			if sqlutil.IsUniqueViolation(err) {
				return fmt.Errorf("stint for player %s on team %s: %w", playerID, req.TeamID, ErrAlreadyExists)
			}
			if sqlutil.IsForeignKeyViolation(err) {
				return fmt.Errorf("player, team or season: %w", ErrNotFound)
			}
			return fmt.Errorf("failed to open stint: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return historyRowToModel(row), nil
}

// GetCurrentTeam returns the player's open stint, if any
func (r *Repository) GetCurrentTeam(ctx context.Context, playerID uuid.UUID) (*models.PlayerTeamHistory, error) {
	var row historyRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, player_id, team_id, season_id, start_date, end_date, jersey_number, is_current
		FROM player_team_history
		WHERE player_id = $1 AND is_current`, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("current team for player %s: %w", playerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get current team: %w", err)
	}
	return historyRowToModel(row), nil
}

// ListTeamHistory returns all of a player's stints, newest first
func (r *Repository) ListTeamHistory(ctx context.Context, playerID uuid.UUID) ([]models.PlayerTeamHistory, error) {
	var rows []historyRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, player_id, team_id, season_id, start_date, end_date, jersey_number, is_current
		FROM player_team_history
		WHERE player_id = $1
		ORDER BY start_date DESC`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team history: %w", err)
	}
	out := make([]models.PlayerTeamHistory, len(rows))
	for i, row := range rows {
		out[i] = *historyRowToModel(row)
	}
	return out, nil
}

// UpsertSeasonStats writes a season stat line, replacing any existing one for
// the same player, team and season. All derived values are passed in computed.
func (r *Repository) UpsertSeasonStats(ctx context.Context, stats models.PlayerSeasonStats) (*models.PlayerSeasonStats, error) {
	var row seasonStatsRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO player_season_stats (player_id, team_id, season_id, games_played, goals,
			assists, points, plus_minus, penalty_minutes, power_play_goals, power_play_assists,
			power_play_points, short_handed_goals, short_handed_assists, short_handed_points,
			shots_on_goal, shooting_percentage, time_on_ice_seconds, average_time_on_ice_seconds,
			wins, losses, overtime_losses, shutouts, goals_against, shots_against, saves,
			goals_against_average, save_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		ON CONFLICT (player_id, team_id, season_id) DO UPDATE SET
			games_played = EXCLUDED.games_played,
			goals = EXCLUDED.goals,
			assists = EXCLUDED.assists,
			points = EXCLUDED.points,
			plus_minus = EXCLUDED.plus_minus,
			penalty_minutes = EXCLUDED.penalty_minutes,
			power_play_goals = EXCLUDED.power_play_goals,
			power_play_assists = EXCLUDED.power_play_assists,
			power_play_points = EXCLUDED.power_play_points,
			short_handed_goals = EXCLUDED.short_handed_goals,
			short_handed_assists = EXCLUDED.short_handed_assists,
			short_handed_points = EXCLUDED.short_handed_points,
			shots_on_goal = EXCLUDED.shots_on_goal,
			shooting_percentage = EXCLUDED.shooting_percentage,
			time_on_ice_seconds = EXCLUDED.time_on_ice_seconds,
			average_time_on_ice_seconds = EXCLUDED.average_time_on_ice_seconds,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			overtime_losses = EXCLUDED.overtime_losses,
			shutouts = EXCLUDED.shutouts,
			goals_against = EXCLUDED.goals_against,
			shots_against = EXCLUDED.shots_against,
			saves = EXCLUDED.saves,
			goals_against_average = EXCLUDED.goals_against_average,
			save_percentage = EXCLUDED.save_percentage,
			updated_at = now()
		RETURNING `+seasonStatsColumns,
		stats.PlayerID, stats.TeamID, stats.SeasonID, stats.GamesPlayed, stats.Goals,
		stats.Assists, stats.Points, stats.PlusMinus, stats.PenaltyMinutes,
		stats.PowerPlayGoals, stats.PowerPlayAssists, stats.PowerPlayPoints,
		stats.ShortHandedGoals, stats.ShortHandedAssists, stats.ShortHandedPoints,
		stats.ShotsOnGoal, stats.ShootingPercentage, stats.TimeOnIceSeconds,
		stats.AverageTimeOnIceSeconds, stats.Wins, stats.Losses, stats.OvertimeLosses,
		stats.Shutouts, stats.GoalsAgainst, stats.ShotsAgainst, stats.Saves,
		stats.GoalsAgainstAverage, stats.SavePercentage)
	if err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("player, team or season: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to upsert season stats: %w", err)
	}
	return seasonStatsRowToModel(row), nil
}

// GetSeasonStats returns a player's stat line for a season with a team
func (r *Repository) GetSeasonStats(ctx context.Context, playerID, teamID, seasonID uuid.UUID) (*models.PlayerSeasonStats, error) {
	var row seasonStatsRow
	err := r.db.GetContext(ctx, &row, `
		SELECT `+seasonStatsColumns+` FROM player_season_stats
		WHERE player_id = $1 AND team_id = $2 AND season_id = $3`,
		playerID, teamID, seasonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("season stats for player %s: %w", playerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get season stats: %w", err)
	}
	return seasonStatsRowToModel(row), nil
}

// ListSeasonStatsByPlayer returns all of a player's season stat lines, newest first
func (r *Repository) ListSeasonStatsByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.PlayerSeasonStats, error) {
	var rows []seasonStatsRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+seasonStatsColumns+` FROM player_season_stats
		WHERE player_id = $1
		ORDER BY created_at DESC`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list season stats: %w", err)
	}
	out := make([]models.PlayerSeasonStats, len(rows))
	for i, row := range rows {
		out[i] = *seasonStatsRowToModel(row)
	}
	return out, nil
}

// ListSeasonStatsBySeason returns all stat lines for a season, top scorers first
func (r *Repository) ListSeasonStatsBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.PlayerSeasonStats, error) {
	var rows []seasonStatsRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+seasonStatsColumns+` FROM player_season_stats
		WHERE season_id = $1
		ORDER BY points DESC, goals DESC`, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list season stats: %w", err)
	}
	out := make([]models.PlayerSeasonStats, len(rows))
	for i, row := range rows {
		out[i] = *seasonStatsRowToModel(row)
	}
	return out, nil
}

func positionRowToModel(row positionRow) *models.Position {
	return &models.Position{
		ID:           row.ID,
		Name:         row.Name,
		Abbreviation: row.Abbreviation,
		Category:     models.PositionCategory(row.Category),
	}
}

func playerRowToModel(row playerRow) *models.Player {
	return &models.Player{
		ID:           row.ID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		JerseyNumber: sqlutil.FromSqlInt32(row.JerseyNumber),
		HeightInches: sqlutil.FromSqlInt32(row.HeightInches),
		WeightLbs:    sqlutil.FromSqlInt32(row.WeightLbs),
		BirthDate:    sqlutil.FromSqlTime(row.BirthDate),
		BirthCity:    sqlutil.FromSqlStringPtr(row.BirthCity),
		BirthCountry: sqlutil.FromSqlStringPtr(row.BirthCountry),
		Nationality:  sqlutil.FromSqlStringPtr(row.Nationality),
		PositionID:   row.PositionID,
		Shoots:       handednessFromSql(row.Shoots),
		Catches:      handednessFromSql(row.Catches),
		DraftYear:    sqlutil.FromSqlInt32(row.DraftYear),
		DraftRound:   sqlutil.FromSqlInt32(row.DraftRound),
		DraftPick:    sqlutil.FromSqlInt32(row.DraftPick),
		DraftTeamID:  sqlutil.FromNullUUID(row.DraftTeamID),
		IsActive:     row.IsActive,
		IsRookie:     row.IsRookie,
		NHLID:        sqlutil.FromSqlStringPtr(row.NHLID),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func historyRowToModel(row historyRow) *models.PlayerTeamHistory {
	return &models.PlayerTeamHistory{
		ID:           row.ID,
		PlayerID:     row.PlayerID,
		TeamID:       row.TeamID,
		SeasonID:     row.SeasonID,
		StartDate:    row.StartDate,
		EndDate:      sqlutil.FromSqlTime(row.EndDate),
		JerseyNumber: sqlutil.FromSqlInt32(row.JerseyNumber),
		IsCurrent:    row.IsCurrent,
	}
}

func seasonStatsRowToModel(row seasonStatsRow) *models.PlayerSeasonStats {
	return &models.PlayerSeasonStats{
		ID:                      row.ID,
		PlayerID:                row.PlayerID,
		TeamID:                  row.TeamID,
		SeasonID:                row.SeasonID,
		GamesPlayed:             row.GamesPlayed,
		Goals:                   row.Goals,
		Assists:                 row.Assists,
		Points:                  row.Points,
		PlusMinus:               row.PlusMinus,
		PenaltyMinutes:          row.PenaltyMinutes,
		PowerPlayGoals:          row.PowerPlayGoals,
		PowerPlayAssists:        row.PowerPlayAssists,
		PowerPlayPoints:         row.PowerPlayPoints,
		ShortHandedGoals:        row.ShortHandedGoals,
		ShortHandedAssists:      row.ShortHandedAssists,
		ShortHandedPoints:       row.ShortHandedPoints,
		ShotsOnGoal:             row.ShotsOnGoal,
		ShootingPercentage:      row.ShootingPercentage,
		TimeOnIceSeconds:        row.TimeOnIceSeconds,
		AverageTimeOnIceSeconds: row.AverageTimeOnIceSeconds,
		Wins:                    row.Wins,
		Losses:                  row.Losses,
		OvertimeLosses:          row.OvertimeLosses,
		Shutouts:                row.Shutouts,
		GoalsAgainst:            row.GoalsAgainst,
		ShotsAgainst:            row.ShotsAgainst,
		Saves:                   row.Saves,
		GoalsAgainstAverage:     row.GoalsAgainstAverage,
		SavePercentage:          row.SavePercentage,
		CreatedAt:               row.CreatedAt,
		UpdatedAt:               row.UpdatedAt,
	}
}

func handednessToSql(h *models.Handedness) sql.NullString {
	if h == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*h), Valid: true}
}

func handednessFromSql(v sql.NullString) *models.Handedness {
	if !v.Valid {
		return nil
	}
	h := models.Handedness(v.String)
	return &h
}

// prefixColumns qualifies each column in a comma-separated list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
