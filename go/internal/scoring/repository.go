package scoring

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
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyComplete is returned when finalizing a settled matchup
	ErrAlreadyComplete = errors.New("matchup is already complete")
)

// Repository implements fantasy scoring data access operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new scoring repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type fantasyStatsRow struct {
	ID                 uuid.UUID `db:"id"`
	PlayerID           uuid.UUID `db:"player_id"`
	WeekID             uuid.UUID `db:"week_id"`
	FantasyTeamID      uuid.UUID `db:"fantasy_team_id"`
	GamesPlayed        int       `db:"games_played"`
	Goals              int       `db:"goals"`
	Assists            int       `db:"assists"`
	PlusMinus          int       `db:"plus_minus"`
	PenaltyMinutes     int       `db:"penalty_minutes"`
	PowerPlayGoals     int       `db:"power_play_goals"`
	PowerPlayAssists   int       `db:"power_play_assists"`
	ShortHandedGoals   int       `db:"short_handed_goals"`
	ShortHandedAssists int       `db:"short_handed_assists"`
	ShotsOnGoal        int       `db:"shots_on_goal"`
	Hits               int       `db:"hits"`
	BlockedShots       int       `db:"blocked_shots"`
	Wins               int       `db:"wins"`
	Losses             int       `db:"losses"`
	GoalsAgainst       int       `db:"goals_against"`
	Saves              int       `db:"saves"`
	Shutouts           int       `db:"shutouts"`
	TotalFantasyPoints float64   `db:"total_fantasy_points"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

const fantasyStatsColumns = `id, player_id, week_id, fantasy_team_id, games_played, goals,
	assists, plus_minus, penalty_minutes, power_play_goals, power_play_assists,
	short_handed_goals, short_handed_assists, shots_on_goal, hits, blocked_shots,
	wins, losses, goals_against, saves, shutouts, total_fantasy_points,
	created_at, updated_at`

type aggregateRow struct {
	GamesPlayed        int `db:"games_played"`
	Goals              int `db:"goals"`
	Assists            int `db:"assists"`
	PlusMinus          int `db:"plus_minus"`
	PenaltyMinutes     int `db:"penalty_minutes"`
	ShotsOnGoal        int `db:"shots_on_goal"`
	Hits               int `db:"hits"`
	BlockedShots       int `db:"blocked_shots"`
	GoalsAgainst       int `db:"goals_against"`
	Saves              int `db:"saves"`
	Shutouts           int `db:"shutouts"`
	Wins               int `db:"wins"`
	Losses             int `db:"losses"`
	PowerPlayGoals     int `db:"power_play_goals"`
	PowerPlayAssists   int `db:"power_play_assists"`
	ShortHandedGoals   int `db:"short_handed_goals"`
	ShortHandedAssists int `db:"short_handed_assists"`
}

// AggregateWeek folds a player's finished games in the half-open interval
// [from, to) into one weekly stat line. Special-teams splits come from the
// goals table, restricted to the same qualifying games as the base counters;
// goalie decisions come from the final scores, credited in any game the
// goalie faced a shot in.
func (r *Repository) AggregateWeek(ctx context.Context, playerID uuid.UUID, from, to time.Time) (models.StatLine, error) {
	var agg aggregateRow
	err := r.db.GetContext(ctx, &agg, `
		WITH week_games AS (
			SELECT s.*, g.home_team_id, g.away_team_id, g.home_score, g.away_score
			FROM player_game_stats s
			JOIN games g ON g.id = s.game_id
			WHERE s.player_id = $1
			  AND s.played
			  AND g.game_date >= $2 AND g.game_date < $3
			  AND g.status IN ('final', 'overtime', 'shootout')
		)
		SELECT
			COUNT(*)                      AS games_played,
			COALESCE(SUM(goals), 0)       AS goals,
			COALESCE(SUM(assists), 0)     AS assists,
			COALESCE(SUM(plus_minus), 0)  AS plus_minus,
			COALESCE(SUM(penalty_minutes), 0) AS penalty_minutes,
			COALESCE(SUM(shots_on_goal), 0)   AS shots_on_goal,
			COALESCE(SUM(hits), 0)            AS hits,
			COALESCE(SUM(blocked_shots), 0)   AS blocked_shots,
			COALESCE(SUM(goals_against), 0)   AS goals_against,
			COALESCE(SUM(saves), 0)           AS saves,
			COUNT(*) FILTER (WHERE shots_against > 0 AND goals_against = 0) AS shutouts,
			COUNT(*) FILTER (WHERE shots_against > 0 AND
				((team_id = home_team_id AND home_score > away_score) OR
				 (team_id = away_team_id AND away_score > home_score))) AS wins,
			COUNT(*) FILTER (WHERE shots_against > 0 AND
				((team_id = home_team_id AND home_score < away_score) OR
				 (team_id = away_team_id AND away_score < home_score))) AS losses,
			(SELECT COUNT(*) FROM goals gl
				WHERE gl.scorer_id = $1 AND gl.goal_type = 'power_play'
				  AND gl.game_id IN (SELECT game_id FROM week_games)) AS power_play_goals,
			(SELECT COUNT(*) FROM goals gl
				WHERE (gl.assist1_id = $1 OR gl.assist2_id = $1) AND gl.goal_type = 'power_play'
				  AND gl.game_id IN (SELECT game_id FROM week_games)) AS power_play_assists,
			(SELECT COUNT(*) FROM goals gl
				WHERE gl.scorer_id = $1 AND gl.goal_type = 'short_handed'
				  AND gl.game_id IN (SELECT game_id FROM week_games)) AS short_handed_goals,
			(SELECT COUNT(*) FROM goals gl
				WHERE (gl.assist1_id = $1 OR gl.assist2_id = $1) AND gl.goal_type = 'short_handed'
				  AND gl.game_id IN (SELECT game_id FROM week_games)) AS short_handed_assists
		FROM week_games`, playerID, from, to)
	if err != nil {
		return models.StatLine{}, fmt.Errorf("failed to aggregate week for player %s: %w", playerID, err)
	}
	return models.StatLine{
		GamesPlayed:        agg.GamesPlayed,
		Goals:              agg.Goals,
		Assists:            agg.Assists,
		PlusMinus:          agg.PlusMinus,
		PenaltyMinutes:     agg.PenaltyMinutes,
		PowerPlayGoals:     agg.PowerPlayGoals,
		PowerPlayAssists:   agg.PowerPlayAssists,
		ShortHandedGoals:   agg.ShortHandedGoals,
		ShortHandedAssists: agg.ShortHandedAssists,
		ShotsOnGoal:        agg.ShotsOnGoal,
		Hits:               agg.Hits,
		BlockedShots:       agg.BlockedShots,
		Wins:               agg.Wins,
		Losses:             agg.Losses,
		GoalsAgainst:       agg.GoalsAgainst,
		Saves:              agg.Saves,
		Shutouts:           agg.Shutouts,
	}, nil
}

// UpsertPlayerFantasyStats writes a player's weekly fantasy line, replacing
// any previous computation for the same player, week and team.
func (r *Repository) UpsertPlayerFantasyStats(ctx context.Context, stats models.PlayerFantasyStats) (*models.PlayerFantasyStats, error) {
	var row fantasyStatsRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO player_fantasy_stats (player_id, week_id, fantasy_team_id, games_played,
			goals, assists, plus_minus, penalty_minutes, power_play_goals, power_play_assists,
			short_handed_goals, short_handed_assists, shots_on_goal, hits, blocked_shots,
			wins, losses, goals_against, saves, shutouts, total_fantasy_points)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21)
		ON CONFLICT (player_id, week_id, fantasy_team_id) DO UPDATE SET
			games_played = EXCLUDED.games_played,
			goals = EXCLUDED.goals,
			assists = EXCLUDED.assists,
			plus_minus = EXCLUDED.plus_minus,
			penalty_minutes = EXCLUDED.penalty_minutes,
			power_play_goals = EXCLUDED.power_play_goals,
			power_play_assists = EXCLUDED.power_play_assists,
			short_handed_goals = EXCLUDED.short_handed_goals,
			short_handed_assists = EXCLUDED.short_handed_assists,
			shots_on_goal = EXCLUDED.shots_on_goal,
			hits = EXCLUDED.hits,
			blocked_shots = EXCLUDED.blocked_shots,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			goals_against = EXCLUDED.goals_against,
			saves = EXCLUDED.saves,
			shutouts = EXCLUDED.shutouts,
			total_fantasy_points = EXCLUDED.total_fantasy_points,
			updated_at = now()
		RETURNING `+fantasyStatsColumns,
		stats.PlayerID, stats.WeekID, stats.FantasyTeamID, stats.GamesPlayed,
		stats.Goals, stats.Assists, stats.PlusMinus, stats.PenaltyMinutes,
		stats.PowerPlayGoals, stats.PowerPlayAssists, stats.ShortHandedGoals,
		stats.ShortHandedAssists, stats.ShotsOnGoal, stats.Hits, stats.BlockedShots,
		stats.Wins, stats.Losses, stats.GoalsAgainst, stats.Saves, stats.Shutouts,
		stats.TotalFantasyPoints)
	if err != nil {
		if sqlutil.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("player, week or team: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to upsert fantasy stats: %w", err)
	}
	return fantasyStatsRowToModel(row), nil
}

// ListFantasyStatsByTeamWeek returns a team's weekly player lines, best first
func (r *Repository) ListFantasyStatsByTeamWeek(ctx context.Context, teamID, weekID uuid.UUID) ([]models.PlayerFantasyStats, error) {
	var rows []fantasyStatsRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+fantasyStatsColumns+` FROM player_fantasy_stats
		WHERE fantasy_team_id = $1 AND week_id = $2
		ORDER BY total_fantasy_points DESC`, teamID, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fantasy stats: %w", err)
	}
	out := make([]models.PlayerFantasyStats, len(rows))
	for i, row := range rows {
		out[i] = *fantasyStatsRowToModel(row)
	}
	return out, nil
}

// FinalizeMatchup marks the matchup complete, bumps both team records and
// stages the finalized event, all in one transaction. A tie bumps ties on
// both sides.
func (r *Repository) FinalizeMatchup(ctx context.Context, leagueID uuid.UUID, m models.Matchup) (*models.Matchup, error) {
	var out models.Matchup
	err := sqlutil.Run(ctx, r.db, func(tx *sqlx.Tx) error {
		var current struct {
			IsComplete bool `db:"is_complete"`
		}
		err := tx.GetContext(ctx, &current, `SELECT is_complete FROM matchups WHERE id = $1 FOR UPDATE`, m.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("matchup %s: %w", m.ID, ErrNotFound)
			}
			return fmt.Errorf("failed to lock matchup: %w", err)
		}
		if current.IsComplete {
			return fmt.Errorf("matchup %s: %w", m.ID, ErrAlreadyComplete)
		}

		var row struct {
			ID         uuid.UUID `db:"id"`
			WeekID     uuid.UUID `db:"week_id"`
			Team1ID    uuid.UUID `db:"team1_id"`
			Team2ID    uuid.UUID `db:"team2_id"`
			Team1Score float64   `db:"team1_score"`
			Team2Score float64   `db:"team2_score"`
			IsComplete bool      `db:"is_complete"`
		}
		err = tx.GetContext(ctx, &row, `
			UPDATE matchups SET team1_score = $2, team2_score = $3, is_complete = TRUE
			WHERE id = $1
			RETURNING id, week_id, team1_id, team2_id, team1_score, team2_score, is_complete`,
			m.ID, m.Team1Score, m.Team2Score)
		if err != nil {
			return fmt.Errorf("failed to complete matchup: %w", err)
		}

		team1 := result{points: m.Team1Score}
		team2 := result{points: m.Team2Score}
		switch {
		case m.Team1Score > m.Team2Score:
			team1.wins, team2.losses = 1, 1
		case m.Team2Score > m.Team1Score:
			team2.wins, team1.losses = 1, 1
		default:
			team1.ties, team2.ties = 1, 1
		}
		if err := bumpTeam(ctx, tx, row.Team1ID, team1); err != nil {
			return err
		}
		if err := bumpTeam(ctx, tx, row.Team2ID, team2); err != nil {
			return err
		}

		out = models.Matchup{
			ID:         row.ID,
			WeekID:     row.WeekID,
			Team1ID:    row.Team1ID,
			Team2ID:    row.Team2ID,
			Team1Score: row.Team1Score,
			Team2Score: row.Team2Score,
			IsComplete: row.IsComplete,
		}
		return outbox.Enqueue(ctx, tx, leagueID, outbox.EventMatchupFinalized, out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// StageWeekScored enqueues the week-scored event for the worker to publish
func (r *Repository) StageWeekScored(ctx context.Context, leagueID uuid.UUID, payload any) error {
	return sqlutil.Run(ctx, r.db, func(tx *sqlx.Tx) error {
		return outbox.Enqueue(ctx, tx, leagueID, outbox.EventWeekScored, payload)
	})
}

type result struct {
	wins, losses, ties int
	points             float64
}

func bumpTeam(ctx context.Context, tx *sqlx.Tx, teamID uuid.UUID, r result) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE fantasy_teams SET
			wins = wins + $2, losses = losses + $3, ties = ties + $4,
			total_points = total_points + $5, updated_at = now()
		WHERE id = $1`,
		teamID, r.wins, r.losses, r.ties, r.points)
	if err != nil {
		return fmt.Errorf("failed to bump team %s record: %w", teamID, err)
	}
	return nil
}

func fantasyStatsRowToModel(row fantasyStatsRow) *models.PlayerFantasyStats {
	return &models.PlayerFantasyStats{
		ID:            row.ID,
		PlayerID:      row.PlayerID,
		WeekID:        row.WeekID,
		FantasyTeamID: row.FantasyTeamID,
		StatLine: models.StatLine{
			GamesPlayed:        row.GamesPlayed,
			Goals:              row.Goals,
			Assists:            row.Assists,
			PlusMinus:          row.PlusMinus,
			PenaltyMinutes:     row.PenaltyMinutes,
			PowerPlayGoals:     row.PowerPlayGoals,
			PowerPlayAssists:   row.PowerPlayAssists,
			ShortHandedGoals:   row.ShortHandedGoals,
			ShortHandedAssists: row.ShortHandedAssists,
			ShotsOnGoal:        row.ShotsOnGoal,
			Hits:               row.Hits,
			BlockedShots:       row.BlockedShots,
			Wins:               row.Wins,
			Losses:             row.Losses,
			GoalsAgainst:       row.GoalsAgainst,
			Saves:              row.Saves,
			Shutouts:           row.Shutouts,
		},
		TotalFantasyPoints: row.TotalFantasyPoints,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}
