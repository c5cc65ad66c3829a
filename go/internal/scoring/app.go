package scoring

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// ScoringRepository defines what the app layer needs from the repository
type ScoringRepository interface {
	AggregateWeek(ctx context.Context, playerID uuid.UUID, from, to time.Time) (models.StatLine, error)
	UpsertPlayerFantasyStats(ctx context.Context, stats models.PlayerFantasyStats) (*models.PlayerFantasyStats, error)
	ListFantasyStatsByTeamWeek(ctx context.Context, teamID, weekID uuid.UUID) ([]models.PlayerFantasyStats, error)
	FinalizeMatchup(ctx context.Context, leagueID uuid.UUID, m models.Matchup) (*models.Matchup, error)
	StageWeekScored(ctx context.Context, leagueID uuid.UUID, payload any) error
}

// ScheduleStore is the slice of the schedule repository the scorer needs
type ScheduleStore interface {
	GetWeek(ctx context.Context, id uuid.UUID) (*models.FantasyWeek, error)
	GetMatchup(ctx context.Context, id uuid.UUID) (*models.Matchup, error)
	ListMatchupsByWeek(ctx context.Context, weekID uuid.UUID) ([]models.Matchup, error)
	UpdateMatchupScores(ctx context.Context, id uuid.UUID, team1Score, team2Score float64, complete bool) (*models.Matchup, error)
}

// LeagueGetter is the slice of the league app the scorer needs
type LeagueGetter interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
}

// RosterLister is the slice of the roster app the scorer needs
type RosterLister interface {
	ListRoster(ctx context.Context, teamID uuid.UUID) ([]models.RosterSlot, error)
}

// App handles weekly fantasy scoring
type App struct {
	repo     ScoringRepository
	schedule ScheduleStore
	leagues  LeagueGetter
	rosters  RosterLister
}

// NewApp creates a new scoring App
func NewApp(repo ScoringRepository, schedule ScheduleStore, leagues LeagueGetter, rosters RosterLister) *App {
	return &App{repo: repo, schedule: schedule, leagues: leagues, rosters: rosters}
}

// ScoreWeek recomputes every matchup score for the week from finished NHL
// games. Matchups stay open, so it can run repeatedly while the week is in
// progress.
func (a *App) ScoreWeek(ctx context.Context, weekID uuid.UUID) ([]models.Matchup, error) {
	week, league, matchups, err := a.loadWeek(ctx, weekID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Matchup, 0, len(matchups))
	for _, m := range matchups {
		if m.IsComplete {
			out = append(out, m)
			continue
		}
		s1, err := a.scoreTeamWeek(ctx, week, m.Team1ID, league.ScoringSettings)
		if err != nil {
			return nil, err
		}
		s2, err := a.scoreTeamWeek(ctx, week, m.Team2ID, league.ScoringSettings)
		if err != nil {
			return nil, err
		}
		updated, err := a.schedule.UpdateMatchupScores(ctx, m.ID, s1, s2, false)
		if err != nil {
			return nil, err
		}
		out = append(out, *updated)
	}

	log.Info().
		Str("week_id", weekID.String()).
		Str("league_id", week.LeagueID.String()).
		Int("matchups", len(out)).
		Msg("scored week")
	return out, nil
}

// FinalizeWeek settles every open matchup in the week: recomputes both
// scores, locks the matchup and applies win/loss/tie records. Ties stand as
// ties. Stages a week-scored event once all matchups are settled.
func (a *App) FinalizeWeek(ctx context.Context, weekID uuid.UUID) ([]models.Matchup, error) {
	week, league, matchups, err := a.loadWeek(ctx, weekID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Matchup, 0, len(matchups))
	for _, m := range matchups {
		if m.IsComplete {
			out = append(out, m)
			continue
		}
		settled, err := a.finalizeOne(ctx, week, league, m)
		if err != nil {
			return nil, err
		}
		out = append(out, *settled)
	}

	if err := a.repo.StageWeekScored(ctx, week.LeagueID, map[string]any{
		"week":     week,
		"matchups": out,
	}); err != nil {
		return nil, err
	}

	log.Info().
		Str("week_id", weekID.String()).
		Str("league_id", week.LeagueID.String()).
		Int("matchups", len(out)).
		Msg("finalized week")
	return out, nil
}

// FinalizeMatchup settles a single matchup with freshly computed scores
func (a *App) FinalizeMatchup(ctx context.Context, matchupID uuid.UUID) (*models.Matchup, error) {
	m, err := a.schedule.GetMatchup(ctx, matchupID)
	if err != nil {
		return nil, err
	}
	if m.IsComplete {
		return nil, fmt.Errorf("matchup %s: %w", matchupID, ErrAlreadyComplete)
	}
	week, err := a.schedule.GetWeek(ctx, m.WeekID)
	if err != nil {
		return nil, err
	}
	league, err := a.leagues.GetLeague(ctx, week.LeagueID)
	if err != nil {
		return nil, err
	}
	return a.finalizeOne(ctx, week, league, *m)
}

// ListFantasyStats returns a team's computed player lines for the week
func (a *App) ListFantasyStats(ctx context.Context, teamID, weekID uuid.UUID) ([]models.PlayerFantasyStats, error) {
	return a.repo.ListFantasyStatsByTeamWeek(ctx, teamID, weekID)
}

func (a *App) loadWeek(ctx context.Context, weekID uuid.UUID) (*models.FantasyWeek, *models.League, []models.Matchup, error) {
	week, err := a.schedule.GetWeek(ctx, weekID)
	if err != nil {
		return nil, nil, nil, err
	}
	league, err := a.leagues.GetLeague(ctx, week.LeagueID)
	if err != nil {
		return nil, nil, nil, err
	}
	matchups, err := a.schedule.ListMatchupsByWeek(ctx, weekID)
	if err != nil {
		return nil, nil, nil, err
	}
	return week, league, matchups, nil
}

func (a *App) finalizeOne(ctx context.Context, week *models.FantasyWeek, league *models.League, m models.Matchup) (*models.Matchup, error) {
	s1, err := a.scoreTeamWeek(ctx, week, m.Team1ID, league.ScoringSettings)
	if err != nil {
		return nil, err
	}
	s2, err := a.scoreTeamWeek(ctx, week, m.Team2ID, league.ScoringSettings)
	if err != nil {
		return nil, err
	}
	m.Team1Score = s1
	m.Team2Score = s2
	return a.repo.FinalizeMatchup(ctx, league.ID, m)
}

// scoreTeamWeek aggregates and stores every rostered player's week, then
// returns the team score as the sum over starting slots only. Bench and IR
// lines are stored but never count. Week dates are inclusive calendar days
// while games carry real start times, so the aggregation window runs from
// the start date to the midnight after the end date.
func (a *App) scoreTeamWeek(ctx context.Context, week *models.FantasyWeek, teamID uuid.UUID, settings models.ScoringSettings) (float64, error) {
	slots, err := a.rosters.ListRoster(ctx, teamID)
	if err != nil {
		return 0, fmt.Errorf("failed to load roster for team %s: %w", teamID, err)
	}

	windowEnd := week.EndDate.AddDate(0, 0, 1)
	var total float64
	for _, slot := range slots {
		line, err := a.repo.AggregateWeek(ctx, slot.PlayerID, week.StartDate, windowEnd)
		if err != nil {
			return 0, err
		}
		points := Points(settings, line)
		if _, err := a.repo.UpsertPlayerFantasyStats(ctx, models.PlayerFantasyStats{
			PlayerID:           slot.PlayerID,
			WeekID:             week.ID,
			FantasyTeamID:      teamID,
			StatLine:           line,
			TotalFantasyPoints: points,
		}); err != nil {
			return 0, err
		}
		if slot.Slot.Starting() {
			total += points
		}
	}
	return math.Round(total*100) / 100, nil
}
