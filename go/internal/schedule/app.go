package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// ScheduleRepository defines what the app layer needs from the repository
type ScheduleRepository interface {
	InsertSchedule(ctx context.Context, leagueID uuid.UUID, weeks []models.FantasyWeek, matchups map[int][][2]uuid.UUID) ([]WeekWithMatchups, error)
	CreateWeek(ctx context.Context, leagueID uuid.UUID, req CreateWeekRequest) (*models.FantasyWeek, error)
	GetWeek(ctx context.Context, id uuid.UUID) (*models.FantasyWeek, error)
	GetWeekContaining(ctx context.Context, leagueID uuid.UUID, date time.Time) (*models.FantasyWeek, error)
	ListWeeks(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyWeek, error)
	GetMatchup(ctx context.Context, id uuid.UUID) (*models.Matchup, error)
	ListMatchupsByWeek(ctx context.Context, weekID uuid.UUID) ([]models.Matchup, error)
	UpdateMatchupScores(ctx context.Context, id uuid.UUID, team1Score, team2Score float64, complete bool) (*models.Matchup, error)
}

// StandingsGetter is the slice of the fantasy team app the scheduler needs
type StandingsGetter interface {
	GetStandings(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error)
}

// App handles schedule business logic
type App struct {
	repo  ScheduleRepository
	teams StandingsGetter
	clock clockwork.Clock
}

// NewApp creates a new schedule App
func NewApp(repo ScheduleRepository, teams StandingsGetter, clock clockwork.Clock) *App {
	return &App{repo: repo, teams: teams, clock: clock}
}

// GenerateSchedule builds a full round-robin schedule for the league. Each
// week runs Monday through Sunday from the start date; playoff weeks are
// appended after the regular ones.
func (a *App) GenerateSchedule(ctx context.Context, leagueID uuid.UUID, req GenerateScheduleRequest) ([]WeekWithMatchups, error) {
	if req.Weeks < 1 {
		return nil, fmt.Errorf("validation failed: schedule needs at least one week")
	}
	if req.PlayoffWeeks < 0 || req.PlayoffWeeks >= req.Weeks {
		return nil, fmt.Errorf("validation failed: playoff weeks must be fewer than total weeks")
	}

	teams, err := a.teams.GetStandings(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to load league teams: %w", err)
	}
	if len(teams) < 2 {
		return nil, fmt.Errorf("validation failed: league needs at least two teams to schedule")
	}
	if len(teams)%2 != 0 {
		return nil, fmt.Errorf("validation failed: league needs an even number of teams to schedule")
	}

	ids := make([]uuid.UUID, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}

	weeks := make([]models.FantasyWeek, 0, req.Weeks)
	matchups := make(map[int][][2]uuid.UUID, req.Weeks)
	for w := 1; w <= req.Weeks; w++ {
		start := req.StartDate.AddDate(0, 0, (w-1)*7)
		weeks = append(weeks, models.FantasyWeek{
			WeekNumber: w,
			StartDate:  start,
			EndDate:    start.AddDate(0, 0, 6),
			IsPlayoffs: w > req.Weeks-req.PlayoffWeeks,
		})
		matchups[w] = RoundRobinPairings(ids, w)
	}

	out, err := a.repo.InsertSchedule(ctx, leagueID, weeks, matchups)
	if err != nil {
		return nil, fmt.Errorf("failed to generate schedule: %w", err)
	}

	log.Info().
		Str("league_id", leagueID.String()).
		Int("weeks", req.Weeks).
		Int("teams", len(teams)).
		Msg("generated schedule")
	return out, nil
}

// GetCurrentWeek returns the league's week covering today
func (a *App) GetCurrentWeek(ctx context.Context, leagueID uuid.UUID) (*models.FantasyWeek, error) {
	return a.repo.GetWeekContaining(ctx, leagueID, a.clock.Now())
}

// GetWeek retrieves a week by ID
func (a *App) GetWeek(ctx context.Context, id uuid.UUID) (*models.FantasyWeek, error) {
	return a.repo.GetWeek(ctx, id)
}

// ListWeeks returns the league's weeks in order
func (a *App) ListWeeks(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyWeek, error) {
	return a.repo.ListWeeks(ctx, leagueID)
}

// GetMatchup retrieves a matchup by ID
func (a *App) GetMatchup(ctx context.Context, id uuid.UUID) (*models.Matchup, error) {
	return a.repo.GetMatchup(ctx, id)
}

// ListMatchupsByWeek returns a week's matchups
func (a *App) ListMatchupsByWeek(ctx context.Context, weekID uuid.UUID) ([]models.Matchup, error) {
	return a.repo.ListMatchupsByWeek(ctx, weekID)
}

// RoundRobinPairings pairs teams for the given week using the circle
// method: the first team stays fixed and the rest rotate one position per
// week, so every team meets every other across len(ids)-1 weeks.
func RoundRobinPairings(ids []uuid.UUID, week int) [][2]uuid.UUID {
	n := len(ids)
	if n < 2 {
		return nil
	}

	rotating := make([]uuid.UUID, n-1)
	copy(rotating, ids[1:])
	shift := (week - 1) % (n - 1)

	rotated := make([]uuid.UUID, n-1)
	for i := range rotating {
		rotated[i] = rotating[(i+shift)%(n-1)]
	}

	pairs := make([][2]uuid.UUID, 0, n/2)
	pairs = append(pairs, [2]uuid.UUID{ids[0], rotated[0]})
	for i := 1; i < n/2; i++ {
		pairs = append(pairs, [2]uuid.UUID{rotated[i], rotated[n-1-i]})
	}
	return pairs
}
