package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

type fakeScheduleRepo struct {
	ScheduleRepository
	insertedWeeks    []models.FantasyWeek
	insertedMatchups map[int][][2]uuid.UUID
	weekByDate       *models.FantasyWeek
	askedDate        time.Time
}

func (f *fakeScheduleRepo) InsertSchedule(ctx context.Context, leagueID uuid.UUID, weeks []models.FantasyWeek, matchups map[int][][2]uuid.UUID) ([]WeekWithMatchups, error) {
	f.insertedWeeks = weeks
	f.insertedMatchups = matchups
	out := make([]WeekWithMatchups, len(weeks))
	for i, w := range weeks {
		out[i] = WeekWithMatchups{FantasyWeek: w}
	}
	return out, nil
}

func (f *fakeScheduleRepo) GetWeekContaining(ctx context.Context, leagueID uuid.UUID, date time.Time) (*models.FantasyWeek, error) {
	f.askedDate = date
	if f.weekByDate == nil {
		return nil, ErrNotFound
	}
	return f.weekByDate, nil
}

type fakeStandings struct {
	teams []models.FantasyTeam
}

func (f *fakeStandings) GetStandings(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error) {
	return f.teams, nil
}

func makeTeams(n int) []models.FantasyTeam {
	teams := make([]models.FantasyTeam, n)
	for i := range teams {
		teams[i] = models.FantasyTeam{ID: uuid.New()}
	}
	return teams
}

func TestRoundRobinPairingsEveryTeamPlaysOnce(t *testing.T) {
	ids := make([]uuid.UUID, 8)
	for i := range ids {
		ids[i] = uuid.New()
	}

	for week := 1; week <= 7; week++ {
		pairs := RoundRobinPairings(ids, week)
		if len(pairs) != 4 {
			t.Fatalf("week %d: expected 4 pairings, got %d", week, len(pairs))
		}
		seen := make(map[uuid.UUID]bool)
		for _, p := range pairs {
			if p[0] == p[1] {
				t.Fatalf("week %d: team paired with itself", week)
			}
			if seen[p[0]] || seen[p[1]] {
				t.Fatalf("week %d: team appears twice", week)
			}
			seen[p[0]] = true
			seen[p[1]] = true
		}
		if len(seen) != 8 {
			t.Fatalf("week %d: expected all 8 teams to play, got %d", week, len(seen))
		}
	}
}

func TestRoundRobinPairingsRotateOpponents(t *testing.T) {
	ids := make([]uuid.UUID, 6)
	for i := range ids {
		ids[i] = uuid.New()
	}

	// Across n-1 weeks the fixed first team must meet every other team.
	opponents := make(map[uuid.UUID]bool)
	for week := 1; week <= 5; week++ {
		for _, p := range RoundRobinPairings(ids, week) {
			if p[0] == ids[0] {
				opponents[p[1]] = true
			} else if p[1] == ids[0] {
				opponents[p[0]] = true
			}
		}
	}
	if len(opponents) != 5 {
		t.Fatalf("expected 5 distinct opponents for the fixed team, got %d", len(opponents))
	}
}

func TestGenerateScheduleBuildsWeeks(t *testing.T) {
	repo := &fakeScheduleRepo{}
	app := NewApp(repo, &fakeStandings{teams: makeTeams(4)}, clockwork.NewFakeClock())

	start := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	out, err := app.GenerateSchedule(context.Background(), uuid.New(), GenerateScheduleRequest{
		StartDate: start, Weeks: 10, PlayoffWeeks: 3,
	})
	if err != nil {
		t.Fatalf("GenerateSchedule returned error: %v", err)
	}
	if len(out) != 10 {
		t.Fatalf("expected 10 weeks, got %d", len(out))
	}

	first := repo.insertedWeeks[0]
	if !first.StartDate.Equal(start) || !first.EndDate.Equal(start.AddDate(0, 0, 6)) {
		t.Fatalf("unexpected first week range: %v - %v", first.StartDate, first.EndDate)
	}
	second := repo.insertedWeeks[1]
	if !second.StartDate.Equal(start.AddDate(0, 0, 7)) {
		t.Fatalf("weeks should be 7 days apart, got %v", second.StartDate)
	}

	for i, w := range repo.insertedWeeks {
		wantPlayoffs := i >= 7
		if w.IsPlayoffs != wantPlayoffs {
			t.Fatalf("week %d: playoffs flag = %v, want %v", w.WeekNumber, w.IsPlayoffs, wantPlayoffs)
		}
	}

	if len(repo.insertedMatchups[1]) != 2 {
		t.Fatalf("expected 2 matchups per week for 4 teams, got %d", len(repo.insertedMatchups[1]))
	}
}

func TestGenerateScheduleValidation(t *testing.T) {
	app := NewApp(&fakeScheduleRepo{}, &fakeStandings{teams: makeTeams(4)}, clockwork.NewFakeClock())
	ctx := context.Background()
	leagueID := uuid.New()

	if _, err := app.GenerateSchedule(ctx, leagueID, GenerateScheduleRequest{Weeks: 0}); err == nil {
		t.Error("zero weeks should fail")
	}
	if _, err := app.GenerateSchedule(ctx, leagueID, GenerateScheduleRequest{Weeks: 4, PlayoffWeeks: 4}); err == nil {
		t.Error("playoff weeks must be fewer than total weeks")
	}

	odd := NewApp(&fakeScheduleRepo{}, &fakeStandings{teams: makeTeams(5)}, clockwork.NewFakeClock())
	if _, err := odd.GenerateSchedule(ctx, leagueID, GenerateScheduleRequest{Weeks: 4}); err == nil {
		t.Error("odd team count should fail")
	}

	empty := NewApp(&fakeScheduleRepo{}, &fakeStandings{}, clockwork.NewFakeClock())
	if _, err := empty.GenerateSchedule(ctx, leagueID, GenerateScheduleRequest{Weeks: 4}); err == nil {
		t.Error("league without teams should fail")
	}
}

func TestGetCurrentWeekUsesClock(t *testing.T) {
	now := time.Date(2025, 11, 12, 15, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	week := &models.FantasyWeek{ID: uuid.New(), WeekNumber: 6}
	repo := &fakeScheduleRepo{weekByDate: week}
	app := NewApp(repo, &fakeStandings{}, clock)

	got, err := app.GetCurrentWeek(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetCurrentWeek returned error: %v", err)
	}
	if got.ID != week.ID {
		t.Fatalf("expected week %s, got %s", week.ID, got.ID)
	}
	if !repo.askedDate.Equal(now) {
		t.Fatalf("expected lookup at %v, got %v", now, repo.askedDate)
	}
}
