package scoring

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

type fakeScoringRepo struct {
	lines      map[uuid.UUID]models.StatLine
	upserts    []models.PlayerFantasyStats
	finalized  []models.Matchup
	staged     int
	windowFrom time.Time
	windowTo   time.Time
}

func (f *fakeScoringRepo) AggregateWeek(ctx context.Context, playerID uuid.UUID, from, to time.Time) (models.StatLine, error) {
	f.windowFrom, f.windowTo = from, to
	return f.lines[playerID], nil
}

func (f *fakeScoringRepo) UpsertPlayerFantasyStats(ctx context.Context, stats models.PlayerFantasyStats) (*models.PlayerFantasyStats, error) {
	f.upserts = append(f.upserts, stats)
	return &stats, nil
}

func (f *fakeScoringRepo) ListFantasyStatsByTeamWeek(ctx context.Context, teamID, weekID uuid.UUID) ([]models.PlayerFantasyStats, error) {
	return nil, nil
}

func (f *fakeScoringRepo) FinalizeMatchup(ctx context.Context, leagueID uuid.UUID, m models.Matchup) (*models.Matchup, error) {
	m.IsComplete = true
	f.finalized = append(f.finalized, m)
	return &m, nil
}

func (f *fakeScoringRepo) StageWeekScored(ctx context.Context, leagueID uuid.UUID, payload any) error {
	f.staged++
	return nil
}

type fakeScheduleStore struct {
	week     *models.FantasyWeek
	matchups []models.Matchup
	updated  []models.Matchup
}

func (f *fakeScheduleStore) GetWeek(ctx context.Context, id uuid.UUID) (*models.FantasyWeek, error) {
	return f.week, nil
}

func (f *fakeScheduleStore) GetMatchup(ctx context.Context, id uuid.UUID) (*models.Matchup, error) {
	for i := range f.matchups {
		if f.matchups[i].ID == id {
			return &f.matchups[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeScheduleStore) ListMatchupsByWeek(ctx context.Context, weekID uuid.UUID) ([]models.Matchup, error) {
	return f.matchups, nil
}

func (f *fakeScheduleStore) UpdateMatchupScores(ctx context.Context, id uuid.UUID, team1Score, team2Score float64, complete bool) (*models.Matchup, error) {
	m := models.Matchup{ID: id, Team1Score: team1Score, Team2Score: team2Score, IsComplete: complete}
	f.updated = append(f.updated, m)
	return &m, nil
}

type fakeLeagues struct {
	league *models.League
}

func (f *fakeLeagues) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return f.league, nil
}

type fakeRosters struct {
	rosters map[uuid.UUID][]models.RosterSlot
}

func (f *fakeRosters) ListRoster(ctx context.Context, teamID uuid.UUID) ([]models.RosterSlot, error) {
	return f.rosters[teamID], nil
}

type weekFixture struct {
	app      *App
	repo     *fakeScoringRepo
	store    *fakeScheduleStore
	week     *models.FantasyWeek
	team1    uuid.UUID
	team2    uuid.UUID
	starter1 uuid.UUID
	bench1   uuid.UUID
	starter2 uuid.UUID
}

// newWeekFixture sets up one matchup. Team 1 has a 2-goal starter and a
// 5-goal bench player; team 2 has a 1-goal starter.
func newWeekFixture() *weekFixture {
	leagueID := uuid.New()
	f := &weekFixture{
		team1:    uuid.New(),
		team2:    uuid.New(),
		starter1: uuid.New(),
		bench1:   uuid.New(),
		starter2: uuid.New(),
	}
	f.week = &models.FantasyWeek{
		ID:        uuid.New(),
		LeagueID:  leagueID,
		StartDate: time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC),
	}
	f.repo = &fakeScoringRepo{lines: map[uuid.UUID]models.StatLine{
		f.starter1: {GamesPlayed: 3, Goals: 2},
		f.bench1:   {GamesPlayed: 3, Goals: 5},
		f.starter2: {GamesPlayed: 2, Goals: 1},
	}}
	f.store = &fakeScheduleStore{
		week: f.week,
		matchups: []models.Matchup{
			{ID: uuid.New(), WeekID: f.week.ID, Team1ID: f.team1, Team2ID: f.team2},
		},
	}
	f.app = NewApp(f.repo, f.store,
		&fakeLeagues{league: &models.League{ID: leagueID, ScoringSettings: models.DefaultScoringSettings()}},
		&fakeRosters{rosters: map[uuid.UUID][]models.RosterSlot{
			f.team1: {
				{PlayerID: f.starter1, Slot: models.SlotPositionCenter},
				{PlayerID: f.bench1, Slot: models.SlotPositionBench},
			},
			f.team2: {
				{PlayerID: f.starter2, Slot: models.SlotPositionCenter},
			},
		}},
	)
	return f
}

func TestScoreWeekCountsStartersOnly(t *testing.T) {
	f := newWeekFixture()
	out, err := f.app.ScoreWeek(context.Background(), f.week.ID)
	if err != nil {
		t.Fatalf("ScoreWeek returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 matchup, got %d", len(out))
	}

	// Default weights: 2 goals = 12 points; the bench player's 5 goals
	// must not count toward the team score.
	if out[0].Team1Score != 12 {
		t.Fatalf("expected team 1 score 12, got %v", out[0].Team1Score)
	}
	if out[0].Team2Score != 6 {
		t.Fatalf("expected team 2 score 6, got %v", out[0].Team2Score)
	}
	if out[0].IsComplete {
		t.Fatal("ScoreWeek should leave matchups open")
	}
}

func TestScoreWeekWindowCoversFinalDay(t *testing.T) {
	f := newWeekFixture()
	if _, err := f.app.ScoreWeek(context.Background(), f.week.ID); err != nil {
		t.Fatalf("ScoreWeek returned error: %v", err)
	}

	if !f.repo.windowFrom.Equal(f.week.StartDate) {
		t.Fatalf("window starts at %v, want %v", f.repo.windowFrom, f.week.StartDate)
	}
	// Week dates are whole days but games carry puck-drop times, so the
	// exclusive upper bound must be the midnight after the end date. A
	// Sunday-evening game on the last day of the week has to fall inside.
	if want := f.week.EndDate.AddDate(0, 0, 1); !f.repo.windowTo.Equal(want) {
		t.Fatalf("window ends at %v, want %v", f.repo.windowTo, want)
	}
	sundayGame := time.Date(2025, 10, 12, 19, 0, 0, 0, time.UTC)
	if sundayGame.Before(f.repo.windowFrom) || !sundayGame.Before(f.repo.windowTo) {
		t.Fatalf("final-day game %v outside window [%v, %v)", sundayGame, f.repo.windowFrom, f.repo.windowTo)
	}
}

func TestScoreWeekStoresBenchLines(t *testing.T) {
	f := newWeekFixture()
	if _, err := f.app.ScoreWeek(context.Background(), f.week.ID); err != nil {
		t.Fatalf("ScoreWeek returned error: %v", err)
	}

	var benchStored bool
	for _, u := range f.repo.upserts {
		if u.PlayerID == f.bench1 {
			benchStored = true
			if u.TotalFantasyPoints != 30 {
				t.Fatalf("expected 30 bench points stored, got %v", u.TotalFantasyPoints)
			}
		}
	}
	if !benchStored {
		t.Fatal("bench player's line should still be stored")
	}
}

func TestScoreWeekSkipsCompletedMatchups(t *testing.T) {
	f := newWeekFixture()
	f.store.matchups[0].IsComplete = true

	if _, err := f.app.ScoreWeek(context.Background(), f.week.ID); err != nil {
		t.Fatalf("ScoreWeek returned error: %v", err)
	}
	if len(f.store.updated) != 0 {
		t.Fatal("completed matchups must not be rescored")
	}
}

func TestFinalizeWeekSettlesMatchupsAndStagesEvent(t *testing.T) {
	f := newWeekFixture()
	out, err := f.app.FinalizeWeek(context.Background(), f.week.ID)
	if err != nil {
		t.Fatalf("FinalizeWeek returned error: %v", err)
	}
	if len(f.repo.finalized) != 1 {
		t.Fatalf("expected 1 finalized matchup, got %d", len(f.repo.finalized))
	}
	if !out[0].IsComplete {
		t.Fatal("finalized matchup should be complete")
	}
	if f.repo.staged != 1 {
		t.Fatalf("expected one staged week-scored event, got %d", f.repo.staged)
	}
}

func TestFinalizeMatchupRejectsCompleted(t *testing.T) {
	f := newWeekFixture()
	f.store.matchups[0].IsComplete = true

	_, err := f.app.FinalizeMatchup(context.Background(), f.store.matchups[0].ID)
	if err == nil {
		t.Fatal("expected error finalizing a completed matchup")
	}
}

func TestFinalizeMatchupComputesScores(t *testing.T) {
	f := newWeekFixture()
	out, err := f.app.FinalizeMatchup(context.Background(), f.store.matchups[0].ID)
	if err != nil {
		t.Fatalf("FinalizeMatchup returned error: %v", err)
	}
	if out.Team1Score != 12 || out.Team2Score != 6 {
		t.Fatalf("unexpected scores %v - %v", out.Team1Score, out.Team2Score)
	}
}
