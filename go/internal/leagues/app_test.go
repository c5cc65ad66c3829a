package leagues

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

type fakeLeaguesRepo struct {
	LeaguesRepository
	created   *CreateLeagueRequest
	league    *models.League
	teamCount int
}

func (f *fakeLeaguesRepo) CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error) {
	f.created = &req
	return &models.League{ID: uuid.New(), Name: req.Name, MaxTeams: req.MaxTeams}, nil
}

func (f *fakeLeaguesRepo) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	if f.league == nil {
		return nil, ErrNotFound
	}
	return f.league, nil
}

func (f *fakeLeaguesRepo) CountTeams(ctx context.Context, leagueID uuid.UUID) (int, error) {
	return f.teamCount, nil
}

func (f *fakeLeaguesRepo) UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error) {
	return f.league, nil
}

func TestCreateLeagueValidation(t *testing.T) {
	app := NewApp(&fakeLeaguesRepo{})
	ctx := context.Background()

	cases := []struct {
		name string
		req  CreateLeagueRequest
	}{
		{"missing name", CreateLeagueRequest{}},
		{"too few teams", CreateLeagueRequest{Name: "Beer League", MaxTeams: 2}},
		{"too many teams", CreateLeagueRequest{Name: "Beer League", MaxTeams: 30}},
		{"lineup exceeds roster", CreateLeagueRequest{Name: "Beer League", RosterSize: 10, StartingLineupSize: 12}},
		{"bad scoring system", CreateLeagueRequest{Name: "Beer League", ScoringSystem: "chaos"}},
		{"bad draft type", CreateLeagueRequest{Name: "Beer League", DraftType: "lottery"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := app.CreateLeague(ctx, tc.req); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateLeagueAppliesScoringDefaults(t *testing.T) {
	repo := &fakeLeaguesRepo{}
	app := NewApp(repo)

	_, err := app.CreateLeague(context.Background(), CreateLeagueRequest{Name: "Beer League"})
	if err != nil {
		t.Fatalf("CreateLeague returned error: %v", err)
	}
	if repo.created.ScoringSettings == nil {
		t.Fatal("expected scoring defaults to be filled in")
	}
	if repo.created.ScoringSettings.Goals != 6.0 {
		t.Fatalf("expected default goal weight 6.0, got %v", repo.created.ScoringSettings.Goals)
	}
}

func TestCreateLeagueCustomDefaults(t *testing.T) {
	repo := &fakeLeaguesRepo{}
	custom := models.DefaultScoringSettings()
	custom.Goals = 8.0
	app := NewApp(repo).WithScoringDefaults(custom)

	if _, err := app.CreateLeague(context.Background(), CreateLeagueRequest{Name: "Beer League"}); err != nil {
		t.Fatalf("CreateLeague returned error: %v", err)
	}
	if repo.created.ScoringSettings.Goals != 8.0 {
		t.Fatalf("expected overridden goal weight 8.0, got %v", repo.created.ScoringSettings.Goals)
	}
}

func TestCreateLeagueKeepsExplicitSettings(t *testing.T) {
	repo := &fakeLeaguesRepo{}
	app := NewApp(repo)
	explicit := models.ScoringSettings{Goals: 1.5}

	if _, err := app.CreateLeague(context.Background(), CreateLeagueRequest{
		Name: "Beer League", ScoringSettings: &explicit,
	}); err != nil {
		t.Fatalf("CreateLeague returned error: %v", err)
	}
	if repo.created.ScoringSettings.Goals != 1.5 {
		t.Fatalf("explicit settings overwritten: %v", repo.created.ScoringSettings.Goals)
	}
}

func TestUpdateLeagueRejectsShrinkingBelowTeamCount(t *testing.T) {
	repo := &fakeLeaguesRepo{teamCount: 8, league: &models.League{MaxTeams: 12}}
	app := NewApp(repo)
	six := 6
	_, err := app.UpdateLeague(context.Background(), uuid.New(), UpdateLeagueRequest{MaxTeams: &six})
	if err == nil {
		t.Fatal("cannot shrink max teams below current membership")
	}
}

func TestIsFull(t *testing.T) {
	repo := &fakeLeaguesRepo{teamCount: 12, league: &models.League{MaxTeams: 12}}
	app := NewApp(repo)
	full, err := app.IsFull(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("IsFull returned error: %v", err)
	}
	if !full {
		t.Fatal("league at capacity should be full")
	}

	repo.teamCount = 11
	full, err = app.IsFull(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("IsFull returned error: %v", err)
	}
	if full {
		t.Fatal("league below capacity should not be full")
	}
}
