package fantasyteam

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

type fakeTeamRepo struct {
	FantasyTeamRepository
	created *CreateFantasyTeamRequest
	teams   []models.FantasyTeam
}

func (f *fakeTeamRepo) ListTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error) {
	return f.teams, nil
}

func (f *fakeTeamRepo) CreateTeam(ctx context.Context, req CreateFantasyTeamRequest) (*models.FantasyTeam, error) {
	f.created = &req
	return &models.FantasyTeam{ID: uuid.New(), Name: req.Name, LeagueID: req.LeagueID}, nil
}

type fakeLeagueChecker struct {
	league *models.League
	full   bool
}

func (f *fakeLeagueChecker) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return f.league, nil
}

func (f *fakeLeagueChecker) IsFull(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.full, nil
}

func TestCreateTeamRequiresName(t *testing.T) {
	app := NewApp(&fakeTeamRepo{}, &fakeLeagueChecker{league: &models.League{IsActive: true}})
	_, err := app.CreateTeam(context.Background(), CreateFantasyTeamRequest{
		OwnerID: uuid.New(), LeagueID: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestCreateTeamRejectsInactiveLeague(t *testing.T) {
	app := NewApp(&fakeTeamRepo{}, &fakeLeagueChecker{league: &models.League{Name: "Dormant", IsActive: false}})
	_, err := app.CreateTeam(context.Background(), CreateFantasyTeamRequest{
		Name: "Zamboni Drivers", OwnerID: uuid.New(), LeagueID: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected error for inactive league")
	}
}

func TestCreateTeamRejectsFullLeague(t *testing.T) {
	app := NewApp(&fakeTeamRepo{}, &fakeLeagueChecker{league: &models.League{Name: "Packed", IsActive: true}, full: true})
	_, err := app.CreateTeam(context.Background(), CreateFantasyTeamRequest{
		Name: "Zamboni Drivers", OwnerID: uuid.New(), LeagueID: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected error for full league")
	}
}

func TestCreateTeamJoinsOpenLeague(t *testing.T) {
	repo := &fakeTeamRepo{}
	app := NewApp(repo, &fakeLeagueChecker{league: &models.League{Name: "Open", IsActive: true}})
	team, err := app.CreateTeam(context.Background(), CreateFantasyTeamRequest{
		Name: "Zamboni Drivers", OwnerID: uuid.New(), LeagueID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("CreateTeam returned error: %v", err)
	}
	if team.Name != "Zamboni Drivers" {
		t.Fatalf("unexpected team name %q", team.Name)
	}
	if repo.created == nil {
		t.Fatal("expected team to reach the repository")
	}
}

func TestGetStandingsOrdersByPointsThenWinPercentage(t *testing.T) {
	grinders := models.FantasyTeam{ID: uuid.New(), Name: "Grinders", Wins: 9, Losses: 1, TotalPoints: 800}
	snipers := models.FantasyTeam{ID: uuid.New(), Name: "Snipers", Wins: 4, Losses: 6, TotalPoints: 950.5}
	// Same points as the Grinders but a worse record; points decide first,
	// win percentage only breaks the tie.
	danglers := models.FantasyTeam{ID: uuid.New(), Name: "Danglers", Wins: 5, Losses: 5, TotalPoints: 800}

	repo := &fakeTeamRepo{teams: []models.FantasyTeam{danglers, grinders, snipers}}
	app := NewApp(repo, &fakeLeagueChecker{league: &models.League{IsActive: true}})

	standings, err := app.GetStandings(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetStandings returned error: %v", err)
	}
	want := []string{"Snipers", "Grinders", "Danglers"}
	for i, name := range want {
		if standings[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i+1, name, standings[i].Name)
		}
	}
}
