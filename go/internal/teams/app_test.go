package teams

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

type fakeTeamsRepo struct {
	TeamsRepository
	conference *models.Conference
	division   *models.Division
	createdAbr string
}

func (f *fakeTeamsRepo) GetConference(ctx context.Context, id uuid.UUID) (*models.Conference, error) {
	if f.conference == nil {
		return nil, ErrNotFound
	}
	return f.conference, nil
}

func (f *fakeTeamsRepo) GetDivision(ctx context.Context, id uuid.UUID) (*models.Division, error) {
	if f.division == nil {
		return nil, ErrNotFound
	}
	return f.division, nil
}

func (f *fakeTeamsRepo) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	f.createdAbr = req.Abbreviation
	return &models.Team{ID: uuid.New(), Name: req.Name, City: req.City, Abbreviation: req.Abbreviation}, nil
}

func (f *fakeTeamsRepo) GetTeamByAbbreviation(ctx context.Context, abbreviation string) (*models.Team, error) {
	f.createdAbr = abbreviation
	return &models.Team{Abbreviation: abbreviation}, nil
}

func (f *fakeTeamsRepo) CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error) {
	return &models.Season{ID: uuid.New(), Name: req.Name, IsCurrent: req.IsCurrent}, nil
}

func TestCreateTeamValidation(t *testing.T) {
	divID := uuid.New()
	repo := &fakeTeamsRepo{division: &models.Division{ID: divID}}
	app := NewApp(repo)
	ctx := context.Background()

	cases := []struct {
		name string
		req  CreateTeamRequest
	}{
		{"missing name", CreateTeamRequest{City: "Boston", Abbreviation: "BOS", DivisionID: divID}},
		{"missing city", CreateTeamRequest{Name: "Bruins", Abbreviation: "BOS", DivisionID: divID}},
		{"missing abbreviation", CreateTeamRequest{Name: "Bruins", City: "Boston", DivisionID: divID}},
		{"long abbreviation", CreateTeamRequest{Name: "Bruins", City: "Boston", Abbreviation: strings.Repeat("B", 11), DivisionID: divID}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := app.CreateTeam(ctx, tc.req); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	team, err := app.CreateTeam(ctx, CreateTeamRequest{Name: "Bruins", City: "Boston", Abbreviation: "BOS", DivisionID: divID})
	if err != nil {
		t.Fatalf("valid request failed: %v", err)
	}
	if team.Abbreviation != "BOS" {
		t.Fatalf("unexpected abbreviation %q", team.Abbreviation)
	}
}

func TestCreateTeamUnknownDivision(t *testing.T) {
	app := NewApp(&fakeTeamsRepo{})
	_, err := app.CreateTeam(context.Background(), CreateTeamRequest{
		Name: "Bruins", City: "Boston", Abbreviation: "BOS", DivisionID: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected error for unknown division")
	}
}

func TestGetTeamByAbbreviationUppercases(t *testing.T) {
	repo := &fakeTeamsRepo{}
	app := NewApp(repo)
	if _, err := app.GetTeamByAbbreviation(context.Background(), "bos"); err != nil {
		t.Fatalf("GetTeamByAbbreviation returned error: %v", err)
	}
	if repo.createdAbr != "BOS" {
		t.Fatalf("expected lookup by BOS, got %q", repo.createdAbr)
	}
}

func TestCreateSeasonValidation(t *testing.T) {
	app := NewApp(&fakeTeamsRepo{})
	start := time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC)

	_, err := app.CreateSeason(context.Background(), CreateSeasonRequest{
		Name: "2025-26", StartDate: start, EndDate: start.AddDate(0, 0, -1),
	})
	if err == nil {
		t.Fatal("season cannot end before it starts")
	}

	if _, err := app.CreateSeason(context.Background(), CreateSeasonRequest{
		Name: "2025-26", StartDate: start, EndDate: start.AddDate(0, 6, 0),
	}); err != nil {
		t.Fatalf("valid season failed: %v", err)
	}
}
