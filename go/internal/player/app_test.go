package player

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

type fakePlayerRepo struct {
	PlayerRepository
	positions map[uuid.UUID]*models.Position
	created   *CreatePlayerRequest
}

func (f *fakePlayerRepo) GetPosition(ctx context.Context, id uuid.UUID) (*models.Position, error) {
	if pos, ok := f.positions[id]; ok {
		return pos, nil
	}
	return nil, ErrNotFound
}

func (f *fakePlayerRepo) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	f.created = &req
	return &models.Player{ID: uuid.New(), FirstName: req.FirstName, LastName: req.LastName, PositionID: req.PositionID}, nil
}

func TestCreatePlayerValidation(t *testing.T) {
	posID := uuid.New()
	repo := &fakePlayerRepo{positions: map[uuid.UUID]*models.Position{
		posID: {ID: posID, Name: "Center", Abbreviation: "C", Category: models.PositionCategoryForward},
	}}
	app := NewApp(repo)

	badJersey := 0
	badHand := models.Handedness("X")
	cases := []struct {
		name string
		req  CreatePlayerRequest
	}{
		{"missing first name", CreatePlayerRequest{LastName: "Crosby", PositionID: posID}},
		{"missing last name", CreatePlayerRequest{FirstName: "Sidney", PositionID: posID}},
		{"bad jersey", CreatePlayerRequest{FirstName: "Sidney", LastName: "Crosby", PositionID: posID, JerseyNumber: &badJersey}},
		{"bad handedness", CreatePlayerRequest{FirstName: "Sidney", LastName: "Crosby", PositionID: posID, Shoots: &badHand}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := app.CreatePlayer(context.Background(), tc.req); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	if _, err := app.CreatePlayer(context.Background(), CreatePlayerRequest{
		FirstName: "Sidney", LastName: "Crosby", PositionID: posID,
	}); err != nil {
		t.Fatalf("valid request failed: %v", err)
	}
	if repo.created == nil {
		t.Fatal("expected player to be created")
	}
}

func TestCreatePlayerUnknownPosition(t *testing.T) {
	app := NewApp(&fakePlayerRepo{positions: map[uuid.UUID]*models.Position{}})
	_, err := app.CreatePlayer(context.Background(), CreatePlayerRequest{
		FirstName: "Sidney", LastName: "Crosby", PositionID: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected error for unknown position")
	}
}

func TestDeriveSeasonStatsSkater(t *testing.T) {
	stats := DeriveSeasonStats(UpsertSeasonStatsRequest{
		GamesPlayed:      82,
		Goals:            40,
		Assists:          60,
		PowerPlayGoals:   12,
		PowerPlayAssists: 20,
		ShotsOnGoal:      300,
		TimeOnIceSeconds: 82 * 1230,
	})

	if stats.Points != 100 {
		t.Errorf("expected 100 points, got %d", stats.Points)
	}
	if stats.PowerPlayPoints != 32 {
		t.Errorf("expected 32 power play points, got %d", stats.PowerPlayPoints)
	}
	if stats.ShootingPercentage != 13.33 {
		t.Errorf("expected 13.33 shooting percentage, got %v", stats.ShootingPercentage)
	}
	if stats.AverageTimeOnIceSeconds != 1230 {
		t.Errorf("expected 1230s average TOI, got %d", stats.AverageTimeOnIceSeconds)
	}
}

func TestDeriveSeasonStatsGoalie(t *testing.T) {
	stats := DeriveSeasonStats(UpsertSeasonStatsRequest{
		GamesPlayed:  60,
		GoalsAgainst: 150,
		ShotsAgainst: 1800,
		Saves:        1650,
	})

	if stats.GoalsAgainstAverage != 2.5 {
		t.Errorf("expected 2.50 GAA, got %v", stats.GoalsAgainstAverage)
	}
	if stats.SavePercentage != 0.917 {
		t.Errorf("expected .917 save percentage, got %v", stats.SavePercentage)
	}
}

func TestDeriveSeasonStatsZeroGames(t *testing.T) {
	stats := DeriveSeasonStats(UpsertSeasonStatsRequest{})
	if stats.ShootingPercentage != 0 || stats.GoalsAgainstAverage != 0 || stats.SavePercentage != 0 {
		t.Fatal("derived fields should be zero with no games")
	}
}
