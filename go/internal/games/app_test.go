package games

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

type fakeGamesRepo struct {
	GamesRepository
	game       *models.Game
	finalized  *FinalizeGameRequest
	status     models.GameStatus
	goalCalls  int
	statsCalls int
	rangeFrom  time.Time
	rangeTo    time.Time
}

func (f *fakeGamesRepo) ListPlayerGameStatsBetween(ctx context.Context, playerID uuid.UUID, from, to time.Time) ([]models.PlayerGameStats, error) {
	f.rangeFrom, f.rangeTo = from, to
	return []models.PlayerGameStats{{PlayerID: playerID}}, nil
}

func (f *fakeGamesRepo) GetGame(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	if f.game == nil {
		return nil, ErrNotFound
	}
	return f.game, nil
}

func (f *fakeGamesRepo) FinalizeGame(ctx context.Context, id uuid.UUID, status models.GameStatus, req FinalizeGameRequest) (*models.Game, error) {
	f.finalized = &req
	f.status = status
	out := *f.game
	out.HomeScore = req.HomeScore
	out.AwayScore = req.AwayScore
	out.Status = status
	return &out, nil
}

func (f *fakeGamesRepo) RecordGoal(ctx context.Context, gameID uuid.UUID, req RecordGoalRequest) (*models.Goal, error) {
	f.goalCalls++
	return &models.Goal{ID: uuid.New(), GameID: gameID, ScorerID: req.ScorerID, TeamID: req.TeamID, GoalType: req.GoalType}, nil
}

func (f *fakeGamesRepo) UpsertGameStats(ctx context.Context, stats models.PlayerGameStats) (*models.PlayerGameStats, error) {
	f.statsCalls++
	return &stats, nil
}

func scheduledGame() *models.Game {
	return &models.Game{
		ID:         uuid.New(),
		HomeTeamID: uuid.New(),
		AwayTeamID: uuid.New(),
		Status:     models.GameStatusScheduled,
	}
}

func TestCreateGameRejectsSelfPlay(t *testing.T) {
	app := NewApp(&fakeGamesRepo{})
	id := uuid.New()
	_, err := app.CreateGame(context.Background(), CreateGameRequest{HomeTeamID: id, AwayTeamID: id})
	if err == nil {
		t.Fatal("expected error when a team plays itself")
	}
}

func TestFinalizeGameDerivesStatus(t *testing.T) {
	cases := []struct {
		name string
		req  FinalizeGameRequest
		want models.GameStatus
	}{
		{"regulation", FinalizeGameRequest{HomeScore: 3, AwayScore: 1, PeriodsPlayed: 3}, models.GameStatusFinal},
		{"overtime", FinalizeGameRequest{HomeScore: 3, AwayScore: 2, PeriodsPlayed: 4, OvertimePeriods: 1}, models.GameStatusOvertime},
		{"shootout", FinalizeGameRequest{HomeScore: 2, AwayScore: 1, PeriodsPlayed: 4, OvertimePeriods: 1, Shootout: true}, models.GameStatusShootout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeGamesRepo{game: scheduledGame()}
			app := NewApp(repo)
			out, err := app.FinalizeGame(context.Background(), repo.game.ID, tc.req)
			if err != nil {
				t.Fatalf("FinalizeGame returned error: %v", err)
			}
			if out.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, out.Status)
			}
		})
	}
}

func TestFinalizeGameRejectsTiedOvertime(t *testing.T) {
	repo := &fakeGamesRepo{game: scheduledGame()}
	app := NewApp(repo)
	_, err := app.FinalizeGame(context.Background(), repo.game.ID, FinalizeGameRequest{
		HomeScore: 2, AwayScore: 2, OvertimePeriods: 1,
	})
	if err == nil {
		t.Fatal("overtime games cannot end tied")
	}
}

func TestFinalizeGameRejectsFinishedGame(t *testing.T) {
	game := scheduledGame()
	game.Status = models.GameStatusFinal
	app := NewApp(&fakeGamesRepo{game: game})
	_, err := app.FinalizeGame(context.Background(), game.ID, FinalizeGameRequest{HomeScore: 1})
	if err == nil {
		t.Fatal("expected error finalizing a finished game")
	}
}

func TestRecordGoalValidation(t *testing.T) {
	game := scheduledGame()
	repo := &fakeGamesRepo{game: game}
	app := NewApp(repo)
	scorer := uuid.New()
	helper := uuid.New()

	base := RecordGoalRequest{ScorerID: scorer, TeamID: game.HomeTeamID, Period: 1, TimeInPeriod: "05:30"}

	selfAssist := base
	selfAssist.Assist1ID = &scorer
	if _, err := app.RecordGoal(context.Background(), game.ID, selfAssist); err == nil {
		t.Fatal("scorer cannot assist their own goal")
	}

	dupAssists := base
	dupAssists.Assist1ID = &helper
	dupAssists.Assist2ID = &helper
	if _, err := app.RecordGoal(context.Background(), game.ID, dupAssists); err == nil {
		t.Fatal("assists must be different players")
	}

	wrongTeam := base
	wrongTeam.TeamID = uuid.New()
	if _, err := app.RecordGoal(context.Background(), game.ID, wrongTeam); err == nil {
		t.Fatal("team must be playing in the game")
	}

	if _, err := app.RecordGoal(context.Background(), game.ID, base); err != nil {
		t.Fatalf("valid goal rejected: %v", err)
	}
	if repo.goalCalls != 1 {
		t.Fatalf("expected one recorded goal, got %d", repo.goalCalls)
	}
}

func TestRecordGoalRejectsFinishedGame(t *testing.T) {
	game := scheduledGame()
	game.Status = models.GameStatusShootout
	app := NewApp(&fakeGamesRepo{game: game})
	_, err := app.RecordGoal(context.Background(), game.ID, RecordGoalRequest{
		ScorerID: uuid.New(), TeamID: game.HomeTeamID, Period: 1,
	})
	if err == nil {
		t.Fatal("expected error recording a goal on a finished game")
	}
}

func TestUpsertGameStatsRecomputesPoints(t *testing.T) {
	repo := &fakeGamesRepo{}
	app := NewApp(repo)
	out, err := app.UpsertGameStats(context.Background(), uuid.New(), UpsertGameStatsRequest{
		PlayerID: uuid.New(), TeamID: uuid.New(), Played: true, Goals: 2, Assists: 1,
	})
	if err != nil {
		t.Fatalf("UpsertGameStats returned error: %v", err)
	}
	if out.Points != 3 {
		t.Fatalf("expected 3 points, got %d", out.Points)
	}
}

func TestUpsertGameStatsRejectsBadFaceoffs(t *testing.T) {
	app := NewApp(&fakeGamesRepo{})
	_, err := app.UpsertGameStats(context.Background(), uuid.New(), UpsertGameStatsRequest{
		PlayerID: uuid.New(), TeamID: uuid.New(), FaceoffWins: 5, FaceoffAttempts: 3,
	})
	if err == nil {
		t.Fatal("faceoff wins cannot exceed attempts")
	}
}

func TestListPlayerGameStatsBetween(t *testing.T) {
	repo := &fakeGamesRepo{}
	app := NewApp(repo)
	playerID := uuid.New()
	from := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	stats, err := app.ListPlayerGameStatsBetween(context.Background(), playerID, from, to)
	if err != nil {
		t.Fatalf("ListPlayerGameStatsBetween returned error: %v", err)
	}
	if len(stats) != 1 || stats[0].PlayerID != playerID {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if !repo.rangeFrom.Equal(from) || !repo.rangeTo.Equal(to) {
		t.Fatalf("repository queried [%v, %v), want [%v, %v)", repo.rangeFrom, repo.rangeTo, from, to)
	}

	if _, err := app.ListPlayerGameStatsBetween(context.Background(), playerID, to, from); err == nil {
		t.Fatal("inverted range should be rejected")
	}
	if _, err := app.ListPlayerGameStatsBetween(context.Background(), playerID, from, from); err == nil {
		t.Fatal("empty range should be rejected")
	}
}
