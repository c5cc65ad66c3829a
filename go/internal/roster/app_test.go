package roster

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

type fakeRosterRepo struct {
	RosterRepository
	count    int
	rostered bool
	slots    []models.RosterSlot
	slot     *models.RosterSlot
	added    *AddPlayerRequest
	moved    *models.SlotPosition
}

func (f *fakeRosterRepo) AddPlayer(ctx context.Context, teamID uuid.UUID, req AddPlayerRequest) (*models.RosterSlot, error) {
	f.added = &req
	return &models.RosterSlot{ID: uuid.New(), FantasyTeamID: teamID, PlayerID: req.PlayerID, Slot: req.Slot}, nil
}

func (f *fakeRosterRepo) MovePlayer(ctx context.Context, teamID, playerID uuid.UUID, slot models.SlotPosition) (*models.RosterSlot, error) {
	f.moved = &slot
	return &models.RosterSlot{FantasyTeamID: teamID, PlayerID: playerID, Slot: slot}, nil
}

func (f *fakeRosterRepo) ListRoster(ctx context.Context, teamID uuid.UUID) ([]models.RosterSlot, error) {
	return f.slots, nil
}

func (f *fakeRosterRepo) GetSlot(ctx context.Context, teamID, playerID uuid.UUID) (*models.RosterSlot, error) {
	if f.slot == nil {
		return nil, ErrNotFound
	}
	return f.slot, nil
}

func (f *fakeRosterRepo) CountRoster(ctx context.Context, teamID uuid.UUID) (int, error) {
	return f.count, nil
}

func (f *fakeRosterRepo) IsPlayerRosteredInLeague(ctx context.Context, leagueID, playerID uuid.UUID) (bool, error) {
	return f.rostered, nil
}

type fakeDeps struct {
	team     *models.FantasyTeam
	league   *models.League
	player   *models.Player
	position *models.Position
}

func (f *fakeDeps) GetTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	return f.team, nil
}

func (f *fakeDeps) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return f.league, nil
}

func (f *fakeDeps) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	return f.player, nil
}

func (f *fakeDeps) GetPosition(ctx context.Context, id uuid.UUID) (*models.Position, error) {
	return f.position, nil
}

func newDeps(category models.PositionCategory) *fakeDeps {
	leagueID := uuid.New()
	return &fakeDeps{
		team:     &models.FantasyTeam{ID: uuid.New(), LeagueID: leagueID},
		league:   &models.League{ID: leagueID, RosterSize: 23, StartingLineupSize: 9},
		player:   &models.Player{ID: uuid.New(), PositionID: uuid.New()},
		position: &models.Position{Category: category},
	}
}

func TestAddPlayerRejectsFullRoster(t *testing.T) {
	deps := newDeps(models.PositionCategoryForward)
	repo := &fakeRosterRepo{count: 23}
	app := NewApp(repo, deps, deps, deps)

	_, err := app.AddPlayer(context.Background(), deps.team.ID, AddPlayerRequest{
		PlayerID: uuid.New(), Slot: models.SlotPositionBench,
	})
	if err == nil {
		t.Fatal("full roster should reject additions")
	}
}

func TestAddPlayerRejectsRosteredPlayer(t *testing.T) {
	deps := newDeps(models.PositionCategoryForward)
	repo := &fakeRosterRepo{rostered: true}
	app := NewApp(repo, deps, deps, deps)

	_, err := app.AddPlayer(context.Background(), deps.team.ID, AddPlayerRequest{
		PlayerID: uuid.New(), Slot: models.SlotPositionBench,
	})
	if err == nil {
		t.Fatal("player already rostered in the league should be rejected")
	}
}

func TestAddPlayerSlotMustFitPosition(t *testing.T) {
	deps := newDeps(models.PositionCategoryGoalie)
	repo := &fakeRosterRepo{}
	app := NewApp(repo, deps, deps, deps)

	_, err := app.AddPlayer(context.Background(), deps.team.ID, AddPlayerRequest{
		PlayerID: deps.player.ID, Slot: models.SlotPositionCenter,
	})
	if err == nil {
		t.Fatal("goalie cannot fill a center slot")
	}

	if _, err := app.AddPlayer(context.Background(), deps.team.ID, AddPlayerRequest{
		PlayerID: deps.player.ID, Slot: models.SlotPositionGoalie,
	}); err != nil {
		t.Fatalf("goalie in goalie slot rejected: %v", err)
	}
}

func TestAddPlayerBenchTakesAnyone(t *testing.T) {
	deps := newDeps(models.PositionCategoryDefense)
	repo := &fakeRosterRepo{}
	app := NewApp(repo, deps, deps, deps)

	if _, err := app.AddPlayer(context.Background(), deps.team.ID, AddPlayerRequest{
		PlayerID: deps.player.ID, Slot: models.SlotPositionBench,
	}); err != nil {
		t.Fatalf("bench slot rejected: %v", err)
	}
}

func TestMovePlayerRejectsFullLineup(t *testing.T) {
	deps := newDeps(models.PositionCategoryForward)
	deps.league.StartingLineupSize = 2
	slots := []models.RosterSlot{
		{Slot: models.SlotPositionCenter},
		{Slot: models.SlotPositionLeftWing},
		{PlayerID: deps.player.ID, Slot: models.SlotPositionBench},
	}
	repo := &fakeRosterRepo{
		slots: slots,
		slot:  &slots[2],
	}
	app := NewApp(repo, deps, deps, deps)

	_, err := app.MovePlayer(context.Background(), deps.team.ID, deps.player.ID, MovePlayerRequest{
		Slot: models.SlotPositionRightWing,
	})
	if err == nil {
		t.Fatal("promoting into a full lineup should fail")
	}
}

func TestMovePlayerToBenchAlwaysAllowed(t *testing.T) {
	deps := newDeps(models.PositionCategoryForward)
	repo := &fakeRosterRepo{
		slot: &models.RosterSlot{PlayerID: deps.player.ID, Slot: models.SlotPositionCenter},
	}
	app := NewApp(repo, deps, deps, deps)

	out, err := app.MovePlayer(context.Background(), deps.team.ID, deps.player.ID, MovePlayerRequest{
		Slot: models.SlotPositionBench,
	})
	if err != nil {
		t.Fatalf("benching a starter failed: %v", err)
	}
	if out.Slot != models.SlotPositionBench {
		t.Fatalf("expected bench slot, got %s", out.Slot)
	}
}

func TestMovePlayerUnknownSlot(t *testing.T) {
	deps := newDeps(models.PositionCategoryForward)
	app := NewApp(&fakeRosterRepo{}, deps, deps, deps)

	_, err := app.MovePlayer(context.Background(), deps.team.ID, deps.player.ID, MovePlayerRequest{
		Slot: "XX",
	})
	if err == nil {
		t.Fatal("unknown slot should be rejected")
	}
}
