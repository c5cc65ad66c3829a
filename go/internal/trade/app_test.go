package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

type fakeTradeRepo struct {
	TradeRepository
	created *ProposeTradeRequest
	trade   *TradeWithPlayers
	settled *models.TradeStatus
}

func (f *fakeTradeRepo) CreateTrade(ctx context.Context, leagueID uuid.UUID, req ProposeTradeRequest) (*TradeWithPlayers, error) {
	f.created = &req
	return &TradeWithPlayers{Trade: models.Trade{ID: uuid.New(), FromTeamID: req.FromTeamID, ToTeamID: req.ToTeamID}}, nil
}

func (f *fakeTradeRepo) GetTrade(ctx context.Context, id uuid.UUID) (*TradeWithPlayers, error) {
	if f.trade == nil {
		return nil, ErrNotFound
	}
	return f.trade, nil
}

func (f *fakeTradeRepo) SettleTrade(ctx context.Context, id, leagueID uuid.UUID, status models.TradeStatus, eventType string) (*TradeWithPlayers, error) {
	f.settled = &status
	out := *f.trade
	out.Status = status
	return &out, nil
}

type fakeTeams struct {
	teams map[uuid.UUID]*models.FantasyTeam
}

func (f *fakeTeams) GetTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	if team, ok := f.teams[id]; ok {
		return team, nil
	}
	return nil, ErrNotFound
}

type fakeRoster struct {
	onRoster map[uuid.UUID]uuid.UUID // player -> team
}

func (f *fakeRoster) GetSlot(ctx context.Context, teamID, playerID uuid.UUID) (*models.RosterSlot, error) {
	if f.onRoster[playerID] == teamID {
		return &models.RosterSlot{FantasyTeamID: teamID, PlayerID: playerID}, nil
	}
	return nil, ErrPlayerNotOnRoster
}

type tradeFixture struct {
	app    *App
	repo   *fakeTradeRepo
	teamA  uuid.UUID
	teamB  uuid.UUID
	player uuid.UUID
}

func newTradeFixture() *tradeFixture {
	leagueID := uuid.New()
	teamA := uuid.New()
	teamB := uuid.New()
	player := uuid.New()
	repo := &fakeTradeRepo{}
	app := NewApp(repo,
		&fakeTeams{teams: map[uuid.UUID]*models.FantasyTeam{
			teamA: {ID: teamA, LeagueID: leagueID, Name: "A"},
			teamB: {ID: teamB, LeagueID: leagueID, Name: "B"},
		}},
		&fakeRoster{onRoster: map[uuid.UUID]uuid.UUID{player: teamA}},
	)
	return &tradeFixture{app: app, repo: repo, teamA: teamA, teamB: teamB, player: player}
}

func TestProposeTradeHappyPath(t *testing.T) {
	f := newTradeFixture()
	out, err := f.app.ProposeTrade(context.Background(), ProposeTradeRequest{
		FromTeamID: f.teamA,
		ToTeamID:   f.teamB,
		Players:    []ProposedPlayer{{PlayerID: f.player, FromTeamID: f.teamA, ToTeamID: f.teamB}},
	})
	if err != nil {
		t.Fatalf("ProposeTrade returned error: %v", err)
	}
	if out.FromTeamID != f.teamA || out.ToTeamID != f.teamB {
		t.Fatalf("unexpected trade teams: %+v", out.Trade)
	}
}

func TestProposeTradeValidation(t *testing.T) {
	f := newTradeFixture()
	ctx := context.Background()
	outsider := uuid.New()

	cases := []struct {
		name string
		req  ProposeTradeRequest
	}{
		{"self trade", ProposeTradeRequest{FromTeamID: f.teamA, ToTeamID: f.teamA}},
		{"no players", ProposeTradeRequest{FromTeamID: f.teamA, ToTeamID: f.teamB}},
		{"player from outside team", ProposeTradeRequest{
			FromTeamID: f.teamA, ToTeamID: f.teamB,
			Players: []ProposedPlayer{{PlayerID: f.player, FromTeamID: outsider, ToTeamID: f.teamB}},
		}},
		{"player not changing teams", ProposeTradeRequest{
			FromTeamID: f.teamA, ToTeamID: f.teamB,
			Players: []ProposedPlayer{{PlayerID: f.player, FromTeamID: f.teamA, ToTeamID: f.teamA}},
		}},
		{"player not on offering roster", ProposeTradeRequest{
			FromTeamID: f.teamA, ToTeamID: f.teamB,
			Players: []ProposedPlayer{{PlayerID: f.player, FromTeamID: f.teamB, ToTeamID: f.teamA}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.app.ProposeTrade(ctx, tc.req); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestProposeTradeRejectsCrossLeague(t *testing.T) {
	f := newTradeFixture()
	other := uuid.New()
	teams := f.app.teams.(*fakeTeams)
	teams.teams[other] = &models.FantasyTeam{ID: other, LeagueID: uuid.New(), Name: "C"}

	_, err := f.app.ProposeTrade(context.Background(), ProposeTradeRequest{
		FromTeamID: f.teamA,
		ToTeamID:   other,
		Players:    []ProposedPlayer{{PlayerID: f.player, FromTeamID: f.teamA, ToTeamID: other}},
	})
	if err == nil {
		t.Fatal("teams in different leagues cannot trade")
	}
}

func TestRejectTradeSettlesWithRejectedStatus(t *testing.T) {
	f := newTradeFixture()
	f.repo.trade = &TradeWithPlayers{Trade: models.Trade{
		ID: uuid.New(), FromTeamID: f.teamA, ToTeamID: f.teamB, Status: models.TradeStatusPending,
	}}

	out, err := f.app.RejectTrade(context.Background(), f.repo.trade.ID)
	if err != nil {
		t.Fatalf("RejectTrade returned error: %v", err)
	}
	if out.Status != models.TradeStatusRejected {
		t.Fatalf("expected rejected status, got %s", out.Status)
	}
}

func TestCancelTradeSettlesWithCancelledStatus(t *testing.T) {
	f := newTradeFixture()
	f.repo.trade = &TradeWithPlayers{Trade: models.Trade{
		ID: uuid.New(), FromTeamID: f.teamA, ToTeamID: f.teamB, Status: models.TradeStatusPending,
	}}

	out, err := f.app.CancelTrade(context.Background(), f.repo.trade.ID)
	if err != nil {
		t.Fatalf("CancelTrade returned error: %v", err)
	}
	if out.Status != models.TradeStatusCancelled {
		t.Fatalf("expected cancelled status, got %s", out.Status)
	}
}
