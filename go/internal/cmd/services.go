package main

import (
	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"

	"github.com/rinkside/fantasyhockey/go/internal/fantasyteam"
	"github.com/rinkside/fantasyhockey/go/internal/games"
	"github.com/rinkside/fantasyhockey/go/internal/leagues"
	"github.com/rinkside/fantasyhockey/go/internal/player"
	"github.com/rinkside/fantasyhockey/go/internal/roster"
	"github.com/rinkside/fantasyhockey/go/internal/schedule"
	"github.com/rinkside/fantasyhockey/go/internal/scoring"
	"github.com/rinkside/fantasyhockey/go/internal/teams"
	"github.com/rinkside/fantasyhockey/go/internal/trade"
	"github.com/rinkside/fantasyhockey/go/internal/users"
)

type Services struct {
	Teams       *teams.Service
	Players     *player.Service
	Users       *users.Service
	Games       *games.Service
	League      *leagues.Service
	FantasyTeam *fantasyteam.Service
	Roster      *roster.Service
	Trade       *trade.Service
	Schedule    *schedule.Service
	Scoring     *scoring.Service
}

func setupServices(database *sqlx.DB, config *Config) *Services {
	// Wire up dependency injection chain
	// Repository layer → App layer → Service layer

	// Teams
	teamsRepo := teams.NewRepository(database)
	teamsApp := teams.NewApp(teamsRepo)
	teamsService := teams.NewService(teamsApp)

	// Players
	playerRepo := player.NewRepository(database)
	playerApp := player.NewApp(playerRepo)
	playerService := player.NewService(playerApp)

	// Users
	userRepo := users.NewRepository(database)
	userApp := users.NewApp(userRepo)
	userService := users.NewService(userApp)

	// Games
	gamesRepo := games.NewRepository(database)
	gamesApp := games.NewApp(gamesRepo)
	gamesService := games.NewService(gamesApp)

	// Leagues
	leagueRepo := leagues.NewRepository(database)
	leagueApp := leagues.NewApp(leagueRepo)
	if config.Scoring != nil {
		leagueApp = leagueApp.WithScoringDefaults(*config.Scoring)
	}
	leagueService := leagues.NewService(leagueApp)

	// FantasyTeam
	fantasyTeamRepo := fantasyteam.NewRepository(database)
	fantasyTeamApp := fantasyteam.NewApp(fantasyTeamRepo, leagueApp)
	fantasyTeamService := fantasyteam.NewService(fantasyTeamApp)

	// Roster
	rosterRepo := roster.NewRepository(database)
	rosterApp := roster.NewApp(rosterRepo, fantasyTeamApp, leagueApp, playerApp)
	rosterService := roster.NewService(rosterApp)

	// Trade
	tradeRepo := trade.NewRepository(database)
	tradeApp := trade.NewApp(tradeRepo, fantasyTeamApp, rosterApp)
	tradeService := trade.NewService(tradeApp)

	// Schedule
	scheduleRepo := schedule.NewRepository(database)
	scheduleApp := schedule.NewApp(scheduleRepo, fantasyTeamApp, clockwork.NewRealClock())
	scheduleService := schedule.NewService(scheduleApp)

	// Scoring
	scoringRepo := scoring.NewRepository(database)
	scoringApp := scoring.NewApp(scoringRepo, scheduleRepo, leagueApp, rosterApp)
	scoringService := scoring.NewService(scoringApp)

	return &Services{
		Teams:       teamsService,
		Players:     playerService,
		Users:       userService,
		Games:       gamesService,
		League:      leagueService,
		FantasyTeam: fantasyTeamService,
		Roster:      rosterService,
		Trade:       tradeService,
		Schedule:    scheduleService,
		Scoring:     scoringService,
	}
}
