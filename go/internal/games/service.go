package games

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/httpx"
	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// GamesApp defines what the service layer needs from the app layer
type GamesApp interface {
	CreateGame(ctx context.Context, req CreateGameRequest) (*models.Game, error)
	GetGame(ctx context.Context, id uuid.UUID) (*models.Game, error)
	ListGames(ctx context.Context, filter ListGamesFilter) ([]models.Game, error)
	UpdateGame(ctx context.Context, id uuid.UUID, req UpdateGameRequest) (*models.Game, error)
	FinalizeGame(ctx context.Context, id uuid.UUID, req FinalizeGameRequest) (*models.Game, error)
	DeleteGame(ctx context.Context, id uuid.UUID) error
	RecordEvent(ctx context.Context, gameID uuid.UUID, req RecordEventRequest) (*models.GameEvent, error)
	ListEvents(ctx context.Context, gameID uuid.UUID) ([]models.GameEvent, error)
	RecordGoal(ctx context.Context, gameID uuid.UUID, req RecordGoalRequest) (*models.Goal, error)
	ListGoals(ctx context.Context, gameID uuid.UUID) ([]models.Goal, error)
	UpsertGameStats(ctx context.Context, gameID uuid.UUID, req UpsertGameStatsRequest) (*models.PlayerGameStats, error)
	ListGameStats(ctx context.Context, gameID uuid.UUID) ([]models.PlayerGameStats, error)
	ListPlayerGameStatsBetween(ctx context.Context, playerID uuid.UUID, from, to time.Time) ([]models.PlayerGameStats, error)
}

// Service exposes games, events, goals and per-game stats over HTTP
type Service struct {
	app GamesApp
}

// NewService creates a new games Service
func NewService(app GamesApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the game routes on the given router group
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/games", s.handleCreateGame)
	rg.GET("/games", s.handleListGames)
	rg.GET("/games/:id", s.handleGetGame)
	rg.PATCH("/games/:id", s.handleUpdateGame)
	rg.DELETE("/games/:id", s.handleDeleteGame)
	rg.POST("/games/:id/finalize", s.handleFinalizeGame)

	rg.POST("/games/:id/events", s.handleRecordEvent)
	rg.GET("/games/:id/events", s.handleListEvents)
	rg.POST("/games/:id/goals", s.handleRecordGoal)
	rg.GET("/games/:id/goals", s.handleListGoals)
	rg.PUT("/games/:id/stats", s.handleUpsertGameStats)
	rg.GET("/games/:id/stats", s.handleListGameStats)
	rg.GET("/players/:id/game-stats", s.handleListPlayerGameStats)
}

func (s *Service) handleCreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	game, err := s.app.CreateGame(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

func (s *Service) handleListGames(c *gin.Context) {
	var filter ListGamesFilter
	if v := c.Query("team_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httpx.BadRequest(c, "invalid team id")
			return
		}
		filter.TeamID = &id
	}
	if v := c.Query("season_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httpx.BadRequest(c, "invalid season id")
			return
		}
		filter.SeasonID = &id
	}
	if v := c.Query("status"); v != "" {
		status := models.GameStatus(v)
		filter.Status = &status
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httpx.BadRequest(c, "invalid from timestamp")
			return
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httpx.BadRequest(c, "invalid to timestamp")
			return
		}
		filter.To = &t
	}

	games, err := s.app.ListGames(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

func (s *Service) handleGetGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid game id")
		return
	}
	game, err := s.app.GetGame(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (s *Service) handleUpdateGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid game id")
		return
	}
	var req UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	game, err := s.app.UpdateGame(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (s *Service) handleDeleteGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid game id")
		return
	}
	if err := s.app.DeleteGame(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Service) handleFinalizeGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid game id")
		return
	}
	var req FinalizeGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	game, err := s.app.FinalizeGame(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (s *Service) handleRecordEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid game id")
		return
	}
	var req RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	event, err := s.app.RecordEvent(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (s *Service) handleListEvents(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid game id")
		return
	}
	events, err := s.app.ListEvents(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *Service) handleRecordGoal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid game id")
		return
	}
	var req RecordGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	goal, err := s.app.RecordGoal(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (s *Service) handleListGoals(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid game id")
		return
	}
	goals, err := s.app.ListGoals(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

func (s *Service) handleUpsertGameStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid game id")
		return
	}
	var req UpsertGameStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	stats, err := s.app.UpsertGameStats(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Service) handleListGameStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid game id")
		return
	}
	stats, err := s.app.ListGameStats(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (s *Service) handleListPlayerGameStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid player id")
		return
	}
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		httpx.BadRequest(c, "invalid from timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		httpx.BadRequest(c, "invalid to timestamp")
		return
	}
	stats, err := s.app.ListPlayerGameStatsBetween(c.Request.Context(), id, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// respondError maps repository sentinels onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.NotFound(c, err.Error())
	case errors.Is(err, ErrAlreadyExists):
		httpx.Conflict(c, err.Error())
	default:
		httpx.Internal(c, err)
	}
}
