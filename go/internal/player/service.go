package player

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/httpx"
	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// PlayerApp defines what the service layer needs from the app layer
type PlayerApp interface {
	CreatePosition(ctx context.Context, req CreatePositionRequest) (*models.Position, error)
	ListPositions(ctx context.Context) ([]models.Position, error)
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetPlayerByNHLID(ctx context.Context, nhlID string) (*models.Player, error)
	ListPlayers(ctx context.Context, filter ListPlayersFilter) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id uuid.UUID, req UpdatePlayerRequest) (*models.Player, error)
	DeletePlayer(ctx context.Context, id uuid.UUID) error
	AssignTeam(ctx context.Context, playerID uuid.UUID, req AssignTeamRequest) (*models.PlayerTeamHistory, error)
	GetCurrentTeam(ctx context.Context, playerID uuid.UUID) (*models.PlayerTeamHistory, error)
	ListTeamHistory(ctx context.Context, playerID uuid.UUID) ([]models.PlayerTeamHistory, error)
	UpsertSeasonStats(ctx context.Context, req UpsertSeasonStatsRequest) (*models.PlayerSeasonStats, error)
	ListSeasonStatsByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.PlayerSeasonStats, error)
	ListSeasonStatsBySeason(ctx context.Context, seasonID uuid.UUID) ([]models.PlayerSeasonStats, error)
}

// Service exposes players, positions, team history and season stats over HTTP
type Service struct {
	app PlayerApp
}

// NewService creates a new player Service
func NewService(app PlayerApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the player routes on the given router group
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/positions", s.handleCreatePosition)
	rg.GET("/positions", s.handleListPositions)

	rg.POST("/players", s.handleCreatePlayer)
	rg.GET("/players", s.handleListPlayers)
	rg.GET("/players/:id", s.handleGetPlayer)
	rg.PATCH("/players/:id", s.handleUpdatePlayer)
	rg.DELETE("/players/:id", s.handleDeletePlayer)

	rg.POST("/players/:id/team", s.handleAssignTeam)
	rg.GET("/players/:id/team", s.handleGetCurrentTeam)
	rg.GET("/players/:id/history", s.handleListTeamHistory)

	rg.PUT("/players/:id/season-stats", s.handleUpsertSeasonStats)
	rg.GET("/players/:id/season-stats", s.handleListSeasonStats)
	rg.GET("/seasons/:id/player-stats", s.handleListSeasonStatsBySeason)
}

func (s *Service) handleCreatePosition(c *gin.Context) {
	var req CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	pos, err := s.app.CreatePosition(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pos)
}

func (s *Service) handleListPositions(c *gin.Context) {
	positions, err := s.app.ListPositions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"positions": positions})
}

func (s *Service) handleCreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	p, err := s.app.CreatePlayer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Service) handleListPlayers(c *gin.Context) {
	if nhlID := c.Query("nhl_id"); nhlID != "" {
		p, err := s.app.GetPlayerByNHLID(c.Request.Context(), nhlID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"players": []models.Player{*p}})
		return
	}

	var filter ListPlayersFilter
	if v := c.Query("position_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httpx.BadRequest(c, "invalid position id")
			return
		}
		filter.PositionID = &id
	}
	if v := c.Query("team_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httpx.BadRequest(c, "invalid team id")
			return
		}
		filter.TeamID = &id
	}
	filter.ActiveOnly = c.Query("active") == "true"
	filter.Search = c.Query("search")

	players, err := s.app.ListPlayers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

func (s *Service) handleGetPlayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid player id")
		return
	}
	p, err := s.app.GetPlayer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Service) handleUpdatePlayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid player id")
		return
	}
	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	p, err := s.app.UpdatePlayer(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Service) handleDeletePlayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid player id")
		return
	}
	if err := s.app.DeletePlayer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Service) handleAssignTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid player id")
		return
	}
	var req AssignTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	stint, err := s.app.AssignTeam(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stint)
}

func (s *Service) handleGetCurrentTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid player id")
		return
	}
	stint, err := s.app.GetCurrentTeam(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stint)
}

func (s *Service) handleListTeamHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid player id")
		return
	}
	history, err := s.app.ListTeamHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (s *Service) handleUpsertSeasonStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid player id")
		return
	}
	var req UpsertSeasonStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	req.PlayerID = id
	stats, err := s.app.UpsertSeasonStats(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Service) handleListSeasonStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid player id")
		return
	}
	stats, err := s.app.ListSeasonStatsByPlayer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"season_stats": stats})
}

func (s *Service) handleListSeasonStatsBySeason(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid season id")
		return
	}
	stats, err := s.app.ListSeasonStatsBySeason(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"season_stats": stats})
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
