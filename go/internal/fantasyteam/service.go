package fantasyteam

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/httpx"
	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// FantasyTeamApp defines what the service layer needs from the app layer
type FantasyTeamApp interface {
	CreateTeam(ctx context.Context, req CreateFantasyTeamRequest) (*models.FantasyTeam, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error)
	GetStandings(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error)
	ListTeamsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateFantasyTeamRequest) (*models.FantasyTeam, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}

// Service exposes fantasy teams and standings over HTTP
type Service struct {
	app FantasyTeamApp
}

// NewService creates a new fantasy team Service
func NewService(app FantasyTeamApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the fantasy team routes on the given router group
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/fantasy-teams", s.handleCreateTeam)
	rg.GET("/fantasy-teams", s.handleListTeams)
	rg.GET("/fantasy-teams/:id", s.handleGetTeam)
	rg.PATCH("/fantasy-teams/:id", s.handleUpdateTeam)
	rg.DELETE("/fantasy-teams/:id", s.handleDeleteTeam)

	rg.GET("/leagues/:id/standings", s.handleGetStandings)
}

func (s *Service) handleCreateTeam(c *gin.Context) {
	var req CreateFantasyTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	team, err := s.app.CreateTeam(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

func (s *Service) handleListTeams(c *gin.Context) {
	if v := c.Query("owner_id"); v != "" {
		ownerID, err := uuid.Parse(v)
		if err != nil {
			httpx.BadRequest(c, "invalid owner id")
			return
		}
		teams, err := s.app.ListTeamsByOwner(c.Request.Context(), ownerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"fantasy_teams": teams})
		return
	}

	if v := c.Query("league_id"); v != "" {
		leagueID, err := uuid.Parse(v)
		if err != nil {
			httpx.BadRequest(c, "invalid league id")
			return
		}
		teams, err := s.app.GetStandings(c.Request.Context(), leagueID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"fantasy_teams": teams})
		return
	}

	httpx.BadRequest(c, "owner_id or league_id query parameter is required")
}

func (s *Service) handleGetTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid fantasy team id")
		return
	}
	team, err := s.app.GetTeam(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

func (s *Service) handleUpdateTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid fantasy team id")
		return
	}
	var req UpdateFantasyTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	team, err := s.app.UpdateTeam(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

func (s *Service) handleDeleteTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid fantasy team id")
		return
	}
	if err := s.app.DeleteTeam(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Service) handleGetStandings(c *gin.Context) {
	leagueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid league id")
		return
	}
	teams, err := s.app.GetStandings(c.Request.Context(), leagueID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"standings": teams})
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
