package leagues

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/httpx"
	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// LeaguesApp defines what the service layer needs from the app layer
type LeaguesApp interface {
	CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error)
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListLeagues(ctx context.Context, filter ListLeaguesFilter) ([]models.League, error)
	UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error)
	DeleteLeague(ctx context.Context, id uuid.UUID) error
}

// Service exposes league management over HTTP
type Service struct {
	app LeaguesApp
}

// NewService creates a new leagues Service
func NewService(app LeaguesApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the league routes on the given router group
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/leagues", s.handleCreateLeague)
	rg.GET("/leagues", s.handleListLeagues)
	rg.GET("/leagues/:id", s.handleGetLeague)
	rg.PATCH("/leagues/:id", s.handleUpdateLeague)
	rg.DELETE("/leagues/:id", s.handleDeleteLeague)
}

func (s *Service) handleCreateLeague(c *gin.Context) {
	var req CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	league, err := s.app.CreateLeague(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, league)
}

func (s *Service) handleListLeagues(c *gin.Context) {
	var filter ListLeaguesFilter
	if v := c.Query("season_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httpx.BadRequest(c, "invalid season id")
			return
		}
		filter.SeasonID = &id
	}
	if v := c.Query("commissioner_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httpx.BadRequest(c, "invalid commissioner id")
			return
		}
		filter.CommissionerID = &id
	}
	filter.PublicOnly = c.Query("public") == "true"
	filter.ActiveOnly = c.Query("active") == "true"

	leagues, err := s.app.ListLeagues(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leagues": leagues})
}

func (s *Service) handleGetLeague(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid league id")
		return
	}
	league, err := s.app.GetLeague(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, league)
}

func (s *Service) handleUpdateLeague(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid league id")
		return
	}
	var req UpdateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	league, err := s.app.UpdateLeague(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, league)
}

func (s *Service) handleDeleteLeague(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid league id")
		return
	}
	if err := s.app.DeleteLeague(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
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
