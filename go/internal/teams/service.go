package teams

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/httpx"
	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// TeamsApp defines what the service layer needs from the app layer
type TeamsApp interface {
	CreateConference(ctx context.Context, req CreateConferenceRequest) (*models.Conference, error)
	ListConferences(ctx context.Context) ([]models.Conference, error)
	CreateDivision(ctx context.Context, req CreateDivisionRequest) (*models.Division, error)
	ListDivisions(ctx context.Context) ([]models.Division, error)
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetTeamByAbbreviation(ctx context.Context, abbreviation string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListTeamsByDivision(ctx context.Context, divisionID uuid.UUID) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error)
	GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
	GetCurrentSeason(ctx context.Context) (*models.Season, error)
	ListSeasons(ctx context.Context) ([]models.Season, error)
	SetCurrentSeason(ctx context.Context, id uuid.UUID) (*models.Season, error)
}

// Service exposes reference data over HTTP
type Service struct {
	app TeamsApp
}

// NewService creates a new teams Service
func NewService(app TeamsApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the teams routes on the given router group
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/conferences", s.handleCreateConference)
	rg.GET("/conferences", s.handleListConferences)

	rg.POST("/divisions", s.handleCreateDivision)
	rg.GET("/divisions", s.handleListDivisions)

	rg.POST("/teams", s.handleCreateTeam)
	rg.GET("/teams", s.handleListTeams)
	rg.GET("/teams/:id", s.handleGetTeam)
	rg.PATCH("/teams/:id", s.handleUpdateTeam)
	rg.DELETE("/teams/:id", s.handleDeleteTeam)

	rg.POST("/seasons", s.handleCreateSeason)
	rg.GET("/seasons", s.handleListSeasons)
	rg.GET("/seasons/current", s.handleGetCurrentSeason)
	rg.GET("/seasons/:id", s.handleGetSeason)
	rg.POST("/seasons/:id/current", s.handleSetCurrentSeason)
}

func (s *Service) handleCreateConference(c *gin.Context) {
	var req CreateConferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	conf, err := s.app.CreateConference(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conf)
}

func (s *Service) handleListConferences(c *gin.Context) {
	confs, err := s.app.ListConferences(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conferences": confs})
}

func (s *Service) handleCreateDivision(c *gin.Context) {
	var req CreateDivisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	div, err := s.app.CreateDivision(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, div)
}

func (s *Service) handleListDivisions(c *gin.Context) {
	divs, err := s.app.ListDivisions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"divisions": divs})
}

func (s *Service) handleCreateTeam(c *gin.Context) {
	var req CreateTeamRequest
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

func (s *Service) handleGetTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid team id")
		return
	}
	team, err := s.app.GetTeam(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

func (s *Service) handleListTeams(c *gin.Context) {
	if abbr := c.Query("abbreviation"); abbr != "" {
		team, err := s.app.GetTeamByAbbreviation(c.Request.Context(), abbr)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"teams": []models.Team{*team}})
		return
	}

	if div := c.Query("division_id"); div != "" {
		divisionID, err := uuid.Parse(div)
		if err != nil {
			httpx.BadRequest(c, "invalid division id")
			return
		}
		teams, err := s.app.ListTeamsByDivision(c.Request.Context(), divisionID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"teams": teams})
		return
	}

	teams, err := s.app.ListTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

func (s *Service) handleUpdateTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid team id")
		return
	}
	var req UpdateTeamRequest
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
		httpx.BadRequest(c, "invalid team id")
		return
	}
	if err := s.app.DeleteTeam(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Service) handleCreateSeason(c *gin.Context) {
	var req CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	season, err := s.app.CreateSeason(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, season)
}

func (s *Service) handleListSeasons(c *gin.Context) {
	seasons, err := s.app.ListSeasons(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seasons": seasons})
}

func (s *Service) handleGetSeason(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid season id")
		return
	}
	season, err := s.app.GetSeason(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, season)
}

func (s *Service) handleGetCurrentSeason(c *gin.Context) {
	season, err := s.app.GetCurrentSeason(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, season)
}

func (s *Service) handleSetCurrentSeason(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid season id")
		return
	}
	season, err := s.app.SetCurrentSeason(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, season)
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
