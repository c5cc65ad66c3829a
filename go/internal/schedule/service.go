package schedule

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/httpx"
	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// ScheduleApp defines what the service layer needs from the app layer
type ScheduleApp interface {
	GenerateSchedule(ctx context.Context, leagueID uuid.UUID, req GenerateScheduleRequest) ([]WeekWithMatchups, error)
	GetCurrentWeek(ctx context.Context, leagueID uuid.UUID) (*models.FantasyWeek, error)
	GetWeek(ctx context.Context, id uuid.UUID) (*models.FantasyWeek, error)
	ListWeeks(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyWeek, error)
	GetMatchup(ctx context.Context, id uuid.UUID) (*models.Matchup, error)
	ListMatchupsByWeek(ctx context.Context, weekID uuid.UUID) ([]models.Matchup, error)
}

// Service exposes league schedules over HTTP
type Service struct {
	app ScheduleApp
}

// NewService creates a new schedule Service
func NewService(app ScheduleApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the schedule routes on the given router group
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/leagues/:id/schedule", s.handleGenerateSchedule)
	rg.GET("/leagues/:id/weeks", s.handleListWeeks)
	rg.GET("/leagues/:id/weeks/current", s.handleGetCurrentWeek)
	rg.GET("/weeks/:id", s.handleGetWeek)
	rg.GET("/weeks/:id/matchups", s.handleListMatchups)
	rg.GET("/matchups/:id", s.handleGetMatchup)
}

func (s *Service) handleGenerateSchedule(c *gin.Context) {
	leagueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid league id")
		return
	}
	var req GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	weeks, err := s.app.GenerateSchedule(c.Request.Context(), leagueID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"weeks": weeks})
}

func (s *Service) handleListWeeks(c *gin.Context) {
	leagueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid league id")
		return
	}
	weeks, err := s.app.ListWeeks(c.Request.Context(), leagueID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}

func (s *Service) handleGetCurrentWeek(c *gin.Context) {
	leagueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid league id")
		return
	}
	week, err := s.app.GetCurrentWeek(c.Request.Context(), leagueID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

func (s *Service) handleGetWeek(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid week id")
		return
	}
	week, err := s.app.GetWeek(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

func (s *Service) handleListMatchups(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid week id")
		return
	}
	matchups, err := s.app.ListMatchupsByWeek(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchups": matchups})
}

func (s *Service) handleGetMatchup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid matchup id")
		return
	}
	matchup, err := s.app.GetMatchup(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matchup)
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
