package scoring

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/httpx"
	"github.com/rinkside/fantasyhockey/go/internal/models"
	"github.com/rinkside/fantasyhockey/go/internal/schedule"
)

// ScoringApp defines what the service layer needs from the app layer
type ScoringApp interface {
	ScoreWeek(ctx context.Context, weekID uuid.UUID) ([]models.Matchup, error)
	FinalizeWeek(ctx context.Context, weekID uuid.UUID) ([]models.Matchup, error)
	FinalizeMatchup(ctx context.Context, matchupID uuid.UUID) (*models.Matchup, error)
	ListFantasyStats(ctx context.Context, teamID, weekID uuid.UUID) ([]models.PlayerFantasyStats, error)
}

// Service exposes fantasy scoring over HTTP
type Service struct {
	app ScoringApp
}

// NewService creates a new scoring Service
func NewService(app ScoringApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the scoring routes on the given router group
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/weeks/:id/score", s.handleScoreWeek)
	rg.POST("/weeks/:id/finalize", s.handleFinalizeWeek)
	rg.POST("/matchups/:id/finalize", s.handleFinalizeMatchup)
	rg.GET("/fantasy-teams/:id/weeks/:weekID/stats", s.handleListFantasyStats)
}

func (s *Service) handleScoreWeek(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid week id")
		return
	}
	matchups, err := s.app.ScoreWeek(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchups": matchups})
}

func (s *Service) handleFinalizeWeek(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid week id")
		return
	}
	matchups, err := s.app.FinalizeWeek(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchups": matchups})
}

func (s *Service) handleFinalizeMatchup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid matchup id")
		return
	}
	matchup, err := s.app.FinalizeMatchup(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matchup)
}

func (s *Service) handleListFantasyStats(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid team id")
		return
	}
	weekID, err := uuid.Parse(c.Param("weekID"))
	if err != nil {
		httpx.BadRequest(c, "invalid week id")
		return
	}
	stats, err := s.app.ListFantasyStats(c.Request.Context(), teamID, weekID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// respondError maps repository sentinels onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, schedule.ErrNotFound):
		httpx.NotFound(c, err.Error())
	case errors.Is(err, ErrAlreadyComplete):
		httpx.Conflict(c, err.Error())
	default:
		httpx.Internal(c, err)
	}
}
