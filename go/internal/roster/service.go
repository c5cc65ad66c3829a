package roster

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/httpx"
	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// RosterApp defines what the service layer needs from the app layer
type RosterApp interface {
	AddPlayer(ctx context.Context, teamID uuid.UUID, req AddPlayerRequest) (*models.RosterSlot, error)
	DropPlayer(ctx context.Context, teamID, playerID uuid.UUID) error
	MovePlayer(ctx context.Context, teamID, playerID uuid.UUID, req MovePlayerRequest) (*models.RosterSlot, error)
	ListRoster(ctx context.Context, teamID uuid.UUID) ([]models.RosterSlot, error)
}

// Service exposes roster management over HTTP
type Service struct {
	app RosterApp
}

// NewService creates a new roster Service
func NewService(app RosterApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the roster routes on the given router group
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/fantasy-teams/:id/roster", s.handleListRoster)
	rg.POST("/fantasy-teams/:id/roster", s.handleAddPlayer)
	rg.PATCH("/fantasy-teams/:id/roster/:playerID", s.handleMovePlayer)
	rg.DELETE("/fantasy-teams/:id/roster/:playerID", s.handleDropPlayer)
}

func (s *Service) handleListRoster(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid fantasy team id")
		return
	}
	slots, err := s.app.ListRoster(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roster": slots})
}

func (s *Service) handleAddPlayer(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid fantasy team id")
		return
	}
	var req AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	slot, err := s.app.AddPlayer(c.Request.Context(), teamID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func (s *Service) handleMovePlayer(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid fantasy team id")
		return
	}
	playerID, err := uuid.Parse(c.Param("playerID"))
	if err != nil {
		httpx.BadRequest(c, "invalid player id")
		return
	}
	var req MovePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	slot, err := s.app.MovePlayer(c.Request.Context(), teamID, playerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

func (s *Service) handleDropPlayer(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid fantasy team id")
		return
	}
	playerID, err := uuid.Parse(c.Param("playerID"))
	if err != nil {
		httpx.BadRequest(c, "invalid player id")
		return
	}
	if err := s.app.DropPlayer(c.Request.Context(), teamID, playerID); err != nil {
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
