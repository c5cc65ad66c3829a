package trade

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/httpx"
)

// TradeApp defines what the service layer needs from the app layer
type TradeApp interface {
	ProposeTrade(ctx context.Context, req ProposeTradeRequest) (*TradeWithPlayers, error)
	GetTrade(ctx context.Context, id uuid.UUID) (*TradeWithPlayers, error)
	ListTradesByTeam(ctx context.Context, teamID uuid.UUID) ([]TradeWithPlayers, error)
	AcceptTrade(ctx context.Context, id uuid.UUID) (*TradeWithPlayers, error)
	RejectTrade(ctx context.Context, id uuid.UUID) (*TradeWithPlayers, error)
	CancelTrade(ctx context.Context, id uuid.UUID) (*TradeWithPlayers, error)
}

// Service exposes trades over HTTP
type Service struct {
	app TradeApp
}

// NewService creates a new trade Service
func NewService(app TradeApp) *Service {
	return &Service{app: app}
}

// RegisterRoutes mounts the trade routes on the given router group
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/trades", s.handleProposeTrade)
	rg.GET("/trades", s.handleListTrades)
	rg.GET("/trades/:id", s.handleGetTrade)
	rg.POST("/trades/:id/accept", s.handleAcceptTrade)
	rg.POST("/trades/:id/reject", s.handleRejectTrade)
	rg.POST("/trades/:id/cancel", s.handleCancelTrade)
}

func (s *Service) handleProposeTrade(c *gin.Context) {
	var req ProposeTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	t, err := s.app.ProposeTrade(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (s *Service) handleListTrades(c *gin.Context) {
	teamID, err := uuid.Parse(c.Query("team_id"))
	if err != nil {
		httpx.BadRequest(c, "team_id query parameter is required")
		return
	}
	trades, err := s.app.ListTradesByTeam(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trades": trades})
}

func (s *Service) handleGetTrade(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid trade id")
		return
	}
	t, err := s.app.GetTrade(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Service) handleAcceptTrade(c *gin.Context) {
	s.respond(c, s.app.AcceptTrade)
}

func (s *Service) handleRejectTrade(c *gin.Context) {
	s.respond(c, s.app.RejectTrade)
}

func (s *Service) handleCancelTrade(c *gin.Context) {
	s.respond(c, s.app.CancelTrade)
}

func (s *Service) respond(c *gin.Context, fn func(context.Context, uuid.UUID) (*TradeWithPlayers, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpx.BadRequest(c, "invalid trade id")
		return
	}
	t, err := fn(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// respondError maps repository sentinels onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.NotFound(c, err.Error())
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrNotPending), errors.Is(err, ErrPlayerNotOnRoster):
		httpx.Conflict(c, err.Error())
	default:
		httpx.Internal(c, err)
	}
}
