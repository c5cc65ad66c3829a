package trade

import (
	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// ProposedPlayer is one player offered in a trade proposal
type ProposedPlayer struct {
	PlayerID   uuid.UUID `json:"player_id" validate:"required"`
	FromTeamID uuid.UUID `json:"from_team_id" validate:"required"`
	ToTeamID   uuid.UUID `json:"to_team_id" validate:"required"`
}

// ProposeTradeRequest represents a trade offer between two fantasy teams
type ProposeTradeRequest struct {
	FromTeamID uuid.UUID        `json:"from_team_id" validate:"required"`
	ToTeamID   uuid.UUID        `json:"to_team_id" validate:"required"`
	Message    string           `json:"message"`
	Players    []ProposedPlayer `json:"players" validate:"required"`
}

// TradeWithPlayers bundles a trade with the players moving in it
type TradeWithPlayers struct {
	models.Trade
	Players []models.TradePlayer `json:"players"`
}
