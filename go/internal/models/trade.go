package models

import (
	"time"

	"github.com/google/uuid"
)

// TradeStatus represents the lifecycle state of a trade
type TradeStatus string

const (
	TradeStatusPending   TradeStatus = "pending"
	TradeStatusAccepted  TradeStatus = "accepted"
	TradeStatusRejected  TradeStatus = "rejected"
	TradeStatusCancelled TradeStatus = "cancelled"
	TradeStatusCompleted TradeStatus = "completed"
)

// Terminal reports whether the trade can no longer change state.
func (s TradeStatus) Terminal() bool {
	return s == TradeStatusRejected || s == TradeStatusCancelled || s == TradeStatusCompleted
}

// Trade is a player exchange proposed between two fantasy teams
type Trade struct {
	ID             uuid.UUID   `json:"id"`
	FromTeamID     uuid.UUID   `json:"from_team_id"`
	ToTeamID       uuid.UUID   `json:"to_team_id"`
	Status         TradeStatus `json:"status"`
	Message        string      `json:"message"`
	ProposedAt     time.Time   `json:"proposed_at"`
	RespondedAt    *time.Time  `json:"responded_at,omitempty"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty"`
}

// TradePlayer is one player moving between teams as part of a trade
type TradePlayer struct {
	ID         uuid.UUID `json:"id"`
	TradeID    uuid.UUID `json:"trade_id"`
	PlayerID   uuid.UUID `json:"player_id"`
	FromTeamID uuid.UUID `json:"from_team_id"`
	ToTeamID   uuid.UUID `json:"to_team_id"`
}
