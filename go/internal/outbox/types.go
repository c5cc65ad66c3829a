package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the fantasy layer.
const (
	EventTradeProposed    = "trade.proposed"
	EventTradeAccepted    = "trade.accepted"
	EventTradeRejected    = "trade.rejected"
	EventTradeCancelled   = "trade.cancelled"
	EventMatchupFinalized = "matchup.finalized"
	EventWeekScored       = "week.scored"
)

// Event is a fantasy domain event staged in the outbox table
type Event struct {
	ID        uuid.UUID       `json:"id"`
	LeagueID  uuid.UUID       `json:"league_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	SentAt    *time.Time      `json:"sent_at,omitempty"`
}
