package fantasyteam

import (
	"github.com/google/uuid"
)

// CreateFantasyTeamRequest represents the data needed to join a league
type CreateFantasyTeamRequest struct {
	Name     string    `json:"name" validate:"required"`
	OwnerID  uuid.UUID `json:"owner_id" validate:"required"`
	LeagueID uuid.UUID `json:"league_id" validate:"required"`
	LogoURL  *string   `json:"logo_url,omitempty"`
}

// UpdateFantasyTeamRequest represents the data that can be updated for a team
type UpdateFantasyTeamRequest struct {
	Name    *string `json:"name,omitempty"`
	LogoURL *string `json:"logo_url,omitempty"`
}

// RecordResult bumps a team's standings after a matchup settles
type RecordResult struct {
	Wins   int
	Losses int
	Ties   int
	Points float64
}
