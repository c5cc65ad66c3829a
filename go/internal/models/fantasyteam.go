package models

import (
	"time"

	"github.com/google/uuid"
)

// FantasyTeam represents a user's team within a fantasy league
type FantasyTeam struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	OwnerID     uuid.UUID `json:"owner_id"`
	LeagueID    uuid.UUID `json:"league_id"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	Ties        int       `json:"ties"`
	TotalPoints float64   `json:"total_points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WinPercentage counts a tie as half a win.
func (t FantasyTeam) WinPercentage() float64 {
	total := t.Wins + t.Losses + t.Ties
	if total == 0 {
		return 0
	}
	return (float64(t.Wins) + float64(t.Ties)*0.5) / float64(total)
}
