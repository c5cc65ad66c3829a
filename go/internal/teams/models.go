package teams

import (
	"time"

	"github.com/google/uuid"
)

// CreateConferenceRequest represents the data needed to create a conference
type CreateConferenceRequest struct {
	Name         string `json:"name" validate:"required"`
	Abbreviation string `json:"abbreviation" validate:"required"`
}

// CreateDivisionRequest represents the data needed to create a division
type CreateDivisionRequest struct {
	Name         string    `json:"name" validate:"required"`
	Abbreviation string    `json:"abbreviation" validate:"required"`
	ConferenceID uuid.UUID `json:"conference_id" validate:"required"`
}

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	Name           string    `json:"name" validate:"required"`
	City           string    `json:"city" validate:"required"`
	Abbreviation   string    `json:"abbreviation" validate:"required"`
	DivisionID     uuid.UUID `json:"division_id" validate:"required"`
	FoundedYear    *int      `json:"founded_year,omitempty"`
	ArenaName      *string   `json:"arena_name,omitempty"`
	ArenaCapacity  *int      `json:"arena_capacity,omitempty"`
	PrimaryColor   *string   `json:"primary_color,omitempty"`
	SecondaryColor *string   `json:"secondary_color,omitempty"`
	LogoURL        *string   `json:"logo_url,omitempty"`
}

// UpdateTeamRequest represents the data that can be updated for a team
type UpdateTeamRequest struct {
	Name           *string `json:"name,omitempty"`
	City           *string `json:"city,omitempty"`
	Abbreviation   *string `json:"abbreviation,omitempty"`
	FoundedYear    *int    `json:"founded_year,omitempty"`
	ArenaName      *string `json:"arena_name,omitempty"`
	ArenaCapacity  *int    `json:"arena_capacity,omitempty"`
	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
	LogoURL        *string `json:"logo_url,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

// CreateSeasonRequest represents the data needed to create a season
type CreateSeasonRequest struct {
	Name              string     `json:"name" validate:"required"` // e.g. "2024-25"
	StartDate         time.Time  `json:"start_date" validate:"required"`
	EndDate           time.Time  `json:"end_date" validate:"required"`
	PlayoffsStartDate *time.Time `json:"playoffs_start_date,omitempty"`
	IsCurrent         bool       `json:"is_current"`
}
