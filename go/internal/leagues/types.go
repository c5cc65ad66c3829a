package leagues

import (
	"time"

	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// CreateLeagueRequest represents the data needed to create a league
type CreateLeagueRequest struct {
	Name               string                  `json:"name" validate:"required"`
	Description        string                  `json:"description"`
	SeasonID           uuid.UUID               `json:"season_id" validate:"required"`
	MaxTeams           int                     `json:"max_teams"`
	RosterSize         int                     `json:"roster_size"`
	StartingLineupSize int                     `json:"starting_lineup_size"`
	ScoringSystem      models.ScoringSystem    `json:"scoring_system"`
	DraftType          models.DraftType        `json:"draft_type"`
	DraftDate          *time.Time              `json:"draft_date,omitempty"`
	IsPublic           bool                    `json:"is_public"`
	CommissionerID     uuid.UUID               `json:"commissioner_id" validate:"required"`
	ScoringSettings    *models.ScoringSettings `json:"scoring_settings,omitempty"`
}

// UpdateLeagueRequest represents the data that can be updated for a league
type UpdateLeagueRequest struct {
	Name            *string                 `json:"name,omitempty"`
	Description     *string                 `json:"description,omitempty"`
	MaxTeams        *int                    `json:"max_teams,omitempty"`
	DraftDate       *time.Time              `json:"draft_date,omitempty"`
	IsDrafted       *bool                   `json:"is_drafted,omitempty"`
	IsActive        *bool                   `json:"is_active,omitempty"`
	IsPublic        *bool                   `json:"is_public,omitempty"`
	ScoringSettings *models.ScoringSettings `json:"scoring_settings,omitempty"`
}

// ListLeaguesFilter narrows league listings
type ListLeaguesFilter struct {
	SeasonID       *uuid.UUID
	CommissionerID *uuid.UUID
	PublicOnly     bool
	ActiveOnly     bool
}
