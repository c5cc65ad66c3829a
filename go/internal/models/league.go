package models

import (
	"time"

	"github.com/google/uuid"
)

// ScoringSystem represents how a league scores its matchups
type ScoringSystem string

const (
	ScoringSystemPoints     ScoringSystem = "points"
	ScoringSystemCategories ScoringSystem = "categories"
	ScoringSystemRotisserie ScoringSystem = "rotisserie"
	ScoringSystemHeadToHead ScoringSystem = "head_to_head"
)

// DraftType represents the league's draft format
type DraftType string

const (
	DraftTypeSnake   DraftType = "snake"
	DraftTypeLinear  DraftType = "linear"
	DraftTypeAuction DraftType = "auction"
)

// League represents a fantasy league bound to an NHL season
type League struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	SeasonID           uuid.UUID       `json:"season_id"`
	MaxTeams           int             `json:"max_teams"` // 4-20
	RosterSize         int             `json:"roster_size"`
	StartingLineupSize int             `json:"starting_lineup_size"`
	ScoringSystem      ScoringSystem   `json:"scoring_system"`
	DraftType          DraftType       `json:"draft_type"`
	DraftDate          *time.Time      `json:"draft_date,omitempty"`
	IsDrafted          bool            `json:"is_drafted"`
	IsActive           bool            `json:"is_active"`
	IsPublic           bool            `json:"is_public"`
	CommissionerID     uuid.UUID       `json:"commissioner_id"`
	ScoringSettings    ScoringSettings `json:"scoring_settings"` // stored as JSONB
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
