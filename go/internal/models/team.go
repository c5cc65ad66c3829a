package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Conference represents an NHL conference (Eastern, Western)
type Conference struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	CreatedAt    time.Time `json:"created_at"`
}

// Division represents an NHL division within a conference
type Division struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	ConferenceID uuid.UUID `json:"conference_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Team represents an NHL team
type Team struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	Abbreviation   string    `json:"abbreviation"`
	DivisionID     uuid.UUID `json:"division_id"`
	FoundedYear    *int      `json:"founded_year,omitempty"`
	ArenaName      *string   `json:"arena_name,omitempty"`
	ArenaCapacity  *int      `json:"arena_capacity,omitempty"`
	PrimaryColor   *string   `json:"primary_color,omitempty"`   // hex color
	SecondaryColor *string   `json:"secondary_color,omitempty"` // hex color
	LogoURL        *string   `json:"logo_url,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FullName returns "City Name", e.g. "Boston Bruins"
func (t Team) FullName() string {
	return fmt.Sprintf("%s %s", t.City, t.Name)
}

// Season represents an NHL season, e.g. "2024-25"
type Season struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           time.Time  `json:"end_date"`
	PlayoffsStartDate *time.Time `json:"playoffs_start_date,omitempty"`
	IsCurrent         bool       `json:"is_current"`
	CreatedAt         time.Time  `json:"created_at"`
}
