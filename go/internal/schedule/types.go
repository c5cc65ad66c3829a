package schedule

import (
	"time"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// GenerateScheduleRequest builds a league's weekly schedule
type GenerateScheduleRequest struct {
	StartDate    time.Time `json:"start_date" validate:"required"`
	Weeks        int       `json:"weeks" validate:"required"`
	PlayoffWeeks int       `json:"playoff_weeks"`
}

// CreateWeekRequest adds a single scoring week to a league
type CreateWeekRequest struct {
	WeekNumber int       `json:"week_number" validate:"required"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
	IsPlayoffs bool      `json:"is_playoffs"`
}

// WeekWithMatchups bundles a week with its matchups
type WeekWithMatchups struct {
	models.FantasyWeek
	Matchups []models.Matchup `json:"matchups"`
}
