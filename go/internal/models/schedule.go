package models

import (
	"time"

	"github.com/google/uuid"
)

// FantasyWeek is one scoring period within a league's season
type FantasyWeek struct {
	ID         uuid.UUID `json:"id"`
	LeagueID   uuid.UUID `json:"league_id"`
	WeekNumber int       `json:"week_number"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	IsPlayoffs bool      `json:"is_playoffs"`
}

// Contains reports whether t falls inside the week's date range
// (inclusive on both ends).
func (w FantasyWeek) Contains(t time.Time) bool {
	return !t.Before(w.StartDate) && !t.After(w.EndDate)
}

// Matchup is a head-to-head pairing of two fantasy teams for one week
type Matchup struct {
	ID         uuid.UUID `json:"id"`
	WeekID     uuid.UUID `json:"week_id"`
	Team1ID    uuid.UUID `json:"team1_id"`
	Team2ID    uuid.UUID `json:"team2_id"`
	Team1Score float64   `json:"team1_score"`
	Team2Score float64   `json:"team2_score"`
	IsComplete bool      `json:"is_complete"`
}

// WinnerTeamID returns the winning team's id, or nil for incomplete
// matchups and ties.
func (m Matchup) WinnerTeamID() *uuid.UUID {
	if !m.IsComplete {
		return nil
	}
	switch {
	case m.Team1Score > m.Team2Score:
		return &m.Team1ID
	case m.Team2Score > m.Team1Score:
		return &m.Team2ID
	}
	return nil
}
