package models

import (
	"time"

	"github.com/google/uuid"
)

// SlotPosition is the roster slot a player occupies on a fantasy team
type SlotPosition string

const (
	SlotPositionCenter       SlotPosition = "C"
	SlotPositionLeftWing     SlotPosition = "LW"
	SlotPositionRightWing    SlotPosition = "RW"
	SlotPositionLeftDefense  SlotPosition = "LD"
	SlotPositionRightDefense SlotPosition = "RD"
	SlotPositionGoalie       SlotPosition = "G"
	SlotPositionBench        SlotPosition = "BN"
	SlotPositionIR           SlotPosition = "IR"
)

// Starting reports whether the slot counts toward the active lineup.
func (p SlotPosition) Starting() bool {
	return p != SlotPositionBench && p != SlotPositionIR
}

// RosterSlot binds a player to a fantasy team in a specific slot
type RosterSlot struct {
	ID            uuid.UUID    `json:"id"`
	FantasyTeamID uuid.UUID    `json:"fantasy_team_id"`
	PlayerID      uuid.UUID    `json:"player_id"`
	Slot          SlotPosition `json:"slot"`
	AcquiredAt    time.Time    `json:"acquired_at"`
}
