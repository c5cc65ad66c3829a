package roster

import (
	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

// AddPlayerRequest places a player onto a fantasy team's roster
type AddPlayerRequest struct {
	PlayerID uuid.UUID           `json:"player_id" validate:"required"`
	Slot     models.SlotPosition `json:"slot" validate:"required"`
}

// MovePlayerRequest changes the slot a rostered player occupies
type MovePlayerRequest struct {
	Slot models.SlotPosition `json:"slot" validate:"required"`
}
