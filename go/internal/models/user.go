package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a fantasy owner or commissioner account
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
