package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser holds credentials from auth_users.
type AuthUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
