package models

import (
	"time"

	"github.com/google/uuid"
)

type WaitlistEntry struct {
	ID        uuid.UUID `json:"id"`
	Name      *string   `json:"name"`
	Email     string    `json:"email"`
	Instagram *string   `json:"instagram"`
	RefCode   *string   `json:"ref_code"`
	CreatedAt time.Time `json:"created_at"`
}

type WaitlistSignupRequest struct {
	Name      string `json:"name"      validate:"omitempty,max=100"`
	Email     string `json:"email"     validate:"required,email"`
	Instagram string `json:"instagram" validate:"omitempty,max=100"`
	Ref       string `json:"ref"       validate:"omitempty,max=50"`
}
