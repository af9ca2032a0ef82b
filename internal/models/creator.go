package models

import (
	"time"

	"github.com/google/uuid"
)

// CreatorLink is one entry on a creator's public link-in-bio page.
type CreatorLink struct {
	Title string `json:"title" validate:"required,max=100"`
	URL   string `json:"url"   validate:"required,url"`
}

type Creator struct {
	ID          uuid.UUID     `json:"id"`
	Email       string        `json:"email"`
	Handle      string        `json:"handle"`
	DisplayName string        `json:"display_name"`
	Bio         string        `json:"bio"`
	AvatarURL   *string       `json:"avatar_url"`
	Links       []CreatorLink `json:"links"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type ReserveHandleRequest struct {
	Email  string `json:"email"  validate:"required,email"`
	Handle string `json:"handle" validate:"required,min=3,max=30,alphanum"`
}

type CreatorProfile struct {
	DisplayName string        `json:"display_name" validate:"omitempty,max=100"`
	Bio         string        `json:"bio"          validate:"omitempty,max=500"`
	AvatarURL   *string       `json:"avatar_url"   validate:"omitempty,url"`
	Links       []CreatorLink `json:"links"        validate:"omitempty,max=20,dive"`
}

type SaveProfileRequest struct {
	Email   string         `json:"email" validate:"required,email"`
	Profile CreatorProfile `json:"profile" validate:"required"`
}
