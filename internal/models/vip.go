package models

import "time"

type VIPPass struct {
	Code      string     `json:"code"`
	Active    bool       `json:"active"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// Expired reports whether the pass carries an expiry in the past. A pass
// without an expiry never expires.
func (p *VIPPass) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}

type ValidateVIPRequest struct {
	Code string `json:"code" validate:"required"`
}
