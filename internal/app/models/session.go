package models

import "time"

// Session holds the session-scoped credential state: the opaque upstream
// bearer token plus the profile fields mirrored for the session's lifetime.
type Session struct {
	SessionID string    `json:"session_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	AuthToken string    `json:"auth_token"`
	ExpiresAt time.Time `json:"expires_at"`
}
