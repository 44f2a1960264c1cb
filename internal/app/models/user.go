package models

// UserProfile mirrors the profile fields served by the auth gateway.
type UserProfile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
