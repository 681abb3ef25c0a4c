package models

import "time"

// User represents an account of the service.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned identifier (UUIDv7).
	ID string `json:"id"`

	// Email is the normalised (trimmed, lower-cased) e-mail address.
	Email string `json:"email"`

	// EmailHMAC is the keyed HMAC of Email used for privacy-preserving lookups.
	EmailHMAC string `json:"emailHmac"`

	// Name is the display name of the user.
	Name string `json:"name,omitempty"`

	// Password is the plain-text password received on register/login.
	// It is cleared before the user leaves the service layer.
	Password string `json:"password,omitempty"`

	// PasswordHash is the Argon2id encoded hash of the password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Timezone is the IANA name of the user's timezone, "UTC" by default.
	Timezone string `json:"timezone,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
