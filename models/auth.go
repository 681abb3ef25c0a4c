package models

// AuthenticatedUser is the identity attached to a request once its bearer
// token has been verified. It is built from token claims only.
type AuthenticatedUser struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	EmailHMAC        string `json:"emailHmac"`
	WebAuthnVerified bool   `json:"webAuthnVerified,omitempty"`

	// IssuedAt and ExpiresAt are unix seconds taken from the iat/exp claims.
	IssuedAt  int64 `json:"iat,omitempty"`
	ExpiresAt int64 `json:"exp,omitempty"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
	Timezone string `json:"timezone,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register, login and a successful WebAuthn
// assertion.
type AuthResponse struct {
	Token string            `json:"token"`
	User  AuthenticatedUser `json:"user"`
}
