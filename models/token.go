package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of every access token issued by the service.
//
// The registered "sub" claim carries the user ID; the remaining fields mirror
// [AuthenticatedUser].
type TokenClaims struct {
	jwt.RegisteredClaims

	Email            string `json:"email"`
	EmailHMAC        string `json:"emailHmac"`
	WebAuthnVerified bool   `json:"webAuthnVerified,omitempty"`
}

// AuthenticatedUser converts the claims into the request identity.
func (c *TokenClaims) AuthenticatedUser() AuthenticatedUser {
	user := AuthenticatedUser{
		ID:               c.Subject,
		Email:            c.Email,
		EmailHMAC:        c.EmailHMAC,
		WebAuthnVerified: c.WebAuthnVerified,
	}
	if c.IssuedAt != nil {
		user.IssuedAt = c.IssuedAt.Unix()
	}
	if c.ExpiresAt != nil {
		user.ExpiresAt = c.ExpiresAt.Unix()
	}

	return user
}

// Token wraps a signed JWT together with the identity it was issued for.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// User is the identity encoded in the token claims.
	User AuthenticatedUser `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
