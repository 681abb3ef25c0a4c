package models

import (
	"encoding/json"
	"time"
)

// SessionKind tells which WebAuthn ceremony a stored session belongs to.
type SessionKind string

const (
	SessionKindRegistration SessionKind = "registration"
	SessionKindLogin        SessionKind = "login"
)

// PasskeyCredential is a registered authenticator of a user. The credential
// itself is kept as the JSON encoding of the WebAuthn library credential.
type PasskeyCredential struct {
	CredentialID   string     `json:"credentialId"`
	UserID         string     `json:"userId"`
	CredentialJSON string     `json:"-"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	LastUsedAt     *time.Time `json:"lastUsedAt,omitempty"`
}

// PasskeySession is the server side state of a pending WebAuthn ceremony.
type PasskeySession struct {
	ID          string      `json:"id"`
	Kind        SessionKind `json:"kind"`
	UserID      string      `json:"userId"`
	SessionJSON string      `json:"-"`
	ExpiresAt   time.Time   `json:"expiresAt"`
}

// CeremonyOptions is returned when a WebAuthn ceremony begins. Options holds
// the JSON the browser passes to navigator.credentials.
type CeremonyOptions struct {
	SessionID string          `json:"sessionId"`
	Options   json.RawMessage `json:"options"`
}

// CeremonyFinishRequest is the body sent to finish a WebAuthn ceremony.
type CeremonyFinishRequest struct {
	SessionID  string          `json:"sessionId"`
	Credential json.RawMessage `json:"credential"`
}

// RegistrationResult is returned after a credential was registered.
type RegistrationResult struct {
	Verified     bool   `json:"verified"`
	CredentialID string `json:"credentialId"`
}

// AssertionResult is returned after a successful WebAuthn assertion. Token is
// a fresh access token carrying webAuthnVerified=true.
type AssertionResult struct {
	Verified bool   `json:"verified"`
	Token    string `json:"token"`
}
