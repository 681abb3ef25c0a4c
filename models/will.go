package models

import "time"

// Will statuses.
const (
	WillStatusDraft    = "DRAFT"
	WillStatusActive   = "ACTIVE"
	WillStatusReleased = "RELEASED"
)

// Access levels shared by wills and secrets.
const (
	AccessLevelPrivate         = "PRIVATE"
	AccessLevelBeneficiaryOnly = "BENEFICIARY_ONLY"
	AccessLevelPublic          = "PUBLIC"
)

// Will is a container of encrypted secrets owned by a single user.
// All Encrypted* fields are ciphertext produced on the client.
type Will struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	EncryptedTitle       string    `json:"encryptedTitle,omitempty"`
	EncryptedDescription string    `json:"encryptedDescription,omitempty"`
	EncryptedContent     string    `json:"encryptedContent"`
	RequiresWebAuthn     *bool     `json:"requiresWebAuthn,omitempty"`
	AccessLevel          string    `json:"accessLevel,omitempty"`
	Status               string    `json:"status,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// Pagination limits a list query.
type Pagination struct {
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

// Pagination bounds.
const (
	DefaultPageLimit uint64 = 20
	MaxPageLimit     uint64 = 100
)

// ListWillsResponse is the body of GET /api/wills.
type ListWillsResponse struct {
	Wills  []Will `json:"wills"`
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}
