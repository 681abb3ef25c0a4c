package models

import "time"

// Secret is a single encrypted item of a will.
type Secret struct {
	ID               string    `json:"id"`
	WillID           string    `json:"willId"`
	EncryptedTitle   string    `json:"encryptedTitle,omitempty"`
	EncryptedContent string    `json:"encryptedContent"`
	SecretType       string    `json:"secretType,omitempty"`
	Category         string    `json:"category,omitempty"`
	Priority         int       `json:"priority,omitempty"`
	RequiresWebAuthn *bool     `json:"requiresWebAuthn,omitempty"`
	AccessLevel      string    `json:"accessLevel,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ListSecretsResponse is the body of GET /api/wills/{id}/secrets.
type ListSecretsResponse struct {
	Secrets []Secret `json:"secrets"`
	Length  int      `json:"length"`
}
