// Package audit records security relevant actions as structured log events.
//
// Events go to the request logger found in the context, so they carry the
// trace id of the request that caused them. Every event has "audit": true,
// which lets a log pipeline route them to a separate sink.
package audit

import (
	"context"

	"github.com/lastwords/last-words-api/internal/logger"
)

// RiskLevel grades an event. HIGH and CRITICAL events are flagged for review.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// AccessType is the kind of data access recorded by DataAccess.
type AccessType string

const (
	AccessRead   AccessType = "read"
	AccessWrite  AccessType = "write"
	AccessDelete AccessType = "delete"
)

// Entity types.
const (
	EntityWill     = "will"
	EntitySecret   = "secret"
	EntitySecurity = "security"
)

// Security actions.
const (
	ActionLoginFailed                 = "login_failed"
	ActionPasskeyRegistrationFailed   = "passkey_registration_failed"
	ActionPasskeyAuthenticationFailed = "passkey_authentication_failed"
)

// Event is a single audit record.
type Event struct {
	Action     string
	EntityType string
	EntityID   string
	UserID     string
	Risk       RiskLevel
	Reason     string
}

// Flagged reports whether the event needs review.
func (e Event) Flagged() bool {
	return e.Risk == RiskHigh || e.Risk == RiskCritical
}

// Log writes e to the logger attached to ctx. Flagged events are logged at
// warn level, the rest at info.
func Log(ctx context.Context, e Event) {
	if e.Risk == "" {
		e.Risk = RiskLow
	}

	log := logger.FromContext(ctx)
	entry := log.Info()
	if e.Flagged() {
		entry = log.Warn()
	}

	entry = entry.Bool("audit", true).
		Str("action", e.Action).
		Str("entity_type", e.EntityType).
		Str("risk_level", string(e.Risk)).
		Bool("flagged", e.Flagged())
	if e.EntityID != "" {
		entry = entry.Str("entity_id", e.EntityID)
	}
	if e.UserID != "" {
		entry = entry.Str("user_id", e.UserID)
	}
	if e.Reason != "" {
		entry = entry.Str("reason", e.Reason)
	}
	entry.Msg("audit event")
}

// DataAccess records access to a user owned entity.
// Deletes are HIGH risk, everything else LOW.
func DataAccess(ctx context.Context, entityType, entityID, userID string, access AccessType) {
	risk := RiskLow
	if access == AccessDelete {
		risk = RiskHigh
	}

	Log(ctx, Event{
		Action:     entityType + "_" + string(access),
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     userID,
		Risk:       risk,
	})
}

// SecurityEvent records an authentication related event. An empty risk
// defaults to HIGH.
func SecurityEvent(ctx context.Context, action, userID string, risk RiskLevel, reason string) {
	if risk == "" {
		risk = RiskHigh
	}

	Log(ctx, Event{
		Action:     action,
		EntityType: EntitySecurity,
		UserID:     userID,
		Risk:       risk,
		Reason:     reason,
	})
}
