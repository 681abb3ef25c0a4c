package validators

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/lastwords/last-words-api/models"
)

var (
	allowedAccessLevels = []string{
		models.AccessLevelPrivate,
		models.AccessLevelBeneficiaryOnly,
		models.AccessLevelPublic,
	}
	allowedWillStatuses = []string{
		models.WillStatusDraft,
		models.WillStatusActive,
		models.WillStatusReleased,
	}
)

// WillValidator validates wills and secrets. Empty optional fields are
// accepted since the service fills in their defaults.
type WillValidator struct{}

func NewWillValidator() *WillValidator {
	return &WillValidator{}
}

func (v *WillValidator) Validate(ctx context.Context, data any, fields ...string) error {
	switch value := data.(type) {
	case models.Will:
		return v.validateWill(ctx, value, fields...)
	case *models.Will:
		return v.validateWill(ctx, *value, fields...)

	case models.Secret:
		return v.validateSecret(ctx, value, fields...)
	case *models.Secret:
		return v.validateSecret(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *WillValidator) validateWill(ctx context.Context, will models.Will, fields ...string) error {
	if len(fields) == 0 {
		fields = willFields
	}

	for _, f := range fields {
		switch f {
		case FieldEncryptedContent:
			if strings.TrimSpace(will.EncryptedContent) == "" {
				return ErrEmptyEncryptedContent
			}
		case FieldAccessLevel:
			if !optionalOneOf(will.AccessLevel, allowedAccessLevels) {
				return ErrInvalidAccessLevel
			}
		case FieldStatus:
			if !optionalOneOf(will.Status, allowedWillStatuses) {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WillValidator) validateSecret(ctx context.Context, secret models.Secret, fields ...string) error {
	if len(fields) == 0 {
		fields = secretFields
	}

	for _, f := range fields {
		switch f {
		case FieldEncryptedContent:
			if strings.TrimSpace(secret.EncryptedContent) == "" {
				return ErrEmptyEncryptedContent
			}
		case FieldAccessLevel:
			if !optionalOneOf(secret.AccessLevel, allowedAccessLevels) {
				return ErrInvalidAccessLevel
			}
		case FieldSecretType:
			if utf8.RuneCountInString(secret.SecretType) > maxLabelLength {
				return ErrFieldTooLong
			}
		case FieldCategory:
			if utf8.RuneCountInString(secret.Category) > maxLabelLength {
				return ErrFieldTooLong
			}
		case FieldPriority:
			if secret.Priority < 0 {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func optionalOneOf(value string, allowed []string) bool {
	return value == "" || slices.Contains(allowed, value)
}
