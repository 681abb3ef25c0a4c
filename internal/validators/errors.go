package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEncryptedContent = errors.New("encrypted content is required")
	ErrInvalidAccessLevel    = errors.New("invalid access level")
	ErrInvalidStatus         = errors.New("invalid will status")
	ErrInvalidPriority       = errors.New("priority must not be negative")
	ErrFieldTooLong          = errors.New("field exceeds maximum length")
)
