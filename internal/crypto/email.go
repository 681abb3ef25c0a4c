package crypto

import (
	"strings"

	"github.com/lastwords/last-words-api/internal/utils"
)

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type emailHasher struct {
	key string
}

// NewEmailHasher returns an [EmailHasher] keyed with key.
func NewEmailHasher(key string) EmailHasher {
	return &emailHasher{key: key}
}

func (e *emailHasher) EmailHMAC(email string) string {
	return utils.HashString(NormalizeEmail(email), e.key)
}

func (e *emailHasher) VerifyEmailHMAC(email, mac string) bool {
	return utils.EqualHash(e.EmailHMAC(email), strings.ToLower(mac))
}
