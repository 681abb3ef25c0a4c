package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher derives and checks Argon2 password hashes.
//
// Hash exposes the full option/result contract used by browser clients
// (argon2-browser); HashPassword and Verify are the server-side shortcuts
// used for account passwords.
type PasswordHasher interface {
	// Hash derives a key with the given options. Argon2d is not supported.
	Hash(opts HashOptions) (HashResult, error)

	// HashPassword hashes pass with a fresh random salt and the hasher's
	// default parameters, returning the PHC encoded string.
	HashPassword(pass string) (string, error)

	// Verify re-derives the hash described by encoded for pass and compares
	// both in constant time. A malformed encoded string is an error.
	Verify(encoded, pass string) (bool, error)
}

// EmailHasher produces the keyed lookup digest of an e-mail address.
type EmailHasher interface {
	// EmailHMAC returns the hex HMAC-SHA256 of the normalised address.
	EmailHMAC(email string) string

	// VerifyEmailHMAC reports whether mac belongs to email.
	VerifyEmailHMAC(email, mac string) bool
}
