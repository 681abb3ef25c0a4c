// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ArgonType selects the Argon2 variant. Values match argon2-browser.
type ArgonType int

const (
	Argon2d  ArgonType = 0
	Argon2i  ArgonType = 1
	Argon2id ArgonType = 2
)

func (t ArgonType) String() string {
	switch t {
	case Argon2d:
		return "argon2d"
	case Argon2i:
		return "argon2i"
	case Argon2id:
		return "argon2id"
	default:
		return fmt.Sprintf("argon2(%d)", int(t))
	}
}

func parseArgonType(s string) (ArgonType, error) {
	switch s {
	case "argon2d":
		return Argon2d, nil
	case "argon2i":
		return Argon2i, nil
	case "argon2id":
		return Argon2id, nil
	default:
		return 0, fmt.Errorf("%w: unknown variant %q", ErrMalformedHash, s)
	}
}

var (
	ErrUnsupportedArgonType = errors.New("unsupported argon2 type")
	ErrInvalidHashOptions   = errors.New("invalid hash options")
	ErrMalformedHash        = errors.New("malformed encoded hash")
)

// HashOptions mirrors the argon2-browser hash() options. Mem is in KiB.
type HashOptions struct {
	Pass        string    `json:"pass"`
	Salt        []byte    `json:"salt"`
	Type        ArgonType `json:"type"`
	Time        uint32    `json:"time"`
	Mem         uint32    `json:"mem"`
	Parallelism uint8     `json:"parallelism"`
	HashLen     uint32    `json:"hashLen"`
}

// HashResult mirrors the argon2-browser hash() result.
type HashResult struct {
	Hash    []byte `json:"hash"`
	HashHex string `json:"hashHex"`
	Encoded string `json:"encoded"`
}

// Argon2Hasher implements [PasswordHasher] on golang.org/x/crypto/argon2.
type Argon2Hasher struct {
	time        uint32
	memory      uint32
	parallelism uint8
	keyLen      uint32
	saltLen     int
}

// NewArgon2Hasher returns a hasher with the OWASP Argon2id parameters:
// 1 iteration, 64 MiB, 4 lanes, 32 byte keys and 16 byte salts.
func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{
		time:        1,
		memory:      64 * 1024,
		parallelism: 4,
		keyLen:      32,
		saltLen:     16,
	}
}

// DecoyPasswordHash is an encoded hash with the default parameters of
// NewArgon2Hasher and an all-zero key. Verifying a password against it costs
// the same as verifying a stored password, and never succeeds in practice.
var DecoyPasswordHash = NewArgon2Hasher().decoyHash()

func (a *Argon2Hasher) decoyHash() string {
	return encodePHC(HashOptions{
		Salt:        make([]byte, a.saltLen),
		Type:        Argon2id,
		Time:        a.time,
		Mem:         a.memory,
		Parallelism: a.parallelism,
	}, make([]byte, a.keyLen))
}

func (a *Argon2Hasher) Hash(opts HashOptions) (HashResult, error) {
	if opts.Time == 0 || opts.Mem == 0 || opts.Parallelism == 0 || opts.HashLen == 0 || len(opts.Salt) == 0 {
		return HashResult{}, ErrInvalidHashOptions
	}

	var key []byte
	switch opts.Type {
	case Argon2id:
		key = argon2.IDKey([]byte(opts.Pass), opts.Salt, opts.Time, opts.Mem, opts.Parallelism, opts.HashLen)
	case Argon2i:
		key = argon2.Key([]byte(opts.Pass), opts.Salt, opts.Time, opts.Mem, opts.Parallelism, opts.HashLen)
	default:
		return HashResult{}, fmt.Errorf("%w: %s", ErrUnsupportedArgonType, opts.Type)
	}

	return HashResult{
		Hash:    key,
		HashHex: hex.EncodeToString(key),
		Encoded: encodePHC(opts, key),
	}, nil
}

func (a *Argon2Hasher) HashPassword(pass string) (string, error) {
	salt := make([]byte, a.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	result, err := a.Hash(HashOptions{
		Pass:        pass,
		Salt:        salt,
		Type:        Argon2id,
		Time:        a.time,
		Mem:         a.memory,
		Parallelism: a.parallelism,
		HashLen:     a.keyLen,
	})
	if err != nil {
		return "", err
	}

	return result.Encoded, nil
}

func (a *Argon2Hasher) Verify(encoded, pass string) (bool, error) {
	opts, want, err := decodePHC(encoded)
	if err != nil {
		return false, err
	}
	opts.Pass = pass

	got, err := a.Hash(opts)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(got.Hash, want) == 1, nil
}

// encodePHC renders $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>.
func encodePHC(opts HashOptions, key []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		opts.Type,
		argon2.Version,
		opts.Mem, opts.Time, opts.Parallelism,
		base64.RawStdEncoding.EncodeToString(opts.Salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decodePHC(encoded string) (HashOptions, []byte, error) {
	// "", variant, version, params, salt, hash
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return HashOptions{}, nil, ErrMalformedHash
	}

	variant, err := parseArgonType(parts[1])
	if err != nil {
		return HashOptions{}, nil, err
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return HashOptions{}, nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return HashOptions{}, nil, fmt.Errorf("%w: version %d", ErrMalformedHash, version)
	}

	opts := HashOptions{Type: variant}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &opts.Mem, &opts.Time, &opts.Parallelism); err != nil {
		return HashOptions{}, nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	opts.Salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return HashOptions{}, nil, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return HashOptions{}, nil, fmt.Errorf("%w: hash: %v", ErrMalformedHash, err)
	}
	opts.HashLen = uint32(len(key))

	return opts, key, nil
}
