package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/internal/audit"
	"github.com/lastwords/last-words-api/internal/crypto"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/store"
	"github.com/lastwords/last-words-api/internal/utils"
	"github.com/lastwords/last-words-api/models"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

const defaultTimezone = "UTC"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence, Argon2id for password
// hashing and a keyed HMAC for e-mail lookups.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	passwordHasher crypto.PasswordHasher
	emailHasher    crypto.EmailHasher
	idGenerator    idGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	clock  func() time.Time
	logger *logger.Logger
}

// idGenerator produces identifiers for new rows.
type idGenerator interface {
	Generate() string
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	passwordHasher crypto.PasswordHasher,
	emailHasher crypto.EmailHasher,
	cfg config.Auth,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		emailHasher:    emailHasher,
		idGenerator:    utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		clock:          time.Now,
		logger:         logger,
	}
}

// Register creates a new user account and issues its first access token.
//
// Returns:
//   - ErrInvalidDataProvided if the e-mail is malformed or the password is
//     shorter than MinPasswordLength.
//   - ErrEmailAlreadyRegistered if an account with the same e-mail exists.
//   - A wrapped storage or hashing error otherwise.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	email := crypto.NormalizeEmail(req.Email)
	if !validEmail(email) || len(req.Password) < MinPasswordLength {
		log.Error().Str("func", "authService.Register").Msg("invalid registration data provided")
		return models.AuthResponse{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.passwordHasher.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	timezone := strings.TrimSpace(req.Timezone)
	if timezone == "" {
		timezone = defaultTimezone
	}

	now := a.clock().UTC()
	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.idGenerator.Generate(),
		Email:        email,
		EmailHMAC:    a.emailHasher.EmailHMAC(email),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: passwordHash,
		Timezone:     timezone,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrEmailAlreadyRegistered, err)
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.respond(ctx, authenticatedUser(user))
}

// Login authenticates an existing user by e-mail and password.
//
// An unknown e-mail and a wrong password both return ErrWrongPassword so the
// response does not reveal which accounts exist. An unknown e-mail still pays
// for one Argon2 verification against crypto.DecoyPasswordHash.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	email := crypto.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		log.Error().Str("func", "authService.Login").Msg("invalid login data provided")
		return models.AuthResponse{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmailHMAC(ctx, a.emailHasher.EmailHMAC(email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		_, _ = a.passwordHasher.Verify(crypto.DecoyPasswordHash, req.Password)
		audit.SecurityEvent(ctx, audit.ActionLoginFailed, "", audit.RiskMedium, "unknown e-mail")
		return models.AuthResponse{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by e-mail failed")
		return models.AuthResponse{}, fmt.Errorf("user search by e-mail failed: %w", err)
	}

	ok, err := a.passwordHasher.Verify(user.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("user_id", user.ID).Msg("stored password hash is unreadable")
		return models.AuthResponse{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		audit.SecurityEvent(ctx, audit.ActionLoginFailed, user.ID, audit.RiskMedium, "wrong password")
		return models.AuthResponse{}, ErrWrongPassword
	}

	return a.respond(ctx, authenticatedUser(user))
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.AuthenticatedUser) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) respond(ctx context.Context, user models.AuthenticatedUser) (models.AuthResponse, error) {
	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{Token: token.String(), User: token.User}, nil
}

func authenticatedUser(user models.User) models.AuthenticatedUser {
	return models.AuthenticatedUser{
		ID:        user.ID,
		Email:     user.Email,
		EmailHMAC: user.EmailHMAC,
	}
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
