package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/lastwords/last-words-api/internal/config"
	"github.com/lastwords/last-words-api/internal/audit"
	"github.com/lastwords/last-words-api/internal/logger"
	"github.com/lastwords/last-words-api/internal/store"
	"github.com/lastwords/last-words-api/internal/utils"
	"github.com/lastwords/last-words-api/models"
)

// passkeyProvider is the part of *webauthn.WebAuthn used by the service.
type passkeyProvider interface {
	BeginRegistration(user webauthn.User, opts ...webauthn.RegistrationOption) (*protocol.CredentialCreation, *webauthn.SessionData, error)
	CreateCredential(user webauthn.User, session webauthn.SessionData, response *protocol.ParsedCredentialCreationData) (*webauthn.Credential, error)
	BeginLogin(user webauthn.User, opts ...webauthn.LoginOption) (*protocol.CredentialAssertion, *webauthn.SessionData, error)
	ValidateLogin(user webauthn.User, session webauthn.SessionData, response *protocol.ParsedCredentialAssertionData) (*webauthn.Credential, error)
}

type passkeyParser interface {
	ParseCredentialCreationResponseBytes(data []byte) (*protocol.ParsedCredentialCreationData, error)
	ParseCredentialRequestResponseBytes(data []byte) (*protocol.ParsedCredentialAssertionData, error)
}

type defaultPasskeyParser struct{}

func (defaultPasskeyParser) ParseCredentialCreationResponseBytes(data []byte) (*protocol.ParsedCredentialCreationData, error) {
	return protocol.ParseCredentialCreationResponseBytes(data)
}

func (defaultPasskeyParser) ParseCredentialRequestResponseBytes(data []byte) (*protocol.ParsedCredentialAssertionData, error) {
	return protocol.ParseCredentialRequestResponseBytes(data)
}

type webAuthnService struct {
	users       store.UserRepository
	credentials store.PasskeyRepository
	sessions    store.PasskeySessionRepository
	auth        AuthService

	provider    passkeyProvider
	parser      passkeyParser
	idGenerator idGenerator
	sessionTTL  time.Duration
	clock       func() time.Time

	logger *logger.Logger
}

// NewWebAuthnService builds the relying party from cfg. An invalid relying
// party configuration is reported as ErrWebAuthnConfiguration.
func NewWebAuthnService(
	users store.UserRepository,
	credentials store.PasskeyRepository,
	sessions store.PasskeySessionRepository,
	auth AuthService,
	cfg config.WebAuthn,
	logger *logger.Logger,
) (WebAuthnService, error) {
	provider, err := webauthn.New(&webauthn.Config{
		RPDisplayName: cfg.RPName,
		RPID:          cfg.RPID,
		RPOrigins:     cfg.Origins,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWebAuthnConfiguration, err)
	}

	return &webAuthnService{
		users:       users,
		credentials: credentials,
		sessions:    sessions,
		auth:        auth,
		provider:    provider,
		parser:      defaultPasskeyParser{},
		idGenerator: utils.NewUUIDGenerator(),
		sessionTTL:  cfg.SessionTTL,
		clock:       time.Now,
		logger:      logger,
	}, nil
}

func (s *webAuthnService) BeginRegistration(ctx context.Context, current models.AuthenticatedUser) (models.CeremonyOptions, error) {
	user, err := s.loadPasskeyUser(ctx, current.ID)
	if err != nil {
		return models.CeremonyOptions{}, err
	}

	var options []webauthn.RegistrationOption
	options = append(options, webauthn.WithResidentKeyRequirement(protocol.ResidentKeyRequirementPreferred))
	if len(user.credentials) > 0 {
		options = append(options, webauthn.WithExclusions(webauthn.Credentials(user.credentials).CredentialDescriptors()))
	}

	creation, session, err := s.provider.BeginRegistration(user, options...)
	if err != nil {
		return models.CeremonyOptions{}, fmt.Errorf("begin passkey registration: %w", err)
	}

	return s.startCeremony(ctx, models.SessionKindRegistration, current.ID, creation, session)
}

func (s *webAuthnService) FinishRegistration(ctx context.Context, current models.AuthenticatedUser, req models.CeremonyFinishRequest) (models.RegistrationResult, error) {
	result, err := s.finishRegistration(ctx, current, req)
	if err != nil {
		auditCeremonyFailure(ctx, audit.ActionPasskeyRegistrationFailed, current.ID, err)
	}
	return result, err
}

func (s *webAuthnService) finishRegistration(ctx context.Context, current models.AuthenticatedUser, req models.CeremonyFinishRequest) (models.RegistrationResult, error) {
	log := logger.FromContext(ctx)

	if err := validateFinishRequest(req); err != nil {
		return models.RegistrationResult{}, err
	}

	session, err := s.loadSession(ctx, req.SessionID, models.SessionKindRegistration, current.ID)
	if err != nil {
		return models.RegistrationResult{}, err
	}

	user, err := s.loadPasskeyUser(ctx, current.ID)
	if err != nil {
		return models.RegistrationResult{}, err
	}

	parsed, err := s.parser.ParseCredentialCreationResponseBytes(req.Credential)
	if err != nil {
		return models.RegistrationResult{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	credential, err := s.provider.CreateCredential(user, session, parsed)
	if err != nil {
		log.Err(err).Str("func", "webAuthnService.FinishRegistration").Str("user_id", current.ID).Msg("credential rejected")
		return models.RegistrationResult{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	credentialJSON, err := json.Marshal(credential)
	if err != nil {
		return models.RegistrationResult{}, fmt.Errorf("encode credential: %w", err)
	}

	now := s.clock().UTC()
	credentialID := encodeCredentialID(credential.ID)
	err = s.credentials.CreateCredential(ctx, models.PasskeyCredential{
		CredentialID:   credentialID,
		UserID:         current.ID,
		CredentialJSON: string(credentialJSON),
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if errors.Is(err, store.ErrCredentialAlreadyExists) {
		return models.RegistrationResult{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if err != nil {
		return models.RegistrationResult{}, fmt.Errorf("store passkey credential: %w", err)
	}

	log.Info().Str("func", "webAuthnService.FinishRegistration").
		Str("user_id", current.ID).
		Str("credential_id", credentialID).
		Msg("passkey registered")

	return models.RegistrationResult{Verified: true, CredentialID: credentialID}, nil
}

// BeginLogin starts an assertion against the caller's own credentials.
// ErrNoAuthenticator is returned when none are registered.
func (s *webAuthnService) BeginLogin(ctx context.Context, current models.AuthenticatedUser) (models.CeremonyOptions, error) {
	user, err := s.loadPasskeyUser(ctx, current.ID)
	if err != nil {
		return models.CeremonyOptions{}, err
	}
	if len(user.credentials) == 0 {
		return models.CeremonyOptions{}, ErrNoAuthenticator
	}

	assertion, session, err := s.provider.BeginLogin(user)
	if err != nil {
		return models.CeremonyOptions{}, fmt.Errorf("begin passkey login: %w", err)
	}

	return s.startCeremony(ctx, models.SessionKindLogin, current.ID, assertion, session)
}

// FinishLogin verifies the assertion, stores the new sign counter and issues
// a token with webAuthnVerified set.
func (s *webAuthnService) FinishLogin(ctx context.Context, current models.AuthenticatedUser, req models.CeremonyFinishRequest) (models.AssertionResult, error) {
	result, err := s.finishLogin(ctx, current, req)
	if err != nil {
		auditCeremonyFailure(ctx, audit.ActionPasskeyAuthenticationFailed, current.ID, err)
	}
	return result, err
}

func (s *webAuthnService) finishLogin(ctx context.Context, current models.AuthenticatedUser, req models.CeremonyFinishRequest) (models.AssertionResult, error) {
	log := logger.FromContext(ctx)

	if err := validateFinishRequest(req); err != nil {
		return models.AssertionResult{}, err
	}

	session, err := s.loadSession(ctx, req.SessionID, models.SessionKindLogin, current.ID)
	if err != nil {
		return models.AssertionResult{}, err
	}

	user, err := s.loadPasskeyUser(ctx, current.ID)
	if err != nil {
		return models.AssertionResult{}, err
	}
	if len(user.credentials) == 0 {
		return models.AssertionResult{}, ErrNoAuthenticator
	}

	parsed, err := s.parser.ParseCredentialRequestResponseBytes(req.Credential)
	if err != nil {
		return models.AssertionResult{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	credential, err := s.provider.ValidateLogin(user, session, parsed)
	if err != nil {
		log.Err(err).Str("func", "webAuthnService.FinishLogin").Str("user_id", current.ID).Msg("assertion rejected")
		return models.AssertionResult{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	credentialJSON, err := json.Marshal(credential)
	if err != nil {
		return models.AssertionResult{}, fmt.Errorf("encode credential: %w", err)
	}
	now := s.clock().UTC()
	err = s.credentials.UpdateCredential(ctx, models.PasskeyCredential{
		CredentialID:   encodeCredentialID(credential.ID),
		UserID:         current.ID,
		CredentialJSON: string(credentialJSON),
		UpdatedAt:      now,
		LastUsedAt:     &now,
	})
	if err != nil {
		return models.AssertionResult{}, fmt.Errorf("store passkey credential: %w", err)
	}

	verified := models.AuthenticatedUser{
		ID:               user.user.ID,
		Email:            user.user.Email,
		EmailHMAC:        user.user.EmailHMAC,
		WebAuthnVerified: true,
	}
	token, err := s.auth.CreateToken(ctx, verified)
	if err != nil {
		return models.AssertionResult{}, err
	}

	return models.AssertionResult{Verified: true, Token: token.String()}, nil
}

func (s *webAuthnService) SweepExpiredSessions(ctx context.Context) (int64, error) {
	deleted, err := s.sessions.DeleteExpiredSessions(ctx, s.clock().UTC())
	if err != nil {
		return 0, fmt.Errorf("sweep passkey sessions: %w", err)
	}
	return deleted, nil
}

func (s *webAuthnService) startCeremony(ctx context.Context, kind models.SessionKind, userID string, options any, session *webauthn.SessionData) (models.CeremonyOptions, error) {
	if session == nil {
		return models.CeremonyOptions{}, errors.New("session data is required")
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return models.CeremonyOptions{}, fmt.Errorf("encode passkey session: %w", err)
	}
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return models.CeremonyOptions{}, fmt.Errorf("encode %s options: %w", kind, err)
	}

	sessionID := s.idGenerator.Generate()
	err = s.sessions.CreateSession(ctx, models.PasskeySession{
		ID:          sessionID,
		Kind:        kind,
		UserID:      userID,
		SessionJSON: string(sessionJSON),
		ExpiresAt:   s.clock().UTC().Add(s.sessionTTL),
	})
	if err != nil {
		return models.CeremonyOptions{}, fmt.Errorf("store passkey session: %w", err)
	}

	return models.CeremonyOptions{SessionID: sessionID, Options: optionsJSON}, nil
}

// loadSession consumes the stored ceremony state when it is of the expected
// kind, owned by userID and not expired. The session is deleted before it is
// returned, so each challenge can be answered once. Expired sessions are
// deleted as well.
func (s *webAuthnService) loadSession(ctx context.Context, sessionID string, kind models.SessionKind, userID string) (webauthn.SessionData, error) {
	stored, err := s.sessions.GetSession(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return webauthn.SessionData{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if err != nil {
		return webauthn.SessionData{}, fmt.Errorf("load passkey session: %w", err)
	}

	if stored.Kind != kind || stored.UserID != userID {
		logger.FromContext(ctx).Warn().Str("func", "webAuthnService.loadSession").
			Str("session_id", sessionID).
			Str("kind", string(stored.Kind)).
			Msg("passkey session kind or owner mismatch")
		return webauthn.SessionData{}, ErrInvalidSession
	}
	if !stored.ExpiresAt.After(s.clock().UTC()) {
		s.deleteSession(ctx, sessionID)
		return webauthn.SessionData{}, ErrSessionExpired
	}

	err = s.sessions.DeleteSession(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return webauthn.SessionData{}, fmt.Errorf("%w: already used: %w", ErrInvalidSession, err)
	}
	if err != nil {
		return webauthn.SessionData{}, fmt.Errorf("consume passkey session: %w", err)
	}

	var session webauthn.SessionData
	if err = json.Unmarshal([]byte(stored.SessionJSON), &session); err != nil {
		return webauthn.SessionData{}, fmt.Errorf("decode passkey session: %w", err)
	}
	return session, nil
}

// auditCeremonyFailure records ceremonies rejected for a client side reason.
// Storage failures are not security events and only reach the regular logs.
func auditCeremonyFailure(ctx context.Context, action, userID string, err error) {
	switch {
	case errors.Is(err, ErrSessionExpired):
		audit.SecurityEvent(ctx, action, userID, audit.RiskMedium, err.Error())
	case errors.Is(err, ErrInvalidSession), errors.Is(err, ErrInvalidCredential):
		audit.SecurityEvent(ctx, action, userID, audit.RiskHigh, err.Error())
	}
}

func (s *webAuthnService) deleteSession(ctx context.Context, sessionID string) {
	err := s.sessions.DeleteSession(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "webAuthnService.deleteSession").
			Str("session_id", sessionID).
			Msg("failed to delete passkey session")
	}
}

func (s *webAuthnService) loadPasskeyUser(ctx context.Context, userID string) (*passkeyUser, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	records, err := s.credentials.ListCredentials(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load passkey credentials: %w", err)
	}
	credentials, err := decodeStoredCredentials(records)
	if err != nil {
		return nil, err
	}

	return &passkeyUser{user: user, credentials: credentials}, nil
}

func validateFinishRequest(req models.CeremonyFinishRequest) error {
	if strings.TrimSpace(req.SessionID) == "" || len(req.Credential) == 0 {
		return ErrInvalidDataProvided
	}
	return nil
}

// passkeyUser adapts models.User to webauthn.User.
type passkeyUser struct {
	user        models.User
	credentials []webauthn.Credential
}

func (u *passkeyUser) WebAuthnID() []byte {
	return []byte(u.user.ID)
}

func (u *passkeyUser) WebAuthnName() string {
	return u.user.Email
}

func (u *passkeyUser) WebAuthnDisplayName() string {
	if u.user.Name != "" {
		return u.user.Name
	}
	return u.user.Email
}

func (u *passkeyUser) WebAuthnCredentials() []webauthn.Credential {
	return u.credentials
}

func decodeStoredCredentials(records []models.PasskeyCredential) ([]webauthn.Credential, error) {
	if len(records) == 0 {
		return nil, nil
	}
	credentials := make([]webauthn.Credential, 0, len(records))
	for _, record := range records {
		var credential webauthn.Credential
		if err := json.Unmarshal([]byte(record.CredentialJSON), &credential); err != nil {
			return nil, fmt.Errorf("decode credential %s: %w", record.CredentialID, err)
		}
		credentials = append(credentials, credential)
	}
	return credentials, nil
}

func encodeCredentialID(raw []byte) string {
	return base64.RawURLEncoding.EncodeToString(raw)
}
