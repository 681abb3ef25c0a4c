package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/lastwords/last-words-api/internal/store"
	"github.com/lastwords/last-words-api/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// auditLog attaches a buffered logger to a fresh context.
func auditLog(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	l := zerolog.New(&buf)
	return l.WithContext(context.Background()), &buf
}

// auditEvents returns the entries of buf marked as audit events.
func auditEvents(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var events []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if entry["audit"] == true {
			events = append(events, entry)
		}
	}
	return events
}

func TestWillService_Audit(t *testing.T) {
	svc, repo := newTestWillService(t)
	ctx, buf := auditLog(t)

	repo.EXPECT().GetWill(ctx, "will-1", "user-1").Return(models.Will{ID: "will-1"}, nil)
	repo.EXPECT().DeleteWill(ctx, "will-1", "user-1").Return(nil)
	repo.EXPECT().DeleteWill(ctx, "will-2", "user-1").Return(store.ErrWillNotFound)

	_, err := svc.GetWill(ctx, "will-1", "user-1")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteWill(ctx, "will-1", "user-1"))
	require.Error(t, svc.DeleteWill(ctx, "will-2", "user-1"))

	events := auditEvents(t, buf)
	require.Len(t, events, 2, "a failed delete is not audited")

	assert.Equal(t, "will_read", events[0]["action"])
	assert.Equal(t, "will-1", events[0]["entity_id"])
	assert.Equal(t, "user-1", events[0]["user_id"])
	assert.Equal(t, "LOW", events[0]["risk_level"])
	assert.Equal(t, false, events[0]["flagged"])

	assert.Equal(t, "will_delete", events[1]["action"])
	assert.Equal(t, "will", events[1]["entity_type"])
	assert.Equal(t, "HIGH", events[1]["risk_level"])
	assert.Equal(t, true, events[1]["flagged"])
}

func TestSecretService_Audit(t *testing.T) {
	svc, secrets, _ := newTestSecretService(t)
	ctx, buf := auditLog(t)

	secrets.EXPECT().GetSecret(ctx, "secret-1", "user-1").Return(models.Secret{ID: "secret-1"}, nil)
	secrets.EXPECT().DeleteSecret(ctx, "secret-1", "user-1").Return(nil)

	_, err := svc.GetSecret(ctx, "secret-1", "user-1")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteSecret(ctx, "secret-1", "user-1"))

	events := auditEvents(t, buf)
	require.Len(t, events, 2)
	assert.Equal(t, "secret_read", events[0]["action"])
	assert.Equal(t, "secret_delete", events[1]["action"])
	assert.Equal(t, "secret-1", events[1]["entity_id"])
	assert.Equal(t, true, events[1]["flagged"])
}

func TestAuthService_Login_AuditsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher, emails := newTestAuthService(t, ctrl)
	ctx, buf := auditLog(t)

	emails.EXPECT().EmailHMAC(gomock.Any()).Return("hmac").Times(2)
	users.EXPECT().FindUserByEmailHMAC(ctx, "hmac").Return(models.User{}, store.ErrNoUserWasFound)
	hasher.EXPECT().Verify(gomock.Any(), "nope").Return(false, nil)
	users.EXPECT().FindUserByEmailHMAC(ctx, "hmac").Return(models.User{ID: "user-1", PasswordHash: "encoded"}, nil)
	hasher.EXPECT().Verify("encoded", "wrong").Return(false, nil)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "nope"})
	require.ErrorIs(t, err, ErrWrongPassword)
	_, err = svc.Login(ctx, models.LoginRequest{Email: "jane@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrWrongPassword)

	events := auditEvents(t, buf)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, "login_failed", e["action"])
		assert.Equal(t, "security", e["entity_type"])
		assert.Equal(t, "MEDIUM", e["risk_level"])
		assert.Equal(t, false, e["flagged"])
	}
	assert.NotContains(t, events[0], "user_id")
	assert.Equal(t, "user-1", events[1]["user_id"])
}

func TestWebAuthnService_AuditsRejectedCeremonies(t *testing.T) {
	t.Run("registration credential rejected", func(t *testing.T) {
		svc, deps := newTestWebAuthnService(t)
		ctx, buf := auditLog(t)
		deps.provider.createCredentialFn = func(webauthn.User, webauthn.SessionData, *protocol.ParsedCredentialCreationData) (*webauthn.Credential, error) {
			return nil, errors.New("challenge mismatch")
		}

		deps.sessions.EXPECT().GetSession(ctx, "session-1").
			Return(storedSession(t, models.SessionKindRegistration, "user-1", fixedNow.Add(time.Minute)), nil)
		deps.sessions.EXPECT().DeleteSession(ctx, "session-1").Return(nil)
		deps.users.EXPECT().FindUserByID(ctx, "user-1").Return(storedUser(), nil)
		deps.credentials.EXPECT().ListCredentials(ctx, "user-1").Return(nil, nil)

		_, err := svc.FinishRegistration(ctx, testCaller, finishRequest())
		require.ErrorIs(t, err, ErrInvalidCredential)

		events := auditEvents(t, buf)
		require.Len(t, events, 1)
		assert.Equal(t, "passkey_registration_failed", events[0]["action"])
		assert.Equal(t, "user-1", events[0]["user_id"])
		assert.Equal(t, "HIGH", events[0]["risk_level"])
		assert.Equal(t, true, events[0]["flagged"])
	})

	t.Run("login session already used", func(t *testing.T) {
		svc, deps := newTestWebAuthnService(t)
		ctx, buf := auditLog(t)

		deps.sessions.EXPECT().GetSession(ctx, "session-1").
			Return(storedSession(t, models.SessionKindLogin, "user-1", fixedNow.Add(time.Minute)), nil)
		deps.sessions.EXPECT().DeleteSession(ctx, "session-1").Return(store.ErrSessionNotFound)

		_, err := svc.FinishLogin(ctx, testCaller, finishRequest())
		require.ErrorIs(t, err, ErrInvalidSession)

		events := auditEvents(t, buf)
		require.Len(t, events, 1)
		assert.Equal(t, "passkey_authentication_failed", events[0]["action"])
		assert.Equal(t, true, events[0]["flagged"])
	})

	t.Run("storage failure is not a security event", func(t *testing.T) {
		svc, deps := newTestWebAuthnService(t)
		ctx, buf := auditLog(t)

		deps.sessions.EXPECT().GetSession(ctx, "session-1").Return(models.PasskeySession{}, errors.New("connection reset"))

		_, err := svc.FinishLogin(ctx, testCaller, finishRequest())
		require.Error(t, err)
		assert.Empty(t, auditEvents(t, buf))
	})
}
