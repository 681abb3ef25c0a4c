package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lastwords/last-words-api/models"
)

const (
	usersTable       = "users"
	credentialsTable = "passkey_credentials"
	sessionsTable    = "passkey_sessions"
	willsTable       = "wills"
	secretsTable     = "secrets"

	diagnosticsQuery = "SELECT 1 AS ok"
)

var (
	userColumns = []string{
		"id", "email", "email_hmac", "name", "password_hash", "timezone", "created_at", "updated_at",
	}
	credentialColumns = []string{
		"credential_id", "user_id", "credential_json", "created_at", "updated_at", "last_used_at",
	}
	sessionColumns = []string{
		"id", "kind", "user_id", "session_json", "expires_at",
	}
	willColumns = []string{
		"id", "user_id", "encrypted_title", "encrypted_description", "encrypted_content",
		"requires_webauthn", "access_level", "status", "created_at", "updated_at",
	}
	secretColumns = []string{
		"id", "will_id", "encrypted_title", "encrypted_content", "secret_type", "category",
		"priority", "requires_webauthn", "access_level", "created_at", "updated_at",
	}
)

// users

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.EmailHMAC, user.Name, user.PasswordHash, user.Timezone, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

// passkey credentials

func buildInsertCredentialQuery(b sq.StatementBuilderType, cred models.PasskeyCredential) (string, []any, error) {
	return b.Insert(credentialsTable).
		Columns(credentialColumns...).
		Values(cred.CredentialID, cred.UserID, cred.CredentialJSON, cred.CreatedAt, cred.UpdatedAt, cred.LastUsedAt).
		ToSql()
}

func buildSelectCredentialsByUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
}

func buildUpdateCredentialQuery(b sq.StatementBuilderType, cred models.PasskeyCredential) (string, []any, error) {
	return b.Update(credentialsTable).
		Set("credential_json", cred.CredentialJSON).
		Set("updated_at", cred.UpdatedAt).
		Set("last_used_at", cred.LastUsedAt).
		Where(sq.Eq{"credential_id": cred.CredentialID, "user_id": cred.UserID}).
		ToSql()
}

// passkey sessions

func buildInsertSessionQuery(b sq.StatementBuilderType, session models.PasskeySession) (string, []any, error) {
	return b.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(session.ID, string(session.Kind), session.UserID, session.SessionJSON, session.ExpiresAt).
		ToSql()
}

func buildSelectSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(sessionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Delete(sessionsTable).
		Where(sq.Lt{"expires_at": before}).
		ToSql()
}

// wills

func buildInsertWillQuery(b sq.StatementBuilderType, will models.Will) (string, []any, error) {
	return b.Insert(willsTable).
		Columns(willColumns...).
		Values(
			will.ID, will.UserID, will.EncryptedTitle, will.EncryptedDescription, will.EncryptedContent,
			boolValue(will.RequiresWebAuthn), will.AccessLevel, will.Status, will.CreatedAt, will.UpdatedAt,
		).
		ToSql()
}

func buildSelectWillQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Select(willColumns...).
		From(willsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildSelectWillsQuery(b sq.StatementBuilderType, userID string, page models.Pagination) (string, []any, error) {
	return b.Select(willColumns...).
		From(willsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
}

func buildDeleteWillSecretsQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Delete(secretsTable).
		Where(sq.Expr("will_id IN (SELECT id FROM wills WHERE id = ? AND user_id = ?)", id, userID)).
		ToSql()
}

func buildDeleteWillQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Delete(willsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// secrets

func buildInsertSecretQuery(b sq.StatementBuilderType, secret models.Secret) (string, []any, error) {
	return b.Insert(secretsTable).
		Columns(secretColumns...).
		Values(
			secret.ID, secret.WillID, secret.EncryptedTitle, secret.EncryptedContent, secret.SecretType,
			secret.Category, secret.Priority, boolValue(secret.RequiresWebAuthn), secret.AccessLevel,
			secret.CreatedAt, secret.UpdatedAt,
		).
		ToSql()
}

func buildSelectSecretQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Select(prefixed("s", secretColumns)...).
		From(secretsTable + " s").
		Join(willsTable + " w ON w.id = s.will_id").
		Where(sq.Eq{"s.id": id, "w.user_id": userID}).
		ToSql()
}

func buildSelectSecretsQuery(b sq.StatementBuilderType, willID string, page models.Pagination) (string, []any, error) {
	return b.Select(secretColumns...).
		From(secretsTable).
		Where(sq.Eq{"will_id": willID}).
		OrderBy("priority DESC", "created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
}

func buildDeleteSecretQuery(b sq.StatementBuilderType, id, userID string) (string, []any, error) {
	return b.Delete(secretsTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("will_id IN (SELECT id FROM wills WHERE user_id = ?)", userID)).
		ToSql()
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func boolValue(b *bool) bool {
	return b == nil || *b
}
