package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightechllc/authcore/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestCreateAccessToken(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTokenRepository(db)

	mock.ExpectExec("INSERT INTO access_tokens").WillReturnResult(sqlmock.NewResult(1, 1))

	token := &models.AccessToken{Token: "opaque", ClientID: "web-app", Scope: "read", ExpiresAt: time.Now().Add(time.Hour)}
	err := repo.CreateAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.NotEmpty(t, token.ID)
	assert.False(t, token.IssuedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccessTokenUniqueViolationPassesThrough(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTokenRepository(db)

	mock.ExpectExec("INSERT INTO access_tokens").WillReturnError(&pq.Error{Code: "23505"})

	err := repo.CreateAccessToken(context.Background(), &models.AccessToken{Token: "opaque", ClientID: "web-app"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAccessToken(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTokenRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "token", "client_id", "user_id", "scope", "issued_at", "expires_at", "revoked", "revoked_at"}).
		AddRow("at-1", "opaque", "web-app", "user-1", "read write", now, now.Add(time.Hour), false, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, token, client_id, user_id, scope, issued_at, expires_at, revoked, revoked_at FROM access_tokens WHERE token = $1 LIMIT 1")).
		WithArgs("opaque").
		WillReturnRows(rows)

	token, err := repo.FindAccessToken(context.Background(), "opaque")
	require.NoError(t, err)
	assert.Equal(t, "at-1", token.ID)
	assert.Equal(t, "web-app", token.ClientID)
	assert.False(t, token.Revoked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAccessTokenNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTokenRepository(db)

	mock.ExpectQuery("SELECT .+ FROM access_tokens").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAccessToken(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokeAccessTokenReportsAffectedRow(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTokenRepository(db)

	revokedAt := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE access_tokens SET revoked = TRUE, revoked_at = $2 WHERE token = $1 AND revoked = FALSE")).
		WithArgs("opaque", revokedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	revoked, err := repo.RevokeAccessToken(context.Background(), "opaque", revokedAt)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokeAccessTokenAlreadyRevoked(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTokenRepository(db)

	revokedAt := time.Now()
	mock.ExpectExec("UPDATE access_tokens SET revoked = TRUE").
		WithArgs("opaque", revokedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))

	revoked, err := repo.RevokeAccessToken(context.Background(), "opaque", revokedAt)
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRefreshToken(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTokenRepository(db)

	mock.ExpectExec("INSERT INTO refresh_tokens").WillReturnResult(sqlmock.NewResult(1, 1))

	token := &models.RefreshToken{Token: "opaque-refresh", AccessTokenID: "at-1", ClientID: "web-app", ExpiresAt: time.Now().Add(time.Hour)}
	err := repo.CreateRefreshToken(context.Background(), token)
	require.NoError(t, err)
	assert.NotEmpty(t, token.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRefreshToken(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTokenRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "token", "access_token_id", "client_id", "user_id", "scope", "issued_at", "expires_at", "revoked", "revoked_at"}).
		AddRow("rt-1", "opaque-refresh", "at-1", "web-app", "user-1", "read", now, now.Add(time.Hour), false, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, token, access_token_id, client_id, user_id, scope, issued_at, expires_at, revoked, revoked_at FROM refresh_tokens WHERE token = $1 LIMIT 1")).
		WithArgs("opaque-refresh").
		WillReturnRows(rows)

	token, err := repo.FindRefreshToken(context.Background(), "opaque-refresh")
	require.NoError(t, err)
	assert.Equal(t, "rt-1", token.ID)
	assert.Equal(t, "at-1", token.AccessTokenID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumeRefreshTokenCompareAndSet(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTokenRepository(db)

	revokedAt := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET revoked = TRUE, revoked_at = $2 WHERE token = $1 AND revoked = FALSE")).
		WithArgs("opaque-refresh", revokedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	consumed, err := repo.ConsumeRefreshToken(context.Background(), "opaque-refresh", revokedAt)
	require.NoError(t, err)
	assert.True(t, consumed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsumeRefreshTokenAlreadySpent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTokenRepository(db)

	revokedAt := time.Now()
	mock.ExpectExec("UPDATE refresh_tokens SET revoked = TRUE").
		WithArgs("opaque-refresh", revokedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))

	consumed, err := repo.ConsumeRefreshToken(context.Background(), "opaque-refresh", revokedAt)
	require.NoError(t, err)
	assert.False(t, consumed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeExpired(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTokenRepository(db)

	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_tokens WHERE expires_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM access_tokens WHERE expires_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 5))

	total, err := repo.PurgeExpired(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(8), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(sql.ErrNoRows))
	assert.False(t, IsUniqueViolation(nil))
}
