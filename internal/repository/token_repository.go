package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lightechllc/authcore/internal/models"
)

const pqUniqueViolation = "23505"

// TokenRepository owns the access_tokens and refresh_tokens tables. No other
// component mutates token rows directly.
type TokenRepository struct {
	db *sqlx.DB
}

// NewTokenRepository creates a new instance of TokenRepository.
func NewTokenRepository(db *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// IsUniqueViolation reports whether the error is a Postgres unique-constraint
// violation, the retryable condition for token value collisions.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}

// CreateAccessToken persists an access token. The token column carries a
// unique constraint; collisions surface as a unique violation to the caller.
func (r *TokenRepository) CreateAccessToken(ctx context.Context, token *models.AccessToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	if token.IssuedAt.IsZero() {
		token.IssuedAt = time.Now().UTC()
	}
	const query = `INSERT INTO access_tokens (id, token, client_id, user_id, scope, issued_at, expires_at, revoked, revoked_at) VALUES (:id, :token, :client_id, :user_id, :scope, :issued_at, :expires_at, :revoked, :revoked_at)`
	if _, err := r.db.NamedExecContext(ctx, query, token); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create access token: %w", err)
	}
	return nil
}

// FindAccessToken returns an access token by its opaque value.
func (r *TokenRepository) FindAccessToken(ctx context.Context, token string) (*models.AccessToken, error) {
	const query = `SELECT id, token, client_id, user_id, scope, issued_at, expires_at, revoked, revoked_at FROM access_tokens WHERE token = $1 LIMIT 1`
	var at models.AccessToken
	if err := r.db.GetContext(ctx, &at, query, token); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find access token: %w", err)
	}
	return &at, nil
}

// FindAccessTokenByID returns an access token by surrogate id, used when a
// revocation cascade follows a refresh token to its paired access token.
func (r *TokenRepository) FindAccessTokenByID(ctx context.Context, id string) (*models.AccessToken, error) {
	const query = `SELECT id, token, client_id, user_id, scope, issued_at, expires_at, revoked, revoked_at FROM access_tokens WHERE id = $1 LIMIT 1`
	var at models.AccessToken
	if err := r.db.GetContext(ctx, &at, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find access token by id: %w", err)
	}
	return &at, nil
}

// RevokeAccessToken marks an access token revoked. The conditional update is
// the linearization point; it reports whether this call performed the revoke.
func (r *TokenRepository) RevokeAccessToken(ctx context.Context, token string, revokedAt time.Time) (bool, error) {
	const query = `UPDATE access_tokens SET revoked = TRUE, revoked_at = $2 WHERE token = $1 AND revoked = FALSE`
	res, err := r.db.ExecContext(ctx, query, token, revokedAt)
	if err != nil {
		return false, fmt.Errorf("revoke access token: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("revoke access token rows: %w", err)
	}
	return affected == 1, nil
}

// RevokeAccessTokenByID revokes the access token paired with a refresh token
// during a revocation cascade.
func (r *TokenRepository) RevokeAccessTokenByID(ctx context.Context, id string, revokedAt time.Time) (bool, error) {
	const query = `UPDATE access_tokens SET revoked = TRUE, revoked_at = $2 WHERE id = $1 AND revoked = FALSE`
	res, err := r.db.ExecContext(ctx, query, id, revokedAt)
	if err != nil {
		return false, fmt.Errorf("revoke access token by id: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("revoke access token by id rows: %w", err)
	}
	return affected == 1, nil
}

// CreateRefreshToken persists a refresh token paired with an access token.
func (r *TokenRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	if token.IssuedAt.IsZero() {
		token.IssuedAt = time.Now().UTC()
	}
	const query = `INSERT INTO refresh_tokens (id, token, access_token_id, client_id, user_id, scope, issued_at, expires_at, revoked, revoked_at) VALUES (:id, :token, :access_token_id, :client_id, :user_id, :scope, :issued_at, :expires_at, :revoked, :revoked_at)`
	if _, err := r.db.NamedExecContext(ctx, query, token); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create refresh token: %w", err)
	}
	return nil
}

// FindRefreshToken returns a refresh token by its opaque value.
func (r *TokenRepository) FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	const query = `SELECT id, token, access_token_id, client_id, user_id, scope, issued_at, expires_at, revoked, revoked_at FROM refresh_tokens WHERE token = $1 LIMIT 1`
	var rt models.RefreshToken
	if err := r.db.GetContext(ctx, &rt, query, token); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	return &rt, nil
}

// ConsumeRefreshToken atomically flips revoked from FALSE to TRUE. Exactly one
// of any number of concurrent callers observes true; the rest must treat the
// token as spent. Rotation and revocation both go through this compare-and-set.
func (r *TokenRepository) ConsumeRefreshToken(ctx context.Context, token string, revokedAt time.Time) (bool, error) {
	const query = `UPDATE refresh_tokens SET revoked = TRUE, revoked_at = $2 WHERE token = $1 AND revoked = FALSE`
	res, err := r.db.ExecContext(ctx, query, token, revokedAt)
	if err != nil {
		return false, fmt.Errorf("consume refresh token: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("consume refresh token rows: %w", err)
	}
	return affected == 1, nil
}

// PurgeExpired deletes token rows that expired before the cutoff. Revocation
// never deletes rows; this is the only reclamation path.
func (r *TokenRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	var total int64

	res, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE expires_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("purge expired refresh tokens: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		total += n
	}

	res, err = r.db.ExecContext(ctx, `DELETE FROM access_tokens WHERE expires_at < $1`, before)
	if err != nil {
		return total, fmt.Errorf("purge expired access tokens: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		total += n
	}

	return total, nil
}
