package models

import "time"

// AccessToken represents an opaque bearer credential stored in the access_tokens table.
type AccessToken struct {
	ID        string     `db:"id" json:"id"`
	Token     string     `db:"token" json:"token"`
	ClientID  string     `db:"client_id" json:"client_id"`
	UserID    *string    `db:"user_id" json:"user_id,omitempty"`
	Scope     string     `db:"scope" json:"scope"`
	IssuedAt  time.Time  `db:"issued_at" json:"issued_at"`
	ExpiresAt time.Time  `db:"expires_at" json:"expires_at"`
	Revoked   bool       `db:"revoked" json:"revoked"`
	RevokedAt *time.Time `db:"revoked_at" json:"revoked_at,omitempty"`
}

// Valid reports whether the token is usable at the given instant.
func (t *AccessToken) Valid(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}

// RefreshToken represents a persisted refresh token paired with an access token.
type RefreshToken struct {
	ID            string     `db:"id" json:"id"`
	Token         string     `db:"token" json:"token"`
	AccessTokenID string     `db:"access_token_id" json:"access_token_id"`
	ClientID      string     `db:"client_id" json:"client_id"`
	UserID        *string    `db:"user_id" json:"user_id,omitempty"`
	Scope         string     `db:"scope" json:"scope"`
	IssuedAt      time.Time  `db:"issued_at" json:"issued_at"`
	ExpiresAt     time.Time  `db:"expires_at" json:"expires_at"`
	Revoked       bool       `db:"revoked" json:"revoked"`
	RevokedAt     *time.Time `db:"revoked_at" json:"revoked_at,omitempty"`
}

// Valid reports whether the refresh token is usable at the given instant.
func (t *RefreshToken) Valid(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
