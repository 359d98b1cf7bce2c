package models

import (
	"strings"
	"time"
)

// ClientType distinguishes clients that can hold a secret from those that cannot.
type ClientType string

const (
	ClientTypeConfidential ClientType = "confidential"
	ClientTypePublic       ClientType = "public"
)

// Client represents a registered OAuth2 application stored in the oauth_clients table.
type Client struct {
	ClientID      string     `db:"client_id" json:"client_id"`
	ClientSecret  string     `db:"client_secret" json:"-"`
	Name          string     `db:"name" json:"name"`
	Type          ClientType `db:"client_type" json:"client_type"`
	GrantTypes    string     `db:"grant_types" json:"grant_types"`
	AllowedScopes string     `db:"allowed_scopes" json:"allowed_scopes"`
	Active        bool       `db:"active" json:"active"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// IsConfidential reports whether the client must authenticate with its secret.
func (c *Client) IsConfidential() bool {
	return c.Type == ClientTypeConfidential
}

// AllowsGrantType reports whether the client is registered for the given grant type.
func (c *Client) AllowsGrantType(grantType string) bool {
	for _, g := range SplitScopes(c.GrantTypes) {
		if g == grantType {
			return true
		}
	}
	return false
}

// HasScope reports whether a single scope is allowed for the client.
func (c *Client) HasScope(scope string) bool {
	for _, s := range SplitScopes(c.AllowedScopes) {
		if s == scope {
			return true
		}
	}
	return false
}

// SplitScopes splits a space-delimited scope string, dropping empty entries.
func SplitScopes(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Fields(raw)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
