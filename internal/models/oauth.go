package models

// Grant types reachable through the token endpoint.
const (
	GrantTypePassword     = "password"
	GrantTypeRefreshToken = "refresh_token"
)

// Token type hints accepted by the revocation endpoint (RFC 7009 §2.1).
const (
	TokenTypeHintAccessToken  = "access_token"
	TokenTypeHintRefreshToken = "refresh_token"
)

// TokenTypeBearer is the only token type this server issues.
const TokenTypeBearer = "Bearer"

// TokenRequest holds the parsed form parameters of a token endpoint call.
// Client credentials come from the Basic auth header or the body.
type TokenRequest struct {
	GrantType    string `json:"grant_type"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope,omitempty"`
	ClientID     string `json:"-"`
	ClientSecret string `json:"-"`
	IP           string `json:"-"`
	UserAgent    string `json:"-"`
}

// TokenResponse is the successful token endpoint payload (RFC 6749 §5.1).
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Scope        string    `json:"scope,omitempty"`
	User         *UserInfo `json:"user,omitempty"`
}

// RevokeRequest holds the parsed parameters of a revocation call (RFC 7009 §2.1).
type RevokeRequest struct {
	Token         string `json:"token"`
	TokenTypeHint string `json:"token_type_hint,omitempty"`
	ClientID      string `json:"-"`
	ClientSecret  string `json:"-"`
	IP            string `json:"-"`
	UserAgent     string `json:"-"`
}

// RevokeResponse acknowledges a revocation request. The body is identical
// whether or not the token existed.
type RevokeResponse struct {
	Message string `json:"message"`
}

// IntrospectRequest holds the parsed parameters of an introspection call (RFC 7662 §2.1).
type IntrospectRequest struct {
	Token         string `json:"token"`
	TokenTypeHint string `json:"token_type_hint,omitempty"`
	ClientID      string `json:"-"`
	ClientSecret  string `json:"-"`
}

// Introspection is the introspection response payload (RFC 7662 §2.2).
type Introspection struct {
	Active    bool   `json:"active"`
	Scope     string `json:"scope,omitempty"`
	ClientID  string `json:"client_id,omitempty"`
	Username  string `json:"username,omitempty"`
	TokenType string `json:"token_type,omitempty"`
	Exp       int64  `json:"exp,omitempty"`
	Iat       int64  `json:"iat,omitempty"`
	Sub       string `json:"sub,omitempty"`
}
