package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lightechllc/authcore/internal/models"
	"github.com/lightechllc/authcore/internal/repository"
	"github.com/lightechllc/authcore/pkg/oautherrors"
)

type clientRepository interface {
	FindByClientID(ctx context.Context, clientID string) (*models.Client, error)
}

type userRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id string, ts time.Time) error
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

type tokenRepository interface {
	CreateAccessToken(ctx context.Context, token *models.AccessToken) error
	FindAccessToken(ctx context.Context, token string) (*models.AccessToken, error)
	FindAccessTokenByID(ctx context.Context, id string) (*models.AccessToken, error)
	RevokeAccessToken(ctx context.Context, token string, revokedAt time.Time) (bool, error)
	RevokeAccessTokenByID(ctx context.Context, id string, revokedAt time.Time) (bool, error)
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)
	ConsumeRefreshToken(ctx context.Context, token string, revokedAt time.Time) (bool, error)
}

type tokenCache interface {
	Get(ctx context.Context, token string) (*models.AccessToken, error)
	Set(ctx context.Context, token *models.AccessToken) error
	Delete(ctx context.Context, token string) error
}

// OAuthConfig defines token issuance policy.
type OAuthConfig struct {
	AccessTokenTTL        time.Duration
	RefreshTokenTTL       time.Duration
	DefaultScopes         []string
	RevokeCascade         bool
	TokenLength           int
	IncludeUserInResponse bool
}

// Repos holds the store dependencies of the OAuthService.
type Repos struct {
	Clients clientRepository
	Users   userRepository
	Tokens  tokenRepository
	Cache   tokenCache
}

// OAuthService implements the grant, revocation, introspection, and bearer
// authentication flows over the client registry and token store.
type OAuthService struct {
	repos     Repos
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	config    OAuthConfig
	now       func() time.Time
}

// Option customises an OAuthService.
type Option func(*OAuthService)

// WithNowFunc overrides the clock, primarily for tests.
func WithNowFunc(now func() time.Time) Option {
	return func(s *OAuthService) {
		s.now = now
	}
}

// WithMetrics attaches a metrics service.
func WithMetrics(m *MetricsService) Option {
	return func(s *OAuthService) {
		s.metrics = m
	}
}

// NewOAuthService constructs an OAuthService.
func NewOAuthService(repos Repos, validate *validator.Validate, logger *zap.Logger, config OAuthConfig, options ...Option) *OAuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.TokenLength < 32 {
		config.TokenLength = 32
	}
	svc := &OAuthService{
		repos:     repos,
		validator: validate,
		logger:    logger,
		config:    config,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range options {
		opt(svc)
	}
	return svc
}

type passwordGrantParams struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type refreshGrantParams struct {
	RefreshToken string `validate:"required"`
}

// Token processes a token endpoint request. Client authentication always
// precedes grant dispatch; its failure maps to invalid_client with HTTP 401.
func (s *OAuthService) Token(ctx context.Context, req models.TokenRequest) (*models.TokenResponse, error) {
	client, err := s.verifyClient(ctx, req.ClientID, req.ClientSecret)
	if err != nil {
		return nil, err
	}

	switch req.GrantType {
	case models.GrantTypePassword:
		return s.passwordGrant(ctx, client, req)
	case models.GrantTypeRefreshToken:
		return s.refreshGrant(ctx, client, req)
	case "":
		return nil, oautherrors.Clone(oautherrors.ErrUnsupportedGrantType, "grant_type parameter is required")
	default:
		return nil, oautherrors.Clone(oautherrors.ErrUnsupportedGrantType, fmt.Sprintf("grant type %q is not supported", req.GrantType))
	}
}

func (s *OAuthService) passwordGrant(ctx context.Context, client *models.Client, req models.TokenRequest) (*models.TokenResponse, error) {
	if !client.AllowsGrantType(models.GrantTypePassword) {
		return nil, oautherrors.Clone(oautherrors.ErrUnsupportedGrantType, "grant type is not permitted for this client")
	}

	if err := s.validator.Struct(passwordGrantParams{Username: req.Username, Password: req.Password}); err != nil {
		return nil, oautherrors.Wrap(err, oautherrors.ErrInvalidRequest.Code, oautherrors.ErrInvalidRequest.Status, "username and password parameters are required")
	}

	user, err := s.verifyResourceOwner(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	scope, err := s.resolveScope(client, req.Scope)
	if err != nil {
		return nil, err
	}

	resp, access, err := s.issueTokens(ctx, client, user, scope)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Users.UpdateLastLogin(ctx, user.ID, s.now()); err != nil {
		s.logger.Warn("failed to update last login", zap.Error(err))
	}

	s.observeIssued(models.GrantTypePassword)
	s.audit(ctx, models.AuditActionTokenIssued, client.ClientID, &user.ID, &access.ID, req.IP, req.UserAgent, map[string]interface{}{
		"grant_type": models.GrantTypePassword,
		"scope":      scope,
	})

	return resp, nil
}

func (s *OAuthService) refreshGrant(ctx context.Context, client *models.Client, req models.TokenRequest) (*models.TokenResponse, error) {
	if !client.AllowsGrantType(models.GrantTypeRefreshToken) {
		return nil, oautherrors.Clone(oautherrors.ErrUnsupportedGrantType, "grant type is not permitted for this client")
	}

	if err := s.validator.Struct(refreshGrantParams{RefreshToken: req.RefreshToken}); err != nil {
		return nil, oautherrors.Wrap(err, oautherrors.ErrInvalidRequest.Code, oautherrors.ErrInvalidRequest.Status, "refresh_token parameter is required")
	}

	invalidGrant := oautherrors.Clone(oautherrors.ErrInvalidGrant, "refresh token is invalid, expired, or revoked")

	stored, err := s.repos.Tokens.FindRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invalidGrant
		}
		return nil, oautherrors.FromError(err)
	}

	// A token issued to another client is treated exactly like an unknown one.
	if stored.ClientID != client.ClientID {
		return nil, invalidGrant
	}

	now := s.now()
	if now.After(stored.ExpiresAt) || stored.ExpiresAt.Equal(now) {
		return nil, invalidGrant
	}

	// Rotation: the old refresh token is spent before the replacement pair is
	// minted. The compare-and-set admits exactly one of any concurrent callers.
	consumed, err := s.repos.Tokens.ConsumeRefreshToken(ctx, stored.Token, now)
	if err != nil {
		return nil, oautherrors.FromError(err)
	}
	if !consumed {
		return nil, invalidGrant
	}

	var user *models.User
	if stored.UserID != nil {
		user, err = s.repos.Users.FindByID(ctx, *stored.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, invalidGrant
			}
			return nil, oautherrors.FromError(err)
		}
		if !user.Active {
			return nil, invalidGrant
		}
	}

	resp, access, err := s.issueTokens(ctx, client, user, stored.Scope)
	if err != nil {
		return nil, err
	}

	s.observeIssued(models.GrantTypeRefreshToken)
	s.audit(ctx, models.AuditActionTokenRefreshed, client.ClientID, stored.UserID, &access.ID, req.IP, req.UserAgent, map[string]interface{}{
		"grant_type": models.GrantTypeRefreshToken,
		"rotated":    stored.ID,
	})

	return resp, nil
}

// Revoke processes an RFC 7009 revocation request. The response is identical
// whether the token existed, was already revoked, or belongs to another
// client; only client authentication and store failures surface as errors.
func (s *OAuthService) Revoke(ctx context.Context, req models.RevokeRequest) (*models.RevokeResponse, error) {
	client, err := s.verifyClient(ctx, req.ClientID, req.ClientSecret)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Token) == "" {
		return nil, oautherrors.Clone(oautherrors.ErrInvalidRequest, "token parameter is required")
	}

	// Hinted store first, then the other (RFC 7009 §2.1).
	if req.TokenTypeHint == models.TokenTypeHintRefreshToken {
		found, err := s.revokeAsRefreshToken(ctx, client, req)
		if err != nil {
			return nil, err
		}
		if !found {
			if _, err := s.revokeAsAccessToken(ctx, client, req); err != nil {
				return nil, err
			}
		}
	} else {
		found, err := s.revokeAsAccessToken(ctx, client, req)
		if err != nil {
			return nil, err
		}
		if !found {
			if _, err := s.revokeAsRefreshToken(ctx, client, req); err != nil {
				return nil, err
			}
		}
	}

	return &models.RevokeResponse{Message: "Token revoked successfully"}, nil
}

func (s *OAuthService) revokeAsAccessToken(ctx context.Context, client *models.Client, req models.RevokeRequest) (bool, error) {
	stored, err := s.repos.Tokens.FindAccessToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, oautherrors.FromError(err)
	}

	// Found but owned by another client: swallow silently, nothing to revoke.
	if stored.ClientID != client.ClientID {
		return true, nil
	}

	revoked, err := s.repos.Tokens.RevokeAccessToken(ctx, stored.Token, s.now())
	if err != nil {
		return true, oautherrors.FromError(err)
	}
	if revoked {
		s.dropFromCache(ctx, stored.Token)
		s.observeRevoked(models.TokenTypeHintAccessToken)
		s.audit(ctx, models.AuditActionTokenRevoked, client.ClientID, stored.UserID, &stored.ID, req.IP, req.UserAgent, map[string]interface{}{
			"token_type": models.TokenTypeHintAccessToken,
		})
	}
	return true, nil
}

func (s *OAuthService) revokeAsRefreshToken(ctx context.Context, client *models.Client, req models.RevokeRequest) (bool, error) {
	stored, err := s.repos.Tokens.FindRefreshToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, oautherrors.FromError(err)
	}

	if stored.ClientID != client.ClientID {
		return true, nil
	}

	now := s.now()
	revoked, err := s.repos.Tokens.ConsumeRefreshToken(ctx, stored.Token, now)
	if err != nil {
		return true, oautherrors.FromError(err)
	}
	if !revoked {
		return true, nil
	}

	if s.config.RevokeCascade {
		if err := s.cascadeToAccessToken(ctx, stored.AccessTokenID, now); err != nil {
			return true, err
		}
	}

	s.observeRevoked(models.TokenTypeHintRefreshToken)
	s.audit(ctx, models.AuditActionTokenRevoked, client.ClientID, stored.UserID, &stored.ID, req.IP, req.UserAgent, map[string]interface{}{
		"token_type": models.TokenTypeHintRefreshToken,
		"cascade":    s.config.RevokeCascade,
	})
	return true, nil
}

func (s *OAuthService) cascadeToAccessToken(ctx context.Context, accessTokenID string, now time.Time) error {
	paired, err := s.repos.Tokens.FindAccessTokenByID(ctx, accessTokenID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return oautherrors.FromError(err)
	}
	if _, err := s.repos.Tokens.RevokeAccessTokenByID(ctx, paired.ID, now); err != nil {
		return oautherrors.FromError(err)
	}
	s.dropFromCache(ctx, paired.Token)
	return nil
}

// Introspect reports token state per RFC 7662. Unknown, expired, revoked, and
// foreign tokens all collapse to {active: false}.
func (s *OAuthService) Introspect(ctx context.Context, req models.IntrospectRequest) (*models.Introspection, error) {
	client, err := s.verifyClient(ctx, req.ClientID, req.ClientSecret)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Token) == "" {
		return nil, oautherrors.Clone(oautherrors.ErrInvalidRequest, "token parameter is required")
	}

	if req.TokenTypeHint != models.TokenTypeHintRefreshToken {
		if intro, ok, err := s.introspectAccessToken(ctx, client, req.Token); err != nil {
			return nil, err
		} else if ok {
			return intro, nil
		}
		if intro, ok, err := s.introspectRefreshToken(ctx, client, req.Token); err != nil {
			return nil, err
		} else if ok {
			return intro, nil
		}
		return &models.Introspection{Active: false}, nil
	}

	if intro, ok, err := s.introspectRefreshToken(ctx, client, req.Token); err != nil {
		return nil, err
	} else if ok {
		return intro, nil
	}
	if intro, ok, err := s.introspectAccessToken(ctx, client, req.Token); err != nil {
		return nil, err
	} else if ok {
		return intro, nil
	}
	return &models.Introspection{Active: false}, nil
}

func (s *OAuthService) introspectAccessToken(ctx context.Context, client *models.Client, token string) (*models.Introspection, bool, error) {
	stored, err := s.repos.Tokens.FindAccessToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, oautherrors.FromError(err)
	}
	if stored.ClientID != client.ClientID || !stored.Valid(s.now()) {
		return &models.Introspection{Active: false}, true, nil
	}

	intro := &models.Introspection{
		Active:    true,
		Scope:     stored.Scope,
		ClientID:  stored.ClientID,
		TokenType: models.TokenTypeBearer,
		Exp:       stored.ExpiresAt.Unix(),
		Iat:       stored.IssuedAt.Unix(),
	}
	if stored.UserID != nil {
		intro.Sub = *stored.UserID
		if user, err := s.repos.Users.FindByID(ctx, *stored.UserID); err == nil {
			intro.Username = user.Username
		}
	}
	return intro, true, nil
}

func (s *OAuthService) introspectRefreshToken(ctx context.Context, client *models.Client, token string) (*models.Introspection, bool, error) {
	stored, err := s.repos.Tokens.FindRefreshToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, oautherrors.FromError(err)
	}
	if stored.ClientID != client.ClientID || !stored.Valid(s.now()) {
		return &models.Introspection{Active: false}, true, nil
	}

	intro := &models.Introspection{
		Active:    true,
		Scope:     stored.Scope,
		ClientID:  stored.ClientID,
		TokenType: models.TokenTypeHintRefreshToken,
		Exp:       stored.ExpiresAt.Unix(),
		Iat:       stored.IssuedAt.Unix(),
	}
	if stored.UserID != nil {
		intro.Sub = *stored.UserID
	}
	return intro, true, nil
}

// Authenticate resolves a bearer token to its identity and token record.
// A nil token with nil error means the request is unauthenticated; the caller
// must not learn why. The operation mutates no state.
func (s *OAuthService) Authenticate(ctx context.Context, rawToken string) (*models.User, *models.AccessToken, error) {
	if strings.TrimSpace(rawToken) == "" {
		s.observeBearer("missing")
		return nil, nil, nil
	}

	token, err := s.lookupAccessToken(ctx, rawToken)
	if err != nil {
		s.observeBearer("error")
		return nil, nil, err
	}
	if token == nil || !token.Valid(s.now()) {
		s.observeBearer("rejected")
		return nil, nil, nil
	}

	var user *models.User
	if token.UserID != nil {
		user, err = s.repos.Users.FindByID(ctx, *token.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				s.observeBearer("rejected")
				return nil, nil, nil
			}
			s.observeBearer("error")
			return nil, nil, err
		}
		if !user.Active {
			s.observeBearer("rejected")
			return nil, nil, nil
		}
	}

	s.observeBearer("ok")
	return user, token, nil
}

func (s *OAuthService) lookupAccessToken(ctx context.Context, rawToken string) (*models.AccessToken, error) {
	if s.repos.Cache != nil {
		cached, err := s.repos.Cache.Get(ctx, rawToken)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			s.logger.Warn("token cache lookup failed", zap.Error(err))
		}
	}

	stored, err := s.repos.Tokens.FindAccessToken(ctx, rawToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if s.repos.Cache != nil && stored.Valid(s.now()) {
		if err := s.repos.Cache.Set(ctx, stored); err != nil {
			s.logger.Warn("token cache store failed", zap.Error(err))
		}
	}

	return stored, nil
}

// verifyClient authenticates the calling application. Every failure collapses
// to the same invalid_client error so callers cannot probe the registry.
func (s *OAuthService) verifyClient(ctx context.Context, clientID, clientSecret string) (*models.Client, error) {
	invalidClient := oautherrors.Clone(oautherrors.ErrInvalidClient, "client authentication failed")

	if clientID == "" {
		return nil, invalidClient
	}

	client, err := s.repos.Clients.FindByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invalidClient
		}
		return nil, oautherrors.FromError(err)
	}

	if !client.Active {
		return nil, invalidClient
	}

	if client.IsConfidential() {
		if clientSecret == "" {
			return nil, invalidClient
		}
		if subtle.ConstantTimeCompare([]byte(client.ClientSecret), []byte(clientSecret)) != 1 {
			return nil, invalidClient
		}
	}

	return client, nil
}

// verifyResourceOwner checks the end-user credentials. Unknown usernames,
// inactive accounts, and wrong passwords all produce the identical response.
func (s *OAuthService) verifyResourceOwner(ctx context.Context, username, password string) (*models.User, error) {
	invalidGrant := oautherrors.Clone(oautherrors.ErrInvalidGrant, "invalid username or password")

	user, err := s.repos.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invalidGrant
		}
		return nil, oautherrors.FromError(err)
	}

	if !user.Active {
		return nil, invalidGrant
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalidGrant
	}

	return user, nil
}

// resolveScope validates the requested scope against the client registration.
// An empty request falls back to the server defaults the client is allowed.
func (s *OAuthService) resolveScope(client *models.Client, requested string) (string, error) {
	if strings.TrimSpace(requested) == "" {
		granted := make([]string, 0, len(s.config.DefaultScopes))
		for _, scope := range s.config.DefaultScopes {
			if client.HasScope(scope) {
				granted = append(granted, scope)
			}
		}
		return strings.Join(granted, " "), nil
	}

	scopes := models.SplitScopes(requested)
	for _, scope := range scopes {
		if !client.HasScope(scope) {
			return "", oautherrors.Clone(oautherrors.ErrInvalidScope, fmt.Sprintf("scope %q is not allowed for this client", scope))
		}
	}
	return strings.Join(scopes, " "), nil
}

// issueTokens mints and persists a paired access and refresh token. A token
// value colliding with an existing row is regenerated once; a second
// collision is surfaced as server_error.
func (s *OAuthService) issueTokens(ctx context.Context, client *models.Client, user *models.User, scope string) (*models.TokenResponse, *models.AccessToken, error) {
	now := s.now()

	var userID *string
	if user != nil {
		userID = &user.ID
	}

	access := &models.AccessToken{
		ClientID:  client.ClientID,
		UserID:    userID,
		Scope:     scope,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.config.AccessTokenTTL),
	}
	if err := s.insertWithRetry(func(value string) error {
		access.Token = value
		return s.repos.Tokens.CreateAccessToken(ctx, access)
	}); err != nil {
		return nil, nil, err
	}

	refresh := &models.RefreshToken{
		AccessTokenID: access.ID,
		ClientID:      client.ClientID,
		UserID:        userID,
		Scope:         scope,
		IssuedAt:      now,
		ExpiresAt:     now.Add(s.config.RefreshTokenTTL),
	}
	if err := s.insertWithRetry(func(value string) error {
		refresh.Token = value
		return s.repos.Tokens.CreateRefreshToken(ctx, refresh)
	}); err != nil {
		return nil, nil, err
	}

	if s.repos.Cache != nil {
		if err := s.repos.Cache.Set(ctx, access); err != nil {
			s.logger.Warn("failed to cache issued access token", zap.Error(err))
		}
	}

	resp := &models.TokenResponse{
		AccessToken:  access.Token,
		TokenType:    models.TokenTypeBearer,
		ExpiresIn:    int64(s.config.AccessTokenTTL.Seconds()),
		RefreshToken: refresh.Token,
		Scope:        scope,
	}
	if s.config.IncludeUserInResponse && user != nil {
		info := user.Info()
		resp.User = &info
	}
	return resp, access, nil
}

func (s *OAuthService) insertWithRetry(insert func(value string) error) error {
	for attempt := 0; attempt < 2; attempt++ {
		value, err := s.generateTokenValue()
		if err != nil {
			return oautherrors.Wrap(err, oautherrors.ErrServerError.Code, oautherrors.ErrServerError.Status, oautherrors.ErrServerError.Description)
		}
		err = insert(value)
		if err == nil {
			return nil
		}
		if repository.IsUniqueViolation(err) && attempt == 0 {
			s.logger.Warn("token value collision, regenerating")
			continue
		}
		return oautherrors.Wrap(err, oautherrors.ErrServerError.Code, oautherrors.ErrServerError.Status, oautherrors.ErrServerError.Description)
	}
	return oautherrors.Clone(oautherrors.ErrServerError, oautherrors.ErrServerError.Description)
}

// generateTokenValue produces an opaque URL-safe token value with at least
// 256 bits of entropy from the CSPRNG.
func (s *OAuthService) generateTokenValue() (string, error) {
	buf := make([]byte, s.config.TokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (s *OAuthService) dropFromCache(ctx context.Context, token string) {
	if s.repos.Cache == nil {
		return
	}
	if err := s.repos.Cache.Delete(ctx, token); err != nil {
		s.logger.Warn("failed to drop revoked token from cache", zap.Error(err))
	}
}

func (s *OAuthService) audit(ctx context.Context, action, clientID string, userID, resourceID *string, ip, userAgent string, values map[string]interface{}) {
	payload, _ := json.Marshal(values)
	if err := s.repos.Users.CreateAuditLog(ctx, &models.AuditLog{
		UserID:     userID,
		ClientID:   clientID,
		Action:     action,
		Resource:   "oauth",
		ResourceID: resourceID,
		NewValues:  payload,
		IPAddress:  ip,
		UserAgent:  userAgent,
	}); err != nil {
		s.logger.Warn("failed to record audit log", zap.String("action", action), zap.Error(err))
	}
}

func (s *OAuthService) observeIssued(grantType string) {
	if s.metrics != nil {
		s.metrics.ObserveTokenIssued(grantType)
	}
}

func (s *OAuthService) observeRevoked(tokenType string) {
	if s.metrics != nil {
		s.metrics.ObserveTokenRevoked(tokenType)
	}
}

func (s *OAuthService) observeBearer(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveBearerAuth(outcome)
	}
}
