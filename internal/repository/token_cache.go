package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lightechllc/authcore/internal/models"
)

// ErrCacheMiss signals the token is not cached; callers fall through to the store.
var ErrCacheMiss = errors.New("cache miss")

const accessTokenKeyPrefix = "access_token:"

// TokenCache fronts the access-token lookup used on every bearer-authenticated
// request. Entries expire with the token and are dropped on revocation.
type TokenCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewTokenCache constructs a token cache. A nil client disables caching.
func NewTokenCache(client *redis.Client, logger *zap.Logger) *TokenCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenCache{client: client, logger: logger}
}

// Get retrieves a cached access token by its opaque value.
func (c *TokenCache) Get(ctx context.Context, token string) (*models.AccessToken, error) {
	if c.client == nil {
		return nil, ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, accessTokenKeyPrefix+token).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get access token: %w", err)
	}

	var at models.AccessToken
	if err := json.Unmarshal(raw, &at); err != nil {
		return nil, fmt.Errorf("unmarshal cached access token: %w", err)
	}

	return &at, nil
}

// Set caches an access token until it expires. Tokens already at or past
// expiry are not cached.
func (c *TokenCache) Set(ctx context.Context, token *models.AccessToken) error {
	if c.client == nil {
		return nil
	}

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("marshal access token for cache: %w", err)
	}

	if err := c.client.Set(ctx, accessTokenKeyPrefix+token.Token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set access token: %w", err)
	}

	return nil
}

// Delete drops a cached access token, used when the token is revoked.
func (c *TokenCache) Delete(ctx context.Context, token string) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, accessTokenKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("redis delete access token: %w", err)
	}

	return nil
}

// Close releases the underlying Redis connection if present.
func (c *TokenCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
