package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	Database    DatabaseConfig
	Redis       RedisConfig
	OAuth       OAuthConfig
	CORS        CORSConfig
	Log         LogConfig
	Maintenance MaintenanceConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// OAuthConfig governs token issuance policy.
type OAuthConfig struct {
	AccessTokenTTL        time.Duration
	RefreshTokenTTL       time.Duration
	DefaultScopes         []string
	RevokeCascade         bool
	TokenLength           int
	IncludeUserInResponse bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// MaintenanceConfig controls the expired-token purge worker.
type MaintenanceConfig struct {
	Enabled       bool
	PurgeInterval time.Duration
	RetainFor     time.Duration
	WorkerRetries int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	tokenLength := v.GetInt("OAUTH_TOKEN_LENGTH")
	if tokenLength < 32 {
		tokenLength = 32
	}
	cfg.OAuth = OAuthConfig{
		AccessTokenTTL:        parseDuration(v.GetString("OAUTH_ACCESS_TOKEN_TTL"), 10*time.Hour),
		RefreshTokenTTL:       parseDuration(v.GetString("OAUTH_REFRESH_TOKEN_TTL"), 14*24*time.Hour),
		DefaultScopes:         splitAndTrim(v.GetString("OAUTH_DEFAULT_SCOPES")),
		RevokeCascade:         v.GetBool("OAUTH_REVOKE_CASCADE"),
		TokenLength:           tokenLength,
		IncludeUserInResponse: v.GetBool("OAUTH_INCLUDE_USER_IN_RESPONSE"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Maintenance = MaintenanceConfig{
		Enabled:       v.GetBool("MAINTENANCE_ENABLED"),
		PurgeInterval: parseDuration(v.GetString("MAINTENANCE_PURGE_INTERVAL"), time.Hour),
		RetainFor:     parseDuration(v.GetString("MAINTENANCE_RETAIN_FOR"), 30*24*time.Hour),
		WorkerRetries: v.GetInt("MAINTENANCE_WORKER_RETRIES"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "authcore")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_ENABLED", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("OAUTH_ACCESS_TOKEN_TTL", "10h")
	v.SetDefault("OAUTH_REFRESH_TOKEN_TTL", "336h")
	v.SetDefault("OAUTH_DEFAULT_SCOPES", "read write")
	v.SetDefault("OAUTH_REVOKE_CASCADE", false)
	v.SetDefault("OAUTH_TOKEN_LENGTH", 32)
	v.SetDefault("OAUTH_INCLUDE_USER_IN_RESPONSE", true)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("MAINTENANCE_ENABLED", false)
	v.SetDefault("MAINTENANCE_PURGE_INTERVAL", "1h")
	v.SetDefault("MAINTENANCE_RETAIN_FOR", "720h")
	v.SetDefault("MAINTENANCE_WORKER_RETRIES", 3)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
