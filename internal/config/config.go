package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names recognized by the loaders.
const (
	EnvConfigPath    = "CONFIG_PATH"
	EnvDBConnection  = "DB_CONNECTION"
	EnvSessionExpiry = "SESSION_EXPIRY"
	EnvOAuthURL      = "OAUTH_SESSION_DATA_URL"
	EnvAdminEmail    = "ADMIN_EMAIL"
	EnvAdminPassword = "ADMIN_PASSWORD"
)

// AppConfig holds resolved application configuration values.
type AppConfig struct {
	ConfigPath string
}

// LoadFromEnv loads app config from environment variables.
func LoadFromEnv() (AppConfig, error) {
	return AppConfig{ConfigPath: ResolveConfigPath(os.Getenv(EnvConfigPath))}, nil
}

// ResolveConfigPath normalizes the config path and applies defaults.
func ResolveConfigPath(p string) string {
	trimmed := strings.TrimSpace(p)
	if trimmed == "" {
		trimmed = "./config.yaml"
	}
	if abs, err := filepath.Abs(trimmed); err == nil {
		return abs
	}
	return trimmed
}

// ErrMissingDatabaseDSN indicates no database DSN is present in the config file.
var ErrMissingDatabaseDSN = errors.New("missing database dsn (set `database-dsn` or `database.dsn` in config file)")

// LoadDatabaseDSN reads the database DSN from the YAML config file.
// The DB_CONNECTION environment variable wins over the file.
func LoadDatabaseDSN(configPath string) (string, error) {
	if dsn := strings.TrimSpace(os.Getenv(EnvDBConnection)); dsn != "" {
		return dsn, nil
	}

	// fileConfig maps the YAML fields needed for DSN resolution.
	type fileConfig struct {
		DatabaseDSN string `yaml:"database-dsn"`
		Database    struct {
			DSN string `yaml:"dsn"`
		} `yaml:"database"`
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", fmt.Errorf("read config file: %w", err)
	}

	var cfg fileConfig
	if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
		return "", fmt.Errorf("parse config file: %w", errUnmarshal)
	}

	if dsn := strings.TrimSpace(cfg.DatabaseDSN); dsn != "" {
		return dsn, nil
	}
	if dsn := strings.TrimSpace(cfg.Database.DSN); dsn != "" {
		return dsn, nil
	}
	return "", ErrMissingDatabaseDSN
}

// SessionConfig holds session issuance settings.
type SessionConfig struct {
	Expiry time.Duration `yaml:"expiry"`
}

// defaultSessionExpiry is used when the config omits or invalidates the
// session expiry horizon. Matches the platform's 7-day login lifetime.
const defaultSessionExpiry = 7 * 24 * time.Hour

// LoadSessionConfig loads session settings from the YAML config file.
// SESSION_EXPIRY overrides the file value when it parses as a duration.
func LoadSessionConfig(configPath string) (SessionConfig, error) {
	// fileConfig maps the YAML fields needed for session settings.
	type fileConfig struct {
		Session SessionConfig `yaml:"session"`
	}

	result := SessionConfig{Expiry: defaultSessionExpiry}

	data, errRead := os.ReadFile(configPath)
	if errRead == nil {
		var cfg fileConfig
		if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal == nil && cfg.Session.Expiry > 0 {
			result = cfg.Session
		}
	}

	if expiryRaw := strings.TrimSpace(os.Getenv(EnvSessionExpiry)); expiryRaw != "" {
		if expiry, errParse := time.ParseDuration(expiryRaw); errParse == nil && expiry > 0 {
			result.Expiry = expiry
		}
	}

	if result.Expiry <= 0 {
		result.Expiry = defaultSessionExpiry
	}
	return result, nil
}

// OAuthConfig holds external identity provider settings.
type OAuthConfig struct {
	SessionDataURL string `yaml:"session-data-url"`
}

// LoadOAuthConfig loads OAuth exchange settings from the YAML config file.
// OAUTH_SESSION_DATA_URL overrides the file value.
func LoadOAuthConfig(configPath string) (OAuthConfig, error) {
	// fileConfig maps the YAML fields needed for OAuth settings.
	type fileConfig struct {
		OAuth OAuthConfig `yaml:"oauth"`
	}

	var result OAuthConfig

	data, errRead := os.ReadFile(configPath)
	if errRead == nil {
		var cfg fileConfig
		if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal == nil {
			result = cfg.OAuth
		}
	}

	if url := strings.TrimSpace(os.Getenv(EnvOAuthURL)); url != "" {
		result.SessionDataURL = url
	}
	result.SessionDataURL = strings.TrimSpace(result.SessionDataURL)
	return result, nil
}

// AdminSeedConfig holds the bootstrap administrator credentials.
type AdminSeedConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Default bootstrap admin credentials, used when nothing is configured.
const (
	DefaultAdminEmail    = "admin@moncaplus.com"
	DefaultAdminPassword = "admin123"
)

// LoadAdminSeedConfig loads bootstrap admin credentials from the YAML
// config file with ADMIN_EMAIL / ADMIN_PASSWORD env overrides.
func LoadAdminSeedConfig(configPath string) AdminSeedConfig {
	// fileConfig maps the YAML fields needed for admin seeding.
	type fileConfig struct {
		Admin AdminSeedConfig `yaml:"admin"`
	}

	var result AdminSeedConfig

	data, errRead := os.ReadFile(configPath)
	if errRead == nil {
		var cfg fileConfig
		if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal == nil {
			result = cfg.Admin
		}
	}

	if email := strings.TrimSpace(os.Getenv(EnvAdminEmail)); email != "" {
		result.Email = email
	}
	if password := strings.TrimSpace(os.Getenv(EnvAdminPassword)); password != "" {
		result.Password = password
	}

	if strings.TrimSpace(result.Email) == "" {
		result.Email = DefaultAdminEmail
	}
	if strings.TrimSpace(result.Password) == "" {
		result.Password = DefaultAdminPassword
	}
	return result
}
