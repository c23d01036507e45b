package secrets

import (
	"context"
	"errors"
	"os"
	"strings"

	"movie-dialogue-api/backend/pkg/config"
	"movie-dialogue-api/backend/pkg/logger"
)

// Manager provides access to secrets from various sources
type Manager interface {
	// GetSecret retrieves a secret by key
	GetSecret(ctx context.Context, key string) (string, error)
}

// Secret keys applied to the configuration
const (
	KeyDatabasePassword = "db_password"
	KeyWriteTokenSecret = "write_token_secret"
	KeyRedisURL         = "redis_url"
)

// Common errors
var (
	ErrSecretNotFound = errors.New("secret not found")
	ErrNoVaultToken   = errors.New("no vault token provided")
	ErrNoVaultAddress = errors.New("no vault address provided")
)

// New returns the manager selected by the configuration: Vault when enabled,
// otherwise the process environment
func New(cfg *config.Config, log *logger.Logger) (Manager, error) {
	if !cfg.Vault.Enabled {
		return NewEnvManager(nil), nil
	}
	return NewVaultManager(VaultConfigFrom(cfg), NewEnvManager(nil), log)
}

// Apply overrides the credentials in cfg with the secrets m holds. Missing secrets
// keep the configured value.
func Apply(ctx context.Context, cfg *config.Config, m Manager) error {
	targets := []struct {
		key   string
		value *string
	}{
		{KeyDatabasePassword, &cfg.Database.Password},
		{KeyWriteTokenSecret, &cfg.Security.WriteTokenSecret},
		{KeyRedisURL, &cfg.Cache.RedisURL},
	}

	for _, t := range targets {
		value, err := m.GetSecret(ctx, t.key)
		if errors.Is(err, ErrSecretNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		*t.value = value
	}
	return nil
}

// EnvManager reads secrets from environment variables. Keys are upper-cased and
// dashes and dots become underscores, so db_password reads DB_PASSWORD.
type EnvManager struct {
	lookup func(string) (string, bool)
}

// NewEnvManager creates an environment manager; a nil lookup reads the process environment
func NewEnvManager(lookup func(string) (string, bool)) *EnvManager {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvManager{lookup: lookup}
}

// GetSecret returns the value of the environment variable for key
func (m *EnvManager) GetSecret(_ context.Context, key string) (string, error) {
	value, ok := m.lookup(envKey(key))
	if !ok || value == "" {
		return "", ErrSecretNotFound
	}
	return value, nil
}

func envKey(key string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(key))
}
