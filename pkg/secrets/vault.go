package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"movie-dialogue-api/backend/pkg/config"
	"movie-dialogue-api/backend/pkg/logger"

	vault "github.com/hashicorp/vault/api"
)

// VaultConfig holds configuration for Vault client
type VaultConfig struct {
	Address     string
	Token       string
	Namespace   string
	Timeout     time.Duration
	MaxRetries  int
	SecretsPath string
	CacheTTL    time.Duration
}

// VaultConfigFrom builds the Vault settings from the application configuration
func VaultConfigFrom(cfg *config.Config) VaultConfig {
	return VaultConfig{
		Address:     cfg.Vault.Address,
		Token:       cfg.Vault.Token,
		SecretsPath: cfg.Vault.SecretsPath,
		Timeout:     10 * time.Second,
		MaxRetries:  3,
		CacheTTL:    5 * time.Minute,
	}
}

type cachedSecret struct {
	value   string
	fetched time.Time
}

// VaultManager reads secrets from a KV v2 engine, falling back to another manager
// for keys Vault does not hold
type VaultManager struct {
	client   *vault.Client
	config   VaultConfig
	mount    string
	path     string
	fallback Manager
	log      *logger.Logger

	mu    sync.RWMutex
	cache map[string]cachedSecret
}

// NewVaultManager creates a new Vault manager instance
func NewVaultManager(config VaultConfig, fallback Manager, log *logger.Logger) (*VaultManager, error) {
	if config.Address == "" {
		return nil, ErrNoVaultAddress
	}
	if config.Token == "" {
		return nil, ErrNoVaultToken
	}
	if log == nil {
		log = logger.GetGlobal()
	}

	mount, path, err := splitSecretsPath(config.SecretsPath)
	if err != nil {
		return nil, err
	}

	vaultConfig := vault.DefaultConfig()
	vaultConfig.Address = config.Address
	if config.Timeout > 0 {
		vaultConfig.Timeout = config.Timeout
	}
	vaultConfig.MaxRetries = config.MaxRetries

	client, err := vault.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	client.SetToken(config.Token)
	if config.Namespace != "" {
		client.SetNamespace(config.Namespace)
	}

	return &VaultManager{
		client:   client,
		config:   config,
		mount:    mount,
		path:     path,
		fallback: fallback,
		log:      log,
		cache:    make(map[string]cachedSecret),
	}, nil
}

// splitSecretsPath splits "secret/data/app" into the KV mount and the secret path
func splitSecretsPath(p string) (string, string, error) {
	mount, path, ok := strings.Cut(strings.Trim(p, "/"), "/data/")
	if !ok || mount == "" || path == "" {
		return "", "", fmt.Errorf("vault secrets path %q must look like <mount>/data/<path>", p)
	}
	return mount, path, nil
}

// GetSecret retrieves a secret from Vault, with fallback to the secondary manager
func (m *VaultManager) GetSecret(ctx context.Context, key string) (string, error) {
	if value, ok := m.cached(key); ok {
		return value, nil
	}

	value, err := m.getFromVault(ctx, key)
	if errors.Is(err, ErrSecretNotFound) && m.fallback != nil {
		m.log.Debug("Secret not found in Vault, falling back", "key", key)
		return m.fallback.GetSecret(ctx, key)
	}
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.cache[key] = cachedSecret{value: value, fetched: time.Now()}
	m.mu.Unlock()

	return value, nil
}

func (m *VaultManager) cached(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.cache[key]
	if !ok || (m.config.CacheTTL > 0 && time.Since(entry.fetched) > m.config.CacheTTL) {
		return "", false
	}
	return entry.value, true
}

func (m *VaultManager) getFromVault(ctx context.Context, key string) (string, error) {
	secret, err := m.client.KVv2(m.mount).Get(ctx, m.path)
	if errors.Is(err, vault.ErrSecretNotFound) {
		return "", ErrSecretNotFound
	}
	if err != nil {
		m.log.Error("Failed to read secret from Vault",
			"mount", m.mount,
			"path", m.path,
			"error", err.Error(),
		)
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	if secret == nil || secret.Data == nil {
		return "", ErrSecretNotFound
	}

	value, ok := secret.Data[key].(string)
	if !ok {
		return "", ErrSecretNotFound
	}

	return value, nil
}
