package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("MARKKO_TEST_SECRET", "s3cret-from-env")

	path := writeConfig(t, `
api:
  base_path: https://api.demo.markko.io
  origin: storefront
  client_credential_key: key-123
  client_credential_secret: ${MARKKO_TEST_SECRET}
rate_limit:
  enabled: true
  per_second: 2.5
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.demo.markko.io", cfg.API.BasePath)
	assert.Equal(t, "storefront", cfg.API.Origin)
	assert.Equal(t, "s3cret-from-env", cfg.API.ClientCredentialSecret)

	// Explicit values survive, gaps get defaults.
	assert.Equal(t, 2.5, cfg.RateLimit.PerSecond)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, int64(5000), cfg.RateLimit.DailyLimit)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "reading config file")
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "api: [not a mapping")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "parsing config YAML")
}

func TestLoadValidation(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
api:
  origin: storefront
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "api.base_path is required")
	assert.ErrorContains(t, err, "api.client_credential_key is required")
	assert.ErrorContains(t, err, "api.client_credential_secret is required")
}

func TestSDKConfig(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		API: APIConfig{
			BasePath:               "https://api.demo.markko.io",
			Origin:                 "storefront",
			Version:                "1.2.3",
			ClientCredentialKey:    "key",
			ClientCredentialSecret: "secret",
			CacheExternalRefresh:   true,
		},
	}

	sdk := cfg.SDKConfig()
	assert.Equal(t, "https://api.demo.markko.io", sdk.APIBasePath)
	assert.Equal(t, "storefront", sdk.Origin)
	assert.Equal(t, "1.2.3", sdk.Version)
	assert.True(t, sdk.CacheExternalRefresh)
}
