package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://api.twitter.com", cfg.MetricsBaseURL)
	assert.Equal(t, PlaceholderBearerToken, cfg.BearerToken)
	assert.True(t, cfg.UsesPlaceholderToken())
	assert.False(t, cfg.ForwardUserCredential)
	assert.False(t, cfg.TolerantFetch)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
}

func TestLoadConfig_JSONOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"metrics_base_url": "http://localhost:9000",
		"bearer_token": "real",
		"tolerant_fetch": true,
		"request_timeout": "3s",
		"s3": {"bucket": "charts", "base_endpoint": "http://minio:9000"}
	}`)

	cfg, err := LoadConfig([]string{"-c", path})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.MetricsBaseURL)
	assert.Equal(t, "real", cfg.BearerToken)
	assert.False(t, cfg.UsesPlaceholderToken())
	assert.True(t, cfg.TolerantFetch)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "charts", cfg.S3.Bucket)
	assert.Equal(t, "http://minio:9000", cfg.S3.BaseEndpoint)
	assert.Equal(t, "us-east-1", cfg.S3.Region, "absent keys keep defaults")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.AuthBaseURL)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	path := writeConfig(t, `{"bearer_token": "from-file", "request_timeout": 1000000000}`)

	cfg, err := LoadConfig([]string{"-config=" + path, "-t", "from-flag", "-x", "-timeout", "250ms", "-s3-bucket", "b"})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.BearerToken)
	assert.True(t, cfg.ForwardUserCredential)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, "b", cfg.S3.Bucket)
}

func TestLoadConfig_UnknownFlagsIgnored(t *testing.T) {
	cfg, err := LoadConfig([]string{"-unknown", "v", "-db", "x.db"})
	require.NoError(t, err)
	assert.Equal(t, "x.db", cfg.DatabasePath)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig([]string{"-c", filepath.Join(t.TempDir(), "nope.json")})
		require.Error(t, err)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := LoadConfig([]string{"-c", writeConfig(t, `{`)})
		require.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := LoadConfig([]string{"-c", writeConfig(t, `{"request_timeout": "soon"}`)})
		require.Error(t, err)
	})

	t.Run("bad flag value", func(t *testing.T) {
		_, err := LoadConfig([]string{"-timeout", "soon"})
		require.Error(t, err)
	})
}
