package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FITCAT_CONFIG", "FITCAT_SOURCE", "GOOGLE_CLOUD_PROJECT",
		"FITCAT_COLLECTION", "FITCAT_ENDPOINT", "FITCAT_API_KEY",
		"FITCAT_CACHE_DIR", "FITCAT_CACHE_TTL", "FITCAT_SEED_STALE",
		"FITCAT_PROBE_ADDR", "FITCAT_PROBE_INTERVAL", "FITCAT_LISTEN_ADDR",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("FITCAT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg := LoadConfig()
	require.Equal(t, "none", cfg.Source)
	require.Equal(t, "exercises", cfg.Collection)
	require.Equal(t, 24*time.Hour, cfg.CacheTTL)
	require.True(t, cfg.SeedStale)
	require.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "fitcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
source: rest
endpoint: https://db.example.test/rest/v1/exercises
cache_ttl: 1h
seed_stale: false
`), 0o644))
	t.Setenv("FITCAT_CONFIG", path)

	cfg := LoadConfig()
	require.Equal(t, "rest", cfg.Source)
	require.Equal(t, "https://db.example.test/rest/v1/exercises", cfg.Endpoint)
	require.Equal(t, time.Hour, cfg.CacheTTL)
	require.False(t, cfg.SeedStale)
	// Untouched keys keep their defaults.
	require.Equal(t, "exercises", cfg.Collection)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "fitcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: rest\n"), 0o644))
	t.Setenv("FITCAT_CONFIG", path)
	t.Setenv("FITCAT_SOURCE", "firestore")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "demo-project")
	t.Setenv("FITCAT_CACHE_TTL", "30m")

	cfg := LoadConfig()
	require.Equal(t, "firestore", cfg.Source)
	require.Equal(t, "demo-project", cfg.ProjectID)
	require.Equal(t, 30*time.Minute, cfg.CacheTTL)
}

func TestLoadConfig_InvalidDurationIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("FITCAT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("FITCAT_CACHE_TTL", "soon")

	cfg := LoadConfig()
	require.Equal(t, 24*time.Hour, cfg.CacheTTL)
}
