package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/crisiscenter/tracker/internal/core/domain"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:8080", cfg.HTTPAddr)
	require.Equal(t, 20*time.Minute, cfg.ShowerTimeout)
	require.Equal(t, 15*time.Minute, cfg.CheckInterval)
	require.Equal(t, BackendFile, cfg.SnapshotBackend)
	require.Equal(t, BackendLog, cfg.NoticeBackend)
	require.Equal(t, filepath.Join("data", "clients.json"), cfg.RosterPath())
	require.Equal(t, filepath.Join("data", "logs"), cfg.ActivityLogDir())
	require.True(t, cfg.IsDevelopment())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":              "production",
		"SHOWER_TIMEOUT":   "25m",
		"ROSTER_FILE":      "/srv/roster.json",
		"SNAPSHOT_BACKEND": "mongo",
		"NOTICE_BACKEND":   "redis",
		"REDIS_CHANNEL":    "cc:notices",
		"ALLOWED_NETWORKS": "10.0.0.0/8,192.168.1.0/24",
	}))
	require.NoError(t, err)

	require.False(t, cfg.IsDevelopment())
	require.Equal(t, 25*time.Minute, cfg.ShowerTimeout)
	require.Equal(t, "/srv/roster.json", cfg.RosterPath())
	require.Equal(t, "cc:notices", cfg.Redis.Channel)
	require.Equal(t, []string{"10.0.0.0/8", "192.168.1.0/24"}, cfg.AllowedNetworks)
}

func TestLoadFrom_RejectsBadCombinations(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown snapshot backend": {"SNAPSHOT_BACKEND": "sqlite"},
		"unknown notice backend":   {"NOTICE_BACKEND": "smoke-signal"},
		"zero shower timeout":      {"SHOWER_TIMEOUT": "0s"},
		"sub-minute check cycle":   {"CHECK_INTERVAL": "30s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(context.Background(), envconfig.MapLookuper(env))
			require.Error(t, err)
		})
	}
}

func TestBindFlags_OverrideEnvironment(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{"DATA_DIR": "/var/lib/tracker"}))
	require.NoError(t, err)

	fs := pflag.NewFlagSet("tracker", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--addr", ":9090", "--log-level=debug"}))

	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "/var/lib/tracker", cfg.DataDir)
}

func TestLoadCatalog(t *testing.T) {
	t.Run("built-in", func(t *testing.T) {
		cat, err := LoadCatalog("")
		require.NoError(t, err)
		require.Equal(t, domain.DefaultCatalog(), cat)
	})

	t.Run("file with beds only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "facility.yaml")
		require.NoError(t, os.WriteFile(path, []byte("beds:\n  - A 1\n  - A 2\n"), 0o644))

		cat, err := LoadCatalog(path)
		require.NoError(t, err)
		require.Equal(t, []string{"A 1", "A 2"}, cat.Beds)
		require.Equal(t, domain.DefaultGenders(), cat.Genders)
	})

	t.Run("duplicate bed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "facility.yaml")
		require.NoError(t, os.WriteFile(path, []byte("beds: [A 1, A 1]\n"), 0o644))

		_, err := LoadCatalog(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
