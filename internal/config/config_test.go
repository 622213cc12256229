package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 700.0, cfg.MaxWidth)
	assert.Equal(t, 100.0, cfg.PxPerMeter)
	assert.Equal(t, 50, cfg.Stations)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		EnvMaxWidth:   "900",
		EnvPxPerMeter: "80.5",
		EnvStations:   "20",
		EnvLogLevel:   "debug",
		EnvAuthor:     "A. Engineer",
	}))
	require.NoError(t, err)
	assert.Equal(t, 900.0, cfg.MaxWidth)
	assert.Equal(t, 80.5, cfg.PxPerMeter)
	assert.Equal(t, 20, cfg.Stations)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "A. Engineer", cfg.Author)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		EnvMaxWidth:   "-1",
		EnvPxPerMeter: "wide",
		EnvStations:   "0",
		EnvLogLevel:   "loud",
	}
	for k, v := range cases {
		_, err := FromEnv(env(map[string]string{k: v}))
		assert.Error(t, err, "%s=%s", k, v)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gobeam.env")
	require.NoError(t, os.WriteFile(path, []byte("GOBEAM_STATIONS=12\nGOBEAM_AUTHOR=From File\n"), 0o644))

	t.Setenv(EnvStations, "")
	t.Setenv(EnvAuthor, "")
	os.Unsetenv(EnvStations)
	os.Unsetenv(EnvAuthor)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Stations)
	assert.Equal(t, "From File", cfg.Author)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	_, err = Load("")
	assert.NoError(t, err)
}
