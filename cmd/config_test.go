package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"deliveryrates/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"RATE_POLICY", "RECALC_SCHEDULE", "SEED_FILE", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, cmd.Config{
		RatePolicy: "lenient",
		LogLevel:   "info",
		LogFormat:  "text",
	}, cfg)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("RATE_POLICY", "strict")
	t.Setenv("RECALC_SCHEDULE", "*/30 * * * * *")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.RatePolicy)
	assert.Equal(t, "*/30 * * * * *", cfg.RecalcSchedule)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_DotenvFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RATE_POLICY=strict\nSEED_FILE=seed.json\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.RatePolicy)
	assert.Equal(t, "seed.json", cfg.SeedFile)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_UnreadableDotenvFile(t *testing.T) {
	clearConfigEnv(t)

	_, err := cmd.LoadConfig(t.TempDir())

	require.Error(t, err)
}
