package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"STAGE", "SEED", "AI_THINK_DELAY", "MAX_BOARD_REGENERATIONS", "LOG_LEVEL", "DATABASE_URL", "SPECTATOR_PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, StageDev, cfg.Stage)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, time.Second*4, cfg.ThinkDelay)
	assert.Equal(t, 1000, cfg.MaxBoardRegenerations)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.DatabaseUrl)
	assert.Empty(t, cfg.SpectatorPort)
	assert.NotZero(t, cfg.SeedOrNow())
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "SEED=42\nAI_THINK_DELAY=250ms\nMAX_BOARD_REGENERATIONS=10\nLOG_LEVEL=debug\nSPECTATOR_PORT=7171\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, int64(42), cfg.SeedOrNow())
	assert.Equal(t, 250*time.Millisecond, cfg.ThinkDelay)
	assert.Equal(t, 10, cfg.MaxBoardRegenerations)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "7171", cfg.SpectatorPort)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown stage", key: "STAGE", value: "staging"},
		{name: "seed not a number", key: "SEED", value: "abc"},
		{name: "bad delay", key: "AI_THINK_DELAY", value: "soon"},
		{name: "negative delay", key: "AI_THINK_DELAY", value: "-1s"},
		{name: "zero regenerations", key: "MAX_BOARD_REGENERATIONS", value: "0"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "loud"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(test.key, test.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
