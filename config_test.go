package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "file", cfg.Store)
	assert.Equal(t, defaultRedisPrefix, cfg.RedisPrefix)
	assert.True(t, cfg.Confirmations)
	assert.Equal(t, Size{W: 800, H: 600}, cfg.CanvasSize())
}

func TestConfigLoadRC(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, ".happycaprc")
	content := `# happycap settings
store = sqlite
store_path = /var/lib/happycap
redis_db = 3
confirmations = false
canvas_width = 1024
canvas_height = -5
not a setting
unknown_key = value
`
	require.NoError(t, os.WriteFile(rc, []byte(content), 0644))

	cfg := defaultConfig()
	cfg.loadRC(rc)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, "/var/lib/happycap", cfg.StorePath)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.False(t, cfg.Confirmations)
	assert.Equal(t, 1024, cfg.CanvasWidth)
	assert.Equal(t, defaultCanvasHeight, cfg.CanvasHeight)

	// a missing file leaves the defaults alone
	other := defaultConfig()
	other.loadRC(filepath.Join(dir, "missing"))
	assert.Equal(t, defaultConfig(), other)
}

func TestConfigApplyEnv(t *testing.T) {
	t.Setenv("HAPPYCAP_STORE", "Redis")
	t.Setenv("HAPPYCAP_REDIS_ADDR", "cache:6380")
	t.Setenv("HAPPYCAP_PROMPTS", "https://example.com/prompts.csv")
	t.Setenv("HAPPYCAP_CANVAS_HEIGHT", "")

	cfg := defaultConfig()
	cfg.applyEnv()
	assert.Equal(t, "redis", cfg.Store)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, "https://example.com/prompts.csv", cfg.Prompts)
	assert.Equal(t, defaultCanvasHeight, cfg.CanvasHeight)
}

func TestConfigGetSavePath(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "out.png", cfg.GetSavePath("out.png"))

	cfg.SaveDirectory = filepath.Join(t.TempDir(), "exports")
	path := cfg.GetSavePath("out.png")
	assert.Equal(t, filepath.Join(cfg.SaveDirectory, "out.png"), path)
	assert.DirExists(t, cfg.SaveDirectory)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "caps"), expandPath("~/caps"))
	assert.True(t, filepath.IsAbs(expandPath("relative/dir")))
}
