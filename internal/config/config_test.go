package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
        "port": 4010,
        "base_dir": "/srv/demo",
        "model": "gemini-2.5-pro",
        "step_delay_ms": 50
    }`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 4010, cfg.GetPort())
	assert.Equal(t, "/srv/demo", cfg.GetBaseDir())
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel())
	assert.Equal(t, 50*time.Millisecond, cfg.StepDelay())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"port": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultPort, cfg.GetPort())
	assert.Equal(t, DefaultModel, cfg.GetModel())
	assert.Equal(t, "http://localhost:3001", cfg.GetServerURL())
	assert.Equal(t, DefaultSignalPoll, cfg.SignalPoll())
	assert.Equal(t, DefaultEmailPoll, cfg.EmailPoll())
	assert.Equal(t, DefaultStepDelay, cfg.StepDelay())
	assert.Equal(t, DefaultSettleDelay, cfg.SettleDelay())
	assert.Equal(t, DefaultResetSettle, cfg.ResetSettle())
	assert.Equal(t, DefaultLaunchStagger, cfg.LaunchStagger())
}

func TestConfig_ServerURLFollowsPort(t *testing.T) {
	cfg := &Config{Port: 4010}
	assert.Equal(t, "http://localhost:4010", cfg.GetServerURL())

	cfg = &Config{Port: 4010, ServerURL: "http://demo.internal:9999"}
	assert.Equal(t, "http://demo.internal:9999", cfg.GetServerURL())
}

func TestConfig_ValidateRejectsBadValues(t *testing.T) {
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{ServerURL: "not a url"}).Validate())
	assert.Error(t, (&Config{StepDelayMs: -5}).Validate())
}
