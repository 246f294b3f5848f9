package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfigPath, EnvLogLevel, EnvLogFile, EnvProgram, EnvOTLPEndpoint, EnvServiceName, EnvOTLPInsecure} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  program: sniper\nlogging:\n  level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sniper", cfg.Editor.Program)
	assert.Equal(t, 2, cfg.Editor.TabSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "pondeditor", cfg.Telemetry.ServiceName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv(EnvOTLPEndpoint, "collector:4318")
	t.Setenv(EnvOTLPInsecure, "false")
	t.Setenv(EnvProgram, "rook")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "collector:4318", cfg.Telemetry.OTLPEndpoint)
	assert.False(t, cfg.Telemetry.Insecure)
	assert.Equal(t, "rook", cfg.Editor.Program)
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidTabSizeFallsBack(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  tab_size: -4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Editor.TabSize)
}

func TestPath_EnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, "/tmp/custom.yaml")
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", p)
}

func TestLoad_EmptyPathUsesEnvPath(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  program: counter\n"), 0o644))
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "counter", cfg.Editor.Program)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Defaults()
	want.Editor.Program = "duck"
	want.Telemetry.OTLPEndpoint = "otel:4318"

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
