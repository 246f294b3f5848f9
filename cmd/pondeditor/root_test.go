package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pondeditor/internal/config"
	"pondeditor/internal/programs"
)

const sniperXML = `<xml><block type="controls_whileUntil" x="70" y="70"><statement name="DO">` +
	`<block type="pond_cannon"><value name="DEGREE"><shadow type="pond_math_number"><field name="NUM">45</field></shadow></value>` +
	`<value name="RANGE"><block type="pond_scan"><value name="DEGREE"><shadow type="pond_math_number"><field name="NUM">45</field></shadow></value></block></value>` +
	`</block></statement></block></xml>`

// isolate points config and programs at temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfigPath, filepath.Join(dir, "config.yaml"))
	t.Setenv(programs.DirEnv, filepath.Join(dir, "programs"))
	for _, k := range []string{config.EnvLogLevel, config.EnvLogFile, config.EnvProgram, config.EnvOTLPEndpoint} {
		t.Setenv(k, "")
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "sniper.xml")
	require.NoError(t, os.WriteFile(path, []byte(sniperXML), 0o644))

	out, err := execute(t, "render", path)
	require.NoError(t, err)
	assert.Equal(t, "while (true) {\n  cannon(45, scan(45));\n}\n", out)
}

func TestRender_SavedProgramByName(t *testing.T) {
	dir := isolate(t)
	progDir := filepath.Join(dir, "programs")
	require.NoError(t, os.MkdirAll(progDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(progDir, "sniper.xml"), []byte(sniperXML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("editor:\n  tab_size: 4\n"), 0o644))

	out, err := execute(t, "render", "Sniper")
	require.NoError(t, err)
	assert.Equal(t, "while (true) {\n    cannon(45, scan(45));\n}\n", out)
}

func TestRender_MissingProgram(t *testing.T) {
	isolate(t)
	_, err := execute(t, "render", "nope")
	assert.True(t, errors.Is(err, programs.ErrNotFound), "got %v", err)
}

func TestList(t *testing.T) {
	dir := isolate(t)
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "No programs in "), out)

	progDir := filepath.Join(dir, "programs")
	require.NoError(t, os.MkdirAll(progDir, 0o755))
	for _, n := range []string{"rook.xml", "counter.xml"} {
		require.NoError(t, os.WriteFile(filepath.Join(progDir, n), []byte(sniperXML), 0o644))
	}
	out, err = execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "counter\nrook\n", out)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  program: rook\nlogging:\n  level: error\n"), 0o644))

	f := &rootFlags{config: path}
	cfg, err := f.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "rook", cfg.Editor.Program)
	assert.Equal(t, "error", cfg.Logging.Level)

	f.program, f.logLevel = "counter", "debug"
	cfg, err = f.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "counter", cfg.Editor.Program)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestOpenProgram_EmptyRefIsDefault(t *testing.T) {
	isolate(t)
	p, err := openProgram(config.Defaults(), "")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestFlags_DoNotLeakBetweenRuns(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "sniper.xml")
	require.NoError(t, os.WriteFile(path, []byte(sniperXML), 0o644))
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(other, []byte("editor:\n  tab_size: 4\n"), 0o644))

	out, err := execute(t, "render", "--config", other, path)
	require.NoError(t, err)
	assert.Equal(t, "while (true) {\n    cannon(45, scan(45));\n}\n", out)

	out, err = execute(t, "render", path)
	require.NoError(t, err)
	assert.Equal(t, "while (true) {\n  cannon(45, scan(45));\n}\n", out)
}
