package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadWithNoConfigFilesReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, defaultConfig, cfg)
}

func TestLoadMergesNearestOverOuter(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "pkg")
	require.NoError(t, os.Mkdir(sub, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(root, configName), []byte(
		"[deadcode]\nenabled = false\n[debug]\ntimes = true\n",
	), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, configName), []byte(
		"[deadcode]\nenabled = true\n",
	), 0o644))

	cfg, err := Load(sub)
	require.NoError(t, err)
	// nearer config's explicit "enabled = true" wins over the outer false.
	require.True(t, cfg.DeadCode.Enabled)
	// outer config's times=true survives since the inner one never set it.
	require.True(t, cfg.Debug.Times)
}

func TestLoadLeavesUnsetFieldsAtDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName), []byte(
		"[deadcode]\nmax_trace_fields = 7\n",
	), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.DeadCode.MaxTraceFields)
	require.Equal(t, defaultConfig.DeadCode.Enabled, cfg.DeadCode.Enabled)
}
