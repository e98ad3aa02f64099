package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("JASKTERM_CONFIG", filepath.Join(dir, "config.toml"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "jaskterm", "jaskterm.db"), cfg.Database.Path)
	require.Equal(t, "1x1", cfg.Workspace.DefaultLayout)
	require.Equal(t, 50, cfg.Workspace.HistorySize)
	require.Equal(t, 150*time.Millisecond, cfg.Search.Debounce)
	require.Equal(t, 8, cfg.Search.Limit)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 7, cfg.Log.MaxAgeDays)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	toml := "[workspace]\ndefault_layout = \"2x2\"\nhistory_size = 20\n\n[search]\ndebounce = \"300ms\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644))
	t.Setenv("JASKTERM_SEARCH_LIMIT", "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "2x2", cfg.Workspace.DefaultLayout)
	require.Equal(t, 20, cfg.Workspace.HistorySize)
	require.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
	require.Equal(t, 3, cfg.Search.Limit)
}

func TestLoadRejectsBadLayout(t *testing.T) {
	isolate(t)
	t.Setenv("JASKTERM_WORKSPACE_DEFAULT_LAYOUT", "3x3")
	_, err := Load()
	require.ErrorContains(t, err, "workspace.default_layout")
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	cfg.Workspace.DefaultLayout = "1x2"
	cfg.Log.Format = "json"
	require.NoError(t, Save(cfg))

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}
