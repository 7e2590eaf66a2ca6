package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("JASKCALC_CONFIG", "")
	return home
}

func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "mocha", cfg.UI.Theme)
	require.True(t, cfg.UI.AltScreen)
	require.True(t, cfg.UI.ShowHelp)
	require.Equal(t, 120, cfg.UI.FlashMS)
	require.False(t, cfg.Log.Debug)
	require.Equal(t, filepath.Join(home, ".local", "state", "jaskcalc", "jaskcalc.log"), cfg.Log.Path)
	require.Equal(t, filepath.Join(home, ".config", "jaskcalc", "config.toml"), cfg.Path())
	require.Empty(t, cfg.Keys)
}

func TestLoadFileAndFlags(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "calc.toml")
	data := `
[ui]
theme = "latte"
flash_ms = 50
show_help = false

[keys]
clear = ["x", "esc"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(parseFlags(t, "--config", path, "--debug"))
	require.NoError(t, err)
	require.Equal(t, "latte", cfg.UI.Theme)
	require.Equal(t, 50, cfg.UI.FlashMS)
	require.False(t, cfg.UI.ShowHelp)
	require.True(t, cfg.UI.AltScreen)
	require.True(t, cfg.Log.Debug)
	require.Equal(t, []string{"x", "esc"}, cfg.Keys["clear"])
	require.Equal(t, path, cfg.Path())
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("JASKCALC_UI_THEME", "neumorphic")
	t.Setenv("JASKCALC_UI_FLASH_MS", "0")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "neumorphic", cfg.UI.Theme)
	require.Equal(t, 0, cfg.UI.FlashMS)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	negative := filepath.Join(dir, "negative.toml")
	require.NoError(t, os.WriteFile(negative, []byte("[ui]\nflash_ms = -1\n"), 0o644))
	_, err := Load(parseFlags(t, "--config", negative))
	require.ErrorContains(t, err, "flash_ms")

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[ui\ntheme = "), 0o644))
	_, err = Load(parseFlags(t, "--config", broken))
	require.ErrorContains(t, err, "read config")
}

func TestSaveThemeThenLoad(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, SaveTheme(path, "latte"))

	cfg, err := Load(parseFlags(t, "--config", path))
	require.NoError(t, err)
	require.Equal(t, "latte", cfg.UI.Theme)
	require.Equal(t, path, cfg.Path())
}

func TestSaveThemeKeepsFileAndDropsOverrides(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[ui]
show_help = false

[keys]
equals = ["enter", "="]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	t.Setenv("JASKCALC_UI_FLASH_MS", "10")
	cfg, err := Load(parseFlags(t, "--config", path, "--debug"))
	require.NoError(t, err)
	require.True(t, cfg.Log.Debug)
	require.Equal(t, 10, cfg.UI.FlashMS)

	require.NoError(t, SaveTheme(cfg.Path(), "neumorphic"))

	os.Unsetenv("JASKCALC_UI_FLASH_MS")
	again, err := Load(parseFlags(t, "--config", path))
	require.NoError(t, err)
	require.Equal(t, "neumorphic", again.UI.Theme)
	require.False(t, again.Log.Debug)
	require.Equal(t, 120, again.UI.FlashMS)
	require.False(t, again.UI.ShowHelp)
	require.Equal(t, []string{"enter", "="}, again.Keys["equals"])

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(written), "debug")
	require.NotContains(t, string(written), "flash_ms")
}
