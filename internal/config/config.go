package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Log  LogConfig
	Keys map[string][]string

	path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme     string
	AltScreen bool `mapstructure:"alt_screen"`
	ShowHelp  bool `mapstructure:"show_help"`
	FlashMS   int  `mapstructure:"flash_ms"`
}

// LogConfig holds log file settings. Logs go to a file because the TUI owns
// the terminal.
type LogConfig struct {
	Path  string
	Debug bool
}

// Path returns the config file this Config was loaded from, or the default
// location Save writes to.
func (c Config) Path() string {
	if c.path != "" {
		return c.path
	}
	return defaultConfigPath()
}

// BindFlags registers the flags Load understands.
func BindFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default $JASKCALC_CONFIG or ~/.config/jaskcalc/config.toml)")
	flags.Bool("debug", false, "log every key press")
}

// Load reads configuration from flags, file and env. Env var overrides use
// prefix JASKCALC_. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.theme", "mocha")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.show_help", true)
	v.SetDefault("ui.flash_ms", 120)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "jaskcalc", "jaskcalc.log"))
	v.SetDefault("log.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKCALC_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
		if f := flags.Lookup("debug"); f != nil {
			if err := v.BindPFlag("log.debug", f); err != nil {
				return Config{}, fmt.Errorf("bind debug flag: %w", err)
			}
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Dir(defaultConfigPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.path = cfgPath
	if used := v.ConfigFileUsed(); used != "" {
		c.path = used
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.UI.FlashMS < 0 {
		return fmt.Errorf("ui.flash_ms must not be negative, got %d", c.UI.FlashMS)
	}
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			return fmt.Errorf("keys.%s: at least one key required", action)
		}
	}
	return nil
}

// SaveTheme records theme as ui.theme in the config file at path, keeping
// every other setting the file already holds. Flag and environment overrides
// of the running session are never written.
func SaveTheme(path, theme string) error {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read config: %w", err)
	}
	v.Set("ui.theme", theme)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func defaultConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc", "config.toml")
}
