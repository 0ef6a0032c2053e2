// Package config loads barbershop settings from defaults, a YAML file,
// BARBERSHOP_* environment variables and command-line flags through viper.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/barbershop/internal/logging"
)

// Config represents the complete barbershop configuration
type Config struct {
	Shop    ShopConfig    `mapstructure:"shop" yaml:"shop"`
	Arrival ArrivalConfig `mapstructure:"arrival" yaml:"arrival"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
}

// ShopConfig describes the shop itself. It is fixed for the length of a run.
type ShopConfig struct {
	// Barbers is the number of barbers working (default: 3, min: 1)
	Barbers int `mapstructure:"barbers" yaml:"barbers"`
	// Chairs is the number of waiting-room chairs (default: 5, 0 = nobody waits)
	Chairs int `mapstructure:"chairs" yaml:"chairs"`
	// HaircutMs is how long every haircut takes in milliseconds (default: 2000)
	HaircutMs int `mapstructure:"haircut_ms" yaml:"haircut_ms"`
}

// ArrivalConfig controls how often clients walk in.
// MinMs and MaxMs can be changed in the config file while a run is active.
type ArrivalConfig struct {
	// MinMs is the shortest gap between arrivals (default: 1000)
	MinMs int `mapstructure:"min_ms" yaml:"min_ms"`
	// MaxMs is the exclusive upper bound on the gap (default: 3000)
	MaxMs int `mapstructure:"max_ms" yaml:"max_ms"`
	// MaxClients stops arrivals after this many clients (default: 0 = unbounded)
	MaxClients int `mapstructure:"max_clients" yaml:"max_clients"`
	// Seed makes arrival gaps reproducible (default: 0 = random)
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
}

// LoggingConfig controls structured logging
type LoggingConfig struct {
	// Enabled controls whether structured logs are written (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is where barbershop.log is written. Empty means stderr.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the log file size that triggers rotation (default: 10, 0 = never)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// Compress gzips rotated files (default: false)
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// TUIConfig controls the console output and dashboard
type TUIConfig struct {
	// RefreshMs is how often the dashboard redraws (default: 200)
	RefreshMs int `mapstructure:"refresh_ms" yaml:"refresh_ms"`
	// Theme is the color theme: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Shop: ShopConfig{
			Barbers:   3,
			Chairs:    5,
			HaircutMs: 2000,
		},
		Arrival: ArrivalConfig{
			MinMs:      1000,
			MaxMs:      3000,
			MaxClients: 0,
			Seed:       0,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
		TUI: TUIConfig{
			RefreshMs: 200,
			Theme:     "default",
		},
	}
}

// HaircutTime returns the haircut duration as a time.Duration
func (c *ShopConfig) HaircutTime() time.Duration {
	return time.Duration(c.HaircutMs) * time.Millisecond
}

// Window returns the arrival gap range as durations
func (c *ArrivalConfig) Window() (time.Duration, time.Duration) {
	return time.Duration(c.MinMs) * time.Millisecond, time.Duration(c.MaxMs) * time.Millisecond
}

// RefreshInterval returns the dashboard refresh interval
func (c *TUIConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshMs) * time.Millisecond
}

// Rotation returns the logging rotation settings
func (c *LoggingConfig) Rotation() logging.RotationConfig {
	return logging.RotationConfig{
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}

// SetDefaults registers default values with viper
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("shop.barbers", defaults.Shop.Barbers)
	v.SetDefault("shop.chairs", defaults.Shop.Chairs)
	v.SetDefault("shop.haircut_ms", defaults.Shop.HaircutMs)

	v.SetDefault("arrival.min_ms", defaults.Arrival.MinMs)
	v.SetDefault("arrival.max_ms", defaults.Arrival.MaxMs)
	v.SetDefault("arrival.max_clients", defaults.Arrival.MaxClients)
	v.SetDefault("arrival.seed", defaults.Arrival.Seed)

	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.dir", defaults.Logging.Dir)
	v.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	v.SetDefault("logging.compress", defaults.Logging.Compress)

	v.SetDefault("tui.refresh_ms", defaults.TUI.RefreshMs)
	v.SetDefault("tui.theme", defaults.TUI.Theme)
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if it
// cannot be loaded
func Get(v *viper.Viper) *Config {
	cfg, err := Load(v)
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "barbershop")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".barbershop"
	}
	return filepath.Join(home, ".config", "barbershop")
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
