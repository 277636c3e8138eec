// Package config provides configuration management for voidtrade.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
//
// # Environment Variables
//
// Use VOIDTRADE_ prefix with underscores for nesting:
//
//	VOIDTRADE_CONTENT_DIR=/usr/share/voidtrade/content
//	VOIDTRADE_LOG_LEVEL=info
//	VOIDTRADE_GAME_STARTING_CASH=10000
package config

import (
	"runtime"
)

// Config represents the complete voidtrade configuration.
type Config struct {
	// Content contains static game-content settings.
	Content ContentConfig `mapstructure:"content" yaml:"content"`

	// Game contains new-game defaults.
	Game GameConfig `mapstructure:"game" yaml:"game"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations (content parsing, save population).
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, saves and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ContentConfig contains settings for static game-content files.
type ContentConfig struct {
	// Dir is the directory holding types.yaml, base.yaml and
	// systems.yaml. When empty, the content shipped with the binary is
	// written to the default content directory on first run.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// GameConfig contains defaults applied when a new game starts.
type GameConfig struct {
	// StartingCash is the cash balance of a freshly created player.
	StartingCash int64 `mapstructure:"starting_cash" yaml:"starting_cash"`

	// StartingShip is the ship class a new player begins with.
	// Empty means the first ship class defined in the content files.
	StartingShip string `mapstructure:"starting_ship" yaml:"starting_ship"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Content: ContentConfig{
			Dir: "",
		},
		Game: GameConfig{
			StartingCash: 10_000,
			StartingShip: "",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// Defaults is an alias of New kept for call-site readability.
func Defaults() *Config {
	return New()
}
