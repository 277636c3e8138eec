package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptContentDir sets the directory holding static game-content files.
func OptContentDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Content Dir", s) {
			c.Content.Dir = s
		}
	}
}

// OptStartingCash sets the cash balance of a freshly created player.
func OptStartingCash(i int64) Option {
	return func(c *Config) {
		if isValidInt("Starting Cash", int(i)) {
			c.Game.StartingCash = i
		}
	}
}

// OptStartingShip sets the ship class a new player begins with.
func OptStartingShip(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Starting Ship", s) {
			c.Game.StartingShip = s
		}
	}
}

// OptLogFormat sets the format of the logs output.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogLevel sets the minimal level of logging.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the directory under which config, saves and logs
// directories reside.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Dir", s) {
			c.HomeDir = s
		}
	}
}
