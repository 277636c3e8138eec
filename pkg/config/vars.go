package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "voidtrade"

	// SaveFileExt is the extension of save files. File existence with
	// this extension is the sole signal that a save exists.
	SaveFileExt = ".save"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/voidtrade by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// ContentDir returns the default directory for static game-content
// files (types.yaml, base.yaml, systems.yaml).
// Returns ~/.config/voidtrade/content by default.
func ContentDir(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "content")
}

// SavesDir returns the directory path for save files.
// Returns ~/.local/share/voidtrade/saves by default.
func SavesDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "saves")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/voidtrade/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/voidtrade/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SaveFilePath returns the full path of a named save slot.
func SaveFilePath(homeDir, name string) string {
	return filepath.Join(SavesDir(homeDir), name+SaveFileExt)
}
