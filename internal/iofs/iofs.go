// Package iofs prepares the on-disk layout of the application: config,
// content, saves and log directories, plus the embedded default config
// and game-content files written on first run.
package iofs

import (
	_ "embed"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/voidtraders/voidtrade/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed content/types.yaml
var TypesYAML string

//go:embed content/base.yaml
var BaseYAML string

//go:embed content/systems.yaml
var SystemsYAML string

// EnsureDirs creates the config, content, saves and log directories
// when they do not exist yet.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.ContentDir(homeDir),
		config.SavesDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded config.yaml to the config
// directory unless one exists already.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// EnsureContentFiles writes the embedded default game content to the
// content directory. Existing files are never overwritten, so edited
// content survives upgrades.
func EnsureContentFiles(contentDir string) error {
	files := map[string]string{
		"types.yaml":   TypesYAML,
		"base.yaml":    BaseYAML,
		"systems.yaml": SystemsYAML,
	}
	for name, body := range files {
		path := filepath.Join(contentDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			return CopyFileError(path, err)
		}
	}
	return nil
}

// ListSaves returns the names of existing save slots, sorted, without
// the file extension. File existence is the sole signal a save exists.
func ListSaves(homeDir string) ([]string, error) {
	dir := config.SavesDir(homeDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ReadFileError(dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), config.SaveFileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), config.SaveFileExt))
	}
	sort.Strings(names)
	return names, nil
}
