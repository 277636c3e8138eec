// Package iocontent reads the static game-content files from disk and
// turns them into a validated bundle. This is an impure I/O package;
// parsing and validation logic lives in pkg/registry and pkg/content.
package iocontent

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/voidtraders/voidtrade/pkg/content"
	"github.com/voidtraders/voidtrade/pkg/registry"
)

// Content file names inside the content directory.
const (
	TypesFile   = "types.yaml"
	BaseFile    = "base.yaml"
	SystemsFile = "systems.yaml"
)

// Loader reads and caches the content of one directory. The registry
// and bundle are parsed at most once per Loader: repeat calls return
// the cached objects without re-reading the files. The registry is
// always loaded before anything that validates against it.
type Loader struct {
	dir string

	mu     sync.Mutex
	reg    *registry.Registry
	bundle *content.Bundle
}

// New creates a Loader for a content directory.
func New(dir string) *Loader {
	return &Loader{dir: dir}
}

// Registry returns the type registry, reading types.yaml on first use.
func (l *Loader) Registry() (*registry.Registry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registryLocked()
}

func (l *Loader) registryLocked() (*registry.Registry, error) {
	if l.reg != nil {
		return l.reg, nil
	}

	path := filepath.Join(l.dir, TypesFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, readFileError(path, err)
	}

	reg, err := registry.Parse(data)
	if err != nil {
		return nil, err
	}

	l.reg = reg
	return reg, nil
}

// Load returns the validated content bundle and the registry it was
// validated against. The base and systems documents are parsed
// concurrently; any schema violation fails the whole load.
func (l *Loader) Load(ctx context.Context) (
	*content.Bundle, *registry.Registry, error,
) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// registries before schema: everything below validates against them
	reg, err := l.registryLocked()
	if err != nil {
		return nil, nil, err
	}

	if l.bundle != nil {
		return l.bundle, reg, nil
	}

	var base *content.BaseDoc
	var sys *content.SystemsDoc

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		path := filepath.Join(l.dir, BaseFile)
		data, err := os.ReadFile(path)
		if err != nil {
			return readFileError(path, err)
		}
		base, err = content.ParseBase(data)
		return err
	})
	g.Go(func() error {
		path := filepath.Join(l.dir, SystemsFile)
		data, err := os.ReadFile(path)
		if err != nil {
			return readFileError(path, err)
		}
		sys, err = content.ParseSystems(data)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	bundle, err := content.Validate(base, sys, reg)
	if err != nil {
		return nil, nil, err
	}

	l.bundle = bundle
	return bundle, reg, nil
}
