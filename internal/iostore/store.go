// Package iostore implements the persistent save-file store. A save
// is a single sqlite file: definition tables are populated once from
// the validated content bundle when the save is created, instance
// tables carry the mutable playthrough state. This is an impure I/O
// package wrapping GORM over the pure-Go sqlite driver.
package iostore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/voidtraders/voidtrade/internal/iocontent"
	"github.com/voidtraders/voidtrade/pkg/content"
	"github.com/voidtraders/voidtrade/pkg/registry"
	"github.com/voidtraders/voidtrade/pkg/schema"
)

// Store is one open save file. A new Store (with its own engine
// handle) is created per open; concurrent writers to the same save
// file are out of scope.
type Store struct {
	db   *gorm.DB
	path string
}

// OpenOrCreate opens an existing save file or, when the path does not
// exist, creates it from the content directory. The second return
// value is true when a new save was created.
func OpenOrCreate(
	ctx context.Context,
	path string,
	loader *iocontent.Loader,
) (*Store, bool, error) {
	if _, err := os.Stat(path); err == nil {
		st, err := Open(ctx, path)
		return st, false, err
	}

	bundle, reg, err := loader.Load(ctx)
	if err != nil {
		return nil, false, err
	}
	st, err := Create(ctx, path, bundle, reg)
	return st, true, err
}

// Open opens an existing save file, running pending schema migrations
// before returning the handle. It fails with NoSaveGameError when the
// path does not exist and with InvalidSaveGameError when the file
// cannot be opened or migrated.
func Open(ctx context.Context, path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, NoSaveGameError(path)
	}

	if err := probe(ctx, path); err != nil {
		return nil, err
	}

	db, err := openDB(path)
	if err != nil {
		return nil, InvalidSaveGameError(path, err)
	}

	st := &Store{db: db, path: path}
	if err := st.migrate(ctx); err != nil {
		return nil, InvalidSaveGameError(path, err)
	}

	slog.Debug("Opened save file", "path", path)
	return st, nil
}

// Create builds the save-file schema and populates the definition
// tables from a validated bundle. Player, ship and world rows are not
// created here; NewGame writes those.
func Create(
	ctx context.Context,
	path string,
	bundle *content.Bundle,
	reg *registry.Registry,
) (*Store, error) {
	// two-phase init: the registry-backed schema construction must
	// succeed before any table is created
	builder := schema.NewBuilder(reg)
	if _, err := builder.Build(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, CreateSaveError(path, err)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, CreateSaveError(path, err)
	}

	st := &Store{db: db, path: path}
	if err := builder.Migrate(db); err != nil {
		return nil, SchemaCreateError(err)
	}
	if err := st.recordVersion(ctx); err != nil {
		return nil, err
	}
	if err := st.populate(ctx, bundle); err != nil {
		return nil, err
	}

	slog.Info("Created save file", "path", path)
	return st, nil
}

// probe sanity-checks a save file through plain database/sql before
// GORM touches it, so corrupt files surface as InvalidSaveGameError
// instead of late query failures.
func probe(ctx context.Context, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return InvalidSaveGameError(path, err)
	}
	defer db.Close()

	var res string
	row := db.QueryRowContext(ctx, "PRAGMA integrity_check")
	if err := row.Scan(&res); err != nil {
		return InvalidSaveGameError(path, err)
	}
	if res != "ok" {
		return CorruptSaveError(path, res)
	}
	return nil
}

func openDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// DB exposes the underlying GORM handle to the other io packages.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Path returns the save-file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// World returns the singleton world row. It exists only after NewGame
// ran against the save.
func (s *Store) World(ctx context.Context) (*schema.World, error) {
	var w schema.World
	err := s.db.WithContext(ctx).First(&w).Error
	if err != nil {
		return nil, QueryError(err)
	}
	return &w, nil
}

// SaveInfo returns the save-file metadata row.
func (s *Store) SaveInfo(ctx context.Context) (*schema.SaveInfo, error) {
	var info schema.SaveInfo
	err := s.db.WithContext(ctx).First(&info).Error
	if err != nil {
		return nil, QueryError(err)
	}
	return &info, nil
}

// AdvanceTick increments the elapsed-tick counter and returns the new
// value.
func (s *Store) AdvanceTick(ctx context.Context) (int64, error) {
	w, err := s.World(ctx)
	if err != nil {
		return 0, err
	}
	w.Tick++
	err = s.db.WithContext(ctx).Save(w).Error
	if err != nil {
		return 0, QueryError(err)
	}
	return w.Tick, nil
}

// LocationByName resolves a location by its normalized name.
func (s *Store) LocationByName(
	ctx context.Context,
	name string,
) (*schema.Location, error) {
	var loc schema.Location
	err := s.db.WithContext(ctx).
		Where("name = ?", content.Normalize(name)).
		First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, UnknownLocationError(name)
	}
	if err != nil {
		return nil, QueryError(err)
	}
	return &loc, nil
}
