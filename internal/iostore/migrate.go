package iostore

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/voidtraders/voidtrade/pkg/schema"
)

// migration is one versioned save-file migration. Migrations are
// applied in declaration order; each runs inside its own transaction
// and is recorded in schema_versions on success.
type migration struct {
	version     string
	description string
	run         func(tx *gorm.DB) error
}

// migrations lists every schema version up to the current one. The
// initial entry creates the schema, so opening a pre-versioning save
// repairs it the same way a version bump would.
var migrations = []migration{
	{
		version:     "1.0.0",
		description: "initial schema",
		run: func(tx *gorm.DB) error {
			return schema.Migrate(tx)
		},
	},
}

// recordVersion marks every known migration as applied on a freshly
// created save, which starts at the current schema version.
func (s *Store) recordVersion(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	for _, m := range migrations {
		row := schema.SchemaVersion{
			Version:     m.version,
			Description: m.description,
			AppliedAt:   time.Now(),
		}
		if err := db.Create(&row).Error; err != nil {
			return SchemaCreateError(err)
		}
	}
	return nil
}

// migrate applies pending migrations to an opened save file.
func (s *Store) migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	if !db.Migrator().HasTable(&schema.SchemaVersion{}) {
		if err := db.AutoMigrate(&schema.SchemaVersion{}); err != nil {
			return err
		}
	}

	var applied []schema.SchemaVersion
	if err := db.Find(&applied).Error; err != nil {
		return err
	}
	done := make(map[string]struct{}, len(applied))
	for _, v := range applied {
		done[v.Version] = struct{}{}
	}

	for _, m := range migrations {
		if _, ok := done[m.version]; ok {
			continue
		}
		slog.Info("Applying save-file migration",
			"version", m.version, "description", m.description)
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.run(tx); err != nil {
				return err
			}
			row := schema.SchemaVersion{
				Version:     m.version,
				Description: m.description,
				AppliedAt:   time.Now(),
			}
			return tx.Create(&row).Error
		})
		if err != nil {
			return err
		}
	}

	return nil
}
