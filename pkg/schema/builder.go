package schema

import (
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gnames/gn"
	"gorm.io/gorm"

	"github.com/voidtraders/voidtrade/pkg/errcode"
	"github.com/voidtraders/voidtrade/pkg/registry"
)

// Table is a constructed table descriptor. Callers may rely on
// descriptor identity: two Build calls without an intervening
// invalidation return the very same *Table objects.
type Table struct {
	Name    string
	Model   interface{}
	Columns []string
}

// taggedTables maps tables holding category-tag columns to the
// registry type their tags must resolve against. Building the schema
// requires every one of these registries to exist, which enforces the
// load-tags-then-declare-schema ordering.
var taggedTables = map[string]string{
	"commodity_categories": registry.CommodityType,
	"event_condition_tags": registry.CommodityType,
	"celestials":           registry.CelestialType,
	"locations":            registry.LocationType,
	"event_defs":           registry.EventType,
}

type tableNamer interface {
	TableName() string
}

// Builder constructs table descriptors from the schema models and the
// type registry. Construction is cached: repeat Build calls return the
// identical descriptor set. Invalidation is all-or-nothing - clearing
// any single table forces a full rebuild on the next Build, never a
// partial patch. A mutex guards the cache against concurrent callers.
type Builder struct {
	mu     sync.Mutex
	reg    *registry.Registry
	tables map[string]*Table
}

// NewBuilder creates a Builder bound to a registry.
func NewBuilder(reg *registry.Registry) *Builder {
	return &Builder{reg: reg}
}

// Build returns the full table-descriptor set, constructing it only
// when the cache is empty or partial.
func (b *Builder) Build() (map[string]*Table, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	models := AllModels()
	if len(b.tables) == len(models) {
		return b.tables, nil
	}

	tables := make(map[string]*Table, len(models))
	for _, model := range models {
		namer, ok := model.(tableNamer)
		if !ok {
			return nil, buildError(
				fmt.Errorf("model %T has no table name", model))
		}
		name := namer.TableName()
		if regType, tagged := taggedTables[name]; tagged {
			if !b.reg.Has(regType) {
				return nil, missingRegistryError(name, regType)
			}
		}
		tables[name] = &Table{
			Name:    name,
			Model:   model,
			Columns: columnsOf(model),
		}
	}

	b.tables = tables
	return b.tables, nil
}

// Migrate creates or updates every table from the cached descriptor
// set, in AllModels order. The descriptors drive the migration, so a
// schema that cannot be built is never written to disk.
func (b *Builder) Migrate(db *gorm.DB) error {
	tables, err := b.Build()
	if err != nil {
		return err
	}
	for _, model := range AllModels() {
		name := model.(tableNamer).TableName()
		t, ok := tables[name]
		if !ok {
			return buildError(fmt.Errorf("no descriptor for table %s", name))
		}
		if err := db.AutoMigrate(t.Model); err != nil {
			return err
		}
	}
	return nil
}

// Invalidate clears one cached table descriptor. The next Build call
// performs a full rebuild.
func (b *Builder) Invalidate(tableName string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.tables, tableName)
}

// InvalidateAll clears the whole cache.
func (b *Builder) InvalidateAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tables = nil
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	nullIntType = reflect.TypeOf(sql.NullInt64{})
)

// columnsOf lists the column names of a model, skipping association
// fields (struct and slice members that do not map to columns).
func columnsOf(model interface{}) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		ft := f.Type
		if ft.Kind() == reflect.Slice {
			continue
		}
		if ft.Kind() == reflect.Struct && ft != timeType && ft != nullIntType {
			continue
		}
		cols = append(cols, toSnake(f.Name))
	}
	return cols
}

func toSnake(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				sb.WriteByte('_')
			}
			sb.WriteRune(r - 'A' + 'a')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func buildError(err error) error {
	msg := "Cannot build the save-file schema"
	return &gn.Error{
		Code: errcode.SchemaBuildError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot build schema: %w", err),
	}
}

func missingRegistryError(table, regType string) error {
	msg := `Cannot build table <em>%s</em>: registry <em>%s</em> is not loaded

The type registry must be loaded from the types content file before
the schema is constructed.`
	vars := []any{table, regType}
	return &gn.Error{
		Code: errcode.SchemaBuildError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("table %s requires registry %s which is not loaded",
			table, regType),
	}
}
