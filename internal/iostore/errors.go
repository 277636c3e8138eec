package iostore

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/voidtraders/voidtrade/pkg/errcode"
)

// NoSaveGameError signals that there is no save file at the given
// path. Callers that can create a fresh game treat it as a prompt,
// not a failure.
func NoSaveGameError(path string) error {
	msg := `No saved game found at <em>%s</em>

<em>How to fix:</em>
  1. Start a new game with <em>voidtrade new</em>
  2. Or check <em>voidtrade saves</em> for existing save names`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.NoSaveGameError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no saved game at %s", path),
	}
}

// InvalidSaveGameError wraps open and migration failures on an
// existing save file.
func InvalidSaveGameError(path string, err error) error {
	msg := `Cannot open the saved game at <em>%s</em>

<em>How to fix:</em>
  1. Make sure the file is a voidtrade save
  2. Restore the file from a backup if it was modified`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.InvalidSaveGameError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open save %s: %w", path, err),
	}
}

// CorruptSaveError reports a save file that failed the integrity
// check before any query ran against it.
func CorruptSaveError(path, result string) error {
	msg := `The saved game at <em>%s</em> is corrupt

Integrity check reported: %s`
	vars := []any{path, result}
	return &gn.Error{
		Code: errcode.InvalidSaveGameError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("corrupt save %s: integrity check: %s", path, result),
	}
}

// CreateSaveError wraps filesystem and engine failures while creating
// a new save file.
func CreateSaveError(path string, err error) error {
	msg := `Cannot create a saved game at <em>%s</em>

<em>How to fix:</em>
  1. Check that the saves directory is writable
  2. Check the available disk space`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create save %s: %w", path, err),
	}
}

// SchemaCreateError wraps failures while creating or versioning the
// save-file schema.
func SchemaCreateError(err error) error {
	msg := "Cannot create the save-file schema"
	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot create schema: %w", err),
	}
}

// PopulateError wraps failures while copying the content bundle into
// the definition tables of a new save.
func PopulateError(err error) error {
	msg := "Cannot populate the saved game with content data"
	return &gn.Error{
		Code: errcode.SavePopulateError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot populate save: %w", err),
	}
}

// QueryError wraps unexpected engine failures on an open save.
func QueryError(err error) error {
	msg := "A saved-game query failed"
	return &gn.Error{
		Code: errcode.SaveQueryError,
		Msg:  msg,
		Err:  fmt.Errorf("save query: %w", err),
	}
}

// UnknownShipError reports a configured starting ship class that does
// not exist in the content data.
func UnknownShipError(name string) error {
	msg := `There is no ship class named <em>%s</em>

<em>How to fix:</em>
  1. Check the <em>starting_ship</em> setting in the config file
  2. Ship class names come from the <em>ships</em> content section`
	vars := []any{name}
	return &gn.Error{
		Code: errcode.UnknownShipError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown ship class %q", name),
	}
}

// UnknownLocationError reports a location name that does not exist in
// the save.
func UnknownLocationError(name string) error {
	msg := `There is no location named <em>%s</em>

<em>How to fix:</em>
  1. Run <em>voidtrade status</em> to list reachable destinations`
	vars := []any{name}
	return &gn.Error{
		Code: errcode.UnknownLocationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown location %q", name),
	}
}
