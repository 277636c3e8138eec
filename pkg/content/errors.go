package content

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/voidtraders/voidtrade/pkg/errcode"
)

func parseError(doc string, err error) error {
	msg := "Cannot parse the <em>%s</em> content document"
	vars := []any{doc}
	return &gn.Error{
		Code: errcode.DataFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse %s document: %w", doc, err),
	}
}

func versionError(doc string, got int) error {
	msg := `The <em>%s</em> content document has unsupported version %d

Supported versions: %v`
	vars := []any{doc, got, SupportedVersions}
	return &gn.Error{
		Code: errcode.DataFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("unsupported version %d in %s document, supported: %v",
			got, doc, SupportedVersions),
	}
}

func requiredError(path string) error {
	msg := "Required key not provided @ <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.DataFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("required key not provided @ %s", path),
	}
}

func duplicateError(path, name string) error {
	msg := "Name <em>%s</em> is defined more than once @ <em>%s</em>"
	vars := []any{name, path}
	return &gn.Error{
		Code: errcode.DataFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("duplicate name %q @ %s", name, path),
	}
}

func negativeError(path string, got int) error {
	msg := "Value must not be negative, got %d @ <em>%s</em>"
	vars := []any{got, path}
	return &gn.Error{
		Code: errcode.DataFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("value must not be negative, got %d @ %s", got, path),
	}
}

// categoryError wraps an UnknownCategoryError from the registry with
// the document path of the offending tag.
func categoryError(path string, err error) error {
	var gnErr *gn.Error
	if e, ok := err.(*gn.Error); ok {
		gnErr = e
	}
	msg := "Unknown category @ <em>%s</em>"
	vars := []any{path}
	code := errcode.UnknownCategoryError
	if gnErr != nil {
		code = gnErr.Code
	}
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%w @ %s", err, path),
	}
}

func partExclusivityError(path, name string, bothSet bool) error {
	detail := "neither volume nor storage is set"
	if bothSet {
		detail = "both volume and storage are set"
	}
	msg := `Ship part <em>%s</em> is invalid: %s

Exactly one of <em>volume</em> (space consumed) and <em>storage</em>
(space granted) must be set for every ship part.`
	vars := []any{name, detail}
	return &gn.Error{
		Code: errcode.DataFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("ship part %q: %s @ %s", name, detail, path),
	}
}

func celestialRefError(path, system, celestial string) error {
	msg := `Location references celestial <em>%s</em> which is not defined in system <em>%s</em>`
	vars := []any{celestial, system}
	return &gn.Error{
		Code: errcode.ReferentialIntegrityError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"celestial %q is not defined in system %q @ %s",
			celestial, system, path),
	}
}
