package registry

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

<em>How to fix:</em>
  1. Check that the content files match this build of the game
  2. Supported versions: %v`
	vars := []any{doc, got, SupportedVersions}
	return &gn.Error{
		Code: errcode.DataFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("unsupported version %d in %s document, supported: %v",
			got, doc, SupportedVersions),
	}
}

func namingError(key string) error {
	msg := `Registry key <em>%s</em> violates the naming convention

Registry keys must be PascalCase identifiers ending in "Type",
for example CommodityType or CelestialType.`
	vars := []any{key}
	return &gn.Error{
		Code: errcode.DataFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("registry key %q is not a PascalCase *Type identifier", key),
	}
}

func emptyTypesError() error {
	msg := "The types document declares no registries"
	return &gn.Error{
		Code: errcode.DataFormatError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("types document has an empty or missing types mapping"),
	}
}

// UnknownCategoryError reports a tag that does not belong to its
// registry type.
func UnknownCategoryError(typeName, tag string) error {
	msg := "Tag <em>%s</em> is not a member of <em>%s</em>"
	vars := []any{tag, typeName}
	return &gn.Error{
		Code: errcode.UnknownCategoryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown %s tag %q", typeName, tag),
	}
}
