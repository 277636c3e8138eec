// Package registry defines the closed tag enumerations every other
// component validates against. A Registry is parsed once from the
// types.yaml content file and passed by reference into validators and
// the schema builder; it is immutable after creation.
package registry

import (
	"regexp"

	"gopkg.in/yaml.v3"
)

// Well-known registry keys. Content validation looks these up by name.
const (
	CommodityType   = "CommodityType"
	CelestialType   = "CelestialType"
	LocationType    = "LocationType"
	EventType       = "EventType"
	OrderStatusType = "OrderStatusType"
)

// SupportedVersions lists the types.yaml versions this build accepts.
var SupportedVersions = []int{1}

// keys must be PascalCase identifiers ending in "Type".
var keyRx = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*Type$`)

// Registry holds the closed tag sets, keyed by type name.
type Registry struct {
	version int
	types   map[string][]string
	members map[string]map[string]struct{}
}

// TagValidator reports whether a tag belongs to one registry type.
// It returns an UnknownCategoryError for foreign tags.
type TagValidator func(tag string) error

type typesDoc struct {
	Version int                 `yaml:"version"`
	Types   map[string][]string `yaml:"types"`
}

// Parse reads a types.yaml document and constructs an immutable
// Registry. It fails with a DataFormatError when the document cannot
// be parsed, declares an unsupported version, or violates the naming
// convention for type keys.
func Parse(data []byte) (*Registry, error) {
	var doc typesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseError("types", err)
	}

	supported := false
	for _, v := range SupportedVersions {
		if doc.Version == v {
			supported = true
			break
		}
	}
	if !supported {
		return nil, versionError("types", doc.Version)
	}

	if len(doc.Types) == 0 {
		return nil, emptyTypesError()
	}

	res := &Registry{
		version: doc.Version,
		types:   make(map[string][]string, len(doc.Types)),
		members: make(map[string]map[string]struct{}, len(doc.Types)),
	}

	for name, tags := range doc.Types {
		if !keyRx.MatchString(name) {
			return nil, namingError(name)
		}
		res.types[name] = tags
		set := make(map[string]struct{}, len(tags))
		for _, tag := range tags {
			set[tag] = struct{}{}
		}
		res.members[name] = set
	}

	return res, nil
}

// Version returns the version declared by the parsed document.
func (r *Registry) Version() int {
	return r.version
}

// Has reports whether a registry type exists.
func (r *Registry) Has(typeName string) bool {
	_, ok := r.types[typeName]
	return ok
}

// Tags returns the ordered member tags of a registry type.
func (r *Registry) Tags(typeName string) []string {
	return r.types[typeName]
}

// Contains reports whether tag is a member of the named type.
func (r *Registry) Contains(typeName, tag string) bool {
	_, ok := r.members[typeName][tag]
	return ok
}

// Validator returns a TagValidator for one registry type, usable by
// the content-validation layer. Looking up a type that does not exist
// yields a validator that rejects every tag.
func (r *Registry) Validator(typeName string) TagValidator {
	return func(tag string) error {
		if !r.Contains(typeName, tag) {
			return UnknownCategoryError(typeName, tag)
		}
		return nil
	}
}
