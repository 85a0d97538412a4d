// Package schema maps application-level attribute names onto the opaque
// per-deployment field identifiers used by the external store. The mapping is
// loaded from a YAML resource so a redeployment against different tables only
// needs a new file, not a rebuild.
package schema

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FieldKind classifies how a field's raw value is shaped in the store.
type FieldKind string

const (
	KindText   FieldKind = "text"
	KindNumber FieldKind = "number"
	KindBool   FieldKind = "boolean"
	KindOption FieldKind = "option"
	KindLink   FieldKind = "link"
	KindFile   FieldKind = "file"
)

// Field binds a named attribute to its opaque identifier and shape.
type Field struct {
	ID   string    `yaml:"id"`
	Kind FieldKind `yaml:"kind"`
}

// FieldMap is the attribute-name dictionary for one table.
type FieldMap map[string]Field

// ColumnFor returns the opaque field identifier for a named attribute.
// Names absent from the map pass through unchanged so that callers can
// address raw identifiers directly when constructing filter and sort
// parameters.
func (m FieldMap) ColumnFor(name string) string {
	if f, ok := m[name]; ok && f.ID != "" {
		return f.ID
	}
	return name
}

// Kind returns the declared shape of a named attribute, KindText when unknown.
func (m FieldMap) Kind(name string) FieldKind {
	if f, ok := m[name]; ok && f.Kind != "" {
		return f.Kind
	}
	return KindText
}

// IsOption reports whether the attribute is a single-select field whose raw
// value arrives wrapped as {"value": ...}.
func (m FieldMap) IsOption(name string) bool {
	return m.Kind(name) == KindOption
}

// Schema holds the field dictionaries for the tables this application reads.
type Schema struct {
	Products   FieldMap `yaml:"products"`
	Categories FieldMap `yaml:"categories"`
}

//go:embed fieldmap.yaml
var defaultFieldMap []byte

// Load reads a schema from the YAML file at path. An empty path loads the
// embedded default mapping.
func Load(path string) (*Schema, error) {
	raw := defaultFieldMap
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read field map %s: %w", path, err)
		}
	}
	var s Schema
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to parse field map: %w", err)
	}
	if len(s.Products) == 0 {
		return nil, fmt.Errorf("field map declares no product fields")
	}
	return &s, nil
}
