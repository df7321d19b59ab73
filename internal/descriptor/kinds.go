// Package descriptor defines the structural metadata for navigation
// destinations. A Desc describes one destination type as an ordered list of
// named, optionally-nullable leaf fields; the route codec operates on this
// metadata alone and never on concrete destination types.
//
// The field kind system is designed to be:
//   - Wire-friendly: every leaf kind has a canonical, invertible string form
//   - Portable: the same descriptor drives pattern building, argument schema
//     registration, encoding, and decoding
//   - Simple: one way to do things, minimal options
package descriptor

import (
	"sort"

	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

// Kind classifies a field's value type.
type Kind int

const (
	// KindString is a plain string value (identity coercion).
	KindString Kind = iota

	// KindInt is a 64-bit signed integer, rendered in base 10.
	KindInt

	// KindFloat is a 64-bit float, rendered in shortest round-trip form.
	KindFloat

	// KindBool is a boolean, rendered as "true" or "false".
	KindBool

	// KindEnum is one of a closed set of named values, rendered by name.
	KindEnum

	// KindRecord is a nested composite. It is part of the descriptor model
	// so hosts can classify fields, but the codec rejects it: destination
	// descriptors must be flat, with every field leaf-valued.
	KindRecord
)

// String returns the manifest name of a Kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// IsLeaf reports whether the kind is directly string-representable.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindString, KindInt, KindFloat, KindBool, KindEnum:
		return true
	default:
		return false
	}
}

// KindDef describes one leaf kind for manifest parsing and code generation.
type KindDef struct {
	Kind      Kind
	Name      string // Manifest name (e.g., "int")
	GoType    string // Go type emitted by the generator (e.g., "int64")
	HasValues bool   // True if the kind takes a value list (enum only)
}

// kinds holds the leaf kind definitions indexed by manifest name.
var kinds = map[string]*KindDef{
	"string": {Kind: KindString, Name: "string", GoType: "string"},
	"int":    {Kind: KindInt, Name: "int", GoType: "int64"},
	"float":  {Kind: KindFloat, Name: "float", GoType: "float64"},
	"bool":   {Kind: KindBool, Name: "bool", GoType: "bool"},
	"enum":   {Kind: KindEnum, Name: "enum", GoType: "string", HasValues: true},
}

// forbiddenKinds lists manifest type names that look plausible but are not
// leaf kinds, with the reason a field cannot use them.
var forbiddenKinds = map[string]string{
	"record": "nested records are not supported; flatten the record's fields into the destination",
	"object": "nested objects are not supported; flatten the object's fields into the destination",
	"list":   "repeated fields are not supported on the route wire; encode the list as a string field",
	"array":  "repeated fields are not supported on the route wire; encode the list as a string field",
}

// KindByName returns the leaf kind definition for a manifest type name.
// Returns nil if the name is not a leaf kind.
func KindByName(name string) *KindDef {
	return kinds[name]
}

// KindOf returns the definition for a Kind value, or nil for non-leaf kinds.
func KindOf(k Kind) *KindDef {
	for _, def := range kinds {
		if def.Kind == k {
			return def
		}
	}
	return nil
}

// KindNames returns the sorted list of valid manifest type names.
func KindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsForbiddenKind returns true if the type name is recognized but rejected,
// along with the reason.
func IsForbiddenKind(name string) (bool, string) {
	reason, forbidden := forbiddenKinds[name]
	return forbidden, reason
}

// ValidateKindName checks a manifest type name and returns the kind definition.
// Unknown names get a closest-match suggestion.
func ValidateKindName(name string) (*KindDef, error) {
	if forbidden, reason := IsForbiddenKind(name); forbidden {
		return nil, wferr.New(wferr.ErrSchemaNesting, "type is not a leaf kind").
			With("type", name).
			With("reason", reason)
	}

	def := KindByName(name)
	if def == nil {
		err := wferr.New(wferr.ErrSchemaKind, "unknown field type").
			With("type", name).
			With("valid", KindNames())
		return nil, wferr.SuggestName(err, name, KindNames())
	}
	return def, nil
}
