package descriptor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

// Validation messages shared across Desc and Field.
const (
	msgNameRequired      = "destination name is required"
	msgFieldNameRequired = "field name is required"
)

// Destination type names and namespace segments are PascalCase-or-camelCase
// identifiers; field names are lowerCamelCase (they become path and query
// placeholders verbatim).
var (
	typeNamePattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
	fieldNamePattern = regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`)
)

// ValidateTypeName checks that a destination or namespace segment name is a
// safe route segment.
func ValidateTypeName(name string) error {
	if !typeNamePattern.MatchString(name) {
		return wferr.New(wferr.ErrSchemaInvalid,
			fmt.Sprintf("invalid type name %q; must match [A-Za-z][A-Za-z0-9]*", name))
	}
	return nil
}

// ValidateFieldName checks that a field name is a safe placeholder name.
func ValidateFieldName(name string) error {
	if !fieldNamePattern.MatchString(name) {
		return wferr.New(wferr.ErrSchemaInvalid,
			fmt.Sprintf("invalid field name %q; must match [a-z][A-Za-z0-9]*", name))
	}
	return nil
}

// Field describes one field of a destination type.
type Field struct {
	Name string // Placeholder name (lowerCamelCase)
	Kind Kind   // Leaf kind; KindRecord marks a composite field

	// Optional marks the field nullable. Optionality and nullability are the
	// same concept on the route wire: a null optional field is an absent
	// query key.
	Optional bool

	// EnumValues is the closed value set for KindEnum fields.
	EnumValues []string

	// Nested is the descriptor of a composite field's record type. The codec
	// does not expand it; descriptors reaching the codec must be flat.
	Nested *Desc
}

// IsNullable reports whether the field admits null on the wire.
func (f *Field) IsNullable() bool {
	return f.Optional
}

// Validate checks that the field definition is well-formed and leaf-valued.
func (f *Field) Validate() error {
	if f.Name == "" {
		return wferr.New(wferr.ErrSchemaInvalid, msgFieldNameRequired)
	}
	if err := ValidateFieldName(f.Name); err != nil {
		return err
	}
	if f.Kind == KindRecord || f.Nested != nil {
		return wferr.New(wferr.ErrSchemaNesting, "composite fields are not supported").
			WithField(f.Name).
			WithHelp("flatten the nested record's fields into the destination before registering it")
	}
	if !f.Kind.IsLeaf() {
		return wferr.New(wferr.ErrSchemaKind, "field kind is not a leaf kind").
			WithField(f.Name).
			With("kind", int(f.Kind))
	}
	if f.Kind == KindEnum {
		if len(f.EnumValues) == 0 {
			return wferr.New(wferr.ErrSchemaInvalid, "enum field requires at least one value").
				WithField(f.Name)
		}
		seen := make(map[string]bool, len(f.EnumValues))
		for _, v := range f.EnumValues {
			if v == "" {
				return wferr.New(wferr.ErrSchemaInvalid, "enum value cannot be empty").
					WithField(f.Name)
			}
			if seen[v] {
				return wferr.New(wferr.ErrSchemaDuplicate, "duplicate enum value").
					WithField(f.Name).
					With("value", v)
			}
			seen[v] = true
		}
	} else if len(f.EnumValues) > 0 {
		return wferr.New(wferr.ErrSchemaInvalid, "only enum fields take a value list").
			WithField(f.Name).
			With("kind", f.Kind.String())
	}
	return nil
}

// HasEnumValue reports whether v is a member of the field's enum value set.
func (f *Field) HasEnumValue(v string) bool {
	for _, ev := range f.EnumValues {
		if ev == v {
			return true
		}
	}
	return false
}

// Desc is the structural descriptor for one destination type: its qualifying
// name and its ordered field list. Field order is the contract between
// path-segment positions and argument names; it is identical for pattern
// building, argument schema building, encoding, and decoding.
type Desc struct {
	// Namespace holds the enclosing qualifiers, dot-joined (e.g. "shop" or
	// "shop.admin"). Empty for top-level destinations. Namespaces let two
	// destination types with the same short name coexist.
	Namespace string

	// Name is the destination type's short name (e.g. "Article").
	Name string

	// Fields is the ordered field list. Order is stable per type.
	Fields []*Field
}

// Ref returns the registry reference: "namespace.Name" or bare "Name".
func (d *Desc) Ref() string {
	if d.Namespace != "" {
		return d.Namespace + "." + d.Name
	}
	return d.Name
}

// Segments returns the qualifying name split into route path segments:
// namespace qualifiers first, then the type name.
func (d *Desc) Segments() []string {
	if d.Namespace == "" {
		return []string{d.Name}
	}
	return append(strings.Split(d.Namespace, "."), d.Name)
}

// Field returns the field with the given name, or nil if not found.
func (d *Desc) Field(name string) *Field {
	for _, f := range d.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FieldNames returns the field names in descriptor order.
func (d *Desc) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// Required returns the required (non-nullable) fields in descriptor order.
func (d *Desc) Required() []*Field {
	var out []*Field
	for _, f := range d.Fields {
		if !f.Optional {
			out = append(out, f)
		}
	}
	return out
}

// Optional returns the optional (nullable) fields in descriptor order.
func (d *Desc) Optional() []*Field {
	var out []*Field
	for _, f := range d.Fields {
		if f.Optional {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks that the descriptor is well-formed for the route codec:
// valid names, no duplicate fields, every field a leaf. A descriptor that
// fails here must be rejected at graph-construction time, before any
// navigation occurs.
func (d *Desc) Validate() error {
	if d.Name == "" {
		return wferr.New(wferr.ErrSchemaInvalid, msgNameRequired)
	}
	if err := ValidateTypeName(d.Name); err != nil {
		return err
	}
	if d.Namespace != "" {
		for _, seg := range strings.Split(d.Namespace, ".") {
			if err := ValidateTypeName(seg); err != nil {
				return wferr.Wrap(wferr.ErrSchemaInvalid, err, "invalid namespace segment").
					WithDestination(d.Namespace, d.Name)
			}
		}
	}
	seen := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		if err := f.Validate(); err != nil {
			return wferr.Wrap(wferr.GetErrorCode(err), err, "invalid field").
				WithDestination(d.Namespace, d.Name).
				WithField(f.Name)
		}
		if seen[f.Name] {
			return wferr.New(wferr.ErrSchemaDuplicate, "duplicate field name").
				WithDestination(d.Namespace, d.Name).
				WithField(f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}
