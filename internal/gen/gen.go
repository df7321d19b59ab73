// Package gen emits Go source for typed destinations from a navigation
// manifest: a struct per destination, its structural descriptor, and typed
// encode/decode helpers, so application code never touches route strings or
// argument bundles by hand.
package gen

import (
	"bytes"
	"fmt"
	"go/format"

	"github.com/wayfinder-nav/wayfinder/internal/descriptor"
	"github.com/wayfinder-nav/wayfinder/internal/manifest"
	"github.com/wayfinder-nav/wayfinder/internal/route"
	"github.com/wayfinder-nav/wayfinder/internal/strutil"
	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

// facadeImport is the public package generated code depends on.
const facadeImport = "github.com/wayfinder-nav/wayfinder/pkg/wayfinder"

// Generate renders Go source for every destination in the manifest, in
// manifest order. Output is deterministic and gofmt-formatted.
func Generate(m *manifest.Manifest) ([]byte, error) {
	// Namespaces keep same-named destinations apart on the route wire, but
	// generated Go type names are flat within one package.
	seen := make(map[string]string, len(m.Destinations))
	for _, d := range m.Destinations {
		typeName := strutil.ToPascalCase(d.Name)
		if prev, ok := seen[typeName]; ok {
			return nil, wferr.New(wferr.ErrGenFailed, "destinations generate the same Go type name").
				With("type", typeName).
				With("first", prev).
				With("second", d.Ref()).
				WithHelp("rename one destination, or split the namespaces into separate manifests")
		}
		seen[typeName] = d.Ref()
	}

	var b bytes.Buffer

	fmt.Fprintf(&b, "// Code generated by wf gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", m.Package)
	fmt.Fprintf(&b, "import (\n\t%q\n)\n", facadeImport)

	for _, d := range m.Destinations {
		if err := writeDestination(&b, d); err != nil {
			return nil, err
		}
	}

	writeRegisterAll(&b, m.Destinations)

	src, err := format.Source(b.Bytes())
	if err != nil {
		// format.Source failing means the generator emitted bad syntax.
		return nil, wferr.Wrap(wferr.ErrGenFailed, err, "generated source does not compile")
	}
	return src, nil
}

// writeDestination renders the struct, descriptor, pattern constant, and
// codec helpers for one destination.
func writeDestination(b *bytes.Buffer, d *descriptor.Desc) error {
	typeName := strutil.ToPascalCase(d.Name)

	pattern, err := route.BuildPattern(d)
	if err != nil {
		return err
	}

	// Struct: required fields by value, optional fields as pointers so a nil
	// pointer is the null wire state.
	fmt.Fprintf(b, "\n// %s is the typed destination for %q.\n", typeName, d.Ref())
	fmt.Fprintf(b, "type %s struct {\n", typeName)
	for _, f := range d.Fields {
		goType := descriptor.KindOf(f.Kind).GoType
		if f.Optional {
			goType = "*" + goType
		}
		fmt.Fprintf(b, "\t%s %s\n", strutil.ExportedName(f.Name), goType)
	}
	fmt.Fprintf(b, "}\n\n")

	// Pattern constant, derived once at generation time.
	fmt.Fprintf(b, "// %sPattern is the route pattern registered for %s.\n", typeName, typeName)
	fmt.Fprintf(b, "const %sPattern = %q\n\n", typeName, pattern)

	// Descriptor value.
	fmt.Fprintf(b, "// %sDesc is the structural descriptor for %s.\n", typeName, typeName)
	fmt.Fprintf(b, "var %sDesc = &wayfinder.Desc{\n", typeName)
	if d.Namespace != "" {
		fmt.Fprintf(b, "\tNamespace: %q,\n", d.Namespace)
	}
	fmt.Fprintf(b, "\tName: %q,\n", d.Name)
	if len(d.Fields) > 0 {
		fmt.Fprintf(b, "\tFields: []*wayfinder.Field{\n")
		for _, f := range d.Fields {
			fmt.Fprintf(b, "\t\t{Name: %q, Kind: wayfinder.Kind%s", f.Name, strutil.ToPascalCase(f.Kind.String()))
			if f.Optional {
				fmt.Fprintf(b, ", Optional: true")
			}
			if len(f.EnumValues) > 0 {
				fmt.Fprintf(b, ", EnumValues: []string{")
				for i, v := range f.EnumValues {
					if i > 0 {
						fmt.Fprintf(b, ", ")
					}
					fmt.Fprintf(b, "%q", v)
				}
				fmt.Fprintf(b, "}")
			}
			fmt.Fprintf(b, "},\n")
		}
		fmt.Fprintf(b, "\t},\n")
	}
	fmt.Fprintf(b, "}\n\n")

	fmt.Fprintf(b, "// Descriptor returns the structural descriptor for %s.\n", typeName)
	fmt.Fprintf(b, "func (%s) Descriptor() *wayfinder.Desc { return %sDesc }\n\n", typeName, typeName)

	// Values(): typed struct to type-erased form.
	fmt.Fprintf(b, "// Values returns the type-erased field values of d.\n")
	fmt.Fprintf(b, "func (d %s) Values() wayfinder.Values {\n", typeName)
	fmt.Fprintf(b, "\tvals := make(wayfinder.Values, %d)\n", len(d.Fields))
	for _, f := range d.Fields {
		goName := strutil.ExportedName(f.Name)
		if f.Optional {
			fmt.Fprintf(b, "\tif d.%s != nil {\n\t\tvals[%q] = *d.%s\n\t} else {\n\t\tvals[%q] = nil\n\t}\n",
				goName, f.Name, goName, f.Name)
		} else {
			fmt.Fprintf(b, "\tvals[%q] = d.%s\n", f.Name, goName)
		}
	}
	fmt.Fprintf(b, "\treturn vals\n}\n\n")

	// Encode(): typed struct to concrete route string.
	fmt.Fprintf(b, "// Encode renders d as a concrete route string.\n")
	fmt.Fprintf(b, "func (d %s) Encode() (string, error) {\n", typeName)
	fmt.Fprintf(b, "\treturn wayfinder.Encode(%sDesc, d.Values())\n}\n\n", typeName)

	// DecodeX(): resolved bundle back to the typed struct.
	fmt.Fprintf(b, "// Decode%s reconstructs a %s from a resolved argument bundle.\n", typeName, typeName)
	fmt.Fprintf(b, "func Decode%s(b wayfinder.Bundle) (%s, error) {\n", typeName, typeName)
	valsVar := "vals"
	if len(d.Fields) == 0 {
		valsVar = "_"
	}
	fmt.Fprintf(b, "\t%s, err := wayfinder.Decode(%sDesc, b)\n", valsVar, typeName)
	fmt.Fprintf(b, "\tif err != nil {\n\t\treturn %s{}, err\n\t}\n", typeName)
	fmt.Fprintf(b, "\tvar d %s\n", typeName)
	for _, f := range d.Fields {
		goName := strutil.ExportedName(f.Name)
		goType := descriptor.KindOf(f.Kind).GoType
		if f.Optional {
			fmt.Fprintf(b, "\tif v, ok := vals[%q].(%s); ok {\n\t\td.%s = &v\n\t}\n", f.Name, goType, goName)
		} else {
			fmt.Fprintf(b, "\td.%s = vals[%q].(%s)\n", goName, f.Name, goType)
		}
	}
	fmt.Fprintf(b, "\treturn d, nil\n}\n")

	return nil
}

// writeRegisterAll renders the helper that registers every generated
// descriptor at startup.
func writeRegisterAll(b *bytes.Buffer, descs []*descriptor.Desc) {
	fmt.Fprintf(b, "\n// RegisterAll registers every generated destination descriptor.\n")
	fmt.Fprintf(b, "func RegisterAll(reg *wayfinder.Registry) error {\n")
	for _, d := range descs {
		fmt.Fprintf(b, "\tif err := reg.Register(%sDesc); err != nil {\n\t\treturn err\n\t}\n",
			strutil.ToPascalCase(d.Name))
	}
	fmt.Fprintf(b, "\treturn nil\n}\n")
}
