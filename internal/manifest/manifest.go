// Package manifest loads navigation manifests: YAML files declaring the
// destination types of an application. A manifest is the graph-construction
// input; parsing it yields validated descriptors ready for registration,
// route pattern derivation, and code generation.
package manifest

import (
	"bytes"
	"errors"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/wayfinder-nav/wayfinder/internal/descriptor"
	"github.com/wayfinder-nav/wayfinder/internal/registry"
	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

// DefaultPackage is the package name generated code uses when the manifest
// does not set one.
const DefaultPackage = "routes"

var goPackagePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Manifest is a parsed, validated navigation manifest.
type Manifest struct {
	// Package is the Go package name for generated code.
	Package string

	// Namespace is the default namespace applied to destinations that do
	// not declare their own.
	Namespace string

	// Destinations holds the validated descriptors in manifest order.
	Destinations []*descriptor.Desc
}

// File-shape types for YAML decoding. Kept separate from the descriptor
// model so the wire shape can stay stable independently of it.
type manifestFile struct {
	Package      string            `yaml:"package"`
	Namespace    string            `yaml:"namespace"`
	Destinations []destinationDecl `yaml:"destinations"`
}

type destinationDecl struct {
	Name      string      `yaml:"name"`
	Namespace string      `yaml:"namespace"`
	Fields    []fieldDecl `yaml:"fields"`
}

type fieldDecl struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Optional bool     `yaml:"optional"`
	Values   []string `yaml:"values"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wferr.Wrap(wferr.ErrManifestRead, err, "failed to read manifest").
			WithFile(path, 0)
	}
	m, err := Parse(data)
	if err != nil {
		if werr, ok := err.(*wferr.Error); ok {
			werr.WithFile(path, 0)
		}
		return nil, err
	}
	return m, nil
}

// Parse parses manifest YAML. Unknown keys are rejected so typos surface at
// graph-construction time instead of silently dropping fields.
func Parse(data []byte) (*Manifest, error) {
	var file manifestFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, wferr.Wrap(wferr.ErrManifestParse, err, "manifest is not valid YAML")
	}

	m := &Manifest{
		Package:   file.Package,
		Namespace: file.Namespace,
	}
	if m.Package == "" {
		m.Package = DefaultPackage
	}
	if !goPackagePattern.MatchString(m.Package) {
		return nil, wferr.New(wferr.ErrManifestParse, "package is not a valid Go package name").
			With("package", m.Package)
	}

	if len(file.Destinations) == 0 {
		return nil, wferr.New(wferr.ErrManifestParse, "manifest declares no destinations")
	}

	for _, decl := range file.Destinations {
		d, err := buildDesc(decl, m.Namespace)
		if err != nil {
			return nil, err
		}
		m.Destinations = append(m.Destinations, d)
	}

	// Duplicate references across the whole manifest are a schema error, not
	// just duplicates within one destination.
	seen := make(map[string]bool, len(m.Destinations))
	for _, d := range m.Destinations {
		if seen[d.Ref()] {
			return nil, wferr.New(wferr.ErrSchemaDuplicate, "destination declared twice").
				WithDestination(d.Namespace, d.Name)
		}
		seen[d.Ref()] = true
	}

	return m, nil
}

// buildDesc converts one declaration into a validated descriptor.
func buildDesc(decl destinationDecl, defaultNS string) (*descriptor.Desc, error) {
	ns := decl.Namespace
	if ns == "" {
		ns = defaultNS
	}

	d := &descriptor.Desc{
		Namespace: ns,
		Name:      decl.Name,
	}

	for _, fd := range decl.Fields {
		if fd.Type == "" {
			return nil, wferr.New(wferr.ErrSchemaInvalid, "field type is required").
				WithDestination(ns, decl.Name).
				WithField(fd.Name)
		}
		kind, err := descriptor.ValidateKindName(fd.Type)
		if err != nil {
			if werr, ok := err.(*wferr.Error); ok {
				werr.WithDestination(ns, decl.Name).WithField(fd.Name)
			}
			return nil, err
		}
		if len(fd.Values) > 0 && !kind.HasValues {
			return nil, wferr.New(wferr.ErrSchemaInvalid, "only enum fields take values").
				WithDestination(ns, decl.Name).
				WithField(fd.Name).
				With("type", fd.Type)
		}

		d.Fields = append(d.Fields, &descriptor.Field{
			Name:       fd.Name,
			Kind:       kind.Kind,
			Optional:   fd.Optional,
			EnumValues: fd.Values,
		})
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Registry builds a destination registry from the manifest.
func (m *Manifest) Registry() (*registry.Registry, error) {
	reg := registry.New()
	for _, d := range m.Destinations {
		if err := reg.Register(d); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
