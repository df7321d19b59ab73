// Package wayfinder provides the public API for typed navigation routing.
// It derives route patterns and argument schemas from destination
// descriptors, encodes concrete destinations into route strings, and decodes
// resolved argument bundles back into typed values. One generic codec serves
// every destination type.
//
// The four core operations are pure and safe for concurrent use:
//
//	pattern, err := wayfinder.BuildPattern(desc)
//	args, err := wayfinder.BuildArgs(desc)
//	route, err := wayfinder.Encode(desc, values)
//	values, err := wayfinder.Decode(desc, bundle)
//
// Application code normally uses generated typed destinations (see the
// wf gen command) instead of calling the codec directly.
package wayfinder

import (
	"github.com/wayfinder-nav/wayfinder/internal/descriptor"
	"github.com/wayfinder-nav/wayfinder/internal/registry"
	"github.com/wayfinder-nav/wayfinder/internal/route"
)

// Desc is the structural descriptor for one destination type.
type Desc = descriptor.Desc

// Field describes one field of a destination type.
type Field = descriptor.Field

// Kind classifies a field's value type.
type Kind = descriptor.Kind

// Leaf field kinds, plus the rejected composite kind.
const (
	KindString = descriptor.KindString
	KindInt    = descriptor.KindInt
	KindFloat  = descriptor.KindFloat
	KindBool   = descriptor.KindBool
	KindEnum   = descriptor.KindEnum
	KindRecord = descriptor.KindRecord
)

// Values is the type-erased form of one destination instance.
type Values = route.Values

// Bundle is the flat string-keyed wire form delivered by the host framework.
type Bundle = route.Bundle

// Arg is one entry of a destination's argument schema.
type Arg = route.Arg

// Registry is the process-wide map of destination references to descriptors.
type Registry = registry.Registry

// NewRegistry creates an empty destination registry.
func NewRegistry() *Registry {
	return registry.New()
}

// BuildPattern derives the canonical route pattern for a destination type.
func BuildPattern(d *Desc) (string, error) {
	return route.BuildPattern(d)
}

// BuildArgs derives the ordered argument schema for a destination type.
func BuildArgs(d *Desc) ([]Arg, error) {
	return route.BuildArgs(d)
}

// Encode renders one destination instance as a concrete route string.
func Encode(d *Desc, vals Values) (string, error) {
	return route.Encode(d, vals)
}

// Decode reconstructs destination values from a resolved argument bundle.
func Decode(d *Desc, b Bundle) (Values, error) {
	return route.Decode(d, b)
}

// ParseRoute resolves a concrete route string into the argument bundle the
// host framework would deliver. Provided for tests and tooling.
func ParseRoute(d *Desc, r string) (Bundle, error) {
	return route.ParseRoute(d, r)
}
