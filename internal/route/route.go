// Package route implements the structural route codec: deriving route
// patterns and argument schemas from destination descriptors, encoding
// concrete destination values into route strings, and decoding argument
// bundles back into values.
//
// All operations are pure functions over immutable inputs. They perform no
// I/O, hold no state, and are safe to call concurrently.
package route

// Values is the type-erased form of one destination instance: field name to
// value. A nil value (or a missing key) is null. Canonical value types per
// field kind: string, int64, float64, bool, and string for enums.
type Values map[string]any

// Bundle is the flat string-keyed wire form exchanged with the host
// navigation framework. Each argument is present-with-value, present-with-null
// (nil pointer), or absent (missing key). Absence is the null representation
// for optional fields.
type Bundle map[string]*string

// Arg is one entry of a destination's argument schema, registered with the
// host framework alongside the route pattern. Every argument is string-typed
// on the wire; richer typing is the codec's job.
type Arg struct {
	Name     string // Argument name, equal to the field name
	Nullable bool   // True for optional fields
	// DefaultNull marks the argument as defaulting to null so the host does
	// not require a value. It is always equal to Nullable.
	DefaultNull bool
}

// fieldIsNull reports whether vals holds a null for the named field.
// A missing key and an explicit nil are the same null.
func fieldIsNull(vals Values, name string) bool {
	v, ok := vals[name]
	return !ok || v == nil
}

// argIsNull reports whether the bundle holds a null for the named argument.
// An absent key and a present nil value are the same null. This is the single
// point where the null-equals-absent-key invariant lives; the encoder and
// decoder both go through it so the two cannot drift apart.
func argIsNull(b Bundle, name string) bool {
	p, ok := b[name]
	return !ok || p == nil
}
