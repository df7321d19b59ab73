package route

import (
	"sort"
	"strconv"

	"github.com/wayfinder-nav/wayfinder/internal/descriptor"
	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

// Decode walks the descriptor in field order against a resolved argument
// bundle and reconstructs the type-erased destination values, applying type
// coercion and null handling.
//
// An absent or null argument for an optional field decodes to nil. An absent
// argument for a required field, or a value that fails coercion, fails with a
// decoding error: that combination indicates a pattern/schema/bundle mismatch
// correct code never produces.
func Decode(d *descriptor.Desc, b Bundle) (Values, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := checkUnknownArgs(d, b); err != nil {
		return nil, err
	}

	vals := make(Values, len(d.Fields))
	for _, f := range d.Fields {
		if argIsNull(b, f.Name) {
			if !f.Optional {
				return nil, wferr.New(wferr.ErrDecodeMissingArg, "missing required argument").
					WithDestination(d.Namespace, d.Name).
					WithField(f.Name)
			}
			vals[f.Name] = nil
			continue
		}

		v, err := coerceLeaf(d, f, *b[f.Name])
		if err != nil {
			return nil, err
		}
		vals[f.Name] = v
	}

	return vals, nil
}

// coerceLeaf parses an argument's string form back into its field kind's
// canonical value type. It is the exact inverse of encodeLeaf.
func coerceLeaf(d *descriptor.Desc, f *descriptor.Field, s string) (any, error) {
	switch f.Kind {
	case descriptor.KindString:
		return s, nil
	case descriptor.KindInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, typeMismatch(d, f, s, "integer")
		}
		return n, nil
	case descriptor.KindFloat:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, typeMismatch(d, f, s, "float")
		}
		return n, nil
	case descriptor.KindBool:
		t, err := strconv.ParseBool(s)
		if err != nil {
			return nil, typeMismatch(d, f, s, "bool")
		}
		return t, nil
	case descriptor.KindEnum:
		if !f.HasEnumValue(s) {
			err := typeMismatch(d, f, s, "enum").With("allowed", f.EnumValues)
			return nil, wferr.SuggestName(err, s, f.EnumValues)
		}
		return s, nil
	}

	// Validate() guarantees leaf kinds only; reaching here is a bug.
	return nil, wferr.Newf(wferr.ErrInternal, "unhandled field kind %s", f.Kind).
		WithField(f.Name)
}

func typeMismatch(d *descriptor.Desc, f *descriptor.Field, s, want string) *wferr.Error {
	return wferr.Newf(wferr.ErrDecodeBadValue, "type mismatch for %s", f.Name).
		WithDestination(d.Namespace, d.Name).
		WithField(f.Name).
		With("value", s).
		With("want", want)
}

// checkUnknownArgs rejects bundle keys the descriptor has no field for.
// The host delivers bundles it resolved from this codec's own pattern, so an
// unknown key means the registered schema and the bundle disagree.
func checkUnknownArgs(d *descriptor.Desc, b Bundle) error {
	var unknown []string
	for name := range b {
		if d.Field(name) == nil {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)

	err := wferr.New(wferr.ErrDecodeUnknownArg, "bundle carries unknown argument").
		WithDestination(d.Namespace, d.Name).
		WithField(unknown[0])
	return wferr.SuggestName(err, unknown[0], d.FieldNames())
}
