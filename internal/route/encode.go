package route

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/wayfinder-nav/wayfinder/internal/descriptor"
	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

// Encode walks the descriptor in field order and produces a concrete route
// string for one destination instance: required field values fill the path
// segments, optional non-null values become query entries, and optional null
// values are omitted entirely (absence of the query key is the null
// representation).
//
// A required field that is null or absent is a contract violation and fails
// with an encoding error; it is never silently defaulted. Values are
// percent-escaped with the platform URI codec before entering the route.
func Encode(d *descriptor.Desc, vals Values) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	if err := checkUnknownValues(d, vals); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.Join(d.Segments(), "/"))

	var query []string
	for _, f := range d.Fields {
		if fieldIsNull(vals, f.Name) {
			if f.Optional {
				continue
			}
			return "", wferr.New(wferr.ErrEncodeRequiredNull, "required field must not be null").
				WithDestination(d.Namespace, d.Name).
				WithField(f.Name)
		}

		s, err := encodeLeaf(d, f, vals[f.Name])
		if err != nil {
			return "", err
		}

		if f.Optional {
			query = append(query, f.Name+"="+url.QueryEscape(s))
			continue
		}
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}

	if len(query) > 0 {
		b.WriteString("?")
		b.WriteString(strings.Join(query, "&"))
	}

	return b.String(), nil
}

// encodeLeaf renders a leaf value in its canonical string form: strconv forms
// for primitives, the member name for enums. The forms are chosen so the
// decoder's coercion inverts them exactly.
func encodeLeaf(d *descriptor.Desc, f *descriptor.Field, v any) (string, error) {
	switch f.Kind {
	case descriptor.KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case descriptor.KindInt:
		switch n := v.(type) {
		case int64:
			return strconv.FormatInt(n, 10), nil
		case int:
			return strconv.FormatInt(int64(n), 10), nil
		case int32:
			return strconv.FormatInt(int64(n), 10), nil
		}
	case descriptor.KindFloat:
		switch n := v.(type) {
		case float64:
			return strconv.FormatFloat(n, 'g', -1, 64), nil
		case float32:
			return strconv.FormatFloat(float64(n), 'g', -1, 64), nil
		}
	case descriptor.KindBool:
		if t, ok := v.(bool); ok {
			return strconv.FormatBool(t), nil
		}
	case descriptor.KindEnum:
		s, ok := v.(string)
		if !ok {
			break
		}
		if !f.HasEnumValue(s) {
			return "", wferr.New(wferr.ErrEncodeBadValue, "value is not an enum member").
				WithDestination(d.Namespace, d.Name).
				WithField(f.Name).
				With("value", s).
				With("allowed", f.EnumValues)
		}
		return s, nil
	}

	return "", wferr.Newf(wferr.ErrEncodeBadValue, "value cannot be represented as %s", f.Kind).
		WithDestination(d.Namespace, d.Name).
		WithField(f.Name).
		With("value", v)
}

// checkUnknownValues rejects value keys the descriptor has no field for.
// Clients never build route strings by hand, so a stray key is a programmer
// error worth a loud, early failure.
func checkUnknownValues(d *descriptor.Desc, vals Values) error {
	var unknown []string
	for name := range vals {
		if d.Field(name) == nil {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)

	err := wferr.New(wferr.ErrEncodeUnknownField, "value supplied for unknown field").
		WithDestination(d.Namespace, d.Name).
		WithField(unknown[0])
	return wferr.SuggestName(err, unknown[0], d.FieldNames())
}
