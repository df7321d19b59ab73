package route

import (
	"net/url"
	"strings"

	"github.com/wayfinder-nav/wayfinder/internal/descriptor"
	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

// ParseRoute resolves a concrete route string against a destination's pattern
// shape and returns the argument bundle the host framework would deliver:
// positional path segments for required fields, named query entries for
// optional fields. It is the host-side half of the wire format, provided so
// tests and tooling can close the encode/decode loop without a real host.
func ParseRoute(d *descriptor.Desc, route string) (Bundle, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	path := route
	var rawQuery string
	if i := strings.IndexByte(route, '?'); i >= 0 {
		path, rawQuery = route[:i], route[i+1:]
	}

	prefix := d.Segments()
	required := d.Required()

	segs := strings.Split(path, "/")
	if len(segs) != len(prefix)+len(required) {
		return nil, wferr.New(wferr.ErrDecodeBadRoute, "route does not match pattern shape").
			WithDestination(d.Namespace, d.Name).
			With("route", route).
			With("want_segments", len(prefix)+len(required)).
			With("got_segments", len(segs))
	}
	for i, lit := range prefix {
		if segs[i] != lit {
			return nil, wferr.New(wferr.ErrDecodeBadRoute, "route prefix does not match destination").
				WithDestination(d.Namespace, d.Name).
				With("route", route).
				With("want", lit).
				With("got", segs[i])
		}
	}

	b := make(Bundle, len(d.Fields))
	for i, f := range required {
		val, err := url.PathUnescape(segs[len(prefix)+i])
		if err != nil {
			return nil, wferr.Wrap(wferr.ErrDecodeBadRoute, err, "malformed path segment").
				WithDestination(d.Namespace, d.Name).
				WithField(f.Name)
		}
		b[f.Name] = &val
	}

	if rawQuery != "" {
		q, err := url.ParseQuery(rawQuery)
		if err != nil {
			return nil, wferr.Wrap(wferr.ErrDecodeBadRoute, err, "malformed query string").
				WithDestination(d.Namespace, d.Name).
				With("query", rawQuery)
		}
		for name, vs := range q {
			v := vs[0]
			b[name] = &v
		}
	}

	return b, nil
}
