package route

import (
	"strings"

	"github.com/wayfinder-nav/wayfinder/internal/descriptor"
)

// BuildPattern derives the canonical route pattern for a destination type:
// the qualifying name as a literal path prefix, one "{field}" path segment
// per required field, and one "field={field}" query placeholder per optional
// field, all in descriptor order.
//
// The pattern is a pure function of the descriptor: the same type always
// yields the same string, with exactly one placeholder per field.
//
//	Article               (zero fields)
//	Article/{id}          (required id)
//	Article/{id}?tag={tag} (required id, optional tag)
func BuildPattern(d *descriptor.Desc) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.Join(d.Segments(), "/"))

	var query []string
	for _, f := range d.Fields {
		if f.Optional {
			query = append(query, f.Name+"={"+f.Name+"}")
			continue
		}
		b.WriteString("/{")
		b.WriteString(f.Name)
		b.WriteString("}")
	}

	if len(query) > 0 {
		b.WriteString("?")
		b.WriteString(strings.Join(query, "&"))
	}

	return b.String(), nil
}

// BuildArgs derives the ordered argument schema for a destination type, one
// entry per field in descriptor order. Nullable arguments carry an implicit
// null default so the host treats them as optional.
func BuildArgs(d *descriptor.Desc) ([]Arg, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	args := make([]Arg, len(d.Fields))
	for i, f := range d.Fields {
		args[i] = Arg{
			Name:        f.Name,
			Nullable:    f.IsNullable(),
			DefaultNull: f.IsNullable(),
		}
	}
	return args, nil
}
