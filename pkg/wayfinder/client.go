package wayfinder

import (
	"github.com/wayfinder-nav/wayfinder/internal/gen"
	"github.com/wayfinder-nav/wayfinder/internal/manifest"
	"github.com/wayfinder-nav/wayfinder/internal/route"
)

// Client loads a navigation manifest and exposes the codec over its
// destinations by reference. The manifest is validated and the registry
// built once, at construction; every later call is read-only.
//
// Example:
//
//	client, err := wayfinder.New(
//	    wayfinder.WithManifestPath("wayfinder.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, err := client.EncodeRoute("shop.Article", wayfinder.Values{"id": int64(7)})
type Client struct {
	config   *Config
	manifest *manifest.Manifest
	registry *Registry
}

// RouteInfo describes one destination's registration surface: the route
// pattern and the ordered argument schema handed to the host framework.
type RouteInfo struct {
	Ref     string
	Pattern string
	Args    []Arg
}

// New creates a Client from the given options, loading and validating the
// manifest. A malformed manifest fails here, before any navigation occurs.
func New(opts ...Option) (*Client, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.ManifestPath == "" {
		return nil, ErrMissingManifest
	}

	m, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}
	if cfg.Package != "" {
		m.Package = cfg.Package
	}

	reg, err := m.Registry()
	if err != nil {
		return nil, err
	}

	return &Client{
		config:   cfg,
		manifest: m,
		registry: reg,
	}, nil
}

// Registry returns the destination registry built from the manifest.
func (c *Client) Registry() *Registry {
	return c.registry
}

// Destinations returns the manifest's descriptors in declaration order.
func (c *Client) Destinations() []*Desc {
	return c.manifest.Destinations
}

// Routes derives the pattern and argument schema for every destination, in
// manifest order.
func (c *Client) Routes() ([]RouteInfo, error) {
	infos := make([]RouteInfo, 0, len(c.manifest.Destinations))
	for _, d := range c.manifest.Destinations {
		pattern, err := route.BuildPattern(d)
		if err != nil {
			return nil, err
		}
		args, err := route.BuildArgs(d)
		if err != nil {
			return nil, err
		}
		infos = append(infos, RouteInfo{Ref: d.Ref(), Pattern: pattern, Args: args})
	}
	return infos, nil
}

// EncodeRoute encodes destination values into a concrete route string.
func (c *Client) EncodeRoute(ref string, vals Values) (string, error) {
	d, err := c.registry.GetByRef(ref)
	if err != nil {
		return "", err
	}
	return route.Encode(d, vals)
}

// DecodeRoute parses a concrete route string and decodes it into values.
func (c *Client) DecodeRoute(ref, r string) (Values, error) {
	d, err := c.registry.GetByRef(ref)
	if err != nil {
		return nil, err
	}
	b, err := route.ParseRoute(d, r)
	if err != nil {
		return nil, err
	}
	return route.Decode(d, b)
}

// Generate renders Go source for the manifest's typed destinations.
func (c *Client) Generate() ([]byte, error) {
	return gen.Generate(c.manifest)
}
