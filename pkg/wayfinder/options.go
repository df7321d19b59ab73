package wayfinder

// Config holds client configuration, set via Options.
type Config struct {
	// ManifestPath is the navigation manifest to load.
	ManifestPath string

	// Package overrides the manifest's Go package name for generated code.
	Package string
}

// Option configures a Client.
type Option func(*Config)

// WithManifestPath sets the navigation manifest file.
func WithManifestPath(path string) Option {
	return func(c *Config) {
		c.ManifestPath = path
	}
}

// WithPackage overrides the Go package name used for generated code.
func WithPackage(name string) Option {
	return func(c *Config) {
		c.Package = name
	}
}
