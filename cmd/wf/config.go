package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wayfinder-nav/wayfinder/pkg/wayfinder"
)

// Config represents the wayfinder.yaml configuration file.
type Config struct {
	Manifest string `yaml:"manifest"` // Navigation manifest path
	Package  string `yaml:"package"`  // Go package override for generated code
	Output   string `yaml:"output"`   // Output file for generated code
}

// loadConfig loads configuration from file, env vars, and CLI flags.
// Precedence: CLI flags > env vars > config file > defaults
func loadConfig() (*Config, error) {
	cfg := &Config{
		Manifest: "navigation.yaml",
		Output:   "routes_gen.go",
	}

	// Load config file if it exists
	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Override with env vars
	if envManifest := os.Getenv("WAYFINDER_MANIFEST"); envManifest != "" && manifestPath == "" {
		cfg.Manifest = envManifest
	}

	// Override with CLI flags (highest priority)
	if manifestPath != "" {
		cfg.Manifest = manifestPath
	}

	return cfg, nil
}

// newClient creates a wayfinder client from config.
func newClient() (*wayfinder.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	opts := []wayfinder.Option{
		wayfinder.WithManifestPath(cfg.Manifest),
	}
	if cfg.Package != "" {
		opts = append(opts, wayfinder.WithPackage(cfg.Package))
	}

	return wayfinder.New(opts...)
}
