// Package main provides the CLI for the Wayfinder navigation toolkit.
// Wayfinder derives type-safe route patterns and argument schemas from a
// navigation manifest and generates typed destination code for it.
//
// Usage:
//
//	wf init                  # Create a starter wayfinder.yaml manifest
//	wf check                 # Validate the manifest
//	wf routes                # Show route patterns and argument schemas
//	wf encode <dest> k=v...  # Encode a concrete destination to a route
//	wf decode <dest> <route> # Decode a route back into values
//	wf gen                   # Generate typed Go destination code
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// Global flags
var (
	manifestPath string
	configFile   string
)

// customHelp displays a styled help message for the root command.
func customHelp(cmd *cobra.Command) {
	categories := []CommandCategory{
		{
			Title: "Setup",
			Commands: []CommandInfo{
				{"init", "Create a starter manifest"},
			},
		},
		{
			Title: "Navigation Graph",
			Commands: []CommandInfo{
				{"check", "Validate the manifest"},
				{"routes", "Show route patterns and argument schemas"},
			},
		},
		{
			Title: "Codec",
			Commands: []CommandInfo{
				{"encode", "Encode a destination into a concrete route"},
				{"decode", "Decode a route back into typed values"},
			},
		},
		{
			Title: "Code Generation",
			Commands: []CommandInfo{
				{"gen", "Generate typed Go destination code"},
			},
		},
	}

	renderCategoryHelp(
		"Wayfinder - Typed Navigation Routing",
		"Type-safe route patterns, argument schemas, and destination codecs",
		categories,
		cmd.Root().PersistentFlags(),
	)
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "wf",
		Short:   "Typed navigation routing toolkit",
		Long:    `Wayfinder derives type-safe route patterns and argument schemas from a navigation manifest and generates typed destination code for it.`,
		Version: version,
	}

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		customHelp(cmd)
	})

	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "", "Path to the navigation manifest")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "wayfinder.yaml", "Path to config file")

	rootCmd.AddCommand(
		initCmd(),
		checkCmd(),
		routesCmd(),
		encodeCmd(),
		decodeCmd(),
		genCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
