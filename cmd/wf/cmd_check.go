package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wayfinder-nav/wayfinder/internal/ui"
)

// checkCmd validates the navigation manifest.
func checkCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				if jsonOutput {
					outputJSON(map[string]any{
						"valid": false,
						"error": err.Error(),
					})
				} else {
					fmt.Fprintln(os.Stderr, ui.FormatError(err))
				}
				os.Exit(1)
			}

			n := len(client.Destinations())
			if jsonOutput {
				outputJSON(map[string]any{
					"valid":        true,
					"destinations": n,
				})
			} else {
				fmt.Println(ui.Success(fmt.Sprintf("manifest valid: %s",
					ui.FormatCount(n, "destination", "destinations"))))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output machine-readable JSON")
	return cmd
}

// outputJSON prints v as indented JSON on stdout.
func outputJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
