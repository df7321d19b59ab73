package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wayfinder-nav/wayfinder/internal/ui"
)

const starterManifest = `# Wayfinder navigation manifest.
# Each destination becomes a typed route: required fields are path segments,
# optional fields are query parameters (absent key = null).
package: routes

destinations:
  - name: Home

  - name: Article
    fields:
      - name: id
        type: int
      - name: tag
        type: string
        optional: true
`

const starterConfig = `# Wayfinder CLI configuration.
manifest: navigation.yaml
output: routes_gen.go
`

// initCmd scaffolds a starter manifest and config file.
func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			files := map[string]string{
				"navigation.yaml": starterManifest,
				"wayfinder.yaml":  starterConfig,
			}

			for _, path := range []string{"navigation.yaml", "wayfinder.yaml"} {
				if _, err := os.Stat(path); err == nil && !force {
					fmt.Println(ui.Warning(path + " already exists (use --force to overwrite)"))
					continue
				}
				if err := os.WriteFile(path, []byte(files[path]), 0o644); err != nil {
					return err
				}
				fmt.Println(ui.Success("created " + path))
			}

			fmt.Println()
			fmt.Println(ui.Dim("Next: edit navigation.yaml, then run \"wf check\" and \"wf gen\"."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	return cmd
}
