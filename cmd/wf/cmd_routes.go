package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wayfinder-nav/wayfinder/internal/ui"
)

// routesCmd lists each destination's route pattern and argument schema.
func routesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Show route patterns and argument schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.FormatError(err))
				os.Exit(1)
			}

			infos, err := client.Routes()
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.FormatError(err))
				os.Exit(1)
			}

			if jsonOutput {
				out := make([]map[string]any, 0, len(infos))
				for _, info := range infos {
					argList := make([]map[string]any, 0, len(info.Args))
					for _, a := range info.Args {
						argList = append(argList, map[string]any{
							"name":         a.Name,
							"nullable":     a.Nullable,
							"default_null": a.DefaultNull,
						})
					}
					out = append(out, map[string]any{
						"destination": info.Ref,
						"pattern":     info.Pattern,
						"args":        argList,
					})
				}
				outputJSON(out)
				return nil
			}

			for i, info := range infos {
				if i > 0 {
					fmt.Println()
				}
				fmt.Println(ui.Section(info.Ref))
				fmt.Println("  " + ui.FormatKeyValue("pattern", ui.Primary(info.Pattern)))
				if len(info.Args) == 0 {
					fmt.Println("  " + ui.Dim("no arguments"))
					continue
				}
				for _, a := range info.Args {
					var notes []string
					if a.Nullable {
						notes = append(notes, "nullable")
					}
					if a.DefaultNull {
						notes = append(notes, "defaults to null")
					}
					suffix := ""
					if len(notes) > 0 {
						suffix = " " + ui.Dim("("+strings.Join(notes, ", ")+")")
					}
					fmt.Println("  " + ui.FormatKeyValue("arg", a.Name+suffix))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output machine-readable JSON")
	return cmd
}
