package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wayfinder-nav/wayfinder/internal/ui"
)

// decodeCmd decodes a concrete route string back into typed values.
func decodeCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "decode <destination> <route>",
		Short: "Decode a route back into typed values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.FormatError(err))
				os.Exit(1)
			}

			vals, err := client.DecodeRoute(args[0], args[1])
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.FormatError(err))
				os.Exit(1)
			}

			if jsonOutput {
				outputJSON(vals)
				return nil
			}

			d, err := client.Registry().GetByRef(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.FormatError(err))
				os.Exit(1)
			}
			fmt.Println(ui.Section(d.Ref()))
			for _, f := range d.Fields {
				v := vals[f.Name]
				if v == nil {
					fmt.Println("  " + ui.FormatKeyValue(f.Name, ui.Dim("null")))
					continue
				}
				fmt.Println("  " + ui.FormatKeyValue(f.Name, fmt.Sprintf("%v", v)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output machine-readable JSON")
	return cmd
}
