package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wayfinder-nav/wayfinder/internal/ui"
	"github.com/wayfinder-nav/wayfinder/pkg/wayfinder"
)

// encodeCmd encodes a concrete destination into a route string.
// Values are given as key=value pairs; omitting an optional field's key
// encodes it as null, matching the wire representation.
func encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <destination> [key=value...]",
		Short: "Encode a destination into a concrete route",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.FormatError(err))
				os.Exit(1)
			}

			d, err := client.Registry().GetByRef(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.FormatError(err))
				os.Exit(1)
			}

			bundle := make(wayfinder.Bundle, len(args)-1)
			for _, pair := range args[1:] {
				key, value, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("invalid value %q: expected key=value", pair)
				}
				v := value
				bundle[key] = &v
			}

			// Coerce the string pairs through the decoder so the encoder sees
			// properly typed values; a bad pair fails with the same error a
			// mismatched bundle would.
			vals, err := wayfinder.Decode(d, bundle)
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.FormatError(err))
				os.Exit(1)
			}

			route, err := wayfinder.Encode(d, vals)
			if err != nil {
				fmt.Fprintln(os.Stderr, ui.FormatError(err))
				os.Exit(1)
			}

			fmt.Println(route)
			return nil
		},
	}

	return cmd
}
