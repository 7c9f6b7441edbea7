package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every route as key -> pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.loadTree()
			if err != nil {
				return err
			}

			flat := t.Flatten()
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(flat)
			}

			for _, r := range flat {
				fmt.Fprintf(out, "%-25s → %s\n", r.Key, r.Pattern)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print routes as a JSON array")

	return cmd
}
