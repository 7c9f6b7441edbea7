package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rohanthewiz/routes"
	"github.com/rohanthewiz/routes/core/rtr"
	"github.com/rohanthewiz/routes/tree"
	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("no match")

func matchCmd(opts *options) *cobra.Command {
	var (
		pattern string
		ordered bool
	)

	cmd := &cobra.Command{
		Use:   "match <path>",
		Short: "Match a path against a pattern or the route table",
		Long: `Match a concrete path and print the extracted params.

With --pattern only that pattern is tried. Otherwise every route in the
table is probed in definition order and the first match is printed.
Exits non-zero when nothing matches.

With --ordered the params are printed as a list in pattern order, which
keeps every binding of a repeated name (/:id/:id).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var (
				route  tree.FlatRoute
				params routes.PathParams
				ok     bool
				err    error
			)

			if pattern != "" {
				route.Pattern = pattern
				params, ok, err = routes.Match(pattern, path)
			} else {
				t, loadErr := opts.loadTree()
				if loadErr != nil {
					return loadErr
				}
				route, params, ok, err = t.Lookup(path)
			}

			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), errNoMatch.Error())
				return errNoMatch
			}

			var result any = params
			if ordered {
				pairs, _, err := rtr.Match(route.Pattern, path)
				if err != nil {
					return err
				}
				if pairs == nil {
					pairs = []rtr.Parameter{}
				}
				result = pairs
			}

			js, err := json.Marshal(result)
			if err != nil {
				return err
			}

			if route.Key != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", route.Key, route.Pattern, js)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", route.Pattern, js)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Match only this pattern")
	cmd.Flags().BoolVar(&ordered, "ordered", false, "Print params as an ordered list of key/value pairs")

	return cmd
}
