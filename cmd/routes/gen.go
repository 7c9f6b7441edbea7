package main

import (
	"fmt"
	"strings"

	"github.com/rohanthewiz/routes"
	"github.com/rohanthewiz/routes/consts"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"
)

func genCmd(opts *options) *cobra.Command {
	var query []string

	cmd := &cobra.Command{
		Use:   "gen <key|pattern> [name=value...]",
		Short: "Generate a URL from a route",
		Long: `Generate a URL by substituting the route's :params.

A first argument starting with '/' is used as the pattern directly,
anything else is looked up as a dotted key in the route table.

Examples:
  routes gen blog.post slug=hello-world
  routes gen /users/:id id=42 -q tab=posts -q page=2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := resolvePattern(opts, args[0])
			if err != nil {
				return err
			}

			params := routes.Params{}
			for _, arg := range args[1:] {
				name, value, err := splitPair(arg)
				if err != nil {
					return err
				}
				params[name] = value
			}

			var q routes.Query
			for _, arg := range query {
				key, value, err := splitPair(arg)
				if err != nil {
					return err
				}
				q = q.Add(key, value)
			}

			url, err := routes.Generate(pattern, params, q)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&query, "query", "q", nil, "Query entry as key=value (repeatable, order kept)")

	return cmd
}

// resolvePattern treats arguments starting with '/' as patterns and the rest as route keys.
func resolvePattern(opts *options, arg string) (string, error) {
	if strings.HasPrefix(arg, consts.StrSlash) {
		return arg, nil
	}

	t, err := opts.loadTree()
	if err != nil {
		return "", err
	}

	pattern, ok := t.Get(arg)
	if !ok {
		return "", serr.New("no route for key", "key", arg, "file", opts.routeFile())
	}
	return pattern, nil
}

func splitPair(arg string) (string, string, error) {
	name, value, found := strings.Cut(arg, consts.StrEquals)
	if !found || name == "" {
		return "", "", serr.New("expected name=value", "arg", arg)
	}
	return name, value, nil
}
