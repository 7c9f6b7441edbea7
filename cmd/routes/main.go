package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/routes/tree"
	"github.com/spf13/cobra"
)

const (
	defaultRouteFile = "routes.yaml"
	envRouteFile     = "ROUTES_FILE"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// match already reported it
		if !errors.Is(err, errNoMatch) {
			logger.LogErr(err, "routes command failed")
		}
		os.Exit(1)
	}
}

// options are shared by every subcommand.
type options struct {
	file string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "routes",
		Short: "Generate and match URLs from named route patterns",
		Long: `routes works with a YAML route table such as

  home: /
  blog:
    root: /blog
    post: /blog/:slug

Routes are addressed by dotted keys (blog.post).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "",
		fmt.Sprintf("route table to load (default $%s or %s)", envRouteFile, defaultRouteFile))

	rootCmd.AddCommand(
		listCmd(opts),
		genCmd(opts),
		matchCmd(opts),
		serveCmd(opts),
	)

	return rootCmd
}

// routeFile resolves the route table path: flag, then environment, then default.
func (o *options) routeFile() string {
	if o.file != "" {
		return o.file
	}
	if env := os.Getenv(envRouteFile); env != "" {
		return env
	}
	return defaultRouteFile
}

func (o *options) loadTree() (*tree.Tree, error) {
	return tree.LoadFile(o.routeFile())
}
