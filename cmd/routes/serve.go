package main

import (
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/routes"
	"github.com/rohanthewiz/routes/tree"
	"github.com/rohanthewiz/routes/view"
	"github.com/rohanthewiz/rweb"
	"github.com/spf13/cobra"
)

const matchPrefix = "/match"

func serveCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a browsable index of the route table",
		Long: `Serve the route table over HTTP:

  GET /               HTML index of every route
  GET /routes.json    flattened routes as JSON
  GET /match/<path>   first route matching /<path>, 404 if none`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.loadTree()
			if err != nil {
				return err
			}

			s := newIndexServer(t, opts.routeFile(), addr)

			logger.Info("Serving route index", "addr", addr, "file", opts.routeFile())
			return s.Run()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")

	return cmd
}

type matchResponse struct {
	Key     string            `json:"key"`
	Pattern string            `json:"pattern"`
	Params  routes.PathParams `json:"params"`
}

// newIndexServer exposes a read-only view of the tree.
func newIndexServer(t *tree.Tree, title string, addr string) *rweb.Server {
	s := rweb.NewServer(rweb.ServerOptions{
		Address: addr,
		Verbose: true,
	})

	s.Use(rweb.RequestInfo)

	// Everything under /match is the path to look up, escapes left intact
	s.Use(func(ctx rweb.Context) error {
		reqPath := ctx.Request().Path()
		if reqPath != matchPrefix && !strings.HasPrefix(reqPath, matchPrefix+"/") {
			return ctx.Next()
		}

		path := strings.TrimPrefix(reqPath, matchPrefix)
		if path == "" {
			return ctx.Status(400).WriteString("a path to match is required, as in /match/users/42")
		}

		route, params, ok, err := t.Lookup(path)
		if err != nil {
			return ctx.Status(400).WriteString(err.Error())
		}
		if !ok {
			return ctx.Status(404).WriteString("no match")
		}

		return ctx.WriteJSON(matchResponse{Key: route.Key, Pattern: route.Pattern, Params: params})
	})

	s.Get("/", func(ctx rweb.Context) error {
		return ctx.WriteHTML(view.RenderIndex(title, t.Flatten()))
	})

	s.Get("/routes.json", func(ctx rweb.Context) error {
		flat := t.Flatten()
		if flat == nil {
			flat = []tree.FlatRoute{}
		}
		return ctx.WriteJSON(flat)
	})

	return s
}
