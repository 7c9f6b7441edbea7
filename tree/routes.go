package tree

import (
	"github.com/rohanthewiz/routes"
	"github.com/rohanthewiz/serr"
)

// Generate builds a URL for the route at the dotted key.
func (t *Tree) Generate(key string, params routes.Params, query routes.Query) (string, error) {
	pattern, ok := t.Get(key)
	if !ok {
		return "", serr.New("no route for key", "key", key)
	}
	return routes.Generate(pattern, params, query)
}

// Lookup probes the leaves in definition order and returns the first whose pattern
// matches pathname. There is no ranking: with both /blog/posts/:id and /blog/posts/:slug
// defined, the one listed first wins.
func (t *Tree) Lookup(pathname string) (route FlatRoute, params routes.PathParams, ok bool, err error) {
	for _, r := range t.Flatten() {
		params, ok, err = routes.Match(r.Pattern, pathname)
		if err != nil {
			return FlatRoute{}, nil, false, serr.Wrap(err, "unable to match route", "key", r.Key)
		}
		if ok {
			return r, params, true, nil
		}
	}

	return FlatRoute{}, nil, false, nil
}
