// Package routes is a small vocabulary for named URL patterns.
//
// A pattern is a '/'-separated template whose segments are either literals or
// parameters prefixed with ':'
//
//	/users/:userId/posts/:postId
//
// Generate turns a pattern and values into a URL, Match does the reverse,
// and ParamNames lists the parameters a pattern requires. The functions keep no
// state and are safe for concurrent use.
//
//	url, err := routes.Generate("/blog/posts/:id", routes.Params{"id": 42},
//		routes.Query{}.Add("tab", "comments"))
//	// url == "/blog/posts/42?tab=comments"
//
//	params, ok, err := routes.Match("/blog/posts/:id", url)
//	// params["id"] == "42", ok == true
//
// The round trip holds for any values: Match(p, Generate(p, v)) yields v in string form.
//
// Route tables are defined once with package tree and can be loaded from YAML.
package routes
