// Package view renders route tables as HTML.
package view

import (
	"strings"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/routes"
	"github.com/rohanthewiz/routes/tree"
)

// RouteIndex lists flattened routes in a table.
// Static routes are linked; parameterized ones show the names they require
// and a sample URL with placeholders.
type RouteIndex struct {
	Title  string
	Routes []tree.FlatRoute
}

func (ri RouteIndex) Render(b *element.Builder) any {
	rows := make([]element.Component, 0, len(ri.Routes))
	for _, r := range ri.Routes {
		rows = append(rows, routeRow{route: r})
	}

	b.H1().T(ri.Title)

	if len(ri.Routes) == 0 {
		b.P().T("No routes defined")
		return nil
	}

	b.Table("class", "routes").R(
		b.Tr().R(
			b.Th().T("Key"),
			b.Th().T("Pattern"),
			b.Th().T("Params"),
			b.Th().T("Example"),
		),
		element.RenderComponents(b, rows...),
	)
	return nil
}

type routeRow struct {
	route tree.FlatRoute
}

func (rr routeRow) Render(b *element.Builder) any {
	names := routes.ParamNames(rr.route.Pattern)

	b.Tr().R(
		b.Td().T(rr.route.Key),
		b.Td().T(rr.route.Pattern),
		b.Td().T(strings.Join(names, ", ")),
		b.Td().R(
			func() any {
				if len(names) == 0 {
					b.A("href", rr.route.Pattern).T(rr.route.Pattern)
				} else {
					b.T(sampleURL(rr.route.Pattern, names))
				}
				return nil
			}(),
		),
	)
	return nil
}

// sampleURL fills each parameter with a "<name>" placeholder.
func sampleURL(pattern string, names []string) string {
	params := make(routes.Params, len(names))
	for _, name := range names {
		params[name] = "<" + name + ">"
	}

	url, err := routes.Generate(pattern, params, nil)
	if err != nil {
		return ""
	}
	return url
}

// page wraps a body component in a minimal HTML document.
type page struct {
	Title string
	Body  element.Component
}

func (p page) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(p.Title),
			b.Style().T(`
				body { font-family: Arial, sans-serif; max-width: 960px; margin: 0 auto; padding: 20px; }
				table.routes { border-collapse: collapse; width: 100%; }
				table.routes th, table.routes td { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
				table.routes td:nth-child(2) { font-family: monospace; }
			`),
		),
		b.Body().R(
			element.RenderComponents(b, p.Body),
		),
	)
	return nil
}

// RenderIndex returns a complete HTML page listing the routes.
func RenderIndex(title string, flat []tree.FlatRoute) string {
	b := element.NewBuilder()
	element.RenderComponents(b, page{
		Title: title,
		Body:  RouteIndex{Title: title, Routes: flat},
	})
	return b.String()
}
