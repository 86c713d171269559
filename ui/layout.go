package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/carfinder/site/config"
)

// ---- Page Layout ----

func Page(title string, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Class("min-h-screen bg-gray-50"),
			header(),
			Main(
				Class("max-w-7xl mx-auto px-4 py-8 sm:px-6 lg:px-8"),
				g.Group(content),
			),
		},
	})
}

func header() g.Node {
	return Header(
		Class("bg-white shadow-sm"),
		Div(
			Class("max-w-7xl mx-auto px-4 py-4 sm:px-6 lg:px-8 flex items-center justify-between"),
			A(
				Href("/"),
				Class("flex items-center space-x-3"),
				Span(Class("text-3xl"), g.Text("🚗")),
				H1(Class("text-2xl font-bold text-gray-900"), g.Text("CarFinder")),
			),
			indicator(),
		),
	)
}

func indicator() g.Node {
	return Div(
		ID("indicator"),
		Class("htmx-indicator flex items-center gap-2 text-blue-600"),
		Div(
			Class("w-4 h-4 border-2 border-blue-600 border-t-transparent rounded-full animate-spin"),
		),
		g.Text("Loading..."),
	)
}

func pageHeader(text string) g.Node {
	return H2(Class("text-4xl font-bold mb-8"), g.Text(text))
}
