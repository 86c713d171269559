package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Layout Components ----

func gridContainer(children ...g.Node) g.Node {
	return Div(
		ID("car-grid"),
		Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
		g.Group(children),
	)
}

// ---- Message Components ----

func ValidationError(message string) g.Node {
	return Div(
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		g.Text(message),
	)
}

func NoCarsFoundMessage() g.Node {
	return Div(
		Class("text-center py-12 bg-white rounded-lg shadow"),
		H3(Class("text-lg font-medium text-gray-900 mb-2"), g.Text("No cars found")),
		P(Class("text-gray-500"), g.Text("Try adjusting your filters or search query")),
	)
}

// oob marks a node for an htmx out-of-band swap.
func oob() g.Node {
	return g.Attr("hx-swap-oob", "true")
}
