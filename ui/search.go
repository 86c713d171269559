package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/carfinder/site/catalog"
)

func searchBar(q string) g.Node {
	return Div(
		Class("relative"),
		Span(Class("absolute left-4 top-3 text-gray-400"), g.Text("🔍")),
		Input(
			Type("search"),
			ID("searchBox"),
			Name("q"),
			Value(q),
			Placeholder("Search by make, model, or year..."),
			Class("w-full pl-12 pr-4 py-3 rounded-lg border border-gray-200 focus:ring-2 focus:ring-blue-500 focus:border-transparent"),
		),
	)
}

// CatalogForm wraps the search bar, filters and results. Every edit
// re-fetches the results partial.
func CatalogForm(s catalog.State, errMessage string, invalid []string) g.Node {
	return Form(
		ID("catalogForm"),
		hx.Get("/search"),
		hx.Trigger("input delay:300ms, submit"),
		hx.Target("#catalogResults"),
		hx.Swap("outerHTML"),
		hx.Indicator("#indicator"),
		Div(
			Class("mb-8"),
			searchBar(s.Query),
		),
		Div(
			Class("grid grid-cols-1 lg:grid-cols-4 gap-8"),
			Div(
				Class("lg:col-span-1 space-y-4"),
				FilterPanel(s.Criteria, invalid),
				Div(ID("filterErrors"), g.If(errMessage != "", ValidationError(errMessage))),
				AppliedCriteria(s.Criteria),
			),
			Div(
				Class("lg:col-span-3"),
				SearchResults(s),
			),
		),
	)
}

// SearchResults renders the visible vehicles, or the empty state.
func SearchResults(s catalog.State) g.Node {
	var content g.Node = NoCarsFoundMessage()
	if !s.Empty() {
		cards := make([]g.Node, 0, len(s.Visible))
		for _, v := range s.Visible {
			cards = append(cards, CarCard(v))
		}
		content = gridContainer(cards...)
	}

	return Div(
		ID("catalogResults"),
		P(
			Class("text-sm text-gray-500 mb-4"),
			g.Text(resultCount(len(s.Visible), len(s.Catalog))),
		),
		content,
	)
}

func resultCount(visible, total int) string {
	return fmt.Sprintf("Showing %d of %d cars", visible, total)
}

// SearchResponse is the partial returned for every form edit: the results,
// the refreshed applied criteria and the validation message. When an edit
// was rejected the filter controls are re-rendered with the retained values.
func SearchResponse(s catalog.State, errMessage string, invalid []string) g.Node {
	nodes := []g.Node{
		SearchResults(s),
		appliedCriteriaOOB(s.Criteria),
		FilterErrors(errMessage),
	}
	if len(invalid) > 0 {
		nodes = append(nodes, FilterPanelOOB(s.Criteria, invalid))
	}
	return g.Group(nodes)
}
