package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/carfinder/site/catalog"
)

// HomePage renders the catalog for s. When s has a selected vehicle its
// detail overlay is open on load.
func HomePage(s catalog.State, errMessage string, invalid []string, contactURL string) g.Node {
	return Page(
		"CarFinder",
		[]g.Node{
			CatalogForm(s, errMessage, invalid),
			g.Iff(s.Selected != nil, func() g.Node {
				return CarDetail(*s.Selected, contactURL)
			}),
		},
	)
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(Class("mb-4"), g.Text(message)),
			buttonSecondary("Back to all cars", withHref("/")),
		},
	)
}
