package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/carfinder/site/vehicle"
)

// CarDetail is the overlay for the selected vehicle. contactURL is the
// "Contact Seller" target. Clicking the backdrop or the close button removes
// the overlay.
func CarDetail(v vehicle.Vehicle, contactURL string) g.Node {
	return Div(
		ID("carDetail"),
		Class("fixed inset-0 bg-black bg-opacity-50 flex items-center justify-center p-4 z-50"),
		g.Attr("onclick", "this.remove()"),
		Div(
			Class("bg-white rounded-xl max-w-2xl w-full overflow-y-auto"),
			Style("max-height: 90vh"),
			g.Attr("onclick", "event.stopPropagation()"),
			Div(
				Class("relative h-64"),
				Img(
					Src(v.ImageURL),
					Alt(v.Title()),
					Class("w-full h-full object-cover rounded-t-xl"),
				),
				closeButton(),
			),
			Div(
				Class("p-6"),
				H2(Class("text-2xl font-bold mb-4"), g.Text(v.Title())),
				Div(
					Class("grid grid-cols-2 gap-4 mb-6"),
					detailFact("Price", FormatPrice(v.Price)),
					detailFact("Mileage", FormatMileage(v.Mileage)),
					detailFact("Fuel Type", v.FuelType),
					detailFact("Transmission", v.Transmission),
				),
				button("Contact Seller",
					withHref(contactURL),
					withClass("w-full py-3"),
				),
			),
		),
	)
}

func closeButton() g.Node {
	return buttonStyled("✕",
		"absolute top-4 right-4 bg-white text-gray-800 rounded-full w-10 h-10 shadow-lg hover:bg-gray-100",
		withType("button"),
		withAttributes(
			g.Attr("onclick", "this.closest('#carDetail').remove()"),
			Title("Close"),
		),
	)
}

func detailFact(label, value string) g.Node {
	return Div(
		P(Class("text-gray-600"), g.Text(label)),
		P(Class("text-xl font-bold"), g.Text(value)),
	)
}
