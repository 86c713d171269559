package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/carfinder/site/vehicle"
)

func carID(v vehicle.Vehicle) string {
	return "car-" + v.ID
}

func carDetailURL(v vehicle.Vehicle) string {
	return "/car/" + v.ID
}

// CarCard renders a catalog entry; clicking it opens the detail overlay.
func CarCard(v vehicle.Vehicle) g.Node {
	return Div(
		ID(carID(v)),
		Class("bg-white rounded-xl shadow-lg hover:shadow-xl transition-shadow duration-300 cursor-pointer overflow-hidden group"),
		hx.Get(carDetailURL(v)),
		hx.Target("body"),
		hx.Swap("beforeend"),
		Div(
			Class("relative h-48 overflow-hidden"),
			Img(
				Src(v.ImageURL),
				Alt(v.Title()),
				Class("w-full h-full object-cover group-hover:scale-105 transition-transform duration-300"),
			),
			Div(
				Class("absolute bottom-0 left-0 right-0 bg-gradient-to-t from-black/60 to-transparent p-4"),
				H3(Class("text-white font-bold text-xl"), g.Text(v.Title())),
			),
		),
		Div(
			Class("p-4 space-y-4"),
			Div(
				Class("flex justify-between items-center"),
				Span(Class("text-2xl font-bold text-blue-600"), g.Text(FormatPrice(v.Price))),
				Span(Class("text-gray-600"), g.Text(FormatMileage(v.Mileage))),
			),
			Div(
				Class("grid grid-cols-2 gap-3 text-sm"),
				cardFact("⛽", v.FuelType),
				cardFact("⚙", v.Transmission),
				cardFact("📅", strconv.Itoa(v.Year)),
				cardFact("💵", "Finance Available"),
			),
		),
	)
}

func cardFact(symbol, text string) g.Node {
	return Div(
		Class("flex items-center gap-2 text-gray-600"),
		Span(g.Text(symbol)),
		g.Text(text),
	)
}
