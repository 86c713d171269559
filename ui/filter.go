package ui

import (
	"slices"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/carfinder/site/filter"
	"github.com/carfinder/site/vehicle"
)

const inputClass = "w-full px-3 py-2 border rounded-md focus:ring-blue-500 focus:border-blue-500"

// FilterPanel renders the filter controls for c. Fields named in invalid are
// highlighted.
func FilterPanel(c filter.Criteria, invalid []string) g.Node {
	return filterPanel(c, invalid)
}

// FilterPanelOOB re-renders the filter controls out-of-band, replacing what
// the user typed with the values actually applied.
func FilterPanelOOB(c filter.Criteria, invalid []string) g.Node {
	return filterPanel(c, invalid, oob())
}

func filterPanel(c filter.Criteria, invalid []string, attrs ...g.Node) g.Node {
	values := c.Values()
	return Div(
		ID("filterControls"),
		Class("bg-white p-6 rounded-lg shadow-md space-y-6"),
		g.Group(attrs),
		Div(
			Class("flex items-center gap-2 mb-4"),
			H2(Class("text-xl font-bold"), g.Text("Filters")),
		),
		Div(
			Class("space-y-4"),
			Div(
				Class("grid grid-cols-2 gap-4"),
				numberFilter("Min Price", filter.FieldMinPrice, values.MinPrice, "decimal", invalid),
				numberFilter("Max Price", filter.FieldMaxPrice, values.MaxPrice, "decimal", invalid),
			),
			Div(
				Class("grid grid-cols-2 gap-4"),
				numberFilter("Min Year", filter.FieldMinYear, values.MinYear, "numeric", invalid),
				numberFilter("Max Year", filter.FieldMaxYear, values.MaxYear, "numeric", invalid),
			),
			selectFilter("Transmission", filter.FieldTransmission, c.Transmission, vehicle.Transmissions),
			selectFilter("Fuel Type", filter.FieldFuelType, c.FuelType, vehicle.FuelTypes),
			resetFilters(),
		),
	)
}

// numberFilter is a plain text input so that malformed bounds reach the
// server and can be rejected explicitly.
func numberFilter(label, name, value, inputMode string, invalid []string) g.Node {
	class := inputClass
	if slices.Contains(invalid, name) {
		class += " border-red-500 bg-red-50"
	}
	return Div(
		Label(
			For(name),
			Class("block text-sm font-medium text-gray-700 mb-1"),
			g.Text(label),
		),
		Input(
			Type("text"),
			g.Attr("inputmode", inputMode),
			ID(name),
			Name(name),
			Value(value),
			Class(class),
		),
	)
}

func selectFilter(label, name, value string, options []string) g.Node {
	nodes := []g.Node{
		Option(Value(""), g.Text("Any"), g.If(value == "", Selected())),
	}
	for _, opt := range options {
		nodes = append(nodes, Option(Value(opt), g.Text(opt), g.If(value == opt, Selected())))
	}
	return Div(
		Label(
			For(name),
			Class("block text-sm font-medium text-gray-700 mb-1"),
			g.Text(label),
		),
		Select(
			ID(name),
			Name(name),
			Class(inputClass),
			g.Group(nodes),
		),
	)
}

func resetFilters() g.Node {
	return buttonSecondary("Reset Filters",
		withHref("/"),
		withClass("text-sm"),
	)
}

// AppliedCriteria carries the criteria in effect as hidden inputs, so the
// next edit can fall back to them when a bound is rejected.
func AppliedCriteria(c filter.Criteria) g.Node {
	return appliedCriteria(c)
}

func appliedCriteriaOOB(c filter.Criteria) g.Node {
	return appliedCriteria(c, oob())
}

func appliedCriteria(c filter.Criteria, attrs ...g.Node) g.Node {
	values := c.Values()
	hidden := func(name, value string) g.Node {
		return Input(Type("hidden"), Name("prev_"+name), Value(value))
	}
	return Div(
		ID("appliedCriteria"),
		g.Group(attrs),
		hidden(filter.FieldMinPrice, values.MinPrice),
		hidden(filter.FieldMaxPrice, values.MaxPrice),
		hidden(filter.FieldMinYear, values.MinYear),
		hidden(filter.FieldMaxYear, values.MaxYear),
		hidden(filter.FieldTransmission, values.Transmission),
		hidden(filter.FieldFuelType, values.FuelType),
	)
}

// FilterErrors shows why an edit was rejected, or nothing when message is
// empty. It is always swapped out-of-band.
func FilterErrors(message string) g.Node {
	return Div(
		ID("filterErrors"),
		oob(),
		g.If(message != "", ValidationError(message)),
	)
}
