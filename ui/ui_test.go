package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/carfinder/site/catalog"
	"github.com/carfinder/site/filter"
	"github.com/carfinder/site/vehicle"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price    float64
		expected string
	}{
		{0, "$0"},
		{999, "$999"},
		{25000, "$25,000"},
		{1000000, "$1,000,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatPrice(tt.price))
	}
}

func TestFormatMileage(t *testing.T) {
	assert.Equal(t, "15,000 miles", FormatMileage(15000))
	assert.Equal(t, "1,000 miles", FormatMileage(1000))
}

func TestHomePage(t *testing.T) {
	html := renderString(t, HomePage(catalog.New(vehicle.Fixture()), "", nil, ""))

	assert.Contains(t, html, "<title>CarFinder</title>")
	assert.Contains(t, html, "Search by make, model, or year...")
	assert.Contains(t, html, "2022 Toyota Camry")
	assert.Contains(t, html, "2023 BMW i4")
	assert.Contains(t, html, "$45,000")
	assert.Contains(t, html, "5,000 miles")
	assert.Contains(t, html, "Showing 4 of 4 cars")
	assert.Contains(t, html, `hx-get="/car/2"`)
	assert.Contains(t, html, `name="prev_max_price" value="1000000"`)
	assert.NotContains(t, html, "No cars found")
}

func TestSearchResultsEmpty(t *testing.T) {
	c := filter.Default()
	c.MinPrice = 100000
	s := catalog.ApplyFilter(catalog.New(vehicle.Fixture()), c)

	html := renderString(t, SearchResults(s))

	assert.Contains(t, html, "No cars found")
	assert.Contains(t, html, "Try adjusting your filters or search query")
	assert.Contains(t, html, "Showing 0 of 4 cars")
}

func TestSearchResponse(t *testing.T) {
	s := catalog.ApplySearch(catalog.New(vehicle.Fixture()), "model")

	t.Run("valid edit", func(t *testing.T) {
		html := renderString(t, SearchResponse(s, "", nil))

		assert.Contains(t, html, "2023 Tesla Model 3")
		assert.Contains(t, html, "Showing 1 of 4 cars")
		assert.Contains(t, html, `id="appliedCriteria" hx-swap-oob="true"`)
		assert.Contains(t, html, `id="filterErrors" hx-swap-oob="true"`)
		assert.NotContains(t, html, `id="filterControls"`)
	})

	t.Run("rejected bound", func(t *testing.T) {
		html := renderString(t, SearchResponse(s, `invalid value "abc" for min_price`, []string{filter.FieldMinPrice}))

		assert.Contains(t, html, `id="filterControls"`)
		assert.Contains(t, html, "border-red-500")
		assert.Contains(t, html, "invalid value &#34;abc&#34; for min_price")
	})
}

func TestFilterPanelSelections(t *testing.T) {
	c := filter.Default()
	c.FuelType = vehicle.FuelHybrid

	html := renderString(t, FilterPanel(c, nil))

	assert.Contains(t, html, `<option value="Hybrid" selected>Hybrid</option>`)
	assert.Contains(t, html, `<option value="" selected>Any</option>`)
	assert.Contains(t, html, `name="min_year"`)
	assert.Contains(t, html, `value="2024"`)
}

func TestCarDetail(t *testing.T) {
	v := vehicle.Fixture()[1]
	html := renderString(t, CarDetail(v, "mailto:sales@carfinder.com?subject=Inquiry%20about%202023%20Tesla%20Model%203"))

	assert.Contains(t, html, `id="carDetail"`)
	assert.Contains(t, html, "2023 Tesla Model 3")
	assert.Contains(t, html, "Contact Seller")
	assert.Contains(t, html, `href="mailto:sales@carfinder.com?subject=Inquiry%20about%202023%20Tesla%20Model%203"`)
	assert.Contains(t, html, "Electric")
	assert.Contains(t, html, "$45,000")
}

func TestErrorPage(t *testing.T) {
	html := renderString(t, ErrorPage(404, "Car not found"))

	assert.Contains(t, html, "Error 404")
	assert.Contains(t, html, "Car not found")
}

func TestHomePageWithSelection(t *testing.T) {
	s, ok := catalog.Select(catalog.New(vehicle.Fixture()), "4")
	require.True(t, ok)

	html := renderString(t, HomePage(s, "", nil, "mailto:sales@carfinder.com"))

	assert.Contains(t, html, `id="carDetail"`)
	assert.Contains(t, html, `href="mailto:sales@carfinder.com"`)
}

func TestHomePageWithRejectedBound(t *testing.T) {
	html := renderString(t, HomePage(catalog.New(vehicle.Fixture()), "invalid value", []string{filter.FieldMaxYear}, ""))

	assert.Contains(t, html, "invalid value")
	assert.Contains(t, html, "border-red-500")
	assert.NotContains(t, html, `id="carDetail"`)
}
