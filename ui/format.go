package ui

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatNumber groups thousands, showing cents only when present.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return printer.Sprintf("%d", int64(n))
	}
	return printer.Sprintf("%.2f", n)
}

// FormatPrice renders a price as e.g. "$25,000".
func FormatPrice(price float64) string {
	return "$" + formatNumber(price)
}

// FormatMileage renders mileage as e.g. "15,000 miles".
func FormatMileage(mileage float64) string {
	return formatNumber(mileage) + " miles"
}
