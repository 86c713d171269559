// Package filter implements the catalog search and filter predicate.
package filter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/carfinder/site/vehicle"
)

// Criteria holds inclusive price and year ranges and optional exact-match
// transmission and fuel type constraints. An empty enum field means any.
type Criteria struct {
	MinPrice     float64 `json:"minPrice"`
	MaxPrice     float64 `json:"maxPrice"`
	MinYear      int     `json:"minYear"`
	MaxYear      int     `json:"maxYear"`
	Transmission string  `json:"transmission"`
	FuelType     string  `json:"fuelType"`
}

// Default returns the criteria shown before the user edits anything.
func Default() Criteria {
	return Criteria{
		MinPrice: 0,
		MaxPrice: 1000000,
		MinYear:  2000,
		MaxYear:  2024,
	}
}

// Key identifies the criteria for caching.
func (c Criteria) Key() string {
	return fmt.Sprintf("%g:%g:%d:%d:%q:%q",
		c.MinPrice, c.MaxPrice, c.MinYear, c.MaxYear, c.Transmission, c.FuelType)
}

// MatchesSearch reports whether q is a case-insensitive substring of the
// make, the model, or the year. The empty query matches every vehicle.
func MatchesSearch(v vehicle.Vehicle, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(v.Make), q) ||
		strings.Contains(strings.ToLower(v.Model), q) ||
		strings.Contains(strconv.Itoa(v.Year), q)
}

func MatchesCriteria(v vehicle.Vehicle, c Criteria) bool {
	return v.Price >= c.MinPrice &&
		v.Price <= c.MaxPrice &&
		v.Year >= c.MinYear &&
		v.Year <= c.MaxYear &&
		(c.Transmission == "" || v.Transmission == c.Transmission) &&
		(c.FuelType == "" || v.FuelType == c.FuelType)
}

func Matches(v vehicle.Vehicle, q string, c Criteria) bool {
	return MatchesSearch(v, q) && MatchesCriteria(v, c)
}

// Apply returns the vehicles matching both q and c in their original order.
// The result is never nil.
func Apply(vehicles []vehicle.Vehicle, q string, c Criteria) []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if Matches(v, q, c) {
			out = append(out, v)
		}
	}
	return out
}

// ---- Bound editing ----

// Form field names, shared by the HTML form and the JSON API.
const (
	FieldMinPrice     = "min_price"
	FieldMaxPrice     = "max_price"
	FieldMinYear      = "min_year"
	FieldMaxYear      = "max_year"
	FieldTransmission = "transmission"
	FieldFuelType     = "fuel_type"
)

// InvalidBoundError reports a numeric bound that could not be parsed.
type InvalidBoundError struct {
	Field string
	Value string
}

func (e *InvalidBoundError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}

// Form is the raw text of a criteria edit, as typed by the user.
type Form struct {
	MinPrice     string
	MaxPrice     string
	MinYear      string
	MaxYear      string
	Transmission string
	FuelType     string
}

// Values renders the criteria back into form text.
func (c Criteria) Values() Form {
	return Form{
		MinPrice:     formatPrice(c.MinPrice),
		MaxPrice:     formatPrice(c.MaxPrice),
		MinYear:      strconv.Itoa(c.MinYear),
		MaxYear:      strconv.Itoa(c.MaxYear),
		Transmission: c.Transmission,
		FuelType:     c.FuelType,
	}
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func ParsePrice(field, s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, &InvalidBoundError{Field: field, Value: s}
	}
	return p, nil
}

func ParseYear(field, s string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidBoundError{Field: field, Value: s}
	}
	return y, nil
}

// Edit applies form to prev. A bound that fails to parse keeps its value
// from prev and adds an *InvalidBoundError to the returned error; every
// other field is still applied. A blank bound resets to its default.
func Edit(prev Criteria, form Form) (Criteria, error) {
	def := Default()
	next := prev
	next.Transmission = form.Transmission
	next.FuelType = form.FuelType

	var errs []error
	editPrice := func(dst *float64, field, raw string, fallback float64) {
		if strings.TrimSpace(raw) == "" {
			*dst = fallback
			return
		}
		p, err := ParsePrice(field, raw)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = p
	}
	editYear := func(dst *int, field, raw string, fallback int) {
		if strings.TrimSpace(raw) == "" {
			*dst = fallback
			return
		}
		y, err := ParseYear(field, raw)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = y
	}

	editPrice(&next.MinPrice, FieldMinPrice, form.MinPrice, def.MinPrice)
	editPrice(&next.MaxPrice, FieldMaxPrice, form.MaxPrice, def.MaxPrice)
	editYear(&next.MinYear, FieldMinYear, form.MinYear, def.MinYear)
	editYear(&next.MaxYear, FieldMaxYear, form.MaxYear, def.MaxYear)

	return next, errors.Join(errs...)
}

// InvalidFields lists the fields rejected in an error returned by Edit.
func InvalidFields(err error) []string {
	if err == nil {
		return nil
	}
	var fields []string
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			fields = append(fields, InvalidFields(e)...)
		}
		return fields
	}
	var boundErr *InvalidBoundError
	if errors.As(err, &boundErr) {
		fields = append(fields, boundErr.Field)
	}
	return fields
}
