package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/carfinder/site/filter"
)

func formFromQuery(c *fiber.Ctx, prefix string) filter.Form {
	return filter.Form{
		MinPrice:     c.Query(prefix + filter.FieldMinPrice),
		MaxPrice:     c.Query(prefix + filter.FieldMaxPrice),
		MinYear:      c.Query(prefix + filter.FieldMinYear),
		MaxYear:      c.Query(prefix + filter.FieldMaxYear),
		Transmission: c.Query(prefix + filter.FieldTransmission),
		FuelType:     c.Query(prefix + filter.FieldFuelType),
	}
}

// previousCriteria returns the criteria that were in effect before this
// edit, as carried by the form's prev_* fields. Anything unusable there
// falls back to the defaults.
func previousCriteria(c *fiber.Ctx) filter.Criteria {
	prev, err := filter.Edit(filter.Default(), formFromQuery(c, "prev_"))
	if err != nil {
		def := filter.Default()
		def.Transmission = prev.Transmission
		def.FuelType = prev.FuelType
		return def
	}
	return prev
}

// editCriteria applies the submitted filter form to the previous criteria.
// Rejected bounds keep their previous value and are reported in err.
func editCriteria(c *fiber.Ctx) (filter.Criteria, error) {
	return filter.Edit(previousCriteria(c), formFromQuery(c, ""))
}

// criteriaMessage turns an Edit error into a message for the user.
func criteriaMessage(err error) string {
	if err == nil {
		return ""
	}
	var msgs []string
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, e.Error())
		}
	} else {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ") + ". Previous value kept."
}
