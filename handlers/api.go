package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carfinder/site/email"
	"github.com/carfinder/site/filter"
	"github.com/carfinder/site/vehicle"
)

type carResponse struct {
	vehicle.Vehicle
	Title      string `json:"title"`
	ContactURL string `json:"contactUrl"`
}

func newCarResponse(v vehicle.Vehicle) carResponse {
	return carResponse{
		Vehicle:    v,
		Title:      v.Title(),
		ContactURL: email.InquiryLink(salesEmail, v),
	}
}

// HandleAPICars returns the cars matching the q and filter parameters.
// Unlike the HTML form there is no previous state to fall back on, so a
// malformed bound is a 400.
func HandleAPICars(c *fiber.Ctx) error {
	criteria, err := filter.Edit(filter.Default(), formFromQuery(c, ""))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  err.Error(),
			"fields": filter.InvalidFields(err),
		})
	}

	q := c.Query("q")
	visible := engine.Visible(q, criteria)
	cars := make([]carResponse, 0, len(visible))
	for _, v := range visible {
		cars = append(cars, newCarResponse(v))
	}

	return c.JSON(fiber.Map{
		"query":    q,
		"criteria": criteria,
		"count":    len(cars),
		"total":    engine.Len(),
		"cars":     cars,
	})
}

func HandleAPICar(c *fiber.Ctx) error {
	v, err := findCar(c)
	if err != nil {
		return err
	}
	return c.JSON(newCarResponse(v))
}

// HandleFilterOptions lists the values the filter form offers.
func HandleFilterOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"transmissions": vehicle.Transmissions,
		"fuelTypes":     vehicle.FuelTypes,
		"defaults":      filter.Default(),
	})
}
