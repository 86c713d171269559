package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carfinder/site/email"
	"github.com/carfinder/site/ui"
	"github.com/carfinder/site/vehicle"
)

func findCar(c *fiber.Ctx) (vehicle.Vehicle, error) {
	v, ok := engine.Find(c.Params("id"))
	if !ok {
		return vehicle.Vehicle{}, fiber.NewError(fiber.StatusNotFound, "Car not found")
	}
	return v, nil
}

// HandleCarDetail returns the detail overlay for one car.
func HandleCarDetail(c *fiber.Ctx) error {
	v, err := findCar(c)
	if err != nil {
		return err
	}
	return render(c, ui.CarDetail(v, email.InquiryLink(salesEmail, v)))
}

// HandleContactSeller redirects to the seller inquiry mail link.
func HandleContactSeller(c *fiber.Ctx) error {
	v, err := findCar(c)
	if err != nil {
		return err
	}
	return c.Redirect(email.InquiryLink(salesEmail, v), fiber.StatusSeeOther)
}
