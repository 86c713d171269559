package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/carfinder/site/catalog"
	"github.com/carfinder/site/email"
	"github.com/carfinder/site/filter"
	"github.com/carfinder/site/ui"
)

// HandleHome renders the full catalog page. The search, filter and car
// query parameters let a view be linked to directly.
func HandleHome(c *fiber.Ctx) error {
	criteria, err := editCriteria(c)
	if err != nil {
		log.Printf("[home] Rejected filter bounds: %v", err)
	}

	s := engine.State(c.Query("q"), criteria)

	contactURL := ""
	if id := c.Query("car"); id != "" {
		var ok bool
		if s, ok = catalog.Select(s, id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "Car not found")
		}
		contactURL = email.InquiryLink(salesEmail, *s.Selected)
	}

	return render(c, ui.HomePage(s, criteriaMessage(err), filter.InvalidFields(err), contactURL))
}
