package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/carfinder/site/filter"
	"github.com/carfinder/site/ui"
)

// HandleSearch recomputes the visible cars after any edit of the search box
// or the filter form and returns the results partial.
func HandleSearch(c *fiber.Ctx) error {
	criteria, err := editCriteria(c)
	if err != nil {
		log.Printf("[search] Rejected filter bounds: %v", err)
	}

	s := engine.State(c.Query("q"), criteria)

	return render(c, ui.SearchResponse(s, criteriaMessage(err), filter.InvalidFields(err)))
}
