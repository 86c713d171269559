package handlers

import "github.com/gofiber/fiber/v2"

// Routes registers every endpoint on app.
func Routes(app *fiber.App) {
	app.Get("/", HandleHome)
	app.Get("/search", HandleSearch)
	app.Get("/car/:id", HandleCarDetail)
	app.Get("/car/:id/contact", HandleContactSeller)

	api := app.Group("/api")
	api.Get("/cars", HandleAPICars)
	api.Get("/cars/:id", HandleAPICar)
	api.Get("/filter-options", HandleFilterOptions)

	app.Get("/health", HandleHealth)
}
