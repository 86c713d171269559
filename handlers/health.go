package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carfinder/site/config"
	"github.com/carfinder/site/db"
)

// HandleHealth returns the health status of the application
func HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status":  "ok",
		"source":  config.CatalogSource,
		"catalog": engine.Len(),
		"cache":   engine.CacheStats(),
	}

	if db.Initialized() {
		if err := db.Ping(); err != nil {
			health["status"] = "unhealthy"
			health["database"] = "down"
			c.Status(fiber.StatusServiceUnavailable)
		} else {
			health["database"] = "up"
		}
	}

	return c.JSON(health)
}
