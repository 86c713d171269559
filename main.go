package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/carfinder/site/catalog"
	"github.com/carfinder/site/config"
	"github.com/carfinder/site/db"
	h "github.com/carfinder/site/handlers"
	"github.com/carfinder/site/vehicle"
)

func catalogSource() (vehicle.Source, error) {
	switch config.CatalogSource {
	case config.SourceStatic:
		return vehicle.StaticSource(vehicle.Fixture()), nil
	case config.SourceSQLite:
		if err := db.Init(config.DatabaseURL); err != nil {
			return nil, err
		}
		return vehicle.NewDBSource(db.Get()), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", config.CatalogSource)
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	src, err := catalogSource()
	if err != nil {
		return fmt.Errorf("error initializing catalog source: %w", err)
	}
	defer db.Close()

	engine, err := catalog.NewEngine(src)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	defer engine.Close()

	h.Init(engine)

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  config.ServerRequestTimeout,
		WriteTimeout: config.ServerRequestTimeout,
	})

	app.Use(limiter.New(limiter.Config{
		Max:        config.ServerRateLimitMax,
		Expiration: config.ServerRateLimitExp,
	}))
	app.Use(logger.New())

	h.Routes(app)

	fmt.Printf("Starting server on port %s...\n", config.ServerPort)
	return app.Listen(":" + config.ServerPort)
}
