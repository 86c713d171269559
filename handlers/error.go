package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/carfinder/site/ui"
)

// CustomErrorHandler renders an error page for HTML routes and a JSON body
// for the API.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("[handlers] %s %s: %v", ctx.Method(), ctx.Path(), err)
	}

	ctx.Status(code)
	if isAPI(ctx) {
		return ctx.JSON(fiber.Map{"error": err.Error()})
	}
	return render(ctx, ui.ErrorPage(code, err.Error()))
}

func isAPI(ctx *fiber.Ctx) bool {
	path := ctx.Path()
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
