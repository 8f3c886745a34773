package bookRoutes

import (
	bookController "bookreview/controllers/bookControllers"
	"bookreview/middleware"
	bookValidator "bookreview/validators/book"

	"github.com/gofiber/fiber/v2"
)

func SetupBookRoutes(app *fiber.App, bc *bookController.BookController, jwtSecret string) {
	bookGroup := app.Group("/api/books")

	bookGroup.Get("/", bc.List)
	bookGroup.Get("/featured/list", bc.Featured)
	bookGroup.Get("/:id", bc.Get)
	bookGroup.Post("/", bookValidator.CreateBook(), middleware.JWTMiddleware(jwtSecret), bc.Create)
}
