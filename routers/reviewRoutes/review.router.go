package reviewRoutes

import (
	reviewController "bookreview/controllers/reviewControllers"
	"bookreview/middleware"
	reviewValidator "bookreview/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App, rc *reviewController.ReviewController, jwtSecret string) {
	reviewGroup := app.Group("/api/reviews")

	reviewGroup.Get("/book/:bookId", rc.ListByBook)
	reviewGroup.Post("/", reviewValidator.CreateReview(), middleware.JWTMiddleware(jwtSecret), rc.Create)
	reviewGroup.Put("/:id", reviewValidator.UpdateReview(), middleware.JWTMiddleware(jwtSecret), rc.Update)
	reviewGroup.Delete("/:id", middleware.JWTMiddleware(jwtSecret), rc.Delete)
}
