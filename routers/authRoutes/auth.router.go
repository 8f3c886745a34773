package authRoutes

import (
	authController "bookreview/controllers/authControllers"
	authValidator "bookreview/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ac *authController.AuthController) {
	userGroup := app.Group("/api/users")

	userGroup.Post("/register", authValidator.Register(), ac.Register)
	userGroup.Post("/login", authValidator.Login(), ac.Login)
}
