package userRoutes

import (
	userProfileController "bookreview/controllers/userControllers"
	"bookreview/middleware"
	userValidator "bookreview/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, uc *userProfileController.UserController, jwtSecret string) {
	userGroup := app.Group("/api/users")

	userGroup.Get("/:id", uc.GetProfile)
	userGroup.Put("/:id", userValidator.UpdateProfile(), middleware.JWTMiddleware(jwtSecret), uc.UpdateProfile)
}
