package authValidator

import (
	"strings"

	"bookreview/middleware"
	"bookreview/validators"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register validates a new user registration
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Username = strings.TrimSpace(reqData.Username)
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		if errs := validators.Errors(validators.Validate.Struct(reqData)); len(errs) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errs)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validates a login request
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		if errs := validators.Errors(validators.Validate.Struct(reqData)); len(errs) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errs)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
