package userValidator

import (
	"bookreview/middleware"
	"bookreview/validators"

	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	Username       *string `json:"username" validate:"omitempty,min=3"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Bio            *string `json:"bio" validate:"omitempty,max=500"`
	ProfilePicture *string `json:"profilePicture" validate:"omitempty,url"`
}

// UpdateProfile validates a partial profile update
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errs := validators.Errors(validators.Validate.Struct(reqData)); len(errs) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errs)
		}

		c.Locals("validatedUpdateProfile", reqData)
		return c.Next()
	}
}
