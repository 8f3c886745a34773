package reviewValidator

import (
	"strings"

	"bookreview/middleware"
	"bookreview/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateReviewRequest struct {
	Book       uint   `json:"book" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"reviewText" validate:"required,min=10"`
}

type UpdateReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"reviewText" validate:"required,min=10"`
}

// CreateReview validates a review submission
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.ReviewText = strings.TrimSpace(reqData.ReviewText)
		if errs := validators.Errors(validators.Validate.Struct(reqData)); len(errs) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errs)
		}

		c.Locals("validatedCreateReview", reqData)
		return c.Next()
	}
}

// UpdateReview validates a review edit
func UpdateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.ReviewText = strings.TrimSpace(reqData.ReviewText)
		if errs := validators.Errors(validators.Validate.Struct(reqData)); len(errs) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errs)
		}

		c.Locals("validatedUpdateReview", reqData)
		return c.Next()
	}
}
