package bookValidator

import (
	"strings"
	"time"

	"bookreview/middleware"
	"bookreview/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateBookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Description   string `json:"description" validate:"required"`
	CoverImage    string `json:"coverImage" validate:"required,url"`
	Genre         string `json:"genre" validate:"required"`
	PublishedYear int    `json:"publishedYear" validate:"required,min=1000"`
	IsFeatured    bool   `json:"isFeatured"`
}

// CreateBook validates a new book submission
func CreateBook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateBookRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Author = strings.TrimSpace(reqData.Author)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Genre = strings.TrimSpace(reqData.Genre)

		errs := validators.Errors(validators.Validate.Struct(reqData))
		if reqData.PublishedYear > time.Now().Year() {
			if errs == nil {
				errs = make(map[string]string)
			}
			errs["publishedYear"] = "Published year cannot be in the future!"
		}
		if len(errs) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errs)
		}

		c.Locals("validatedCreateBook", reqData)
		return c.Next()
	}
}
