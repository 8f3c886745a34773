package reviewController

import (
	"errors"

	"bookreview/middleware"
	"bookreview/store"
	reviewValidator "bookreview/validators/review"

	"github.com/gofiber/fiber/v2"
)

type ReviewController struct {
	reviews *store.ReviewStore
}

func NewReviewController(reviews *store.ReviewStore) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// Create submits a new review for a book
func (rc *ReviewController) Create(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedCreateReview").(*reviewValidator.CreateReviewRequest)

	review, err := rc.reviews.Create(userID, reqData.Book, reqData.Rating, reqData.ReviewText)
	if err != nil {
		return reviewError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

// Update edits the caller's review
func (rc *ReviewController) Update(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedUpdateReview").(*reviewValidator.UpdateReviewRequest)

	reviewID, err := c.ParamsInt("id")
	if err != nil || reviewID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review id!", nil)
	}

	review, err := rc.reviews.Update(uint(reviewID), userID, reqData.Rating, reqData.ReviewText)
	if err != nil {
		return reviewError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully!", review)
}

// Delete removes the caller's review
func (rc *ReviewController) Delete(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reviewID, err := c.ParamsInt("id")
	if err != nil || reviewID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review id!", nil)
	}

	if err := rc.reviews.Delete(uint(reviewID), userID); err != nil {
		return reviewError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully!", nil)
}

// ListByBook returns all reviews for a book, newest first (public)
func (rc *ReviewController) ListByBook(c *fiber.Ctx) error {
	bookID, err := c.ParamsInt("bookId")
	if err != nil || bookID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid book id!", nil)
	}

	reviews, err := rc.reviews.ListByBook(uint(bookID))
	if err != nil {
		return reviewError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", reviews)
}

func reviewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrDuplicateReview):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You have already reviewed this book!", nil)
	case errors.Is(err, store.ErrValidation):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, store.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
	case errors.Is(err, middleware.ErrNotOwner):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to modify this review!", nil)
	case errors.Is(err, store.ErrAggregateStale):
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update book rating!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process review!", nil)
	}
}
