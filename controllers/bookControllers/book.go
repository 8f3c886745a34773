package bookController

import (
	"errors"
	"math"

	"bookreview/middleware"
	"bookreview/models"
	"bookreview/store"
	bookValidator "bookreview/validators/book"

	"github.com/gofiber/fiber/v2"
)

type BookController struct {
	books *store.BookStore
	users *store.UserStore
}

func NewBookController(books *store.BookStore, users *store.UserStore) *BookController {
	return &BookController{books: books, users: users}
}

// Create adds a new book to the catalog (admin only)
func (bc *BookController) Create(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedCreateBook").(*bookValidator.CreateBookRequest)

	user, err := bc.users.GetByID(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	ident := middleware.Identity{UserID: user.ID, IsAdmin: user.IsAdmin}
	if err := middleware.Authorize(ident, middleware.ActionCreateBook, middleware.Resource{}); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin access required!", nil)
	}

	book := models.Book{
		Title:         reqData.Title,
		Author:        reqData.Author,
		Description:   reqData.Description,
		CoverImage:    reqData.CoverImage,
		Genre:         reqData.Genre,
		PublishedYear: reqData.PublishedYear,
		IsFeatured:    reqData.IsFeatured,
	}
	if err := bc.books.Create(&book); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create book!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Book created successfully!", book)
}

// List returns one page of books with optional genre and search filters (public)
func (bc *BookController) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	books, total, err := bc.books.List(page, limit, c.Query("genre"), c.Query("search"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch books!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Books fetched!", fiber.Map{
		"books":       books,
		"currentPage": page,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"totalBooks":  total,
	})
}

// Get returns a single book by id (public)
func (bc *BookController) Get(c *fiber.Ctx) error {
	bookID, err := c.ParamsInt("id")
	if err != nil || bookID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid book id!", nil)
	}

	book, err := bc.books.GetByID(uint(bookID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch book!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book fetched!", book)
}

// Featured returns the featured books, best rated first (public)
func (bc *BookController) Featured(c *fiber.Ctx) error {
	books, err := bc.books.Featured()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch featured books!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Featured books fetched!", books)
}
