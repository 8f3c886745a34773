package store

import (
	"errors"
	"fmt"
	"strings"

	"bookreview/models"

	"gorm.io/gorm"
)

// BookStore owns book records. The derived fields averageRating and
// reviewCount are written only by the Aggregator; Create zeroes whatever a
// caller may have put there.
type BookStore struct {
	db *gorm.DB
}

func NewBookStore(db *gorm.DB) *BookStore {
	return &BookStore{db: db}
}

func (s *BookStore) Create(book *models.Book) error {
	book.AverageRating = 0
	book.ReviewCount = 0
	if err := s.db.Create(book).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *BookStore) GetByID(id uint) (*models.Book, error) {
	var book models.Book
	if err := s.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return &book, nil
}

// List returns one page of books, newest first, optionally filtered by
// genre and by a case-insensitive title/author search, plus the total count
// matching the filters.
func (s *BookStore) List(page, limit int, genre, search string) ([]models.Book, int64, error) {
	query := s.db.Model(&models.Book{})

	if genre != "" {
		query = query.Where("genre = ?", genre)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	offset := (page - 1) * limit
	var books []models.Book
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&books).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return books, total, nil
}

// Featured returns up to six featured books, best rated first.
func (s *BookStore) Featured() ([]models.Book, error) {
	var books []models.Book
	err := s.db.Where("is_featured = ?", true).
		Order("average_rating DESC").
		Limit(6).
		Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return books, nil
}
