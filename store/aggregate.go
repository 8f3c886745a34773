package store

import (
	"fmt"

	"bookreview/models"

	"gorm.io/gorm"
)

// Aggregator derives a book's {averageRating, reviewCount} from its review
// set and writes both fields onto the book record. The review store invokes
// it inside the same transaction as every review mutation, so no caller can
// observe a review write whose aggregate has not landed yet.
type Aggregator struct {
	db *gorm.DB
}

func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// Recompute recalculates the aggregate for bookID from scratch. Idempotent:
// with no intervening review mutation, a second call is a no-op. An empty
// review set yields {0, 0}, never an error.
func (a *Aggregator) Recompute(bookID uint) error {
	return a.recompute(a.db, bookID)
}

func (a *Aggregator) recompute(tx *gorm.DB, bookID uint) error {
	var stats struct {
		AverageRating float64
		ReviewCount   int
	}

	err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS review_count").
		Where("book_id = ?", bookID).
		Scan(&stats).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAggregateStale, err)
	}

	res := tx.Model(&models.Book{}).
		Where("id = ?", bookID).
		Updates(map[string]interface{}{
			"average_rating": stats.AverageRating,
			"review_count":   stats.ReviewCount,
		})
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrAggregateStale, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: book %d", ErrNotFound, bookID)
	}
	return nil
}
