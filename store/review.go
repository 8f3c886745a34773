package store

import (
	"errors"
	"fmt"
	"strings"

	"bookreview/middleware"
	"bookreview/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const minReviewLength = 10

// bookRowLock is taken on the book row as the first step of every review
// mutation. Mutations for the same book serialize on it, so the recompute
// that closes the transaction reads a review set no concurrent mutation is
// still changing. Under Postgres READ COMMITTED a waiter's later statements
// see the winner's committed rows. SQLite has no row locks; its driver
// drops the clause and the single-writer model serializes instead.
var bookRowLock = clause.Locking{Strength: "UPDATE"}

func lockBook(tx *gorm.DB, bookID uint) (*models.Book, error) {
	var book models.Book
	if err := tx.Clauses(bookRowLock).First(&book, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, bookID)
		}
		return nil, err
	}
	return &book, nil
}

// ReviewStore owns the review set. Every mutation runs check, write and
// aggregate recomputation inside one transaction, so the caller never sees
// its own write with a stale aggregate and two concurrent creates for the
// same (user, book) pair resolve to one success and one ErrDuplicateReview.
type ReviewStore struct {
	db  *gorm.DB
	agg *Aggregator
}

func NewReviewStore(db *gorm.DB, agg *Aggregator) *ReviewStore {
	return &ReviewStore{db: db, agg: agg}
}

func validateReview(rating int, text string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if len(strings.TrimSpace(text)) < minReviewLength {
		return fmt.Errorf("%w: review text must be at least %d characters", ErrValidation, minReviewLength)
	}
	return nil
}

// Create stores a new review for (userID, bookID) and recomputes the
// book's aggregate before returning.
func (s *ReviewStore) Create(userID, bookID uint, rating int, text string) (*models.Review, error) {
	if err := validateReview(rating, text); err != nil {
		return nil, err
	}

	var review models.Review
	err := s.withRetry(func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			if _, err := lockBook(tx, bookID); err != nil {
				return err
			}

			var existing models.Review
			err := tx.Where("book_id = ? AND user_id = ?", bookID, userID).First(&existing).Error
			if err == nil {
				return ErrDuplicateReview
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			review = models.Review{
				BookID:     bookID,
				UserID:     userID,
				Rating:     rating,
				ReviewText: strings.TrimSpace(text),
			}
			if err := tx.Create(&review).Error; err != nil {
				// Lost the race against a concurrent create for the same
				// (user, book) key; the unique index is the arbiter.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrDuplicateReview
				}
				return err
			}

			return s.agg.recompute(tx, bookID)
		})
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Update replaces the rating and text of an existing review. Only the
// review's author may update it.
func (s *ReviewStore) Update(reviewID, callerID uint, rating int, text string) (*models.Review, error) {
	if err := validateReview(rating, text); err != nil {
		return nil, err
	}

	var review models.Review
	err := s.withRetry(func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&review, reviewID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: review %d", ErrNotFound, reviewID)
				}
				return err
			}

			ident := middleware.Identity{UserID: callerID}
			if err := middleware.Authorize(ident, middleware.ActionUpdateReview, middleware.Resource{OwnerID: review.UserID}); err != nil {
				return err
			}

			if _, err := lockBook(tx, review.BookID); err != nil {
				return err
			}

			review.Rating = rating
			review.ReviewText = strings.TrimSpace(text)
			if err := tx.Save(&review).Error; err != nil {
				return err
			}

			return s.agg.recompute(tx, review.BookID)
		})
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a review and recomputes its book's aggregate. Only the
// review's author may delete it.
func (s *ReviewStore) Delete(reviewID, callerID uint) error {
	return s.withRetry(func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			var review models.Review
			if err := tx.First(&review, reviewID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: review %d", ErrNotFound, reviewID)
				}
				return err
			}

			ident := middleware.Identity{UserID: callerID}
			if err := middleware.Authorize(ident, middleware.ActionDeleteReview, middleware.Resource{OwnerID: review.UserID}); err != nil {
				return err
			}

			if _, err := lockBook(tx, review.BookID); err != nil {
				return err
			}

			if err := tx.Delete(&models.Review{}, review.ID).Error; err != nil {
				return err
			}

			return s.agg.recompute(tx, review.BookID)
		})
	})
}

// ListByBook returns every review for the book, newest first, with the
// reviewer's public fields preloaded. The id tiebreak keeps ordering
// deterministic when creation timestamps collide.
func (s *ReviewStore) ListByBook(bookID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("book_id = ?", bookID).
		Preload("Reviewer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "profile_picture")
		}).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return reviews, nil
}

// withRetry runs fn, re-running it once on a transient storage failure.
// Business failures pass through untouched; a recompute failure keeps its
// distinct kind so callers can tell a stale aggregate from a lost write.
func (s *ReviewStore) withRetry(fn func() error) error {
	err := fn()
	if err == nil || isTerminal(err) {
		return err
	}
	err = fn()
	if err == nil || isTerminal(err) {
		return err
	}
	if errors.Is(err, ErrAggregateStale) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
