package store

import (
	"errors"
	"fmt"
	"testing"

	"bookreview/middleware"
	"bookreview/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetryTransientThenSuccess(t *testing.T) {
	db := newTestDB(t)
	reviews := newReviewStore(db)

	calls := 0
	err := reviews.withRetry(func() error {
		calls++
		if calls == 1 {
			return errors.New("connection reset by peer")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetryTwoTransientFailures(t *testing.T) {
	db := newTestDB(t)
	reviews := newReviewStore(db)

	calls := 0
	err := reviews.withRetry(func() error {
		calls++
		return errors.New("connection reset by peer")
	})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Equal(t, 2, calls)
}

func TestWithRetryTerminalErrorsNotRetried(t *testing.T) {
	db := newTestDB(t)
	reviews := newReviewStore(db)

	for _, terminal := range []error{
		ErrValidation,
		ErrNotFound,
		ErrDuplicateReview,
		middleware.ErrNotOwner,
	} {
		calls := 0
		err := reviews.withRetry(func() error {
			calls++
			return terminal
		})
		assert.ErrorIs(t, err, terminal)
		assert.Equal(t, 1, calls)
	}
}

func TestWithRetryKeepsAggregateStaleKind(t *testing.T) {
	db := newTestDB(t)
	reviews := newReviewStore(db)

	calls := 0
	err := reviews.withRetry(func() error {
		calls++
		return fmt.Errorf("%w: update books failed", ErrAggregateStale)
	})
	assert.ErrorIs(t, err, ErrAggregateStale)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
	assert.Equal(t, 2, calls)
}

// A recompute that cannot land must fail the whole mutation with its own
// kind, never a silent success over a stale aggregate. The trigger makes
// every write to books abort.
func TestRecomputeFailureRollsBackReviewWrite(t *testing.T) {
	db := newTestDB(t)
	reviews := newReviewStore(db)

	user := seedUser(t, db, "alice")
	book := seedBook(t, db, "The Test Book")

	require.NoError(t, db.Exec(`
		CREATE TRIGGER books_update_fault BEFORE UPDATE ON books
		BEGIN SELECT RAISE(ABORT, 'storage fault'); END
	`).Error)

	_, err := reviews.Create(user.ID, book.ID, 4, "A review that cannot settle.")
	assert.ErrorIs(t, err, ErrAggregateStale)

	// The review write rolled back with the failed recompute
	var n int64
	require.NoError(t, db.Model(&models.Review{}).Where("book_id = ?", book.ID).Count(&n).Error)
	assert.Zero(t, n)

	avg, count := bookAggregate(t, db, book.ID)
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, count)
}
