package store

import (
	"testing"

	"bookreview/database"
	"bookreview/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database. The pool is capped at one
// connection so concurrent test goroutines serialize on SQLite instead of
// tripping over its locking.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedBook(t *testing.T, db *gorm.DB, title string) *models.Book {
	t.Helper()
	book := &models.Book{
		Title:         title,
		Author:        "Test Author",
		Description:   "A book used by the test suite.",
		Genre:         "Fiction",
		PublishedYear: 2020,
	}
	require.NoError(t, db.Create(book).Error)
	return book
}

func bookAggregate(t *testing.T, db *gorm.DB, bookID uint) (float64, int) {
	t.Helper()
	var book models.Book
	require.NoError(t, db.First(&book, bookID).Error)
	return book.AverageRating, book.ReviewCount
}
