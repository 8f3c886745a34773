package models

import "time"

// Review keys uniquely on (book_id, user_id): a user holds at most one
// review per book. The composite unique index makes the check-then-insert
// in the store race-safe. Reviews are hard-deleted (no gorm.DeletedAt) so a
// removed review releases the uniqueness key and drops out of the book's
// aggregate immediately.
type Review struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	BookID     uint      `gorm:"not null;uniqueIndex:idx_book_user" json:"book"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_book_user" json:"user"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	ReviewText string    `gorm:"type:text;not null" json:"reviewText"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Association - populated on list endpoints via Preload
	Reviewer User `gorm:"foreignKey:UserID" json:"reviewer,omitempty"`
}
