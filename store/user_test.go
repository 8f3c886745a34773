package store

import (
	"testing"

	"bookreview/middleware"
	"bookreview/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)

	require.NoError(t, users.Create(&models.User{Username: "alice", Email: "alice@example.com", Password: "x"}))

	err := users.Create(&models.User{Username: "alice", Email: "other@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	err = users.Create(&models.User{Username: "other", Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)
	user := seedUser(t, db, "alice")

	bio := "Reads a lot of fiction."
	updated, err := users.UpdateProfile(user.ID, user.ID, ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, "alice", updated.Username) // untouched fields survive
}

func TestUpdateProfileNotOwner(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)
	owner := seedUser(t, db, "alice")
	other := seedUser(t, db, "mallory")

	bio := "Definitely alice."
	_, err := users.UpdateProfile(owner.ID, other.ID, ProfileUpdate{Bio: &bio})
	assert.ErrorIs(t, err, middleware.ErrNotOwner)

	stored, err := users.GetByID(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Bio)
}

func TestGetByEmailMissing(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)

	_, err := users.GetByEmail("ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
