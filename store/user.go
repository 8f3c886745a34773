package store

import (
	"errors"
	"fmt"

	"bookreview/middleware"
	"bookreview/models"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: username or email already exists", ErrValidation)
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *UserStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no user with that email", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return &user, nil
}

// ProfileUpdate carries the updatable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Username       *string
	Email          *string
	Bio            *string
	ProfilePicture *string
}

// UpdateProfile applies a partial profile update. Only the profile's owner
// may update it.
func (s *UserStore) UpdateProfile(userID, callerID uint, upd ProfileUpdate) (*models.User, error) {
	ident := middleware.Identity{UserID: callerID}
	if err := middleware.Authorize(ident, middleware.ActionUpdateProfile, middleware.Resource{OwnerID: userID}); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.Username != nil {
		updates["username"] = *upd.Username
	}
	if upd.Email != nil {
		updates["email"] = *upd.Email
	}
	if upd.Bio != nil {
		updates["bio"] = *upd.Bio
	}
	if upd.ProfilePicture != nil {
		updates["profile_picture"] = *upd.ProfilePicture
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, fmt.Errorf("%w: username or email already exists", ErrValidation)
			}
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		// Re-read so the caller gets the persisted state, not the pre-update row
		if err := s.db.First(&user, userID).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
	}
	return &user, nil
}
