package userProfileController

import (
	"errors"

	"bookreview/middleware"
	"bookreview/store"
	userValidator "bookreview/validators/user"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	users *store.UserStore
}

func NewUserController(users *store.UserStore) *UserController {
	return &UserController{users: users}
}

// GetProfile returns a user's public profile (public)
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	user, err := uc.users.GetByID(uint(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User profile fetched!", user)
}

// UpdateProfile applies a partial update to the caller's own profile
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	callerID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedUpdateProfile").(*userValidator.UpdateProfileRequest)

	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	user, err := uc.users.UpdateProfile(uint(userID), callerID, store.ProfileUpdate{
		Username:       reqData.Username,
		Email:          reqData.Email,
		Bio:            reqData.Bio,
		ProfilePicture: reqData.ProfilePicture,
	})
	if err != nil {
		switch {
		case errors.Is(err, middleware.ErrNotOwner):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to update this profile!", nil)
		case errors.Is(err, store.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		case errors.Is(err, store.ErrValidation):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Username or email already exists!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user profile!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User profile updated!", user)
}
