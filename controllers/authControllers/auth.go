package authController

import (
	"errors"
	"log"

	"bookreview/config"
	"bookreview/middleware"
	"bookreview/models"
	"bookreview/store"
	"bookreview/utils"
	authValidator "bookreview/validators/auth"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	users *store.UserStore
	cfg   *config.Config
}

func NewAuthController(users *store.UserStore, cfg *config.Config) *AuthController {
	return &AuthController{users: users, cfg: cfg}
}

// Register creates a new user account and returns a signed token
func (ac *AuthController) Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*authValidator.RegisterRequest)

	hashedPassword, err := utils.HashPassword(reqData.Password, ac.cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username: reqData.Username,
		Email:    reqData.Email,
		Password: hashedPassword,
	}
	if err := ac.users.Create(&newUser); err != nil {
		if errors.Is(err, store.ErrValidation) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Username or email already exists!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	token, err := middleware.GenerateToken(newUser.ID, ac.cfg.JWTKey)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully!", fiber.Map{
		"token": token,
		"user":  newUser,
	})
}

// Login authenticates by email and password and returns a signed token
func (ac *AuthController) Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)

	user, err := ac.users.GetByEmail(reqData.Email)
	if err != nil || !utils.CheckPassword(user.Password, reqData.Password) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateToken(user.ID, ac.cfg.JWTKey)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
