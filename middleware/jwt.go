package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Token verification failure kinds. VerifyToken collapses every jwt library
// failure into one of these two so callers can map them without inspecting
// library internals.
var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrCredentialExpired = errors.New("credential expired")
)

const tokenValidity = 24 * time.Hour

// GenerateToken issues a signed JWT for the user, valid for 24 hours
func GenerateToken(userID uint, secret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(tokenValidity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken validates the signature and validity window of a bearer token
// and returns the user ID it encodes. It touches no storage; resolving the
// ID to a user record is the caller's job.
func VerifyToken(tokenString, secret string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return 0, ErrCredentialExpired
		}
		return 0, ErrInvalidCredential
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0, ErrInvalidCredential
	}

	userID, ok := claims["userId"].(float64) // numeric JWT claims decode as float64
	if !ok || userID <= 0 {
		return 0, ErrInvalidCredential
	}

	return uint(userID), nil
}

// JWTMiddleware checks for a valid bearer token and stores the caller's
// user ID in the request context
func JWTMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
		}

		tokenString := authHeader[len("Bearer "):]

		userID, err := VerifyToken(tokenString, secret)
		if err != nil {
			if errors.Is(err, ErrCredentialExpired) {
				return JsonResponse(c, fiber.StatusUnauthorized, false, "Token has expired", nil)
			}
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token", nil)
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
