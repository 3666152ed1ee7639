package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/karripar/personal-project-s25/internal/domain"
	"github.com/karripar/personal-project-s25/internal/service"
)

const (
	UserContextKey  = "user"
	TokenContextKey = "token"
)

func AuthRequired(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid authorization header format",
			})
		}

		token := parts[1]
		user, err := authService.ValidateAccessToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid or expired token",
			})
		}

		c.Locals(UserContextKey, *user)
		c.Locals(TokenContextKey, token)

		return c.Next()
	}
}

func GetCurrentUser(c *fiber.Ctx) (domain.TokenUser, bool) {
	user, ok := c.Locals(UserContextKey).(domain.TokenUser)
	return user, ok
}

// GetBearerToken returns the raw token so the deletion path can forward
// the caller's identity to the asset store.
func GetBearerToken(c *fiber.Ctx) string {
	token, _ := c.Locals(TokenContextKey).(string)
	return token
}
