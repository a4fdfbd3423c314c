package middleware

import (
	"strings"

	"task-scheduler/internal/token"
	"task-scheduler/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequireToken rejects requests without a valid bearer token and puts the
// decoded claims into Locals for the handler.
func RequireToken(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" {
			logger.SecurityLogger.Warn("Missing bearer token",
				zap.String("path", c.Path()),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Access token not provided",
			})
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			logger.SecurityLogger.Warn("Token verification failed",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("email", claims.Email)
		return c.Next()
	}
}
