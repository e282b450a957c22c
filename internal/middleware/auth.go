package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meditrip/backend/internal/auth"
	"github.com/meditrip/backend/internal/config"
	"github.com/meditrip/backend/internal/rbac"
	"go.uber.org/zap"
)

const (
	CtxProfileID = "profile_id"
	CtxUserType  = "user_type"
)

func AuthMiddleware(cfg *config.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(CtxProfileID, claims.ProfileID)
		c.Locals(CtxUserType, claims.UserType)

		return c.Next()
	}
}

func GetProfileID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(CtxProfileID).(uuid.UUID)
	return id
}

func GetUserType(c *fiber.Ctx) string {
	t, _ := c.Locals(CtxUserType).(string)
	return t
}

// RequirePermission gates a route on the caller's role permissions.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rbac.HasPermission(GetUserType(c), permission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
		}
		return c.Next()
	}
}
