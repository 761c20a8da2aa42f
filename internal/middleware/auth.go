package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mvcarvalho/daily-diet-api/internal/config"
	"github.com/mvcarvalho/daily-diet-api/internal/dto"
	"github.com/mvcarvalho/daily-diet-api/internal/services"
	"github.com/mvcarvalho/daily-diet-api/internal/session"
)

// SessionGuard authenticates a request from its session cookie. A missing
// cookie is rejected with 401 before any business logic runs; a cookie that
// maps to no user yields 404. On success the resolved user id is stored in
// context locals for downstream handlers.
func SessionGuard(users *services.UserService, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(cfg.SessionCookieName)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthorized",
			})
		}

		token, err := uuid.Parse(raw)
		if err != nil {
			// A garbled cookie can never map to a user.
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "User not found",
			})
		}

		user, err := users.ByToken(token)
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "User not found",
			})
		}
		if err != nil {
			return err
		}

		session.SetUserID(c, user.ID)
		return c.Next()
	}
}
