// Package session carries the resolved caller identity through the request
// context, so handlers never re-query the session themselves.
package session

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userIDKey = "userID"

// SetUserID stores the authenticated user's id in Fiber context locals.
func SetUserID(c *fiber.Ctx, id uuid.UUID) {
	c.Locals(userIDKey, id)
}

// UserID extracts the authenticated user's id from Fiber context locals.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("no authenticated user in context")
	}
	return id, nil
}
