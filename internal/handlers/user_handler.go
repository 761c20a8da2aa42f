package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mvcarvalho/daily-diet-api/internal/config"
	"github.com/mvcarvalho/daily-diet-api/internal/dto"
	"github.com/mvcarvalho/daily-diet-api/internal/services"
)

type UserHandler struct {
	users *services.UserService
	cfg   *config.Config
}

func NewUserHandler(users *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{users: users, cfg: cfg}
}

// Create handles POST /user - registers a user. A caller without a session
// cookie gets a freshly minted token set on the response; a caller that
// already has one gets the new user attached to it.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Surname) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Name and surname are required",
		})
	}

	token, err := uuid.Parse(c.Cookies(h.cfg.SessionCookieName))
	if err != nil {
		token = uuid.New()
		c.Cookie(&fiber.Cookie{
			Name:     h.cfg.SessionCookieName,
			Value:    token.String(),
			Path:     "/",
			MaxAge:   int(h.cfg.SessionMaxAge / time.Second),
			HTTPOnly: true,
		})
	}

	if _, err := h.users.Create(req.Name, req.Surname, token); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusCreated)
}

// List handles GET /user - returns every user, system-wide.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List()
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// Delete handles DELETE /user/:id - removes a user and, through the cascade,
// all of their meals.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid user ID",
		})
	}

	if err := h.users.Delete(id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
