package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mvcarvalho/daily-diet-api/internal/dto"
	"github.com/mvcarvalho/daily-diet-api/internal/models"
	"github.com/mvcarvalho/daily-diet-api/internal/services"
	"github.com/mvcarvalho/daily-diet-api/internal/session"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

type MealHandler struct {
	meals *services.MealService
}

func NewMealHandler(meals *services.MealService) *MealHandler {
	return &MealHandler{meals: meals}
}

// parseMealBody validates the shared POST/PUT body: all five fields are
// required, date and time must match their layouts.
func parseMealBody(c *fiber.Ctx) (*dto.MealRequest, error) {
	var req dto.MealRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.New("Invalid request body")
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, errors.New("Name and description are required")
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, errors.New("Date must be formatted as YYYY-MM-DD")
	}
	if _, err := time.Parse(timeLayout, req.Time); err != nil {
		return nil, errors.New("Time must be formatted as HH:MM:SS")
	}
	if req.Diet == nil {
		return nil, errors.New("Diet flag is required")
	}

	return &req, nil
}

// Create handles POST /snack - logs a meal for the authenticated user.
func (h *MealHandler) Create(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	req, err := parseMealBody(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	if _, err := h.meals.Create(userID, req); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusCreated)
}

// List handles GET /snack - returns the user's meals; zero meals is reported
// as 404 per the documented contract.
func (h *MealHandler) List(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	meals, err := h.meals.List(userID)
	if errors.Is(err, services.ErrNoMeals) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "No snacks found for this user",
		})
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.SnackListResponse{Snacks: meals})
}

// Get handles GET /snack/:id - returns one meal scoped to the owner.
func (h *MealHandler) Get(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid snack ID",
		})
	}

	meal, err := h.meals.Get(userID, id)
	if errors.Is(err, services.ErrMealNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "No snacks found for this user",
		})
	}
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.SnackListResponse{Snacks: []models.Meal{*meal}})
}

// Update handles PUT /snack/:id - full overwrite of the editable fields.
func (h *MealHandler) Update(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid snack ID",
		})
	}

	req, err := parseMealBody(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	if err := h.meals.Update(userID, id, req); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Snack not found or unauthorized",
			})
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Delete handles DELETE /snack/:id.
func (h *MealHandler) Delete(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid snack ID",
		})
	}

	if err := h.meals.Delete(userID, id); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Snack not found or unauthorized",
			})
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Metrics handles GET /snack/metrics - aggregate counts plus the best
// consecutive diet streak, computed on demand.
func (h *MealHandler) Metrics(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	result, err := h.meals.Metrics(userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
