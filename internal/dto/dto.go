package dto

import "github.com/mvcarvalho/daily-diet-api/internal/models"

type CreateUserRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// MealRequest is the body of both POST /snack and PUT /snack/:id. Diet is a
// pointer so a missing flag can be told apart from an explicit false.
type MealRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Diet        *bool  `json:"diet"`
}

type SnackListResponse struct {
	Snacks []models.Meal `json:"snacks"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
