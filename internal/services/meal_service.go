package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvcarvalho/daily-diet-api/internal/dto"
	"github.com/mvcarvalho/daily-diet-api/internal/models"
	"github.com/mvcarvalho/daily-diet-api/internal/streak"
)

var (
	ErrMealNotFound = errors.New("meal not found")
	ErrNoMeals      = errors.New("no meals recorded")
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// Create inserts a meal owned by ownerID.
func (s *MealService) Create(ownerID uuid.UUID, req *dto.MealRequest) (*models.Meal, error) {
	meal := models.Meal{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Diet:        *req.Diet,
		UserID:      ownerID,
	}

	if err := s.db.Create(&meal).Error; err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}

	return &meal, nil
}

// List returns every meal owned by ownerID. An empty result is reported as
// ErrNoMeals: the contract treats a user with zero meals as NotFound.
func (s *MealService) List(ownerID uuid.UUID) ([]models.Meal, error) {
	var meals []models.Meal
	if err := s.db.Where("user_id = ?", ownerID).Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	if len(meals) == 0 {
		return nil, ErrNoMeals
	}
	return meals, nil
}

// Get returns the meal only if it exists under ownerID's ownership.
func (s *MealService) Get(ownerID, id uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.Where("id = ? AND user_id = ?", id, ownerID).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meal: %w", err)
	}
	return &meal, nil
}

// Update overwrites name, description, date, time and diet in place. ID,
// owner and creation timestamp never change.
func (s *MealService) Update(ownerID, id uuid.UUID, req *dto.MealRequest) error {
	if _, err := s.Get(ownerID, id); err != nil {
		return err
	}

	err := s.db.Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"date":        req.Date,
			"time":        req.Time,
			"diet":        *req.Diet,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}
	return nil
}

// Delete permanently removes the meal if owned by ownerID.
func (s *MealService) Delete(ownerID, id uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Meal{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete meal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// Metrics fetches the user's meals ordered by date ascending and hands them
// to the streak analyzer. A user with zero meals gets all-zero metrics, not
// an error.
func (s *MealService) Metrics(ownerID uuid.UUID) (streak.Result, error) {
	var meals []models.Meal
	if err := s.db.Where("user_id = ?", ownerID).Order("date asc").Find(&meals).Error; err != nil {
		return streak.Result{}, fmt.Errorf("failed to fetch meals for metrics: %w", err)
	}
	return streak.Compute(meals), nil
}
