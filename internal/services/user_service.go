package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mvcarvalho/daily-diet-api/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create registers a user bound to the given session token. Callers that
// already hold a token attach the new user to it; otherwise they mint one
// first and set the cookie. Tokens are never rotated.
func (s *UserService) Create(name, surname string, token uuid.UUID) (*models.User, error) {
	user := models.User{
		ID:           uuid.New(),
		Name:         name,
		Surname:      surname,
		SessionToken: &token,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// ByToken resolves a session token to its user. When several users share a
// token the oldest registration wins.
func (s *UserService) ByToken(token uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.Where("session_token = ?", token).Order("created_at asc").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session token: %w", err)
	}
	return &user, nil
}

// List returns every user, system-wide.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes a user and all of their meals in one transaction. Deleting
// an unknown id is a no-op.
func (s *UserService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Meal{}).Error; err != nil {
			return fmt.Errorf("failed to delete user meals: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.User{}).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}
