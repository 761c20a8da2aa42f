package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvcarvalho/daily-diet-api/internal/dto"
	"github.com/mvcarvalho/daily-diet-api/internal/models"
)

func TestUserCreateAndResolve(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	token := uuid.New()
	created, err := svc.Create("Maria", "Silva", token)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	resolved, err := svc.ByToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)
	assert.Equal(t, "Maria", resolved.Name)
	assert.Equal(t, "Silva", resolved.Surname)
}

func TestUserByTokenUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.ByToken(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserSharedTokenResolvesOldest(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	token := uuid.New()
	first, err := svc.Create("First", "User", token)
	require.NoError(t, err)
	_, err = svc.Create("Second", "User", token)
	require.NoError(t, err)

	// Push the first registration clearly into the past.
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	resolved, err := svc.ByToken(token)
	require.NoError(t, err)
	assert.Equal(t, first.ID, resolved.ID)
}

func TestUserList(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Create("A", "One", uuid.New())
	require.NoError(t, err)
	_, err = svc.Create("B", "Two", uuid.New())
	require.NoError(t, err)

	users, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserDeleteCascadesMeals(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	meals := NewMealService(db)

	user, err := users.Create("Maria", "Silva", uuid.New())
	require.NoError(t, err)

	_, err = meals.Create(user.ID, &dto.MealRequest{
		Name:        "Lunch",
		Description: "Salad",
		Date:        "2024-10-01",
		Time:        "12:00:00",
		Diet:        boolPtr(true),
	})
	require.NoError(t, err)

	require.NoError(t, users.Delete(user.ID))

	var userCount, mealCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Meal{}).Count(&mealCount).Error)
	assert.Zero(t, userCount)
	assert.Zero(t, mealCount)
}

func TestUserDeleteUnknownIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	assert.NoError(t, svc.Delete(uuid.New()))
}
