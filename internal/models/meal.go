package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal is a logged food entry ("snack" on the wire), owned by exactly one
// user. Date is the ordering key for streak computation; Time is
// informational only.
type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        string    `gorm:"size:10;not null;index" json:"date"`
	Time        string    `gorm:"size:8;not null" json:"time"`
	Diet        bool      `gorm:"not null" json:"diet"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Meal) TableName() string {
	return "snacks"
}
