package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identified by an opaque session token carried in a
// cookie. There are no credentials: the token itself is the identity, minted
// at registration and never rotated.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Surname      string     `gorm:"size:255;not null" json:"surname"`
	SessionToken *uuid.UUID `gorm:"type:uuid;index" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`

	// Meals are removed with their owner.
	Meals []Meal `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
