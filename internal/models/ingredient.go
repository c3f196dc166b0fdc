package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is owned by exactly one user; ownership never changes after
// creation.
type Ingredient struct {
	ID        uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Quantity  float64        `gorm:"type:float" json:"quantity"`
	Unit      string         `gorm:"size:20" json:"unit"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
