package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mark is a single user's rating of a single recipe. The composite unique
// index backs the upsert write: concurrent submissions for the same
// (user, recipe) pair serialize in the database instead of racing.
type Mark struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_marks_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_marks_user_recipe" json:"recipe_id"`
	Score     int       `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`
}

func (Mark) TableName() string {
	return "marks"
}

func (m *Mark) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
