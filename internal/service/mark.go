package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/policy"
)

// MarkService handles recipe ratings.
type MarkService struct {
	db *gorm.DB
}

func NewMarkService(db *gorm.DB) *MarkService {
	return &MarkService{db: db}
}

// Rate records the actor's score for a recipe, creating the mark on first
// submission and overwriting the score on every later one. The write goes
// through ON CONFLICT on the (user_id, recipe_id) unique index, so two
// concurrent submissions still end up as a single row.
func (s *MarkService) Rate(ctx context.Context, actorID, recipeID uuid.UUID, score int) (*models.Mark, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.CanView(actorID, &recipe) {
		return nil, ErrForbidden
	}

	mark := models.Mark{
		UserID:   actorID,
		RecipeID: recipeID,
		Score:    score,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(&mark).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the surviving row, not the candidate:
	// on conflict the insert's generated id is discarded.
	var stored models.Mark
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", actorID, recipeID).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// ForViewer returns the actor's own mark for a recipe, or nil when the
// recipe has not been rated yet.
func (s *MarkService) ForViewer(ctx context.Context, actorID, recipeID uuid.UUID) (*models.Mark, error) {
	var mark models.Mark
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", actorID, recipeID).
		First(&mark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mark, nil
}

// Average returns the mean score for a recipe and the number of marks.
func (s *MarkService) Average(ctx context.Context, recipeID uuid.UUID) (float64, int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Mark{}).Where("recipe_id = ?", recipeID).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}

	var avg float64
	if err := s.db.WithContext(ctx).Model(&models.Mark{}).Where("recipe_id = ?", recipeID).
		Select("AVG(score)").Scan(&avg).Error; err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}
