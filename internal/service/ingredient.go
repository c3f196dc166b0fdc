package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/policy"
	"github.com/tastebook/backend/internal/types"
)

// PageSize is the number of items per page on every listing.
const PageSize = 10

// paginate scopes a query to a 1-indexed page of PageSize rows.
func paginate(page int) func(*gorm.DB) *gorm.DB {
	if page < 1 {
		page = 1
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * PageSize).Limit(PageSize)
	}
}

// IngredientService handles ingredient operations
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// ListMine returns one page of the actor's own ingredients plus the total
// count, ordered by creation time.
func (s *IngredientService) ListMine(ctx context.Context, actorID uuid.UUID, page int) ([]models.Ingredient, int64, error) {
	var total int64
	base := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("user_id = ?", actorID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ingredients []models.Ingredient
	err := s.db.WithContext(ctx).
		Where("user_id = ?", actorID).
		Order("created_at, id").
		Scopes(paginate(page)).
		Find(&ingredients).Error
	if err != nil {
		return nil, 0, err
	}
	return ingredients, total, nil
}

// Create persists a new ingredient owned by the actor.
func (s *IngredientService) Create(ctx context.Context, actorID uuid.UUID, req *types.CreateIngredientRequest) (*models.Ingredient, error) {
	ingredient := models.Ingredient{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		UserID:   actorID,
	}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Get loads an ingredient the actor owns.
func (s *IngredientService) Get(ctx context.Context, actorID, id uuid.UUID) (*models.Ingredient, error) {
	ingredient, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutate(actorID, ingredient.UserID) {
		return nil, ErrForbidden
	}
	return ingredient, nil
}

// Update replaces an ingredient's fields. Only the owner may update; the
// owning user is never changed.
func (s *IngredientService) Update(ctx context.Context, actorID, id uuid.UUID, req *types.UpdateIngredientRequest) (*models.Ingredient, error) {
	ingredient, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutate(actorID, ingredient.UserID) {
		return nil, ErrForbidden
	}

	ingredient.Name = req.Name
	ingredient.Quantity = req.Quantity
	ingredient.Unit = req.Unit
	if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Delete removes an ingredient. Only the owner may delete.
func (s *IngredientService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	ingredient, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanMutate(actorID, ingredient.UserID) {
		return ErrForbidden
	}
	return s.db.WithContext(ctx).Delete(ingredient).Error
}

func (s *IngredientService) find(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}
