package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/policy"
	"github.com/tastebook/backend/internal/types"
)

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListMine returns one page of the actor's own recipes plus the total count.
func (s *RecipeService) ListMine(ctx context.Context, actorID uuid.UUID, page int) ([]models.Recipe, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("user_id = ?", actorID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", actorID).
		Order("created_at, id").
		Scopes(paginate(page)).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListPublic returns one page of public recipes, newest first, optionally
// filtered by a keyword on title and description. No authentication needed.
func (s *RecipeService) ListPublic(ctx context.Context, page int, search string) ([]models.Recipe, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("is_public = ?", true)
		if search != "" {
			like := "%" + strings.ToLower(search) + "%"
			db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
		return db
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at DESC, id").
		Scopes(paginate(page)).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// Create persists a new recipe owned by the actor.
func (s *RecipeService) Create(ctx context.Context, actorID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:       req.Title,
		Description: req.Description,
		Steps:       models.StringList(req.Steps),
		Servings:    req.Servings,
		PrepMinutes: req.PrepMinutes,
		IsPublic:    req.IsPublic,
		UserID:      actorID,
	}

	ingredients, err := s.ownedIngredients(ctx, actorID, req.IngredientIDs)
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = ingredients

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Get loads a recipe the actor is allowed to view, with its ingredients.
// Absence wins over visibility: a missing id is a 404-class error for
// everyone, so private recipes do not leak existence either way.
func (s *RecipeService) Get(ctx context.Context, actorID, id uuid.UUID) (*models.Recipe, error) {
	recipe, err := s.find(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(actorID, recipe) {
		return nil, ErrForbidden
	}
	return recipe, nil
}

// GetOwned loads a recipe for mutation. Only the owner passes.
func (s *RecipeService) GetOwned(ctx context.Context, actorID, id uuid.UUID) (*models.Recipe, error) {
	recipe, err := s.find(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutate(actorID, recipe.UserID) {
		return nil, ErrForbidden
	}
	return recipe, nil
}

// Update replaces a recipe's fields and its ingredient associations. Only
// the owner may update; the owning user is never changed.
func (s *RecipeService) Update(ctx context.Context, actorID, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.find(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutate(actorID, recipe.UserID) {
		return nil, ErrForbidden
	}

	ingredients, err := s.ownedIngredients(ctx, actorID, req.IngredientIDs)
	if err != nil {
		return nil, err
	}

	recipe.Title = req.Title
	recipe.Description = req.Description
	recipe.Steps = models.StringList(req.Steps)
	recipe.Servings = req.Servings
	recipe.PrepMinutes = req.PrepMinutes
	recipe.IsPublic = req.IsPublic

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		return tx.Model(recipe).Association("Ingredients").Replace(ingredients)
	})
	if err != nil {
		return nil, err
	}
	recipe.Ingredients = ingredients
	return recipe, nil
}

// Delete removes a recipe and its marks. Only the owner may delete.
func (s *RecipeService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	recipe, err := s.find(ctx, id, false)
	if err != nil {
		return err
	}
	if !policy.CanMutate(actorID, recipe.UserID) {
		return ErrForbidden
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Mark{}).Error; err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}

// SetImageURL records the stored photo location on an owned recipe.
func (s *RecipeService) SetImageURL(ctx context.Context, actorID, id uuid.UUID, url string) error {
	recipe, err := s.find(ctx, id, false)
	if err != nil {
		return err
	}
	if !policy.CanMutate(actorID, recipe.UserID) {
		return ErrForbidden
	}
	return s.db.WithContext(ctx).Model(recipe).Update("image_url", url).Error
}

func (s *RecipeService) find(ctx context.Context, id uuid.UUID, withIngredients bool) (*models.Recipe, error) {
	query := s.db.WithContext(ctx)
	if withIngredients {
		query = query.Preload("Ingredients")
	}
	var recipe models.Recipe
	if err := query.First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// ownedIngredients resolves ingredient ids against the actor's own
// ingredients. Referencing anyone else's ingredient is rejected.
func (s *RecipeService) ownedIngredients(ctx context.Context, actorID uuid.UUID, ids []string) ([]models.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, ErrUnknownIngredient
		}
		parsed = append(parsed, id)
	}

	var ingredients []models.Ingredient
	err := s.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", parsed, actorID).
		Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	if len(ingredients) != len(parsed) {
		return nil, ErrUnknownIngredient
	}
	return ingredients, nil
}
