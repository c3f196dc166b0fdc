package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/service"
	"github.com/tastebook/backend/internal/testutil"
	"github.com/tastebook/backend/internal/types"
)

func TestRateUpsert(t *testing.T) {
	db := testutil.NewDB(t)
	recipes := service.NewRecipeService(db)
	marks := service.NewMarkService(db)
	ctx := context.Background()
	owner, _ := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")
	rater, _ := testutil.CreateUserAndToken(t, db, "Bob", "bob@example.com")

	recipe, err := recipes.Create(ctx, owner, &types.CreateRecipeRequest{
		Title: "Soup", Steps: []string{"Boil"}, IsPublic: true,
	})
	require.NoError(t, err)

	first, err := marks.Rate(ctx, rater, recipe.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, first.Score)

	second, err := marks.Rate(ctx, rater, recipe.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Score)
	// Same identity, not a second row.
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Mark{}).
		Where("user_id = ? AND recipe_id = ?", rater, recipe.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRateRequiresVisibility(t *testing.T) {
	db := testutil.NewDB(t)
	recipes := service.NewRecipeService(db)
	marks := service.NewMarkService(db)
	ctx := context.Background()
	owner, _ := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")
	other, _ := testutil.CreateUserAndToken(t, db, "Bob", "bob@example.com")

	private, err := recipes.Create(ctx, owner, &types.CreateRecipeRequest{
		Title: "Secret", Steps: []string{"Shh"}, IsPublic: false,
	})
	require.NoError(t, err)

	_, err = marks.Rate(ctx, other, private.ID, 3)
	assert.ErrorIs(t, err, service.ErrForbidden)

	// Owners may rate their own private recipes.
	_, err = marks.Rate(ctx, owner, private.ID, 3)
	require.NoError(t, err)
}

func TestRateUnknownRecipe(t *testing.T) {
	db := testutil.NewDB(t)
	marks := service.NewMarkService(db)
	rater, _ := testutil.CreateUserAndToken(t, db, "Bob", "bob@example.com")

	_, err := marks.Rate(context.Background(), rater, uuid.New(), 3)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestMarksPerUserAreIndependent(t *testing.T) {
	db := testutil.NewDB(t)
	recipes := service.NewRecipeService(db)
	marks := service.NewMarkService(db)
	ctx := context.Background()
	owner, _ := testutil.CreateUserAndToken(t, db, "Alice", "alice@example.com")
	bob, _ := testutil.CreateUserAndToken(t, db, "Bob", "bob@example.com")
	carol, _ := testutil.CreateUserAndToken(t, db, "Carol", "carol@example.com")

	recipe, err := recipes.Create(ctx, owner, &types.CreateRecipeRequest{
		Title: "Soup", Steps: []string{"Boil"}, IsPublic: true,
	})
	require.NoError(t, err)

	_, err = marks.Rate(ctx, bob, recipe.ID, 2)
	require.NoError(t, err)
	_, err = marks.Rate(ctx, carol, recipe.ID, 5)
	require.NoError(t, err)

	avg, count, err := marks.Average(ctx, recipe.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.InDelta(t, 3.5, avg, 0.001)

	bobMark, err := marks.ForViewer(ctx, bob, recipe.ID)
	require.NoError(t, err)
	require.NotNil(t, bobMark)
	assert.Equal(t, 2, bobMark.Score)

	ownerMark, err := marks.ForViewer(ctx, owner, recipe.ID)
	require.NoError(t, err)
	assert.Nil(t, ownerMark)
}
