// Package policy holds the access rules shared by every handler: who may
// see a recipe and who may change an owned entity. The predicates are pure;
// callers pass the acting user's id explicitly.
package policy

import (
	"github.com/google/uuid"

	"github.com/tastebook/backend/internal/models"
)

// CanView reports whether the actor may read the recipe: any authenticated
// user for public recipes, only the owner otherwise.
func CanView(actorID uuid.UUID, recipe *models.Recipe) bool {
	if actorID == uuid.Nil || recipe == nil {
		return false
	}
	return recipe.IsPublic || recipe.UserID == actorID
}

// CanMutate reports whether the actor may edit or delete an entity owned by
// ownerID.
func CanMutate(actorID, ownerID uuid.UUID) bool {
	return actorID != uuid.Nil && actorID == ownerID
}
