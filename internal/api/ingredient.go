package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastebook/backend/internal/middleware"
	"github.com/tastebook/backend/internal/service"
	"github.com/tastebook/backend/internal/types"
)

type IngredientHandler struct {
	ingredientService *service.IngredientService
}

func NewIngredientHandler(ingredientService *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// RegisterRoutes registers the ingredient routes. The group is expected to
// carry the auth middleware already.
func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.POST("", h.CreateIngredient)
		ingredients.GET("/:id", h.GetIngredient)
		ingredients.PUT("/:id", h.UpdateIngredient)
		ingredients.DELETE("/:id", h.DeleteIngredient)
	}
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	page := pageParam(c)
	ingredients, total, err := h.ingredientService.ListMine(c.Request.Context(), actorID, page)
	if err != nil {
		respondError(c, err, "failed to fetch ingredients")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredients": ingredients,
		"page":        page,
		"page_size":   service.PageSize,
		"total":       total,
	})
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredientService.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, err, "failed to create ingredient")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "ingredient created successfully",
		"ingredient": ingredient,
	})
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	ingredient, err := h.ingredientService.Get(c.Request.Context(), actorID, id)
	if err != nil {
		respondError(c, err, "failed to fetch ingredient")
		return
	}

	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) UpdateIngredient(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	var req types.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := h.ingredientService.Update(c.Request.Context(), actorID, id, &req)
	if err != nil {
		respondError(c, err, "failed to update ingredient")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "ingredient updated successfully",
		"ingredient": ingredient,
	})
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	if err := h.ingredientService.Delete(c.Request.Context(), actorID, id); err != nil {
		respondError(c, err, "failed to delete ingredient")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "ingredient deleted successfully",
		"id":      id,
	})
}
