package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastebook/backend/internal/middleware"
	"github.com/tastebook/backend/internal/service"
	"github.com/tastebook/backend/internal/types"
)

// maxImageBytes caps recipe photo uploads at 5 MiB.
const maxImageBytes = 5 << 20

type RecipeHandler struct {
	recipeService *service.RecipeService
	markService   *service.MarkService
	imageService  *service.ImageService
}

func NewRecipeHandler(recipeService *service.RecipeService, markService *service.MarkService, imageService *service.ImageService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		markService:   markService,
		imageService:  imageService,
	}
}

// RegisterRoutes registers the authenticated recipe routes. The community
// listing is public and registered separately via RegisterPublicRoutes.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/:id/mark", h.RateRecipe)
		recipes.POST("/:id/image", h.UploadRecipeImage)
	}
}

// RegisterPublicRoutes registers the routes that need no authentication.
func (h *RecipeHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/recipes/community", h.ListPublicRecipes)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	page := pageParam(c)
	recipes, total, err := h.recipeService.ListMine(c.Request.Context(), actorID, page)
	if err != nil {
		respondError(c, err, "failed to fetch recipes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes":   recipes,
		"page":      page,
		"page_size": service.PageSize,
		"total":     total,
	})
}

func (h *RecipeHandler) ListPublicRecipes(c *gin.Context) {
	page := pageParam(c)
	recipes, total, err := h.recipeService.ListPublic(c.Request.Context(), page, c.Query("q"))
	if err != nil {
		respondError(c, err, "failed to fetch recipes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes":   recipes,
		"page":      page,
		"page_size": service.PageSize,
		"total":     total,
	})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, err, "failed to create recipe")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "recipe created successfully",
		"recipe":  recipe,
	})
}

// GetRecipe renders a recipe for anyone allowed to view it, together with
// its average score and the viewer's own mark.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), actorID, id)
	if err != nil {
		respondError(c, err, "failed to fetch recipe")
		return
	}

	avg, count, err := h.markService.Average(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to fetch marks")
		return
	}
	viewerMark, err := h.markService.ForViewer(c.Request.Context(), actorID, id)
	if err != nil {
		respondError(c, err, "failed to fetch marks")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe":        recipe,
		"average_score": avg,
		"mark_count":    count,
		"viewer_mark":   viewerMark,
	})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), actorID, id, &req)
	if err != nil {
		respondError(c, err, "failed to update recipe")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "recipe updated successfully",
		"recipe":  recipe,
	})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), actorID, id); err != nil {
		respondError(c, err, "failed to delete recipe")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "recipe deleted successfully",
		"id":      id,
	})
}

// RateRecipe records the actor's score for a recipe, replacing any
// earlier score they gave it.
func (h *RecipeHandler) RateRecipe(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mark, err := h.markService.Rate(c.Request.Context(), actorID, id, req.Score)
	if err != nil {
		respondError(c, err, "failed to record mark")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "mark recorded successfully",
		"mark":    mark,
	})
}

// UploadRecipeImage stores a photo for an owned recipe and records its URL.
func (h *RecipeHandler) UploadRecipeImage(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if !h.imageService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo storage is not configured"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	// Ownership first, so we never store photos for foreign recipes.
	if _, err := h.recipeService.GetOwned(c.Request.Context(), actorID, id); err != nil {
		respondError(c, err, "failed to fetch recipe")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	if len(data) > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.imageService.UploadRecipeImage(c.Request.Context(), id, data, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	if err := h.recipeService.SetImageURL(c.Request.Context(), actorID, id, url); err != nil {
		respondError(c, err, "failed to update recipe")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "image uploaded successfully",
		"image_url": url,
	})
}
