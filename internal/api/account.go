package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebook/backend/internal/middleware"
	"github.com/tastebook/backend/internal/service"
	"github.com/tastebook/backend/internal/types"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// RegisterRoutes registers account routes. The account is addressed by the
// token, never by an id in the path, so only the owner can ever reach it.
func (h *AccountHandler) RegisterRoutes(router *gin.RouterGroup) {
	account := router.Group("/account")
	{
		account.GET("", h.GetAccount)
		account.PUT("", h.UpdateAccount)
		account.PUT("/password", h.UpdatePassword)
	}
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := h.accountService.Get(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, err, "failed to fetch account")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accountService.UpdateProfile(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, err, "failed to update account")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "account updated successfully",
		"user":    user,
	})
}

func (h *AccountHandler) UpdatePassword(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accountService.UpdatePassword(c.Request.Context(), actorID, &req); err != nil {
		respondError(c, err, "failed to update password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated successfully"})
}
