package handlers

import (
	"net/http"

	"vendlink/internal/middleware"
	"vendlink/internal/services"
	"vendlink/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users    *services.UserService
	products *services.ProductService
	cache    *utils.Cache
}

func NewUserHandler(users *services.UserService, products *services.ProductService, cache *utils.Cache) *UserHandler {
	return &UserHandler{users: users, products: products, cache: cache}
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.users.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserOut(*user))
}

// ListProducts returns the products owned by a user.
func (h *UserHandler) ListProducts(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := h.users.Get(id); err != nil {
		respondError(c, err)
		return
	}

	products, err := h.products.ListByOwner(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductOuts(products))
}

// List returns every account. Admin only.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(middleware.CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type userPatchRequest struct {
	Approved *bool `json:"approved" binding:"required"`
	Admin    *bool `json:"admin" binding:"required"`
}

// Patch updates an account's capability flags. Admin only.
func (h *UserHandler) Patch(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req userPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.users.UpdateFlags(middleware.CurrentUser(c), id, *req.Approved, *req.Admin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, user)
}

// Delete removes an account and, via cascade, its products and votes.
// Admin only.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.users.Delete(middleware.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}

	// The cascade removes the user's products and votes, and the vote
	// cascade shifts counts on products they voted on. Every cached product
	// entry is suspect, so drop them all.
	h.cache.Purge()
	c.Status(http.StatusNoContent)
}
