package handlers

import (
	"net/http"

	"vendlink/internal/middleware"
	"vendlink/internal/services"
	"vendlink/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	votes *services.VoteService
	cache *utils.Cache
}

func NewVoteHandler(votes *services.VoteService, cache *utils.Cache) *VoteHandler {
	return &VoteHandler{votes: votes, cache: cache}
}

type voteRequest struct {
	ProductID uint  `json:"product_id" binding:"required"`
	Dir       *bool `json:"dir" binding:"required"` // true = up, false = down
}

// Vote toggles the caller's endorsement of a product. Redundant calls come
// back as 409 (already voted) or 404 (nothing to retract).
func (h *VoteHandler) Vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	count, err := h.votes.Vote(middleware.CurrentUser(c), req.ProductID, *req.Dir)
	if err != nil {
		respondError(c, err)
		return
	}

	// Cached reads carry the vote count, so they go stale on every toggle.
	h.cache.Delete(detailKey(req.ProductID))
	h.cache.Delete(defaultListKey)

	message := "successfully added vote"
	if !*req.Dir {
		message = "successfully deleted vote"
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"votes":   count,
	})
}
