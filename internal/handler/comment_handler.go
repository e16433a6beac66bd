package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
	"github.com/Kashikuroni/YP-Blogicum/internal/middleware"
	"github.com/Kashikuroni/YP-Blogicum/internal/service"
)

// CommentHandler handles comment mutations.
type CommentHandler struct {
	mutation service.MutationServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(mutation service.MutationServiceInterface) *CommentHandler {
	return &CommentHandler{mutation: mutation}
}

// CreateComment handles POST /api/v1/posts/:id/comments.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var input domain.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.mutation.CreateComment(c.Request.Context(), c.Param("id"), middleware.GetViewer(c), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// UpdateComment handles PUT /api/v1/posts/:id/comments/:commentID.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var input domain.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.mutation.UpdateComment(c.Request.Context(), c.Param("id"), c.Param("commentID"), middleware.GetViewer(c), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCommentResponse(comment))
}

// DeleteComment handles DELETE /api/v1/posts/:id/comments/:commentID.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	err := h.mutation.DeleteComment(c.Request.Context(), c.Param("id"), c.Param("commentID"), middleware.GetViewer(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
