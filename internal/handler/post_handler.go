package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
	"github.com/Kashikuroni/YP-Blogicum/internal/middleware"
	"github.com/Kashikuroni/YP-Blogicum/internal/service"
)

// PostHandler handles post mutations.
type PostHandler struct {
	mutation service.MutationServiceInterface
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(mutation service.MutationServiceInterface) *PostHandler {
	return &PostHandler{mutation: mutation}
}

// CreatePost handles POST /api/v1/posts.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input domain.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.mutation.CreatePost(c.Request.Context(), middleware.GetViewer(c), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPostResponse(post))
}

// UpdatePost handles PUT /api/v1/posts/:id.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var input domain.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.mutation.UpdatePost(c.Request.Context(), c.Param("id"), middleware.GetViewer(c), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}

// DeletePost handles DELETE /api/v1/posts/:id.
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.mutation.DeletePost(c.Request.Context(), c.Param("id"), middleware.GetViewer(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage handles POST /api/v1/posts/:id/image (multipart).
func (h *PostHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	if header.Size > MaxImageUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds the upload size limit"})
		return
	}

	post, err := h.mutation.AttachPostImage(c.Request.Context(), c.Param("id"), middleware.GetViewer(c), header.Filename, file, header.Size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostResponse(post))
}
