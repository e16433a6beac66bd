package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
	"github.com/Kashikuroni/YP-Blogicum/internal/middleware"
	"github.com/Kashikuroni/YP-Blogicum/internal/service"
)

// FeedHandler handles the read surfaces: feeds and the post detail
// view.
type FeedHandler struct {
	listing service.ListingServiceInterface
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(listing service.ListingServiceInterface) *FeedHandler {
	return &FeedHandler{listing: listing}
}

// pageParam reads ?page=. Anything unparseable falls back to the
// first page; out-of-range values are clamped downstream.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// Feed handles GET /api/v1/posts - the global feed.
func (h *FeedHandler) Feed(c *gin.Context) {
	page, err := h.listing.ListPosts(c.Request.Context(), domain.AllPosts(), middleware.GetViewer(c), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(page))
}

// CategoryFeed handles GET /api/v1/categories/:slug/posts.
func (h *FeedHandler) CategoryFeed(c *gin.Context) {
	scope := domain.CategoryPosts(c.Param("slug"))
	page, err := h.listing.ListPosts(c.Request.Context(), scope, middleware.GetViewer(c), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(page))
}

// AuthorFeed handles GET /api/v1/profiles/:username/posts.
func (h *FeedHandler) AuthorFeed(c *gin.Context) {
	scope := domain.AuthorPosts(c.Param("username"))
	page, err := h.listing.ListPosts(c.Request.Context(), scope, middleware.GetViewer(c), pageParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(page))
}

// GetPost handles GET /api/v1/posts/:id - the detail view.
func (h *FeedHandler) GetPost(c *gin.Context) {
	detail, err := h.listing.GetPost(c.Request.Context(), c.Param("id"), middleware.GetViewer(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPostDetailResponse(detail))
}
