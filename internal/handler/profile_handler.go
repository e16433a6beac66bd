package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
	"github.com/Kashikuroni/YP-Blogicum/internal/middleware"
	"github.com/Kashikuroni/YP-Blogicum/internal/service"
)

// ProfileHandler handles public profiles and self-profile editing.
type ProfileHandler struct {
	profiles service.ProfileServiceInterface
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetProfile handles GET /api/v1/profiles/:username.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.profiles.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := toUserResponse(user)
	// Email stays private unless the viewer is looking at themselves.
	viewer := middleware.GetViewer(c)
	if !viewer.IsAuthenticated() || viewer.UserID != user.ID {
		resp.Email = ""
	}
	c.JSON(http.StatusOK, resp)
}

// GetOwnProfile handles GET /api/v1/profile.
func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	if !viewer.IsAuthenticated() {
		respondError(c, domain.ErrUnauthenticated)
		return
	}

	// Resolve by id, not by the username claim: the claim goes stale
	// after a rename while the token is still valid.
	user, err := h.profiles.GetProfileByID(c.Request.Context(), viewer.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfile handles PUT /api/v1/profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var input domain.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.profiles.UpdateProfile(c.Request.Context(), middleware.GetViewer(c), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}
