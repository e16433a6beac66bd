package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
	"github.com/Kashikuroni/YP-Blogicum/internal/mocks"
)

func TestCommentHandler_CreateComment(t *testing.T) {
	t.Run("creates a comment", func(t *testing.T) {
		mockMutation := mocks.NewMockMutationServiceInterface(t)
		handler := NewCommentHandler(mockMutation)

		mockMutation.EXPECT().
			CreateComment(mock.Anything, "post-1", testViewer, mock.AnythingOfType("*domain.CommentInput")).
			Return(&domain.Comment{
				ID: "c-1", PostID: "post-1", AuthorID: "user-1",
				Text: "hi", CreatedAt: time.Now(),
			}, nil)

		router := gin.New()
		router.Use(withViewer(testViewer))
		router.POST("/api/v1/posts/:id/comments", handler.CreateComment)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/post-1/comments", strings.NewReader(`{"text":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var response CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "c-1", response.ID)
		assert.Equal(t, "post-1", response.PostID)
	})

	t.Run("missing post returns 404", func(t *testing.T) {
		mockMutation := mocks.NewMockMutationServiceInterface(t)
		handler := NewCommentHandler(mockMutation)

		mockMutation.EXPECT().
			CreateComment(mock.Anything, "nope", testViewer, mock.AnythingOfType("*domain.CommentInput")).
			Return(nil, domain.ErrNotFound)

		router := gin.New()
		router.Use(withViewer(testViewer))
		router.POST("/api/v1/posts/:id/comments", handler.CreateComment)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/nope/comments", strings.NewReader(`{"text":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCommentHandler_UpdateComment(t *testing.T) {
	t.Run("non-owner gets 403", func(t *testing.T) {
		mockMutation := mocks.NewMockMutationServiceInterface(t)
		handler := NewCommentHandler(mockMutation)

		mockMutation.EXPECT().
			UpdateComment(mock.Anything, "post-1", "c-1", testViewer, mock.AnythingOfType("*domain.CommentInput")).
			Return(nil, domain.ErrPermissionDenied)

		router := gin.New()
		router.Use(withViewer(testViewer))
		router.PUT("/api/v1/posts/:id/comments/:commentID", handler.UpdateComment)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/posts/post-1/comments/c-1", strings.NewReader(`{"text":"new"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCommentHandler_DeleteComment(t *testing.T) {
	t.Run("owner gets 204", func(t *testing.T) {
		mockMutation := mocks.NewMockMutationServiceInterface(t)
		handler := NewCommentHandler(mockMutation)

		mockMutation.EXPECT().
			DeleteComment(mock.Anything, "post-1", "c-1", testViewer).
			Return(nil)

		router := gin.New()
		router.Use(withViewer(testViewer))
		router.DELETE("/api/v1/posts/:id/comments/:commentID", handler.DeleteComment)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/post-1/comments/c-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
