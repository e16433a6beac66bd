package service

import (
	"context"
	"io"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
)

// ListingServiceInterface defines the read side of the publication
// core. Used for dependency injection and mocking in tests.
type ListingServiceInterface interface {
	// ListPosts returns one page of the feed selected by scope.
	ListPosts(ctx context.Context, scope domain.Scope, viewer *domain.Viewer, page int) (*domain.PostPage, error)
	// GetPost returns a single post with its visible comments.
	GetPost(ctx context.Context, id string, viewer *domain.Viewer) (*domain.PostDetail, error)
}

// MutationServiceInterface defines the write side of the publication
// core. Every method requires an authenticated viewer.
type MutationServiceInterface interface {
	// CreatePost publishes a new post owned by the viewer.
	CreatePost(ctx context.Context, viewer *domain.Viewer, input *domain.PostInput) (*domain.Post, error)
	// UpdatePost edits a post the viewer owns.
	UpdatePost(ctx context.Context, id string, viewer *domain.Viewer, input *domain.PostInput) (*domain.Post, error)
	// DeletePost removes a post the viewer owns together with its comments.
	DeletePost(ctx context.Context, id string, viewer *domain.Viewer) error
	// AttachPostImage uploads an image and records it on the post.
	AttachPostImage(ctx context.Context, id string, viewer *domain.Viewer, fileName string, file io.Reader, size int64) (*domain.Post, error)
	// CreateComment adds a comment to an existing post.
	CreateComment(ctx context.Context, postID string, viewer *domain.Viewer, input *domain.CommentInput) (*domain.Comment, error)
	// UpdateComment edits a comment the viewer owns.
	UpdateComment(ctx context.Context, postID, commentID string, viewer *domain.Viewer, input *domain.CommentInput) (*domain.Comment, error)
	// DeleteComment removes a comment the viewer owns.
	DeleteComment(ctx context.Context, postID, commentID string, viewer *domain.Viewer) error
}

// ProfileServiceInterface defines profile reading and editing.
type ProfileServiceInterface interface {
	// GetProfile returns a user's public profile by username.
	GetProfile(ctx context.Context, username string) (*domain.User, error)
	// GetProfileByID returns a user's profile by id.
	GetProfileByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile edits the viewer's own profile.
	UpdateProfile(ctx context.Context, viewer *domain.Viewer, input *domain.ProfileInput) (*domain.User, error)
}
