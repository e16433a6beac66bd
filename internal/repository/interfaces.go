package repository

import (
	"context"
	"time"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
)

// PostFilter narrows post listings. The zero value matches every post.
type PostFilter struct {
	// AuthorID restricts to one author's posts when non-empty.
	AuthorID string
	// CategoryID restricts to one category when non-empty.
	CategoryID string
	// VisibleOnly applies the live-post clause: published, category
	// (if any) published, pub date not after AsOf.
	VisibleOnly bool
	// AsOf is the pub date cutoff used when VisibleOnly is set.
	AsOf time.Time
}

// PostRepository defines methods for post data access. GetByID and
// List resolve author, category and location eagerly.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, filter PostFilter, limit, offset int) ([]*domain.Post, error)
	Count(ctx context.Context, filter PostFilter) (int, error)
	Update(ctx context.Context, post *domain.Post) error
	SetImageURL(ctx context.Context, id, imageURL string) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string, asOf time.Time) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines methods for category data access.
// Categories are administrator-managed; this core only reads them.
type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

// LocationRepository defines methods for location data access.
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Location, error)
}

// UserRepository defines methods for user profile data access. Create
// is the provisioning hook for the external auth service; everything
// else is profile reading and editing.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
