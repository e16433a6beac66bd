package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
	"github.com/Kashikuroni/YP-Blogicum/internal/metrics"
	"github.com/Kashikuroni/YP-Blogicum/internal/policy"
	"github.com/Kashikuroni/YP-Blogicum/internal/repository"
)

// ListingService serves the read surfaces: the three feeds and the
// post detail view. One clock reading is taken per call and used for
// every visibility decision in that call, so a page is internally
// consistent even when posts go live mid-request.
type ListingService struct {
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository

	now func() time.Time
}

// NewListingService creates a new ListingService.
func NewListingService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
) *ListingService {
	return &ListingService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source. Test hook.
func (s *ListingService) WithClock(now func() time.Time) *ListingService {
	s.now = now
	return s
}

func scopeLabel(scope domain.Scope) string {
	switch scope.Kind {
	case domain.ScopeCategory:
		return "category"
	case domain.ScopeAuthor:
		return "author"
	default:
		return "all"
	}
}

// resolveFilter turns a scope into the repository filter, resolving
// slugs and usernames and deciding whether the visibility clause
// applies.
func (s *ListingService) resolveFilter(ctx context.Context, scope domain.Scope, viewer *domain.Viewer, asOf time.Time) (repository.PostFilter, error) {
	filter := repository.PostFilter{VisibleOnly: true, AsOf: asOf}

	switch scope.Kind {
	case domain.ScopeAll:

	case domain.ScopeCategory:
		category, err := s.categoryRepo.GetBySlug(ctx, scope.CategorySlug)
		if err != nil {
			return filter, err
		}
		// An unpublished category hides its whole feed, not just
		// the posts in it.
		if !category.IsPublished {
			return filter, fmt.Errorf("category %s: %w", scope.CategorySlug, domain.ErrNotFound)
		}
		filter.CategoryID = category.ID

	case domain.ScopeAuthor:
		author, err := s.userRepo.GetByUsername(ctx, scope.Username)
		if err != nil {
			return filter, err
		}
		filter.AuthorID = author.ID
		// Authors see their own profile feed unfiltered, drafts and
		// scheduled posts included.
		if viewer.IsAuthenticated() && viewer.UserID == author.ID {
			filter.VisibleOnly = false
		}

	default:
		return filter, fmt.Errorf("unknown listing scope %d", scope.Kind)
	}

	return filter, nil
}

// ListPosts returns one page of the feed selected by scope. Pages are
// 1-based; out-of-range page numbers clamp to the nearest valid page.
func (s *ListingService) ListPosts(ctx context.Context, scope domain.Scope, viewer *domain.Viewer, page int) (*domain.PostPage, error) {
	asOf := s.now()

	filter, err := s.resolveFilter(ctx, scope, viewer, asOf)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	totalPages := (total + domain.PageSize - 1) / domain.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	posts, err := s.postRepo.List(ctx, filter, domain.PageSize, (page-1)*domain.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	metrics.ObserveListing(scopeLabel(scope))

	return &domain.PostPage{
		Posts:       posts,
		Number:      page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}

// GetPost returns a single post with its comments. A post the viewer
// may not see is indistinguishable from a missing one.
func (s *ListingService) GetPost(ctx context.Context, id string, viewer *domain.Viewer) (*domain.PostDetail, error) {
	asOf := s.now()

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.IsVisible(post, viewer, asOf) {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	comments, err := s.commentRepo.ListByPost(ctx, id, asOf)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &domain.PostDetail{Post: post, Comments: comments}, nil
}
