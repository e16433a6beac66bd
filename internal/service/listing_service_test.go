package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
	"github.com/Kashikuroni/YP-Blogicum/internal/mocks"
	"github.com/Kashikuroni/YP-Blogicum/internal/repository"
	"github.com/Kashikuroni/YP-Blogicum/internal/service"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func makePosts(n int) []*domain.Post {
	posts := make([]*domain.Post, n)
	for i := range posts {
		posts[i] = &domain.Post{
			ID:          uuid.New().String(),
			Title:       "post",
			Text:        "text",
			PubDate:     fixedNow.Add(-time.Duration(i+1) * time.Hour),
			AuthorID:    "author-1",
			IsPublished: true,
		}
	}
	return posts
}

func newListingService(t *testing.T) (*service.ListingService, *mocks.MockPostRepository, *mocks.MockCommentRepository, *mocks.MockCategoryRepository, *mocks.MockUserRepository) {
	postRepo := mocks.NewMockPostRepository(t)
	commentRepo := mocks.NewMockCommentRepository(t)
	categoryRepo := mocks.NewMockCategoryRepository(t)
	userRepo := mocks.NewMockUserRepository(t)
	svc := service.NewListingService(postRepo, commentRepo, categoryRepo, userRepo).WithClock(fixedClock)
	return svc, postRepo, commentRepo, categoryRepo, userRepo
}

func TestListingService_ListPosts_All(t *testing.T) {
	ctx := context.Background()

	t.Run("returns first page of the global feed", func(t *testing.T) {
		svc, postRepo, _, _, _ := newListingService(t)
		filter := repository.PostFilter{VisibleOnly: true, AsOf: fixedNow}

		postRepo.EXPECT().Count(mock.Anything, filter).Return(25, nil)
		postRepo.EXPECT().List(mock.Anything, filter, domain.PageSize, 0).Return(makePosts(10), nil)

		page, err := svc.ListPosts(ctx, domain.AllPosts(), nil, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 25, page.TotalItems)
		assert.True(t, page.HasNext)
		assert.False(t, page.HasPrevious)
		assert.Len(t, page.Posts, 10)
	})

	t.Run("clamps page below range to the first page", func(t *testing.T) {
		svc, postRepo, _, _, _ := newListingService(t)
		filter := repository.PostFilter{VisibleOnly: true, AsOf: fixedNow}

		postRepo.EXPECT().Count(mock.Anything, filter).Return(25, nil)
		postRepo.EXPECT().List(mock.Anything, filter, domain.PageSize, 0).Return(makePosts(10), nil)

		page, err := svc.ListPosts(ctx, domain.AllPosts(), nil, -3)

		require.NoError(t, err)
		assert.Equal(t, 1, page.Number)
	})

	t.Run("clamps page above range to the last page", func(t *testing.T) {
		svc, postRepo, _, _, _ := newListingService(t)
		filter := repository.PostFilter{VisibleOnly: true, AsOf: fixedNow}

		postRepo.EXPECT().Count(mock.Anything, filter).Return(25, nil)
		postRepo.EXPECT().List(mock.Anything, filter, domain.PageSize, 20).Return(makePosts(5), nil)

		page, err := svc.ListPosts(ctx, domain.AllPosts(), nil, 99)

		require.NoError(t, err)
		assert.Equal(t, 3, page.Number)
		assert.False(t, page.HasNext)
		assert.True(t, page.HasPrevious)
	})

	t.Run("empty feed still reports one page", func(t *testing.T) {
		svc, postRepo, _, _, _ := newListingService(t)
		filter := repository.PostFilter{VisibleOnly: true, AsOf: fixedNow}

		postRepo.EXPECT().Count(mock.Anything, filter).Return(0, nil)
		postRepo.EXPECT().List(mock.Anything, filter, domain.PageSize, 0).Return([]*domain.Post{}, nil)

		page, err := svc.ListPosts(ctx, domain.AllPosts(), nil, 1)

		require.NoError(t, err)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 0, page.TotalItems)
		assert.False(t, page.HasNext)
		assert.False(t, page.HasPrevious)
	})
}

func TestListingService_ListPosts_Category(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the slug and filters by category", func(t *testing.T) {
		svc, postRepo, _, categoryRepo, _ := newListingService(t)

		categoryRepo.EXPECT().GetBySlug(mock.Anything, "travel").Return(&domain.Category{
			ID: "cat-1", Slug: "travel", IsPublished: true,
		}, nil)

		filter := repository.PostFilter{CategoryID: "cat-1", VisibleOnly: true, AsOf: fixedNow}
		postRepo.EXPECT().Count(mock.Anything, filter).Return(3, nil)
		postRepo.EXPECT().List(mock.Anything, filter, domain.PageSize, 0).Return(makePosts(3), nil)

		page, err := svc.ListPosts(ctx, domain.CategoryPosts("travel"), nil, 1)

		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalItems)
	})

	t.Run("unpublished category is not found", func(t *testing.T) {
		svc, _, _, categoryRepo, _ := newListingService(t)

		categoryRepo.EXPECT().GetBySlug(mock.Anything, "secret").Return(&domain.Category{
			ID: "cat-2", Slug: "secret", IsPublished: false,
		}, nil)

		_, err := svc.ListPosts(ctx, domain.CategoryPosts("secret"), nil, 1)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing slug is not found", func(t *testing.T) {
		svc, _, _, categoryRepo, _ := newListingService(t)

		categoryRepo.EXPECT().GetBySlug(mock.Anything, "nope").Return(nil, domain.ErrNotFound)

		_, err := svc.ListPosts(ctx, domain.CategoryPosts("nope"), nil, 1)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListingService_ListPosts_Author(t *testing.T) {
	ctx := context.Background()
	author := &domain.User{ID: "author-1", Username: "alice"}

	t.Run("someone else's profile shows only live posts", func(t *testing.T) {
		svc, postRepo, _, _, userRepo := newListingService(t)

		userRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(author, nil)

		filter := repository.PostFilter{AuthorID: "author-1", VisibleOnly: true, AsOf: fixedNow}
		postRepo.EXPECT().Count(mock.Anything, filter).Return(2, nil)
		postRepo.EXPECT().List(mock.Anything, filter, domain.PageSize, 0).Return(makePosts(2), nil)

		viewer := &domain.Viewer{UserID: "someone-else", Username: "bob"}
		page, err := svc.ListPosts(ctx, domain.AuthorPosts("alice"), viewer, 1)

		require.NoError(t, err)
		assert.Equal(t, 2, page.TotalItems)
	})

	t.Run("own profile is unfiltered", func(t *testing.T) {
		svc, postRepo, _, _, userRepo := newListingService(t)

		userRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(author, nil)

		filter := repository.PostFilter{AuthorID: "author-1", VisibleOnly: false, AsOf: fixedNow}
		postRepo.EXPECT().Count(mock.Anything, filter).Return(5, nil)
		postRepo.EXPECT().List(mock.Anything, filter, domain.PageSize, 0).Return(makePosts(5), nil)

		viewer := &domain.Viewer{UserID: "author-1", Username: "alice"}
		page, err := svc.ListPosts(ctx, domain.AuthorPosts("alice"), viewer, 1)

		require.NoError(t, err)
		assert.Equal(t, 5, page.TotalItems)
	})

	t.Run("unknown username is not found", func(t *testing.T) {
		svc, _, _, _, userRepo := newListingService(t)

		userRepo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		_, err := svc.ListPosts(ctx, domain.AuthorPosts("ghost"), nil, 1)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListingService_GetPost(t *testing.T) {
	ctx := context.Background()

	livePost := func() *domain.Post {
		return &domain.Post{
			ID:          "post-1",
			Title:       "hello",
			PubDate:     fixedNow.Add(-time.Hour),
			AuthorID:    "author-1",
			IsPublished: true,
		}
	}

	t.Run("returns the post with its comments", func(t *testing.T) {
		svc, postRepo, commentRepo, _, _ := newListingService(t)

		postRepo.EXPECT().GetByID(mock.Anything, "post-1").Return(livePost(), nil)
		commentRepo.EXPECT().ListByPost(mock.Anything, "post-1", fixedNow).Return([]*domain.Comment{
			{ID: "c-1", PostID: "post-1", Text: "hi"},
		}, nil)

		detail, err := svc.GetPost(ctx, "post-1", nil)

		require.NoError(t, err)
		assert.Equal(t, "post-1", detail.Post.ID)
		require.Len(t, detail.Comments, 1)
		assert.Equal(t, "hi", detail.Comments[0].Text)
	})

	t.Run("draft is not found for strangers", func(t *testing.T) {
		svc, postRepo, _, _, _ := newListingService(t)

		draft := livePost()
		draft.IsPublished = false
		postRepo.EXPECT().GetByID(mock.Anything, "post-1").Return(draft, nil)

		_, err := svc.GetPost(ctx, "post-1", &domain.Viewer{UserID: "someone-else"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("author sees their own draft", func(t *testing.T) {
		svc, postRepo, commentRepo, _, _ := newListingService(t)

		draft := livePost()
		draft.IsPublished = false
		postRepo.EXPECT().GetByID(mock.Anything, "post-1").Return(draft, nil)
		commentRepo.EXPECT().ListByPost(mock.Anything, "post-1", fixedNow).Return(nil, nil)

		detail, err := svc.GetPost(ctx, "post-1", &domain.Viewer{UserID: "author-1"})

		require.NoError(t, err)
		assert.False(t, detail.Post.IsPublished)
	})

	t.Run("scheduled post is not found before its pub date", func(t *testing.T) {
		svc, postRepo, _, _, _ := newListingService(t)

		scheduled := livePost()
		scheduled.PubDate = fixedNow.Add(time.Hour)
		postRepo.EXPECT().GetByID(mock.Anything, "post-1").Return(scheduled, nil)

		_, err := svc.GetPost(ctx, "post-1", nil)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing post propagates not found", func(t *testing.T) {
		svc, postRepo, _, _, _ := newListingService(t)

		postRepo.EXPECT().GetByID(mock.Anything, "nope").Return(nil, domain.ErrNotFound)

		_, err := svc.GetPost(ctx, "nope", nil)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
