package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
	"github.com/Kashikuroni/YP-Blogicum/internal/repository"
)

func insertPost(t *testing.T, repo repository.PostRepository, post *domain.Post) *domain.Post {
	t.Helper()
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

func TestPostRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresPostRepository(tdb.Pool)
	ctx := context.Background()

	author := tdb.InsertUser(t, "author")
	cat := tdb.InsertCategory(t, "travel", true)
	loc := tdb.InsertLocation(t, "Oslo", true)

	post := insertPost(t, repo, &domain.Post{
		Title:       "First trip",
		Text:        "We went north.",
		PubDate:     time.Now().UTC().Add(-time.Hour),
		AuthorID:    author.ID,
		CategoryID:  &cat.ID,
		LocationID:  &loc.ID,
		IsPublished: true,
	})

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, post.Text, got.Text)
	require.NotNil(t, got.Author)
	assert.Equal(t, "author", got.Author.Username)
	require.NotNil(t, got.Category)
	assert.Equal(t, "travel", got.Category.Slug)
	require.NotNil(t, got.Location)
	assert.Equal(t, "Oslo", got.Location.Name)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresPostRepository(tdb.Pool)

	_, err := repo.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostRepository_List_VisibleOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresPostRepository(tdb.Pool)
	ctx := context.Background()

	author := tdb.InsertUser(t, "author")
	published := tdb.InsertCategory(t, "open", true)
	hidden := tdb.InsertCategory(t, "closed", false)
	now := time.Now().UTC()

	visible := insertPost(t, repo, &domain.Post{
		Title: "visible", Text: "t", PubDate: now.Add(-time.Hour),
		AuthorID: author.ID, CategoryID: &published.ID, IsPublished: true,
	})
	insertPost(t, repo, &domain.Post{
		Title: "draft", Text: "t", PubDate: now.Add(-time.Hour),
		AuthorID: author.ID, IsPublished: false,
	})
	insertPost(t, repo, &domain.Post{
		Title: "scheduled", Text: "t", PubDate: now.Add(time.Hour),
		AuthorID: author.ID, IsPublished: true,
	})
	insertPost(t, repo, &domain.Post{
		Title: "hidden category", Text: "t", PubDate: now.Add(-time.Hour),
		AuthorID: author.ID, CategoryID: &hidden.ID, IsPublished: true,
	})
	// No category at all still counts as visible.
	uncategorized := insertPost(t, repo, &domain.Post{
		Title: "uncategorized", Text: "t", PubDate: now.Add(-time.Hour),
		AuthorID: author.ID, IsPublished: true,
	})

	filter := repository.PostFilter{VisibleOnly: true, AsOf: now}
	posts, err := repo.List(ctx, filter, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	ids := []string{posts[0].ID, posts[1].ID}
	assert.Contains(t, ids, visible.ID)
	assert.Contains(t, ids, uncategorized.ID)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Without the clause everything comes back.
	all, err := repo.List(ctx, repository.PostFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestPostRepository_List_PubDateBoundary(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresPostRepository(tdb.Pool)
	ctx := context.Background()

	author := tdb.InsertUser(t, "author")
	asOf := time.Now().UTC().Truncate(time.Microsecond)

	// pub_date == asOf is inclusive.
	exact := insertPost(t, repo, &domain.Post{
		Title: "exact", Text: "t", PubDate: asOf,
		AuthorID: author.ID, IsPublished: true,
	})

	posts, err := repo.List(ctx, repository.PostFilter{VisibleOnly: true, AsOf: asOf}, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, exact.ID, posts[0].ID)
}

func TestPostRepository_List_OrderingAndTieBreak(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresPostRepository(tdb.Pool)
	ctx := context.Background()

	author := tdb.InsertUser(t, "author")
	now := time.Now().UTC().Truncate(time.Microsecond)
	shared := now.Add(-2 * time.Hour)

	older := insertPost(t, repo, &domain.Post{
		Title: "older", Text: "t", PubDate: now.Add(-3 * time.Hour),
		AuthorID: author.ID, IsPublished: true,
	})
	tieFirst := insertPost(t, repo, &domain.Post{
		Title: "tie first", Text: "t", PubDate: shared,
		AuthorID: author.ID, IsPublished: true,
	})
	tieSecond := insertPost(t, repo, &domain.Post{
		Title: "tie second", Text: "t", PubDate: shared,
		AuthorID: author.ID, IsPublished: true,
	})
	newest := insertPost(t, repo, &domain.Post{
		Title: "newest", Text: "t", PubDate: now.Add(-time.Hour),
		AuthorID: author.ID, IsPublished: true,
	})

	posts, err := repo.List(ctx, repository.PostFilter{VisibleOnly: true, AsOf: now}, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 4)

	// Newest pub date first; equal pub dates keep insertion order.
	assert.Equal(t, newest.ID, posts[0].ID)
	assert.Equal(t, tieFirst.ID, posts[1].ID)
	assert.Equal(t, tieSecond.ID, posts[2].ID)
	assert.Equal(t, older.ID, posts[3].ID)
}

func TestPostRepository_List_FilterByAuthorAndCategory(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresPostRepository(tdb.Pool)
	ctx := context.Background()

	alice := tdb.InsertUser(t, "alice")
	bob := tdb.InsertUser(t, "bob")
	cat := tdb.InsertCategory(t, "news", true)
	now := time.Now().UTC()

	insertPost(t, repo, &domain.Post{
		Title: "alice in news", Text: "t", PubDate: now.Add(-time.Hour),
		AuthorID: alice.ID, CategoryID: &cat.ID, IsPublished: true,
	})
	insertPost(t, repo, &domain.Post{
		Title: "alice elsewhere", Text: "t", PubDate: now.Add(-time.Hour),
		AuthorID: alice.ID, IsPublished: true,
	})
	insertPost(t, repo, &domain.Post{
		Title: "bob in news", Text: "t", PubDate: now.Add(-time.Hour),
		AuthorID: bob.ID, CategoryID: &cat.ID, IsPublished: true,
	})

	byAuthor, err := repo.List(ctx, repository.PostFilter{AuthorID: alice.ID}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)

	byCategory, err := repo.List(ctx, repository.PostFilter{CategoryID: cat.ID}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	both, err := repo.List(ctx, repository.PostFilter{AuthorID: bob.ID, CategoryID: cat.ID}, 10, 0)
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "bob in news", both[0].Title)
}

func TestPostRepository_List_Pagination(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresPostRepository(tdb.Pool)
	ctx := context.Background()

	author := tdb.InsertUser(t, "author")
	now := time.Now().UTC()
	for i := 0; i < 12; i++ {
		insertPost(t, repo, &domain.Post{
			Title: "post", Text: "t",
			PubDate:  now.Add(-time.Duration(i+1) * time.Minute),
			AuthorID: author.ID, IsPublished: true,
		})
	}

	filter := repository.PostFilter{VisibleOnly: true, AsOf: now}
	first, err := repo.List(ctx, filter, 10, 0)
	require.NoError(t, err)
	assert.Len(t, first, 10)

	second, err := repo.List(ctx, filter, 10, 10)
	require.NoError(t, err)
	assert.Len(t, second, 2)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestPostRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresPostRepository(tdb.Pool)
	ctx := context.Background()

	author := tdb.InsertUser(t, "author")
	cat := tdb.InsertCategory(t, "news", true)

	post := insertPost(t, repo, &domain.Post{
		Title: "before", Text: "old", PubDate: time.Now().UTC(),
		AuthorID: author.ID, IsPublished: true,
	})

	post.Title = "after"
	post.Text = "new"
	post.CategoryID = &cat.ID
	require.NoError(t, repo.Update(ctx, post))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, "new", got.Text)
	require.NotNil(t, got.Category)
	assert.Equal(t, "news", got.Category.Slug)

	missing := *post
	missing.ID = uuid.New().String()
	assert.ErrorIs(t, repo.Update(ctx, &missing), domain.ErrNotFound)
}

func TestPostRepository_SetImageURL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresPostRepository(tdb.Pool)
	ctx := context.Background()

	author := tdb.InsertUser(t, "author")
	post := insertPost(t, repo, &domain.Post{
		Title: "with image", Text: "t", PubDate: time.Now().UTC(),
		AuthorID: author.ID, IsPublished: true,
	})

	require.NoError(t, repo.SetImageURL(ctx, post.ID, "posts/abc.png"))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "posts/abc.png", *got.ImageURL)

	assert.ErrorIs(t, repo.SetImageURL(ctx, uuid.New().String(), "x.png"), domain.ErrNotFound)
}

func TestPostRepository_Delete_CascadesComments(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	postRepo := repository.NewPostgresPostRepository(tdb.Pool)
	commentRepo := repository.NewPostgresCommentRepository(tdb.Pool)
	ctx := context.Background()

	author := tdb.InsertUser(t, "author")
	post := insertPost(t, postRepo, &domain.Post{
		Title: "doomed", Text: "t", PubDate: time.Now().UTC(),
		AuthorID: author.ID, IsPublished: true,
	})
	for i := 0; i < 3; i++ {
		require.NoError(t, commentRepo.Create(ctx, &domain.Comment{
			ID: uuid.New().String(), PostID: post.ID,
			AuthorID: author.ID, Text: "c", CreatedAt: time.Now().UTC(),
		}))
	}

	require.NoError(t, postRepo.Delete(ctx, post.ID))

	_, err := postRepo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var remaining int
	err = tdb.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM comments WHERE post_id = $1", post.ID).Scan(&remaining)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	assert.ErrorIs(t, postRepo.Delete(ctx, post.ID), domain.ErrNotFound)
}
