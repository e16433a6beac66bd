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

func TestUserRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresUserRepository(tdb.Pool)
	ctx := context.Background()

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Liddell",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, "Alice", byName.FirstName)

	_, err = repo.GetByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresUserRepository(tdb.Pool)
	ctx := context.Background()

	first := &domain.User{
		ID: uuid.New().String(), Username: "taken",
		Email:     "one@example.com",
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, first))

	dup := &domain.User{
		ID: uuid.New().String(), Username: "taken",
		Email:     "two@example.com",
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrUsernameTaken)
}

func TestUserRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresUserRepository(tdb.Pool)
	ctx := context.Background()

	user := tdb.InsertUser(t, "bob")
	other := tdb.InsertUser(t, "carol")

	user.FirstName = "Bob"
	user.Email = "bob@new.example.com"
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.FirstName)
	assert.Equal(t, "bob@new.example.com", got.Email)

	// Renaming onto an existing username hits the unique constraint.
	user.Username = other.Username
	assert.ErrorIs(t, repo.Update(ctx, user), repository.ErrUsernameTaken)

	missing := &domain.User{ID: uuid.New().String(), Username: "ghost", Email: "g@example.com"}
	assert.ErrorIs(t, repo.Update(ctx, missing), domain.ErrNotFound)
}
