package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
)

// TestDB holds the test database connection and container
type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL container and applies migrations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		connStr,
	)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to create migrate instance: %v", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to run migrations: %v", err)
	}
	m.Close()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to ping database: %v", err)
	}

	return &TestDB{
		Pool:      pool,
		Container: pgContainer,
		ConnStr:   connStr,
	}
}

// Cleanup closes the connection pool and terminates the container
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// TruncateTables clears all data from tables for test isolation
func (tdb *TestDB) TruncateTables(t *testing.T, tables ...string) {
	t.Helper()
	ctx := context.Background()
	for _, table := range tables {
		_, err := tdb.Pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			t.Fatalf("Failed to truncate table %s: %v", table, err)
		}
	}
}

// Fixture builders. Raw inserts keep them independent of the
// repositories under test.

func (tdb *TestDB) InsertUser(t *testing.T, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     username + "@example.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := tdb.Pool.Exec(context.Background(), `
		INSERT INTO users (id, username, email, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, '', '', $4, $5)
	`, u.ID, u.Username, u.Email, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		t.Fatalf("Failed to insert user fixture: %v", err)
	}
	return u
}

func (tdb *TestDB) InsertCategory(t *testing.T, slug string, published bool) *domain.Category {
	t.Helper()
	c := &domain.Category{
		ID:          uuid.New().String(),
		Title:       "Category " + slug,
		Slug:        slug,
		IsPublished: published,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := tdb.Pool.Exec(context.Background(), `
		INSERT INTO categories (id, title, description, slug, is_published, created_at)
		VALUES ($1, $2, '', $3, $4, $5)
	`, c.ID, c.Title, c.Slug, c.IsPublished, c.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to insert category fixture: %v", err)
	}
	return c
}

func (tdb *TestDB) InsertLocation(t *testing.T, name string, published bool) *domain.Location {
	t.Helper()
	l := &domain.Location{
		ID:          uuid.New().String(),
		Name:        name,
		IsPublished: published,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := tdb.Pool.Exec(context.Background(), `
		INSERT INTO locations (id, name, is_published, created_at)
		VALUES ($1, $2, $3, $4)
	`, l.ID, l.Name, l.IsPublished, l.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to insert location fixture: %v", err)
	}
	return l
}
