package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
)

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

// postColumns selects a post row together with its author and the
// optional category/location references, so listings never fall back
// to per-row lookups.
const postColumns = `
	p.id, p.title, p.text, p.pub_date, p.author_id, p.category_id,
	p.location_id, p.image_url, p.is_published, p.created_at,
	u.username, u.email, u.first_name, u.last_name, u.created_at, u.updated_at,
	c.title, c.description, c.slug, c.is_published, c.created_at,
	l.name, l.is_published, l.created_at`

const postJoins = `
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN locations l ON l.id = p.location_id`

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var (
		p            domain.Post
		author       domain.User
		catTitle     *string
		catDesc      *string
		catSlug      *string
		catPublished *bool
		catCreatedAt *time.Time
		locName      *string
		locPublished *bool
		locCreatedAt *time.Time
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Text, &p.PubDate, &p.AuthorID, &p.CategoryID,
		&p.LocationID, &p.ImageURL, &p.IsPublished, &p.CreatedAt,
		&author.Username, &author.Email, &author.FirstName, &author.LastName,
		&author.CreatedAt, &author.UpdatedAt,
		&catTitle, &catDesc, &catSlug, &catPublished, &catCreatedAt,
		&locName, &locPublished, &locCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	author.ID = p.AuthorID
	p.Author = &author

	if p.CategoryID != nil {
		p.Category = &domain.Category{
			ID:          *p.CategoryID,
			Title:       *catTitle,
			Description: *catDesc,
			Slug:        *catSlug,
			IsPublished: *catPublished,
			CreatedAt:   *catCreatedAt,
		}
	}
	if p.LocationID != nil {
		p.Location = &domain.Location{
			ID:          *p.LocationID,
			Name:        *locName,
			IsPublished: *locPublished,
			CreatedAt:   *locCreatedAt,
		}
	}

	return &p, nil
}

// buildFilter renders a PostFilter into WHERE conditions. Argument
// numbering starts at one.
func buildFilter(filter PostFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.AuthorID != "" {
		args = append(args, filter.AuthorID)
		conditions = append(conditions, fmt.Sprintf("p.author_id = $%d", len(args)))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if filter.VisibleOnly {
		args = append(args, filter.AsOf)
		conditions = append(conditions, fmt.Sprintf(
			"p.is_published AND (p.category_id IS NULL OR c.is_published) AND p.pub_date <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// Create inserts a new post.
func (r *PostgresPostRepository) Create(ctx context.Context, post *domain.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, title, text, pub_date, author_id, category_id, location_id, image_url, is_published, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, post.ID, post.Title, post.Text, post.PubDate, post.AuthorID,
		post.CategoryID, post.LocationID, post.ImageURL, post.IsPublished, post.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetByID fetches one post with its references resolved.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, "SELECT"+postColumns+postJoins+" WHERE p.id = $1", id)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// List returns posts matching the filter ordered by pub date
// descending, insertion order breaking ties.
func (r *PostgresPostRepository) List(ctx context.Context, filter PostFilter, limit, offset int) ([]*domain.Post, error) {
	where, args := buildFilter(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT%s%s%s ORDER BY p.pub_date DESC, p.seq ASC LIMIT $%d OFFSET $%d",
		postColumns, postJoins, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Count returns the number of posts matching the filter.
func (r *PostgresPostRepository) Count(ctx context.Context, filter PostFilter) (int, error) {
	where, args := buildFilter(filter)
	query := "SELECT COUNT(*)" + postJoins + where

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// Update persists the mutable fields of a post.
func (r *PostgresPostRepository) Update(ctx context.Context, post *domain.Post) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $2, text = $3, pub_date = $4, category_id = $5, location_id = $6, is_published = $7
		WHERE id = $1
	`, post.ID, post.Title, post.Text, post.PubDate, post.CategoryID, post.LocationID, post.IsPublished)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", post.ID, domain.ErrNotFound)
	}
	return nil
}

// SetImageURL records the stored image location on a post.
func (r *PostgresPostRepository) SetImageURL(ctx context.Context, id, imageURL string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE posts SET image_url = $2 WHERE id = $1`, id, imageURL)
	if err != nil {
		return fmt.Errorf("set post image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a post. Comments go with it via the FK cascade, so
// the deletion is a single atomic statement.
func (r *PostgresPostRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
