package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

const commentColumns = `
	cm.id, cm.post_id, cm.author_id, cm.text, cm.created_at,
	u.username, u.email, u.first_name, u.last_name, u.created_at, u.updated_at`

const commentJoins = `
	FROM comments cm
	JOIN users u ON u.id = cm.author_id`

func scanComment(row rowScanner) (*domain.Comment, error) {
	var (
		c      domain.Comment
		author domain.User
	)
	err := row.Scan(
		&c.ID, &c.PostID, &c.AuthorID, &c.Text, &c.CreatedAt,
		&author.Username, &author.Email, &author.FirstName, &author.LastName,
		&author.CreatedAt, &author.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	author.ID = c.AuthorID
	c.Author = &author
	return &c, nil
}

// Create inserts a new comment.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, post_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, comment.ID, comment.PostID, comment.AuthorID, comment.Text, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID fetches one comment with its author resolved.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	row := r.pool.QueryRow(ctx, "SELECT"+commentColumns+commentJoins+" WHERE cm.id = $1", id)

	comment, err := scanComment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return comment, nil
}

// ListByPost returns a post's comments created up to asOf, oldest
// first.
func (r *PostgresCommentRepository) ListByPost(ctx context.Context, postID string, asOf time.Time) ([]*domain.Comment, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT"+commentColumns+commentJoins+" WHERE cm.post_id = $1 AND cm.created_at <= $2 ORDER BY cm.created_at ASC",
		postID, asOf)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Update persists an edited comment text.
func (r *PostgresCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	tag, err := r.pool.Exec(ctx, `UPDATE comments SET text = $2 WHERE id = $1`, comment.ID, comment.Text)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", comment.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a comment.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
