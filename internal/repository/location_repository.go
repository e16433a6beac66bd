package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
)

// PostgresLocationRepository implements LocationRepository using PostgreSQL.
type PostgresLocationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresLocationRepository creates a new PostgresLocationRepository.
func NewPostgresLocationRepository(pool *pgxpool.Pool) *PostgresLocationRepository {
	return &PostgresLocationRepository{pool: pool}
}

// GetByID fetches one location by id.
func (r *PostgresLocationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	var l domain.Location
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, is_published, created_at
		FROM locations WHERE id = $1
	`, id).Scan(&l.ID, &l.Name, &l.IsPublished, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("location %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}
