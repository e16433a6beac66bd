package domain

import "time"

// Location is an optional attribute of a post. Administrator-managed,
// unpublished rather than deleted.
type Location struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}
