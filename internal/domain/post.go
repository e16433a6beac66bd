package domain

import "time"

// Post represents a post entity in the system. Author is required;
// category and location are optional references. A post with a future
// PubDate or IsPublished=false is only visible to its author.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	PubDate     time.Time `json:"pub_date"`
	AuthorID    string    `json:"author_id"`
	CategoryID  *string   `json:"category_id,omitempty"`
	LocationID  *string   `json:"location_id,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`

	// Eagerly resolved references. Listings always populate Author,
	// and Category/Location when the post references them.
	Author   *User     `json:"author,omitempty"`
	Category *Category `json:"category,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// OwnerID implements the ownership capability used by the
// authorization policy.
func (p *Post) OwnerID() string {
	return p.AuthorID
}

// PostDetail is the detail-surface view of a post: the post itself
// plus the comments visible at the time of the request.
type PostDetail struct {
	Post     *Post      `json:"post"`
	Comments []*Comment `json:"comments"`
}
