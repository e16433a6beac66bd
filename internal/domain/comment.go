package domain

import "time"

// Comment represents a comment on a post. A comment always belongs to
// exactly one post and one author; deleting the post deletes its
// comments.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	Author *User `json:"author,omitempty"`
}

// OwnerID implements the ownership capability used by the
// authorization policy.
func (c *Comment) OwnerID() string {
	return c.AuthorID
}
