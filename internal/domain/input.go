package domain

import "time"

// PostInput carries the author-submitted fields of a post. PubDate is
// optional; creation defaults it to the moment of submission.
type PostInput struct {
	Title      string     `json:"title"`
	Text       string     `json:"text"`
	PubDate    *time.Time `json:"pub_date,omitempty"`
	CategoryID *string    `json:"category_id,omitempty"`
	LocationID *string    `json:"location_id,omitempty"`
}

// CommentInput carries the author-submitted fields of a comment.
type CommentInput struct {
	Text string `json:"text"`
}

// ProfileInput carries the fields a user may edit on their own
// profile.
type ProfileInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
