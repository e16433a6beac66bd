package handler

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
)

var htmlSanitizer = bluemonday.UGCPolicy()

// renderMarkdown converts stored post text to sanitized HTML for the
// detail surface. Stored text is already sanitized on write; the
// rendered output is sanitized again because markdown can smuggle raw
// HTML through.
func renderMarkdown(text string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(text))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	rendered := markdown.Render(doc, renderer)

	return string(htmlSanitizer.SanitizeBytes(rendered))
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CreatedAt string `json:"created_at"`
}

func toUserResponse(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt.Format(TimeFormat),
	}
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

func toCategoryResponse(c *domain.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Title: c.Title, Slug: c.Slug}
}

// LocationResponse represents a location in API responses.
type LocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toLocationResponse(l *domain.Location) *LocationResponse {
	if l == nil {
		return nil
	}
	return &LocationResponse{ID: l.ID, Name: l.Name}
}

// PostResponse represents a post in API responses. TextHTML is only
// set on the detail surface.
type PostResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Text        string            `json:"text"`
	TextHTML    string            `json:"text_html,omitempty"`
	PubDate     string            `json:"pub_date"`
	IsPublished bool              `json:"is_published"`
	ImageURL    *string           `json:"image_url,omitempty"`
	Author      *UserResponse     `json:"author,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Location    *LocationResponse `json:"location,omitempty"`
	CreatedAt   string            `json:"created_at"`
}

func toPostResponse(p *domain.Post) *PostResponse {
	return &PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Text:        p.Text,
		PubDate:     p.PubDate.Format(TimeFormat),
		IsPublished: p.IsPublished,
		ImageURL:    p.ImageURL,
		Author:      toUserResponse(p.Author),
		Category:    toCategoryResponse(p.Category),
		Location:    toLocationResponse(p.Location),
		CreatedAt:   p.CreatedAt.Format(TimeFormat),
	}
}

// CommentResponse represents a comment in API responses.
type CommentResponse struct {
	ID        string        `json:"id"`
	PostID    string        `json:"post_id"`
	Text      string        `json:"text"`
	Author    *UserResponse `json:"author,omitempty"`
	CreatedAt string        `json:"created_at"`
}

func toCommentResponse(c *domain.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Text:      c.Text,
		Author:    toUserResponse(c.Author),
		CreatedAt: c.CreatedAt.Format(TimeFormat),
	}
}

// PageResponse represents one page of a post listing.
type PageResponse struct {
	Posts       []*PostResponse `json:"posts"`
	Page        int             `json:"page"`
	TotalPages  int             `json:"total_pages"`
	TotalItems  int             `json:"total_items"`
	HasNext     bool            `json:"has_next"`
	HasPrevious bool            `json:"has_previous"`
}

func toPageResponse(page *domain.PostPage) *PageResponse {
	posts := make([]*PostResponse, 0, len(page.Posts))
	for _, p := range page.Posts {
		posts = append(posts, toPostResponse(p))
	}
	return &PageResponse{
		Posts:       posts,
		Page:        page.Number,
		TotalPages:  page.TotalPages,
		TotalItems:  page.TotalItems,
		HasNext:     page.HasNext,
		HasPrevious: page.HasPrevious,
	}
}

// PostDetailResponse is the detail surface: the post with rendered
// text plus its comments.
type PostDetailResponse struct {
	Post     *PostResponse      `json:"post"`
	Comments []*CommentResponse `json:"comments"`
}

func toPostDetailResponse(detail *domain.PostDetail) *PostDetailResponse {
	post := toPostResponse(detail.Post)
	post.TextHTML = renderMarkdown(detail.Post.Text)

	comments := make([]*CommentResponse, 0, len(detail.Comments))
	for _, c := range detail.Comments {
		comments = append(comments, toCommentResponse(c))
	}
	return &PostDetailResponse{Post: post, Comments: comments}
}
