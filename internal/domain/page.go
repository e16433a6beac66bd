package domain

// PageSize is the fixed number of posts per listing page.
const PageSize = 10

// PostPage is one page of a post listing.
type PostPage struct {
	Posts       []*Post `json:"posts"`
	Number      int     `json:"number"`
	TotalPages  int     `json:"total_pages"`
	TotalItems  int     `json:"total_items"`
	HasNext     bool    `json:"has_next"`
	HasPrevious bool    `json:"has_previous"`
}

// ScopeKind selects one of the three listing surfaces.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeCategory
	ScopeAuthor
)

// Scope identifies what a listing call is ranging over.
type Scope struct {
	Kind         ScopeKind
	CategorySlug string
	Username     string
}

// AllPosts scopes a listing to every live post.
func AllPosts() Scope {
	return Scope{Kind: ScopeAll}
}

// CategoryPosts scopes a listing to one category by slug.
func CategoryPosts(slug string) Scope {
	return Scope{Kind: ScopeCategory, CategorySlug: slug}
}

// AuthorPosts scopes a listing to one author's profile by username.
func AuthorPosts(username string) Scope {
	return Scope{Kind: ScopeAuthor, Username: username}
}
