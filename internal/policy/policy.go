// Package policy holds the post-visibility and ownership-authorization
// predicates. Both are pure: the caller snapshots "now" once per
// request and threads it in, so a post cannot flip visibility halfway
// through assembling a page.
package policy

import (
	"time"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
)

// Owned is the capability an entity exposes to the authorization
// policy: who owns it.
type Owned interface {
	OwnerID() string
}

// IsVisible reports whether viewer may see post as of the given
// instant. The author always sees their own posts, drafts and
// future-dated ones included. Everyone else sees a post only when it
// is published, its category (if any) is published, and its pub date
// has passed.
func IsVisible(post *domain.Post, viewer *domain.Viewer, asOf time.Time) bool {
	if viewer.IsAuthenticated() && viewer.UserID == post.AuthorID {
		return true
	}
	if !post.IsPublished {
		return false
	}
	if post.Category != nil && !post.Category.IsPublished {
		return false
	}
	return !post.PubDate.After(asOf)
}

// CanModify reports whether viewer may mutate or delete the entity.
// Only the owner may, and anonymous viewers never may.
func CanModify(entity Owned, viewer *domain.Viewer) bool {
	return viewer.IsAuthenticated() && viewer.UserID == entity.OwnerID()
}
