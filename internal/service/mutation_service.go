package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
	"github.com/Kashikuroni/YP-Blogicum/internal/logger"
	"github.com/Kashikuroni/YP-Blogicum/internal/metrics"
	"github.com/Kashikuroni/YP-Blogicum/internal/policy"
	"github.com/Kashikuroni/YP-Blogicum/internal/repository"
	"github.com/Kashikuroni/YP-Blogicum/internal/storage"
	"github.com/Kashikuroni/YP-Blogicum/internal/validator"
)

// MutationService handles post and comment writes. Every method
// follows the same guard order: authentication, then existence, then
// ownership, then validation.
type MutationService struct {
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	images       storage.ImageStorage
	validator    *validator.Validator
	sanitizer    *bluemonday.Policy

	now func() time.Time
}

// NewMutationService creates a new MutationService.
func NewMutationService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
	images storage.ImageStorage,
	v *validator.Validator,
) *MutationService {
	return &MutationService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		images:       images,
		validator:    v,
		sanitizer:    bluemonday.UGCPolicy(),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source. Test hook.
func (s *MutationService) WithClock(now func() time.Time) *MutationService {
	s.now = now
	return s
}

func requireViewer(viewer *domain.Viewer) error {
	if !viewer.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}
	return nil
}

// checkReferences verifies that the submitted category and location
// ids point at existing rows.
func (s *MutationService) checkReferences(ctx context.Context, input *domain.PostInput) error {
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return err
		}
	}
	if input.LocationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *input.LocationID); err != nil {
			return err
		}
	}
	return nil
}

// CreatePost publishes a new post owned by the viewer. A missing
// PubDate defaults to the moment of submission.
func (s *MutationService) CreatePost(ctx context.Context, viewer *domain.Viewer, input *domain.PostInput) (*domain.Post, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePost(input); err != nil {
		metrics.ObservePostMutation("create", "rejected")
		return nil, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	now := s.now()
	pubDate := now
	if input.PubDate != nil {
		pubDate = input.PubDate.UTC()
	}

	post := &domain.Post{
		ID:          uuid.New().String(),
		Title:       s.sanitizer.Sanitize(input.Title),
		Text:        s.sanitizer.Sanitize(input.Text),
		PubDate:     pubDate,
		AuthorID:    viewer.UserID,
		CategoryID:  input.CategoryID,
		LocationID:  input.LocationID,
		IsPublished: true,
		CreatedAt:   now,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		metrics.ObservePostMutation("create", "error")
		return nil, err
	}

	metrics.ObservePostMutation("create", "ok")
	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("reload post: %w", err)
	}
	return created, nil
}

// UpdatePost edits a post the viewer owns. Existence is reported
// before ownership, so a non-owner learns the post exists but not
// more.
func (s *MutationService) UpdatePost(ctx context.Context, id string, viewer *domain.Viewer, input *domain.PostInput) (*domain.Post, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(post, viewer) {
		metrics.ObservePostMutation("update", "denied")
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrPermissionDenied)
	}
	if err := s.validator.ValidatePost(input); err != nil {
		metrics.ObservePostMutation("update", "rejected")
		return nil, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	post.Title = s.sanitizer.Sanitize(input.Title)
	post.Text = s.sanitizer.Sanitize(input.Text)
	if input.PubDate != nil {
		post.PubDate = input.PubDate.UTC()
	}
	post.CategoryID = input.CategoryID
	post.LocationID = input.LocationID

	if err := s.postRepo.Update(ctx, post); err != nil {
		metrics.ObservePostMutation("update", "error")
		return nil, err
	}

	metrics.ObservePostMutation("update", "ok")
	updated, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload post: %w", err)
	}
	return updated, nil
}

// DeletePost removes a post the viewer owns. Comments go with it in
// the same statement.
func (s *MutationService) DeletePost(ctx context.Context, id string, viewer *domain.Viewer) error {
	if err := requireViewer(viewer); err != nil {
		return err
	}
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanModify(post, viewer) {
		metrics.ObservePostMutation("delete", "denied")
		return fmt.Errorf("post %s: %w", id, domain.ErrPermissionDenied)
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		metrics.ObservePostMutation("delete", "error")
		return err
	}
	metrics.ObservePostMutation("delete", "ok")
	return nil
}

// AttachPostImage uploads an image to object storage and records its
// URL on the post. Owner only.
func (s *MutationService) AttachPostImage(ctx context.Context, id string, viewer *domain.Viewer, fileName string, file io.Reader, size int64) (*domain.Post, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(post, viewer) {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrPermissionDenied)
	}

	prevImage := post.ImageURL

	_, imageURL, err := s.images.UploadImage(ctx, id, fileName, file, size)
	if err != nil {
		metrics.ObserveImageUpload("error")
		return nil, fmt.Errorf("upload image: %w", err)
	}
	if err := s.postRepo.SetImageURL(ctx, id, imageURL); err != nil {
		metrics.ObserveImageUpload("error")
		return nil, err
	}

	// The replaced object is removed only after the new URL is
	// recorded. A failed delete is logged, not returned.
	if prevImage != nil {
		if err := s.images.DeleteImage(ctx, *prevImage); err != nil {
			logger.Warn("failed to delete replaced image", "post_id", id, "error", err)
		}
	}

	metrics.ObserveImageUpload("ok")
	post.ImageURL = &imageURL
	return post, nil
}

// CreateComment adds a comment to an existing post. The post only has
// to exist; commenting is not gated on visibility.
func (s *MutationService) CreateComment(ctx context.Context, postID string, viewer *domain.Viewer, input *domain.CommentInput) (*domain.Comment, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateComment(input); err != nil {
		metrics.ObserveCommentMutation("create", "rejected")
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		PostID:    postID,
		AuthorID:  viewer.UserID,
		Text:      s.sanitizer.Sanitize(input.Text),
		CreatedAt: s.now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		metrics.ObserveCommentMutation("create", "error")
		return nil, err
	}

	metrics.ObserveCommentMutation("create", "ok")
	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, fmt.Errorf("reload comment: %w", err)
	}
	return created, nil
}

// getOwnComment loads a comment, checks that it belongs to the
// addressed post, and checks ownership.
func (s *MutationService) getOwnComment(ctx context.Context, postID, commentID string, viewer *domain.Viewer) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}
	if !policy.CanModify(comment, viewer) {
		return nil, fmt.Errorf("comment %s: %w", commentID, domain.ErrPermissionDenied)
	}
	return comment, nil
}

// guardResult maps a failed existence/ownership check to a metric
// result label, keeping 404s and 403s in separate series.
func guardResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		return "denied"
	case errors.Is(err, domain.ErrNotFound):
		return "missing"
	default:
		return "error"
	}
}

// UpdateComment edits a comment the viewer owns.
func (s *MutationService) UpdateComment(ctx context.Context, postID, commentID string, viewer *domain.Viewer, input *domain.CommentInput) (*domain.Comment, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	comment, err := s.getOwnComment(ctx, postID, commentID, viewer)
	if err != nil {
		metrics.ObserveCommentMutation("update", guardResult(err))
		return nil, err
	}
	if err := s.validator.ValidateComment(input); err != nil {
		metrics.ObserveCommentMutation("update", "rejected")
		return nil, err
	}

	comment.Text = s.sanitizer.Sanitize(input.Text)
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		metrics.ObserveCommentMutation("update", "error")
		return nil, err
	}

	metrics.ObserveCommentMutation("update", "ok")
	return comment, nil
}

// DeleteComment removes a comment the viewer owns.
func (s *MutationService) DeleteComment(ctx context.Context, postID, commentID string, viewer *domain.Viewer) error {
	if err := requireViewer(viewer); err != nil {
		return err
	}
	if _, err := s.getOwnComment(ctx, postID, commentID, viewer); err != nil {
		metrics.ObserveCommentMutation("delete", guardResult(err))
		return err
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		metrics.ObserveCommentMutation("delete", "error")
		return err
	}
	metrics.ObserveCommentMutation("delete", "ok")
	return nil
}
