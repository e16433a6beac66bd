package service

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
	"github.com/Kashikuroni/YP-Blogicum/internal/repository"
	"github.com/Kashikuroni/YP-Blogicum/internal/validator"
)

// ProfileService handles public profile reads and self-profile edits.
type ProfileService struct {
	userRepo  repository.UserRepository
	validator *validator.Validator
}

// NewProfileService creates a new ProfileService.
func NewProfileService(userRepo repository.UserRepository, v *validator.Validator) *ProfileService {
	return &ProfileService{userRepo: userRepo, validator: v}
}

// GetProfile returns a user's profile by username.
func (s *ProfileService) GetProfile(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// GetProfileByID returns a user's profile by id. The self-profile
// surface resolves the caller this way: the username claim in a token
// goes stale after a rename, the id never does.
func (s *ProfileService) GetProfileByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile edits the viewer's own profile. A username collision
// surfaces as a field-level validation failure, same as a malformed
// one.
func (s *ProfileService) UpdateProfile(ctx context.Context, viewer *domain.Viewer, input *domain.ProfileInput) (*domain.User, error) {
	if !viewer.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if err := s.validator.ValidateProfile(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}

	user.Username = input.Username
	user.Email = input.Email
	user.FirstName = input.FirstName
	user.LastName = input.LastName

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, validation.Errors{
				"username": validation.NewError("username_taken", "username already taken"),
			}
		}
		return nil, err
	}

	updated, err := s.userRepo.GetByID(ctx, viewer.UserID)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return updated, nil
}
