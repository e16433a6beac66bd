package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
)

// Django's username charset, kept so identities round-trip with the
// external auth system.
var usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)

const (
	maxTitleLen    = 256
	maxCommentLen  = 2000
	maxUsernameLen = 150
	maxNameLen     = 150
)

// Validator provides validation methods for submitted fields.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePost validates the fields of a post submission.
func (v *Validator) ValidatePost(in *domain.PostInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, maxTitleLen).Error("title_too_long"),
		),
		validation.Field(&in.Text,
			validation.Required.Error("text_required"),
		),
	)
}

// ValidateComment validates a comment submission.
func (v *Validator) ValidateComment(in *domain.CommentInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Text,
			validation.Required.Error("text_required"),
			validation.Length(1, maxCommentLen).Error("text_too_long"),
		),
	)
}

// ValidateProfile validates a profile edit submission.
func (v *Validator) ValidateProfile(in *domain.ProfileInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Username,
			validation.Required.Error("username_required"),
			validation.Length(1, maxUsernameLen).Error("username_too_long"),
			validation.Match(usernameRegex).Error("invalid_username_format"),
		),
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&in.FirstName,
			validation.Length(0, maxNameLen).Error("first_name_too_long"),
		),
		validation.Field(&in.LastName,
			validation.Length(0, maxNameLen).Error("last_name_too_long"),
		),
	)
}

// IsValidationError reports whether err carries field-level validation
// failures rather than an infrastructure failure.
func IsValidationError(err error) bool {
	_, ok := err.(validation.Errors)
	return ok
}
