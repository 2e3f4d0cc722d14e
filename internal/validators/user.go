package validators

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mkrasikov/go-filmorate/models"
)

// Field name constants used to specify which user fields should be validated.
const (
	// FieldUserID targets the storage-assigned user identifier; only
	// meaningful for update requests.
	FieldUserID = "user_id"

	// FieldEmail targets the user's email address.
	FieldEmail = "email"

	// FieldLogin targets the unique login name.
	FieldLogin = "login"

	// FieldBirthday targets the user's date of birth.
	FieldBirthday = "birthday"
)

// UserValidator implements the Validator interface for models.User.
//
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments. The user ID is not
// part of the default field set: creation requests carry no id, so
// FieldUserID must be requested explicitly when validating updates.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both the
// value and pointer forms of models.User are accepted; anything else yields
// ErrUnsupportedType.
//
// All violated rules are reported in one joined error.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateUser checks the business rules of a single user.
//
// Default validated fields (when none specified): Email, Login, Birthday.
// An empty display name is not a violation; the service substitutes the
// login for it.
func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldLogin, FieldBirthday}
	}

	var violations []error
	for _, f := range fields {
		switch f {
		case FieldUserID:
			// Zero is not a violation: an update with id 0 falls through to
			// the repository and surfaces as not-found.
			if user.ID < 0 {
				violations = append(violations, ErrInvalidUserID)
			}
		case FieldEmail:
			switch {
			case user.Email == "":
				violations = append(violations, ErrEmptyEmail)
			case !strings.Contains(user.Email, "@"):
				violations = append(violations, ErrInvalidEmail)
			}
		case FieldLogin:
			switch {
			case user.Login == "":
				violations = append(violations, ErrEmptyLogin)
			case strings.ContainsAny(user.Login, " \t"):
				violations = append(violations, ErrLoginHasSpaces)
			}
		case FieldBirthday:
			switch {
			case user.Birthday.IsZero():
				violations = append(violations, ErrEmptyBirthday)
			case user.Birthday.After(time.Now()):
				violations = append(violations, ErrBirthdayInFuture)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(violations...)
}
