package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFilmName       = errors.New("film name is required")
	ErrDescriptionTooLong  = errors.New("film description exceeds 200 characters")
	ErrReleaseDateTooEarly = errors.New("release date is before the birth of cinema (1895-12-28)")
	ErrNonPositiveDuration = errors.New("film duration must be positive")
	ErrInvalidMpaID        = errors.New("invalid MPA rating id")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("email must contain the @ sign")
	ErrEmptyLogin       = errors.New("login is required")
	ErrLoginHasSpaces   = errors.New("login must not contain spaces")
	ErrEmptyBirthday    = errors.New("birthday is required")
	ErrBirthdayInFuture = errors.New("birthday cannot be in the future")
)
