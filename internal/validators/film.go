package validators

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/mkrasikov/go-filmorate/models"
)

// Field name constants used to specify which film fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldFilmName targets the film title.
	FieldFilmName = "name"

	// FieldDescription targets the film synopsis.
	FieldDescription = "description"

	// FieldReleaseDate targets the theatrical release date.
	FieldReleaseDate = "release_date"

	// FieldDuration targets the running time in minutes.
	FieldDuration = "duration"

	// FieldMpa targets the MPA rating reference.
	FieldMpa = "mpa"
)

// maxDescriptionLength caps the film synopsis, counted in runes.
const maxDescriptionLength = 200

// earliestReleaseDate is the date of the first public film screening; no
// film can predate it.
var earliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// FilmValidator implements the Validator interface for models.Film.
//
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments.
type FilmValidator struct {
}

// NewFilmValidator constructs a new FilmValidator and returns it as the
// Validator interface.
func NewFilmValidator() Validator {
	return &FilmValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both the
// value and pointer forms of models.Film are accepted; anything else yields
// ErrUnsupportedType.
//
// All violated rules are reported in one joined error.
func (v *FilmValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Film:
		return v.validateFilm(ctx, value, fields...)
	case *models.Film:
		return v.validateFilm(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateFilm checks the business rules of a single film.
//
// Default validated fields (when none specified):
// Name, Description, ReleaseDate, Duration, Mpa.
func (v *FilmValidator) validateFilm(_ context.Context, film models.Film, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFilmName, FieldDescription, FieldReleaseDate, FieldDuration, FieldMpa}
	}

	var violations []error
	for _, f := range fields {
		switch f {
		case FieldFilmName:
			if film.Name == "" {
				violations = append(violations, ErrEmptyFilmName)
			}
		case FieldDescription:
			if utf8.RuneCountInString(film.Description) > maxDescriptionLength {
				violations = append(violations, ErrDescriptionTooLong)
			}
		case FieldReleaseDate:
			if !film.ReleaseDate.IsZero() && film.ReleaseDate.Before(earliestReleaseDate) {
				violations = append(violations, ErrReleaseDateTooEarly)
			}
		case FieldDuration:
			if film.Duration <= 0 {
				violations = append(violations, ErrNonPositiveDuration)
			}
		case FieldMpa:
			if film.Mpa.ID <= 0 {
				violations = append(violations, ErrInvalidMpaID)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(violations...)
}
