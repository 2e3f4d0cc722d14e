package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mkrasikov/go-filmorate/models"
)

func validUser() models.User {
	return models.User{
		ID:       1,
		Email:    "neo@matrix.io",
		Login:    "neo",
		Name:     "Thomas Anderson",
		Birthday: models.NewDate(1964, time.September, 13),
	}
}

func TestNewUserValidator(t *testing.T) {
	v := NewUserValidator()
	require.NotNil(t, v)
}

func TestUserValidate_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("User value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validUser()))
	})

	t.Run("User pointer", func(t *testing.T) {
		u := validUser()
		require.NoError(t, v.Validate(ctx, &u))
	})
}

func TestValidateUser(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validUser()))
	})

	t.Run("empty name is not a violation", func(t *testing.T) {
		u := validUser()
		u.Name = ""
		require.NoError(t, v.Validate(ctx, u))
	})

	t.Run("zero user_id falls through to storage lookup", func(t *testing.T) {
		u := validUser()
		u.ID = 0
		require.NoError(t, v.Validate(ctx, u))
		require.NoError(t, v.Validate(ctx, u, FieldUserID))
	})

	t.Run("negative user_id rejected on request", func(t *testing.T) {
		u := validUser()
		u.ID = -1
		require.NoError(t, v.Validate(ctx, u))
		require.ErrorIs(t, v.Validate(ctx, u, FieldUserID), ErrInvalidUserID)
	})

	t.Run("empty email", func(t *testing.T) {
		u := validUser()
		u.Email = ""
		require.ErrorIs(t, v.Validate(ctx, u, FieldEmail), ErrEmptyEmail)
	})

	t.Run("email without @", func(t *testing.T) {
		u := validUser()
		u.Email = "neo.matrix.io"
		require.ErrorIs(t, v.Validate(ctx, u, FieldEmail), ErrInvalidEmail)
	})

	t.Run("empty login", func(t *testing.T) {
		u := validUser()
		u.Login = ""
		require.ErrorIs(t, v.Validate(ctx, u, FieldLogin), ErrEmptyLogin)
	})

	t.Run("login with spaces", func(t *testing.T) {
		u := validUser()
		u.Login = "the one"
		require.ErrorIs(t, v.Validate(ctx, u, FieldLogin), ErrLoginHasSpaces)
	})

	t.Run("missing birthday", func(t *testing.T) {
		u := validUser()
		u.Birthday = models.Date{}
		require.ErrorIs(t, v.Validate(ctx, u, FieldBirthday), ErrEmptyBirthday)
	})

	t.Run("birthday in the future", func(t *testing.T) {
		u := validUser()
		u.Birthday = models.Date{Time: time.Now().AddDate(1, 0, 0)}
		require.ErrorIs(t, v.Validate(ctx, u, FieldBirthday), ErrBirthdayInFuture)
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validUser(), "no-such-field"), ErrUnknownField)
	})

	t.Run("all violations reported together", func(t *testing.T) {
		err := v.Validate(ctx, models.User{Login: "has space"})
		require.ErrorIs(t, err, ErrEmptyEmail)
		require.ErrorIs(t, err, ErrLoginHasSpaces)
		require.ErrorIs(t, err, ErrEmptyBirthday)
	})
}
