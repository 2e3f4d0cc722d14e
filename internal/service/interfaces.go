package service

import (
	"context"

	"github.com/mkrasikov/go-filmorate/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

// FilmService is the business-logic contract for films, their genres and
// their likes. Implementations validate input before it reaches storage.
type FilmService interface {
	GetAllFilms(ctx context.Context) ([]models.Film, error)
	GetFilmByID(ctx context.Context, id int64) (models.Film, error)
	AddFilm(ctx context.Context, film models.Film) (models.Film, error)
	UpdateFilm(ctx context.Context, film models.Film) (models.Film, error)
	GetPopularFilms(ctx context.Context, count int) ([]models.Film, error)

	AddLike(ctx context.Context, filmID, userID int64) error
	DeleteLike(ctx context.Context, filmID, userID int64) error
}

// UserService is the business-logic contract for users and friendships.
type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)

	AddFriend(ctx context.Context, userID, friendID int64) error
	DeleteFriend(ctx context.Context, userID, friendID int64) error
	GetFriends(ctx context.Context, userID int64) ([]models.User, error)
	GetCommonFriends(ctx context.Context, userID, otherID int64) ([]models.User, error)
}

// GenreService exposes the genres lookup table.
type GenreService interface {
	GetAllGenres(ctx context.Context) ([]models.Genre, error)
	GetGenreByID(ctx context.Context, id int) (models.Genre, error)
}

// MpaService exposes the MPA ratings lookup table.
type MpaService interface {
	GetAllMpa(ctx context.Context) ([]models.Mpa, error)
	GetMpaByID(ctx context.Context, id int) (models.Mpa, error)
}
