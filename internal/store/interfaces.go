package store

import (
	"context"

	"github.com/mkrasikov/go-filmorate/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repositories.go -package=mocks

// FilmRepository is the data-access contract for films, their genre
// associations, and their likes.
type FilmRepository interface {
	GetAllFilms(ctx context.Context) ([]models.Film, error)
	FindFilmByID(ctx context.Context, id int64) (models.Film, error)
	AddFilm(ctx context.Context, film models.Film) (models.Film, error)
	UpdateFilm(ctx context.Context, film models.Film) (models.Film, error)
	GetPopularFilms(ctx context.Context, count int) ([]models.Film, error)

	AddGenreToFilm(ctx context.Context, filmID int64, genreID int) error
	DeleteGenreFromFilm(ctx context.Context, filmID int64, genreID int) error
	ClearGenresFromFilm(ctx context.Context, filmID int64) error
	GetGenresByFilm(ctx context.Context, filmID int64) ([]models.Genre, error)

	GetLikesByFilm(ctx context.Context, filmID int64) ([]int64, error)
	AddLike(ctx context.Context, filmID, userID int64) error
	DeleteLike(ctx context.Context, filmID, userID int64) error
}

// UserRepository is the data-access contract for users and friendships.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)

	AddFriend(ctx context.Context, userID, friendID int64) error
	DeleteFriend(ctx context.Context, userID, friendID int64) error
	GetFriendIDs(ctx context.Context, userID int64) ([]int64, error)
	GetFriends(ctx context.Context, userID int64) ([]models.User, error)
	GetCommonFriends(ctx context.Context, userID, otherID int64) ([]models.User, error)
}

// GenreRepository is the read-only contract for the genres lookup table.
type GenreRepository interface {
	GetAllGenres(ctx context.Context) ([]models.Genre, error)
	FindGenreByID(ctx context.Context, id int) (models.Genre, error)
}

// MpaRepository is the read-only contract for the mpa lookup table.
type MpaRepository interface {
	GetAllMpa(ctx context.Context) ([]models.Mpa, error)
	FindMpaByID(ctx context.Context, id int) (models.Mpa, error)
}
