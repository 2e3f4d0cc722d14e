package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/mkrasikov/go-filmorate/models"
)

// Film queries. Every film read joins the MPA lookup table; the rating name
// travels under the "mpa_name" alias, which the row mapper depends on.
const (
	filmColumns = `f.film_id, f.name, f.description, f.release_date, f.duration, f.mpa_id, m.name AS mpa_name`

	getAllFilms = `SELECT ` + filmColumns + `
    FROM films AS f
    JOIN mpa AS m ON f.mpa_id = m.mpa_id;`

	findFilmByID = `SELECT ` + filmColumns + `
    FROM films AS f
    JOIN mpa AS m ON f.mpa_id = m.mpa_id
    WHERE f.film_id = $1;`

	insertFilm = `INSERT INTO films (name, description, release_date, duration, mpa_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING film_id;`

	updateFilm = `UPDATE films
    SET name = $1, description = $2, release_date = $3, duration = $4, mpa_id = $5
    WHERE film_id = $6;`
)

// Genre association and like queries.
const (
	insertFilmGenre = `INSERT INTO film_genre (film_id, genre_id)
    VALUES ($1, $2);`

	deleteFilmGenre = `DELETE FROM film_genre
    WHERE film_id = $1 AND genre_id = $2;`

	clearFilmGenres = `DELETE FROM film_genre
    WHERE film_id = $1;`

	getGenresByFilm = `SELECT g.genre_id, g.name
    FROM film_genre AS fg
    JOIN genres AS g ON fg.genre_id = g.genre_id
    WHERE fg.film_id = $1
    ORDER BY g.genre_id;`

	getLikesByFilm = `SELECT user_id
    FROM likes
    WHERE film_id = $1;`

	insertLike = `INSERT INTO likes (film_id, user_id)
    VALUES ($1, $2);`

	deleteLike = `DELETE FROM likes
    WHERE film_id = $1 AND user_id = $2;`
)

// User and friendship queries.
const (
	userColumns = `user_id, email, login, name, birthday`

	insertUser = `INSERT INTO users (email, login, name, birthday)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id;`

	updateUser = `UPDATE users
    SET email = $1, login = $2, name = $3, birthday = $4
    WHERE user_id = $5;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	getAllUsers = `SELECT ` + userColumns + `
    FROM users;`

	insertFriend = `INSERT INTO friendship (user_id, friend_id)
    VALUES ($1, $2);`

	deleteFriend = `DELETE FROM friendship
    WHERE user_id = $1 AND friend_id = $2;`

	getFriendIDs = `SELECT friend_id
    FROM friendship
    WHERE user_id = $1;`

	getFriends = `SELECT u.user_id, u.email, u.login, u.name, u.birthday
    FROM friendship AS f
    JOIN users AS u ON f.friend_id = u.user_id
    WHERE f.user_id = $1;`

	getCommonFriends = `SELECT u.user_id, u.email, u.login, u.name, u.birthday
    FROM friendship AS f1
    JOIN friendship AS f2 ON f1.friend_id = f2.friend_id
    JOIN users AS u ON u.user_id = f1.friend_id
    WHERE f1.user_id = $1 AND f2.user_id = $2;`
)

// Lookup-table queries.
const (
	getAllGenres = `SELECT genre_id, name
    FROM genres
    ORDER BY genre_id;`

	findGenreByID = `SELECT genre_id, name
    FROM genres
    WHERE genre_id = $1;`

	getAllMpa = `SELECT mpa_id, name
    FROM mpa
    ORDER BY mpa_id;`

	findMpaByID = `SELECT mpa_id, name
    FROM mpa
    WHERE mpa_id = $1;`
)

// buildPopularFilmsQuery builds the like-count ranking query: likes are
// grouped per film in a subquery, the top rows are LEFT JOINed back onto the
// films table (so zero-like films may still appear), and the outer query
// orders by the aggregated count. NULLS LAST keeps liked films ahead of
// films the subquery never saw.
func buildPopularFilmsQuery(count int) (string, []any, error) {
	return sq.Select(
		"f.film_id", "f.name", "f.description", "f.release_date", "f.duration", "f.mpa_id", "m.name AS mpa_name",
	).
		From("films AS f").
		Join("mpa AS m ON f.mpa_id = m.mpa_id").
		LeftJoin(
			"(SELECT film_id, COUNT(user_id) AS likes_qty FROM likes GROUP BY film_id ORDER BY likes_qty DESC LIMIT ?) AS top ON f.film_id = top.film_id",
			count,
		).
		OrderBy("top.likes_qty DESC NULLS LAST").
		Limit(uint64(count)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildFilmGenresInsert builds a single multi-row INSERT for all genre
// associations of a film. Returns an empty query when the genre set is empty.
func buildFilmGenresInsert(filmID int64, genres []models.Genre) (string, []any, error) {
	if len(genres) == 0 {
		return "", nil, nil
	}

	builder := sq.Insert("film_genre").
		Columns("film_id", "genre_id").
		PlaceholderFormat(sq.Dollar)

	for _, genre := range genres {
		builder = builder.Values(filmID, genre.ID)
	}

	return builder.ToSql()
}
