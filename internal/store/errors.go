package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFilmNotFound is returned when a film lookup or an update-by-id
	// affects no rows.
	ErrFilmNotFound = errors.New("film not found")

	// ErrUserNotFound is returned when a user lookup or an update-by-id
	// affects no rows, or when a friendship mutation references a user
	// that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrGenreNotFound is returned when a genre lookup matches no row.
	ErrGenreNotFound = errors.New("genre not found")

	// ErrMpaNotFound is returned when an MPA rating lookup matches no row.
	ErrMpaNotFound = errors.New("mpa rating not found")

	// ErrEmptyFilmName is returned by AddFilm before any storage access
	// when the film name is empty.
	ErrEmptyFilmName = errors.New("film name is empty")

	// ErrLikeAlreadyExists is returned when inserting a (film, user) like
	// pair that is already present; the composite primary key on the
	// "likes" table enforces pair uniqueness.
	ErrLikeAlreadyExists = errors.New("like already exists")

	// ErrGenreAlreadyAdded is returned when inserting a (film, genre)
	// association that is already present.
	ErrGenreAlreadyAdded = errors.New("genre already added to film")

	// ErrFriendAlreadyAdded is returned when inserting a (user, friend)
	// pair that is already present.
	ErrFriendAlreadyAdded = errors.New("friend already added")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
