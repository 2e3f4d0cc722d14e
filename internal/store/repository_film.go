package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/models"
)

// filmRepository is the PostgreSQL-backed implementation of [FilmRepository].
// It issues direct parameterised statements against the "films", "film_genre"
// and "likes" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type filmRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFilmRepository constructs a [FilmRepository] backed by the provided
// database connection and logger.
func NewFilmRepository(db *DB, logger *logger.Logger) FilmRepository {
	logger.Debug().Msg("creating film repository")
	return &filmRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllFilms returns every film with its MPA rating joined in. No
// pagination, no filtering; an empty slice when the table is empty.
// Genre associations are not populated; see [FilmRepository.GetGenresByFilm].
func (r *filmRepository) GetAllFilms(ctx context.Context) ([]models.Film, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllFilms)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.GetAllFilms").Msg("failed to execute query for getting all films")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanFilms(ctx, rows)
}

// FindFilmByID returns a single film with its MPA rating joined in.
//
// Error handling:
//   - No matching row → [ErrFilmNotFound], logged at warning level with the id.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *filmRepository) FindFilmByID(ctx context.Context, id int64) (models.Film, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findFilmByID, id)

	film, err := scanFilm(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Int64("film_id", id).Msg("film not found")
			return models.Film{}, fmt.Errorf("film %d: %w", id, ErrFilmNotFound)
		}
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.FindFilmByID").Int64("film_id", id).Msg("error: scanning error")
		return models.Film{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return film, nil
}

// AddFilm persists a new film and its genre associations and returns the film
// with the storage-assigned id populated.
//
// An empty name is rejected with [ErrEmptyFilmName] before any storage
// access. The film insert and the genre-association inserts run in a single
// transaction: a failure in any step rolls back the whole operation, so a
// film is never persisted with a partial genre set.
func (r *filmRepository) AddFilm(ctx context.Context, film models.Film) (models.Film, error) {
	log := logger.FromContext(ctx)

	if film.Name == "" {
		log.Error().Msg("film name is empty, nothing to save")
		return models.Film{}, ErrEmptyFilmName
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.AddFilm").Msg("error during opening transaction")
		return models.Film{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, insertFilm,
		film.Name, film.Description, film.ReleaseDate, film.Duration, film.Mpa.ID)
	if err := row.Scan(&film.ID); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.AddFilm").Msg("error: scanning generated film id")
		return models.Film{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := insertGenresTx(ctx, tx, film.ID, film.Genres); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.AddFilm").Int64("film_id", film.ID).Msg("error saving genre associations")
		return models.Film{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.AddFilm").Msg("error committing transaction")
		return models.Film{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Int64("film_id", film.ID).Str("name", film.Name).Msg("film saved")
	return film, nil
}

// UpdateFilm replaces all scalar columns of the film row identified by
// film.ID, then replaces its genre associations wholesale
// (delete-all-then-insert-all). Update and genre replacement run in one
// transaction.
//
// If no row matches film.ID, [ErrFilmNotFound] is returned (logged at
// warning level) and nothing is inserted.
func (r *filmRepository) UpdateFilm(ctx context.Context, film models.Film) (models.Film, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.UpdateFilm").Msg("error during opening transaction")
		return models.Film{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, updateFilm,
		film.Name, film.Description, film.ReleaseDate, film.Duration, film.Mpa.ID, film.ID)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.UpdateFilm").Int64("film_id", film.ID).Msg("error executing film update")
		return models.Film{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		log.Warn().Int64("film_id", film.ID).Msg("film not found")
		return models.Film{}, fmt.Errorf("film %d: %w", film.ID, ErrFilmNotFound)
	}

	if _, err := tx.ExecContext(ctx, clearFilmGenres, film.ID); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.UpdateFilm").Int64("film_id", film.ID).Msg("error clearing genre associations")
		return models.Film{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := insertGenresTx(ctx, tx, film.ID, film.Genres); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.UpdateFilm").Int64("film_id", film.ID).Msg("error saving genre associations")
		return models.Film{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.UpdateFilm").Msg("error committing transaction")
		return models.Film{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return film, nil
}

// GetPopularFilms returns up to count films ordered by descending like
// count. Films with zero likes may appear after all liked films; ordering
// among ties is whatever the database yields.
func (r *filmRepository) GetPopularFilms(ctx context.Context, count int) ([]models.Film, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPopularFilmsQuery(count)
	if err != nil {
		log.Err(err).Str("func", "*filmRepository.GetPopularFilms").Msg("failed to build ranking query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.GetPopularFilms").Int("count", count).Msg("failed to execute ranking query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanFilms(ctx, rows)
}

// AddGenreToFilm inserts a single (film, genre) association row.
// A duplicate pair violates the composite primary key and surfaces as
// [ErrGenreAlreadyAdded].
func (r *filmRepository) AddGenreToFilm(ctx context.Context, filmID int64, genreID int) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertFilmGenre, filmID, genreID); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.AddGenreToFilm").Int64("film_id", filmID).Int("genre_id", genreID).Msg("error inserting genre association")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrGenreAlreadyAdded
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("film %d: %w", filmID, ErrFilmNotFound)
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// DeleteGenreFromFilm removes a single (film, genre) association row.
// Deleting an absent pair is a no-op.
func (r *filmRepository) DeleteGenreFromFilm(ctx context.Context, filmID int64, genreID int) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteFilmGenre, filmID, genreID); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.DeleteGenreFromFilm").Int64("film_id", filmID).Int("genre_id", genreID).Msg("error deleting genre association")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ClearGenresFromFilm removes every genre association of the film.
func (r *filmRepository) ClearGenresFromFilm(ctx context.Context, filmID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, clearFilmGenres, filmID); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.ClearGenresFromFilm").Int64("film_id", filmID).Msg("error clearing genre associations")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetGenresByFilm returns the genres attached to a film ordered by genre id.
func (r *filmRepository) GetGenresByFilm(ctx context.Context, filmID int64) ([]models.Genre, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getGenresByFilm, filmID)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.GetGenresByFilm").Int64("film_id", filmID).Msg("failed to execute query for film genres")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	genres := make([]models.Genre, 0, 8)
	for rows.Next() {
		var genre models.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.GetGenresByFilm").Msg("failed to scan genre row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		genres = append(genres, genre)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.GetGenresByFilm").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return genres, nil
}

// GetLikesByFilm returns the identifiers of users who liked the film, in
// storage order.
func (r *filmRepository) GetLikesByFilm(ctx context.Context, filmID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getLikesByFilm, filmID)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.GetLikesByFilm").Int64("film_id", filmID).Msg("failed to execute query for film likes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	userIDs := make([]int64, 0, 16)
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.GetLikesByFilm").Msg("failed to scan like row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.GetLikesByFilm").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return userIDs, nil
}

// AddLike records that userID liked filmID.
//
// Error handling:
//   - Duplicate (film, user) pair → [ErrLikeAlreadyExists] (composite PK).
//   - Unknown film or user (FK violation) → [ErrFilmNotFound] / [ErrUserNotFound].
func (r *filmRepository) AddLike(ctx context.Context, filmID, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertLike, filmID, userID); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.AddLike").Int64("film_id", filmID).Int64("user_id", userID).Msg("error inserting like")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrLikeAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return likeReferenceError(err, filmID, userID)
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// DeleteLike removes the (film, user) like pair. Deleting an absent pair is
// a no-op.
func (r *filmRepository) DeleteLike(ctx context.Context, filmID, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteLike, filmID, userID); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*filmRepository.DeleteLike").Int64("film_id", filmID).Int64("user_id", userID).Msg("error deleting like")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// insertGenresTx writes all genre associations of a film inside the caller's
// transaction as one multi-row INSERT. A no-op for an empty genre set.
func insertGenresTx(ctx context.Context, tx *sql.Tx, filmID int64, genres []models.Genre) error {
	query, args, err := buildFilmGenresInsert(filmID, genres)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if query == "" {
		return nil
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrGenreAlreadyAdded
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// likeReferenceError narrows a foreign-key violation on the likes table to
// the entity whose reference failed, based on the violated constraint name.
func likeReferenceError(err error, filmID, userID int64) error {
	if constraintName(err) == "likes_user_id_fkey" {
		return fmt.Errorf("user %d: %w", userID, ErrUserNotFound)
	}
	return fmt.Errorf("film %d: %w", filmID, ErrFilmNotFound)
}

// scanFilm maps a single joined film row onto a [models.Film] with its
// embedded MPA value. Column order follows the filmColumns list; the rating
// name arrives under the "mpa_name" alias.
func scanFilm(row *sql.Row) (models.Film, error) {
	var film models.Film
	err := row.Scan(
		&film.ID,
		&film.Name,
		&film.Description,
		&film.ReleaseDate,
		&film.Duration,
		&film.Mpa.ID,
		&film.Mpa.Name,
	)
	return film, err
}

// scanFilms drains a joined film result set. Genre sets are deliberately not
// populated here; they live in a separate association table.
func scanFilms(ctx context.Context, rows *sql.Rows) ([]models.Film, error) {
	log := logger.FromContext(ctx)

	films := make([]models.Film, 0, 32)
	for rows.Next() {
		var film models.Film
		scanErr := rows.Scan(
			&film.ID,
			&film.Name,
			&film.Description,
			&film.ReleaseDate,
			&film.Duration,
			&film.Mpa.ID,
			&film.Mpa.Name,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "scanFilms").Msg("failed to scan film row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		films = append(films, film)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "scanFilms").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return films, nil
}
