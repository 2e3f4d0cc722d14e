package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/models"
)

// genreRepository is the PostgreSQL-backed implementation of
// [GenreRepository]. The genres table is a read-only lookup seeded by
// migration.
type genreRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewGenreRepository constructs a [GenreRepository] backed by the provided
// database connection and logger.
func NewGenreRepository(db *DB, logger *logger.Logger) GenreRepository {
	logger.Debug().Msg("creating genre repository")
	return &genreRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllGenres returns every genre ordered by id.
func (r *genreRepository) GetAllGenres(ctx context.Context) ([]models.Genre, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllGenres)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*genreRepository.GetAllGenres").Msg("failed to execute query for getting all genres")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	genres := make([]models.Genre, 0, 8)
	for rows.Next() {
		var genre models.Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*genreRepository.GetAllGenres").Msg("failed to scan genre row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		genres = append(genres, genre)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*genreRepository.GetAllGenres").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return genres, nil
}

// FindGenreByID retrieves a single genre; [ErrGenreNotFound] when no row
// matches.
func (r *genreRepository) FindGenreByID(ctx context.Context, id int) (models.Genre, error) {
	log := logger.FromContext(ctx)

	var genre models.Genre
	row := r.db.QueryRowContext(ctx, findGenreByID, id)
	if err := row.Scan(&genre.ID, &genre.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Int("genre_id", id).Msg("genre not found")
			return models.Genre{}, fmt.Errorf("genre %d: %w", id, ErrGenreNotFound)
		}
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*genreRepository.FindGenreByID").Int("genre_id", id).Msg("error: scanning error")
		return models.Genre{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return genre, nil
}
