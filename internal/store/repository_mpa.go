package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/models"
)

// mpaRepository is the PostgreSQL-backed implementation of [MpaRepository].
// The mpa table is a read-only lookup seeded by migration.
type mpaRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMpaRepository constructs a [MpaRepository] backed by the provided
// database connection and logger.
func NewMpaRepository(db *DB, logger *logger.Logger) MpaRepository {
	logger.Debug().Msg("creating mpa repository")
	return &mpaRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllMpa returns every MPA rating ordered by id.
func (r *mpaRepository) GetAllMpa(ctx context.Context) ([]models.Mpa, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllMpa)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*mpaRepository.GetAllMpa").Msg("failed to execute query for getting all mpa ratings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ratings := make([]models.Mpa, 0, 8)
	for rows.Next() {
		var rating models.Mpa
		if err := rows.Scan(&rating.ID, &rating.Name); err != nil {
			log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*mpaRepository.GetAllMpa").Msg("failed to scan mpa row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*mpaRepository.GetAllMpa").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ratings, nil
}

// FindMpaByID retrieves a single MPA rating; [ErrMpaNotFound] when no row
// matches.
func (r *mpaRepository) FindMpaByID(ctx context.Context, id int) (models.Mpa, error) {
	log := logger.FromContext(ctx)

	var rating models.Mpa
	row := r.db.QueryRowContext(ctx, findMpaByID, id)
	if err := row.Scan(&rating.ID, &rating.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Int("mpa_id", id).Msg("mpa rating not found")
			return models.Mpa{}, fmt.Errorf("mpa %d: %w", id, ErrMpaNotFound)
		}
		log.Err(err).Bool("retryable", r.db.retryable(err)).Str("func", "*mpaRepository.FindMpaByID").Int("mpa_id", id).Msg("error: scanning error")
		return models.Mpa{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return rating, nil
}
