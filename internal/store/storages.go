package store

import (
	"context"
	"fmt"

	"github.com/mkrasikov/go-filmorate/internal/config"
	"github.com/mkrasikov/go-filmorate/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
type Storages struct {
	FilmRepository  FilmRepository
	UserRepository  UserRepository
	GenreRepository GenreRepository
	MpaRepository   MpaRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// constructs all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		FilmRepository:  NewFilmRepository(db, log),
		UserRepository:  NewUserRepository(db, log),
		GenreRepository: NewGenreRepository(db, log),
		MpaRepository:   NewMpaRepository(db, log),
	}, nil
}
