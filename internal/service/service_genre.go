package service

import (
	"context"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/internal/store"
	"github.com/mkrasikov/go-filmorate/models"
)

type genreService struct {
	genreRepository store.GenreRepository

	logger *logger.Logger
}

// NewGenreService exposes the genres lookup table.
func NewGenreService(genreRepository store.GenreRepository, logger *logger.Logger) GenreService {
	return &genreService{
		genreRepository: genreRepository,
		logger:          logger,
	}
}

func (s *genreService) GetAllGenres(ctx context.Context) ([]models.Genre, error) {
	return s.genreRepository.GetAllGenres(ctx)
}

func (s *genreService) GetGenreByID(ctx context.Context, id int) (models.Genre, error) {
	return s.genreRepository.FindGenreByID(ctx, id)
}
