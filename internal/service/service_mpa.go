package service

import (
	"context"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/internal/store"
	"github.com/mkrasikov/go-filmorate/models"
)

type mpaService struct {
	mpaRepository store.MpaRepository

	logger *logger.Logger
}

// NewMpaService exposes the MPA ratings lookup table.
func NewMpaService(mpaRepository store.MpaRepository, logger *logger.Logger) MpaService {
	return &mpaService{
		mpaRepository: mpaRepository,
		logger:        logger,
	}
}

func (s *mpaService) GetAllMpa(ctx context.Context) ([]models.Mpa, error) {
	return s.mpaRepository.GetAllMpa(ctx)
}

func (s *mpaService) GetMpaByID(ctx context.Context, id int) (models.Mpa, error) {
	return s.mpaRepository.FindMpaByID(ctx, id)
}
