package service

import (
	"github.com/mkrasikov/go-filmorate/internal/config"
	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/internal/store"
)

// Services bundles all business-logic services for injection into transports.
type Services struct {
	FilmService  FilmService
	UserService  UserService
	GenreService GenreService
	MpaService   MpaService
}

// NewServices constructs every service over the shared repository set.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		FilmService:  NewFilmService(storages.FilmRepository, storages.UserRepository, cfg.App, logger),
		UserService:  NewUserService(storages.UserRepository, logger),
		GenreService: NewGenreService(storages.GenreRepository, logger),
		MpaService:   NewMpaService(storages.MpaRepository, logger),
	}
}
