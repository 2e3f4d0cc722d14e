package service

import (
	"context"
	"fmt"

	"github.com/mkrasikov/go-filmorate/internal/config"
	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/internal/store"
	"github.com/mkrasikov/go-filmorate/internal/validators"
	"github.com/mkrasikov/go-filmorate/models"
)

// fallbackPopularCount is used when the ranking size is configured as zero.
const fallbackPopularCount = 10

type filmService struct {
	filmRepository store.FilmRepository
	userRepository store.UserRepository
	validator      validators.Validator

	popularDefaultCount int

	logger *logger.Logger
}

// NewFilmService wires the film business logic over the film and user
// repositories. The user repository is needed to verify like authors.
func NewFilmService(filmRepository store.FilmRepository, userRepository store.UserRepository, cfg config.App, logger *logger.Logger) FilmService {
	popularDefaultCount := cfg.PopularDefaultCount
	if popularDefaultCount <= 0 {
		popularDefaultCount = fallbackPopularCount
	}

	return &filmService{
		filmRepository:      filmRepository,
		userRepository:      userRepository,
		validator:           validators.NewFilmValidator(),
		popularDefaultCount: popularDefaultCount,
		logger:              logger,
	}
}

func (s *filmService) GetAllFilms(ctx context.Context) ([]models.Film, error) {
	return s.filmRepository.GetAllFilms(ctx)
}

// GetFilmByID returns the film with its genre associations populated.
func (s *filmService) GetFilmByID(ctx context.Context, id int64) (models.Film, error) {
	film, err := s.filmRepository.FindFilmByID(ctx, id)
	if err != nil {
		return models.Film{}, err
	}

	genres, err := s.filmRepository.GetGenresByFilm(ctx, id)
	if err != nil {
		return models.Film{}, err
	}
	film.Genres = genres

	return film, nil
}

// AddFilm validates the film and persists it together with its genre set.
// The returned film is re-read from storage so the response carries resolved
// MPA and genre names, not just the ids the client sent.
func (s *filmService) AddFilm(ctx context.Context, film models.Film) (models.Film, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, film); err != nil {
		log.Warn().Err(err).Str("name", film.Name).Msg("film rejected by validation")
		return models.Film{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.filmRepository.AddFilm(ctx, dedupeGenres(film))
	if err != nil {
		return models.Film{}, err
	}

	return s.GetFilmByID(ctx, created.ID)
}

// UpdateFilm validates the film and replaces both its scalar fields and its
// genre set. The genre replacement is wholesale: the stored set becomes
// exactly the set sent by the client.
func (s *filmService) UpdateFilm(ctx context.Context, film models.Film) (models.Film, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, film); err != nil {
		log.Warn().Err(err).Int64("film_id", film.ID).Msg("film rejected by validation")
		return models.Film{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := s.filmRepository.UpdateFilm(ctx, dedupeGenres(film)); err != nil {
		return models.Film{}, err
	}

	return s.GetFilmByID(ctx, film.ID)
}

// GetPopularFilms returns up to count films ordered by descending like count.
// A non-positive count falls back to the configured default.
func (s *filmService) GetPopularFilms(ctx context.Context, count int) ([]models.Film, error) {
	if count <= 0 {
		count = s.popularDefaultCount
	}

	return s.filmRepository.GetPopularFilms(ctx, count)
}

// AddLike records userID's like on filmID. The film is looked up first so an
// unknown film surfaces as [store.ErrFilmNotFound] before the insert; an
// unknown user surfaces from the insert's reference check.
func (s *filmService) AddLike(ctx context.Context, filmID, userID int64) error {
	if _, err := s.filmRepository.FindFilmByID(ctx, filmID); err != nil {
		return err
	}

	return s.filmRepository.AddLike(ctx, filmID, userID)
}

// DeleteLike removes userID's like on filmID. Both entities must exist, even
// though removing an absent like pair is itself a no-op.
func (s *filmService) DeleteLike(ctx context.Context, filmID, userID int64) error {
	if _, err := s.filmRepository.FindFilmByID(ctx, filmID); err != nil {
		return err
	}
	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return err
	}

	return s.filmRepository.DeleteLike(ctx, filmID, userID)
}

// dedupeGenres drops repeated genre ids while keeping first-seen order, so a
// client sending duplicates does not trip the association table's primary key.
func dedupeGenres(film models.Film) models.Film {
	if len(film.Genres) < 2 {
		return film
	}

	seen := make(map[int]struct{}, len(film.Genres))
	genres := make([]models.Genre, 0, len(film.Genres))
	for _, genre := range film.Genres {
		if _, ok := seen[genre.ID]; ok {
			continue
		}
		seen[genre.ID] = struct{}{}
		genres = append(genres, genre)
	}
	film.Genres = genres

	return film
}
