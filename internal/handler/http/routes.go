package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/films", func(r chi.Router) {
		r.Get("/", h.getAllFilms)
		r.Post("/", h.addFilm)
		r.Put("/", h.updateFilm)
		r.Get("/popular", h.getPopularFilms)
		r.Get("/{id}", h.getFilmByID)
		r.Put("/{id}/like/{userId}", h.addLike)
		r.Delete("/{id}/like/{userId}", h.deleteLike)
	})

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.getAllUsers)
		r.Post("/", h.createUser)
		r.Put("/", h.updateUser)
		r.Get("/{id}", h.getUserByID)
		r.Get("/{id}/friends", h.getFriends)
		r.Get("/{id}/friends/common/{otherId}", h.getCommonFriends)
		r.Put("/{id}/friends/{friendId}", h.addFriend)
		r.Delete("/{id}/friends/{friendId}", h.deleteFriend)
	})

	router.Route("/genres", func(r chi.Router) {
		r.Get("/", h.getAllGenres)
		r.Get("/{id}", h.getGenreByID)
	})

	router.Route("/mpa", func(r chi.Router) {
		r.Get("/", h.getAllMpa)
		r.Get("/{id}", h.getMpaByID)
	})

	return router
}
