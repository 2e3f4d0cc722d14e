package http

import (
	"net/http"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/internal/utils"
)

func (h *Handler) getAllGenres(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	genres, err := h.services.GenreService.GetAllGenres(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllGenres").Msg("error listing genres")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, genres, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getGenreByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	genre, err := h.services.GenreService.GetGenreByID(r.Context(), int(id))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getGenreByID").Int64("genre_id", id).Msg("error getting genre")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, genre, http.StatusOK) //nolint:errcheck
}
