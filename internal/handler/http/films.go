package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/internal/utils"
	"github.com/mkrasikov/go-filmorate/models"
)

func (h *Handler) getAllFilms(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	films, err := h.services.FilmService.GetAllFilms(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllFilms").Msg("error listing films")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, films, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getFilmByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getFilmByID").Msg("invalid film id")
		respondBadRequest(w, err.Error())
		return
	}

	film, err := h.services.FilmService.GetFilmByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFilmByID").Int64("film_id", id).Msg("error getting film")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, film, http.StatusOK) //nolint:errcheck
}

func (h *Handler) addFilm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var film models.Film
	if err := json.NewDecoder(r.Body).Decode(&film); err != nil {
		log.Err(err).Str("func", "*Handler.addFilm").Msg("Invalid JSON was passed")
		respondBadRequest(w, "Invalid JSON was passed")
		return
	}

	created, err := h.services.FilmService.AddFilm(r.Context(), film)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addFilm").Str("name", film.Name).Msg("error adding film")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) updateFilm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var film models.Film
	if err := json.NewDecoder(r.Body).Decode(&film); err != nil {
		log.Err(err).Str("func", "*Handler.updateFilm").Msg("Invalid JSON was passed")
		respondBadRequest(w, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.FilmService.UpdateFilm(r.Context(), film)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateFilm").Int64("film_id", film.ID).Msg("error updating film")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck
}

// getPopularFilms serves the like-count ranking. The optional "count" query
// parameter caps the result; when absent or non-numeric the service default
// applies.
func (h *Handler) getPopularFilms(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn().Str("count", raw).Msg("non-numeric count query parameter")
			respondBadRequest(w, "count must be a number")
			return
		}
		count = parsed
	}

	films, err := h.services.FilmService.GetPopularFilms(r.Context(), count)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPopularFilms").Msg("error ranking films")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, films, http.StatusOK) //nolint:errcheck
}

func (h *Handler) addLike(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filmID, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	if err := h.services.FilmService.AddLike(r.Context(), filmID, userID); err != nil {
		log.Err(err).Str("func", "*Handler.addLike").Int64("film_id", filmID).Int64("user_id", userID).Msg("error adding like")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteLike(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filmID, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	if err := h.services.FilmService.DeleteLike(r.Context(), filmID, userID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteLike").Int64("film_id", filmID).Int64("user_id", userID).Msg("error deleting like")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
