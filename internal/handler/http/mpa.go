package http

import (
	"net/http"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/internal/utils"
)

func (h *Handler) getAllMpa(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ratings, err := h.services.MpaService.GetAllMpa(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllMpa").Msg("error listing mpa ratings")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, ratings, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getMpaByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	rating, err := h.services.MpaService.GetMpaByID(r.Context(), int(id))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getMpaByID").Int64("mpa_id", id).Msg("error getting mpa rating")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, rating, http.StatusOK) //nolint:errcheck
}
