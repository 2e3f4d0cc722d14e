package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/internal/utils"
	"github.com/mkrasikov/go-filmorate/models"
)

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.GetAllUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllUsers").Msg("error listing users")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.getUserByID").Msg("invalid user id")
		respondBadRequest(w, err.Error())
		return
	}

	user, err := h.services.UserService.GetUserByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUserByID").Int64("user_id", id).Msg("error getting user")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK) //nolint:errcheck
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		respondBadRequest(w, "Invalid JSON was passed")
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Str("login", user.Login).Msg("error creating user")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("Invalid JSON was passed")
		respondBadRequest(w, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Int64("user_id", user.ID).Msg("error updating user")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck
}

func (h *Handler) addFriend(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	friendID, err := pathID(r, "friendId")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	if err := h.services.UserService.AddFriend(r.Context(), userID, friendID); err != nil {
		log.Err(err).Str("func", "*Handler.addFriend").Int64("user_id", userID).Int64("friend_id", friendID).Msg("error adding friend")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteFriend(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	friendID, err := pathID(r, "friendId")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	if err := h.services.UserService.DeleteFriend(r.Context(), userID, friendID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteFriend").Int64("user_id", userID).Int64("friend_id", friendID).Msg("error deleting friend")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getFriends(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	friends, err := h.services.UserService.GetFriends(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFriends").Int64("user_id", userID).Msg("error listing friends")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, friends, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getCommonFriends(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}
	otherID, err := pathID(r, "otherId")
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	common, err := h.services.UserService.GetCommonFriends(r.Context(), userID, otherID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCommonFriends").Int64("user_id", userID).Int64("other_id", otherID).Msg("error listing common friends")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, common, http.StatusOK) //nolint:errcheck
}
