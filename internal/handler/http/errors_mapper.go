package http

import (
	"errors"
	"net/http"

	"github.com/mkrasikov/go-filmorate/internal/service"
	"github.com/mkrasikov/go-filmorate/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrSelfFriendship:      http.StatusBadRequest,

	store.ErrFilmNotFound:  http.StatusNotFound,
	store.ErrUserNotFound:  http.StatusNotFound,
	store.ErrGenreNotFound: http.StatusNotFound,
	store.ErrMpaNotFound:   http.StatusNotFound,

	store.ErrEmptyFilmName:      http.StatusBadRequest,
	store.ErrLikeAlreadyExists:  http.StatusConflict,
	store.ErrFriendAlreadyAdded: http.StatusConflict,
	store.ErrGenreAlreadyAdded:  http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
