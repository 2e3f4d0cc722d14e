package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkrasikov/go-filmorate/internal/store"
	"github.com/mkrasikov/go-filmorate/models"
)

func TestGetAllGenres_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	genres := []models.Genre{{ID: 1, Name: "Comedy"}, {ID: 2, Name: "Drama"}}
	svcs.genres.EXPECT().GetAllGenres(gomock.Any()).Return(genres, nil)

	w := doRequest(t, router, http.MethodGet, "/genres", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Genre
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Comedy", got[0].Name)
}

func TestGetGenreByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	svcs.genres.EXPECT().GetGenreByID(gomock.Any(), 404).Return(models.Genre{}, store.ErrGenreNotFound)

	w := doRequest(t, router, http.MethodGet, "/genres/404", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAllMpa_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	ratings := []models.Mpa{{ID: 1, Name: "G"}, {ID: 5, Name: "NC-17"}}
	svcs.mpa.EXPECT().GetAllMpa(gomock.Any()).Return(ratings, nil)

	w := doRequest(t, router, http.MethodGet, "/mpa", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Mpa
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "NC-17", got[1].Name)
}

func TestGetMpaByID_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	svcs.mpa.EXPECT().GetMpaByID(gomock.Any(), 3).Return(models.Mpa{ID: 3, Name: "PG-13"}, nil)

	w := doRequest(t, router, http.MethodGet, "/mpa/3", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Mpa
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "PG-13", got.Name)
}

func TestGetMpaByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	svcs.mpa.EXPECT().GetMpaByID(gomock.Any(), 404).Return(models.Mpa{}, store.ErrMpaNotFound)

	w := doRequest(t, router, http.MethodGet, "/mpa/404", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
