package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkrasikov/go-filmorate/internal/logger"
	"github.com/mkrasikov/go-filmorate/internal/service"
	"github.com/mkrasikov/go-filmorate/internal/service/mocks"
	"github.com/mkrasikov/go-filmorate/internal/store"
	"github.com/mkrasikov/go-filmorate/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	films  *mocks.MockFilmService
	users  *mocks.MockUserService
	genres *mocks.MockGenreService
	mpa    *mocks.MockMpaService
}

// newTestRouter builds the full chi router over mocked services so tests
// exercise real route patterns and URL parameter extraction.
func newTestRouter(t *testing.T, ctrl *gomock.Controller) (*chi.Mux, testServices) {
	t.Helper()

	svcs := testServices{
		films:  mocks.NewMockFilmService(ctrl),
		users:  mocks.NewMockUserService(ctrl),
		genres: mocks.NewMockGenreService(ctrl),
		mpa:    mocks.NewMockMpaService(ctrl),
	}

	h := NewHandler(&service.Services{
		FilmService:  svcs.films,
		UserService:  svcs.users,
		GenreService: svcs.genres,
		MpaService:   svcs.mpa,
	}, logger.Nop())

	return h.Init(), svcs
}

func doRequest(t *testing.T, router *chi.Mux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func filmBody(t *testing.T, f models.Film) string {
	t.Helper()
	b, err := json.Marshal(f)
	require.NoError(t, err)
	return string(b)
}

var validFilm = models.Film{
	Name:        "Inception",
	Description: "dreams within dreams",
	ReleaseDate: models.NewDate(2010, time.July, 16),
	Duration:    148,
	Mpa:         models.Mpa{ID: 3, Name: "PG-13"},
}

// ─────────────────────────────────────────────
// GET /films
// ─────────────────────────────────────────────

func TestGetAllFilms_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	films := []models.Film{validFilm}
	svcs.films.EXPECT().GetAllFilms(gomock.Any()).Return(films, nil)

	w := doRequest(t, router, http.MethodGet, "/films", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got []models.Film
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Inception", got[0].Name)
}

// ─────────────────────────────────────────────
// GET /films/{id}
// ─────────────────────────────────────────────

func TestGetFilmByID_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	film := validFilm
	film.ID = 7
	svcs.films.EXPECT().GetFilmByID(gomock.Any(), int64(7)).Return(film, nil)

	w := doRequest(t, router, http.MethodGet, "/films/7", "")

	require.Equal(t, http.StatusOK, w.Code)

	var got models.Film
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "2010-07-16", got.ReleaseDate.Format("2006-01-02"))
}

func TestGetFilmByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	svcs.films.EXPECT().GetFilmByID(gomock.Any(), int64(404)).Return(models.Film{}, store.ErrFilmNotFound)

	w := doRequest(t, router, http.MethodGet, "/films/404", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFilmByID_NonNumericID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	w := doRequest(t, router, http.MethodGet, "/films/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// ─────────────────────────────────────────────
// POST /films
// ─────────────────────────────────────────────

func TestAddFilm_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	created := validFilm
	created.ID = 7
	svcs.films.EXPECT().AddFilm(gomock.Any(), gomock.Any()).Return(created, nil)

	w := doRequest(t, router, http.MethodPost, "/films", filmBody(t, validFilm))

	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Film
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
}

func TestAddFilm_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	w := doRequest(t, router, http.MethodPost, "/films", "{not json")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddFilm_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	svcs.films.EXPECT().AddFilm(gomock.Any(), gomock.Any()).Return(models.Film{}, service.ErrInvalidDataProvided)

	w := doRequest(t, router, http.MethodPost, "/films", filmBody(t, models.Film{}))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// ─────────────────────────────────────────────
// PUT /films
// ─────────────────────────────────────────────

func TestUpdateFilm_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	film := validFilm
	film.ID = 7
	svcs.films.EXPECT().UpdateFilm(gomock.Any(), gomock.Any()).Return(film, nil)

	w := doRequest(t, router, http.MethodPut, "/films", filmBody(t, film))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateFilm_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	film := validFilm
	film.ID = 404
	svcs.films.EXPECT().UpdateFilm(gomock.Any(), gomock.Any()).Return(models.Film{}, store.ErrFilmNotFound)

	w := doRequest(t, router, http.MethodPut, "/films", filmBody(t, film))
	require.Equal(t, http.StatusNotFound, w.Code)
}

// ─────────────────────────────────────────────
// GET /films/popular
// ─────────────────────────────────────────────

func TestGetPopularFilms_DefaultCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	// missing count reaches the service as zero
	svcs.films.EXPECT().GetPopularFilms(gomock.Any(), 0).Return([]models.Film{validFilm}, nil)

	w := doRequest(t, router, http.MethodGet, "/films/popular", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetPopularFilms_ExplicitCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	svcs.films.EXPECT().GetPopularFilms(gomock.Any(), 3).Return(nil, nil)

	w := doRequest(t, router, http.MethodGet, "/films/popular?count=3", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetPopularFilms_NonNumericCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	w := doRequest(t, router, http.MethodGet, "/films/popular?count=many", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// ─────────────────────────────────────────────
// PUT /films/{id}/like/{userId}
// ─────────────────────────────────────────────

func TestAddLike_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	svcs.films.EXPECT().AddLike(gomock.Any(), int64(7), int64(42)).Return(nil)

	w := doRequest(t, router, http.MethodPut, "/films/7/like/42", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAddLike_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	svcs.films.EXPECT().AddLike(gomock.Any(), int64(7), int64(42)).Return(store.ErrLikeAlreadyExists)

	w := doRequest(t, router, http.MethodPut, "/films/7/like/42", "")
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteLike_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	svcs.films.EXPECT().DeleteLike(gomock.Any(), int64(7), int64(404)).Return(store.ErrUserNotFound)

	w := doRequest(t, router, http.MethodDelete, "/films/7/like/404", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

// ─────────────────────────────────────────────
// Trace id propagation
// ─────────────────────────────────────────────

func TestTraceIDHeader_GeneratedWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)
	svcs.films.EXPECT().GetAllFilms(gomock.Any()).Return(nil, nil)

	w := doRequest(t, router, http.MethodGet, "/films", "")
	assert.NotEmpty(t, w.Header().Get(traceIDHeader))
}

func TestTraceIDHeader_EchoedWhenPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)
	svcs.films.EXPECT().GetAllFilms(gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/films", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(traceIDHeader))
}
