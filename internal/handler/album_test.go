package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"musicapi/internal/models"
	"musicapi/internal/repository"
)

type fakeCatalogService struct {
	albums []models.Album
	result *models.ExecResult
	err    error

	gotAlbum  string
	gotArtist string
	gotGenre  string
	gotYear   int
	called    bool
}

func (f *fakeCatalogService) ListAll(ctx context.Context, q repository.Querier) ([]models.Album, error) {
	f.called = true
	return f.albums, f.err
}

func (f *fakeCatalogService) ListByArtist(ctx context.Context, q repository.Querier, artist string) ([]models.Album, error) {
	f.called = true
	f.gotArtist = artist
	return f.albums, f.err
}

func (f *fakeCatalogService) ListByGenre(ctx context.Context, q repository.Querier, genre string) ([]models.Album, error) {
	f.called = true
	f.gotGenre = genre
	return f.albums, f.err
}

func (f *fakeCatalogService) ListByAlbumName(ctx context.Context, q repository.Querier, album string) ([]models.Album, error) {
	f.called = true
	f.gotAlbum = album
	return f.albums, f.err
}

func (f *fakeCatalogService) ListByYear(ctx context.Context, q repository.Querier, year int) ([]models.Album, error) {
	f.called = true
	f.gotYear = year
	return f.albums, f.err
}

func (f *fakeCatalogService) Create(ctx context.Context, q repository.Querier, album *models.Album) (*models.ExecResult, error) {
	f.called = true
	f.gotAlbum = album.Album
	return f.result, f.err
}

func (f *fakeCatalogService) UpdateGenre(ctx context.Context, q repository.Querier, album, artist, genre string) (*models.ExecResult, error) {
	f.called = true
	f.gotAlbum, f.gotArtist, f.gotGenre = album, artist, genre
	return f.result, f.err
}

func (f *fakeCatalogService) Delete(ctx context.Context, q repository.Querier, album, artist string) (*models.ExecResult, error) {
	f.called = true
	f.gotAlbum, f.gotArtist = album, artist
	return f.result, f.err
}

func newAlbumRouter(svc *fakeCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAlbumHandler(svc, quietLogger())

	router := gin.New()
	router.Use(stubConn())
	router.GET("/albums", h.List)
	router.GET("/artist/:artist", h.ByArtist)
	router.GET("/genre/:genre", h.ByGenre)
	router.GET("/album/:album", h.ByAlbum)
	router.GET("/year/:year", h.ByYear)
	router.POST("/", h.Create)
	router.PUT("/:album/:artist", h.UpdateGenre)
	router.DELETE("/:album/:artist", h.Delete)
	return router
}

func TestListReturnsAlbumArray(t *testing.T) {
	svc := &fakeCatalogService{albums: []models.Album{
		{ID: 1, Album: "Thriller", Artist: "Michael Jackson", Genre: "Pop", Year: 1982},
	}}
	router := newAlbumRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/albums", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"album":"Thriller","artist":"Michael Jackson","genre":"Pop","year":1982}]`, w.Body.String())
}

func TestListQueryFailureStillResponds(t *testing.T) {
	svc := &fakeCatalogService{err: errors.New("broken pipe")}
	router := newAlbumRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/albums", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "query_failure")
}

func TestByYearRejectsNonNumericYear(t *testing.T) {
	svc := &fakeCatalogService{}
	router := newAlbumRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/year/nineteen82", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.called)
}

func TestByYearParsesParam(t *testing.T) {
	svc := &fakeCatalogService{albums: []models.Album{}}
	router := newAlbumRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/year/1982", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1982, svc.gotYear)
}

func TestCreateReturnsInsertResult(t *testing.T) {
	svc := &fakeCatalogService{result: &models.ExecResult{InsertID: 12, AffectedRows: 1}}
	router := newAlbumRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"album":"Thriller","artist":"Michael Jackson","genre":"Pop","year":1982}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"insertId":12,"affectedRows":1}`, w.Body.String())
	assert.Equal(t, "Thriller", svc.gotAlbum)
}

func TestUpdateGenreUsesRouteParamsAndBody(t *testing.T) {
	svc := &fakeCatalogService{result: &models.ExecResult{AffectedRows: 3}}
	router := newAlbumRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/Thriller/Michael%20Jackson", strings.NewReader(`{"genre":"Funk"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Thriller", svc.gotAlbum)
	assert.Equal(t, "Michael Jackson", svc.gotArtist)
	assert.Equal(t, "Funk", svc.gotGenre)
}

func TestDeleteUsesRouteParams(t *testing.T) {
	svc := &fakeCatalogService{result: &models.ExecResult{AffectedRows: 2}}
	router := newAlbumRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/Thriller/Michael%20Jackson", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"insertId":0,"affectedRows":2}`, w.Body.String())
	assert.Equal(t, "Thriller", svc.gotAlbum)
	assert.Equal(t, "Michael Jackson", svc.gotArtist)
}
