package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"musicapi/internal/middleware"
	"musicapi/internal/models"
	"musicapi/internal/service"
)

type AlbumHandler interface {
	List(c *gin.Context)
	ByArtist(c *gin.Context)
	ByGenre(c *gin.Context)
	ByAlbum(c *gin.Context)
	ByYear(c *gin.Context)
	Create(c *gin.Context)
	UpdateGenre(c *gin.Context)
	Delete(c *gin.Context)
}

type albumHandler struct {
	catalog service.CatalogService
	log     *logrus.Logger
}

func NewAlbumHandler(catalog service.CatalogService, log *logrus.Logger) AlbumHandler {
	return &albumHandler{catalog: catalog, log: log}
}

type createAlbumRequest struct {
	Album  string `json:"album"`
	Artist string `json:"artist"`
	Genre  string `json:"genre"`
	Year   int    `json:"year"`
}

type updateGenreRequest struct {
	Genre string `json:"genre"`
}

// List handles GET /albums.
func (h *albumHandler) List(c *gin.Context) {
	albums, err := h.catalog.ListAll(c.Request.Context(), middleware.Conn(c))
	if err != nil {
		h.queryFailure(c, "list albums", err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

// ByArtist handles GET /artist/:artist, an exact match.
func (h *albumHandler) ByArtist(c *gin.Context) {
	albums, err := h.catalog.ListByArtist(c.Request.Context(), middleware.Conn(c), c.Param("artist"))
	if err != nil {
		h.queryFailure(c, "list albums by artist", err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

// ByGenre handles GET /genre/:genre, a substring match.
func (h *albumHandler) ByGenre(c *gin.Context) {
	albums, err := h.catalog.ListByGenre(c.Request.Context(), middleware.Conn(c), c.Param("genre"))
	if err != nil {
		h.queryFailure(c, "list albums by genre", err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

// ByAlbum handles GET /album/:album, a substring match on the title.
func (h *albumHandler) ByAlbum(c *gin.Context) {
	albums, err := h.catalog.ListByAlbumName(c.Request.Context(), middleware.Conn(c), c.Param("album"))
	if err != nil {
		h.queryFailure(c, "list albums by name", err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

// ByYear handles GET /year/:year.
func (h *albumHandler) ByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": "year must be an integer"})
		return
	}

	albums, err := h.catalog.ListByYear(c.Request.Context(), middleware.Conn(c), year)
	if err != nil {
		h.queryFailure(c, "list albums by year", err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

// Create handles POST /.
func (h *albumHandler) Create(c *gin.Context) {
	var req createAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}

	album := &models.Album{
		Album:  req.Album,
		Artist: req.Artist,
		Genre:  req.Genre,
		Year:   req.Year,
	}

	result, err := h.catalog.Create(c.Request.Context(), middleware.Conn(c), album)
	if err != nil {
		h.queryFailure(c, "create album", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateGenre handles PUT /:album/:artist and updates every row matching the
// pair.
func (h *albumHandler) UpdateGenre(c *gin.Context) {
	var req updateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}

	result, err := h.catalog.UpdateGenre(c.Request.Context(), middleware.Conn(c), c.Param("album"), c.Param("artist"), req.Genre)
	if err != nil {
		h.queryFailure(c, "update album genre", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /:album/:artist.
func (h *albumHandler) Delete(c *gin.Context) {
	result, err := h.catalog.Delete(c.Request.Context(), middleware.Conn(c), c.Param("album"), c.Param("artist"))
	if err != nil {
		h.queryFailure(c, "delete album", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *albumHandler) queryFailure(c *gin.Context, op string, err error) {
	h.log.Errorf("Failed to %s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "query_failure", "message": "database query failed"})
}
