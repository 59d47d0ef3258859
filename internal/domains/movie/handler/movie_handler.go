package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tony-ross/netflix-catalog/internal/domains/movie"
	"github.com/tony-ross/netflix-catalog/internal/shared/response"
	"github.com/tony-ross/netflix-catalog/pkg/logger"
)

type MovieHandler struct {
	service movie.Service
}

func NewMovieHandler(service movie.Service) *MovieHandler {
	return &MovieHandler{service: service}
}

// List handles GET /movies.
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Movies retrieved successfully", movies)
}

// GetByID handles GET /movies/:id.
func (h *MovieHandler) GetByID(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Movie retrieved successfully", m)
}

// Create handles POST /movies.
func (h *MovieHandler) Create(c *gin.Context) {
	var req movie.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Movie created successfully", created)
}

// Update handles PUT /movies/:id.
func (h *MovieHandler) Update(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	var req movie.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Movie updated successfully", updated)
}

// Delete handles DELETE /movies/:id.
func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Movie deleted successfully", nil)
}

// Search handles GET /movies/search. The first non-blank parameter wins:
// title, then genre, then director; with none given it falls back to the
// full listing.
func (h *MovieHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()
	title := strings.TrimSpace(c.Query("title"))
	genre := strings.TrimSpace(c.Query("genre"))
	director := strings.TrimSpace(c.Query("director"))

	var (
		movies []*movie.MovieResponse
		err    error
	)
	switch {
	case title != "":
		movies, err = h.service.FindByTitle(ctx, title)
	case genre != "":
		movies, err = h.service.FindByGenre(ctx, genre)
	case director != "":
		movies, err = h.service.FindByDirector(ctx, director)
	default:
		movies, err = h.service.ListAll(ctx)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Movies retrieved successfully", movies)
}

func (h *MovieHandler) movieID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid movie id")
		return 0, false
	}
	return id, true
}

func (h *MovieHandler) respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.Is(err, movie.ErrMovieNotFound):
		response.NotFound(c, movie.ErrMovieNotFound.Error())
	case errors.As(err, &verrs):
		response.BadRequest(c, verrs.Error())
	default:
		logger.Error("movie handler", err)
		response.Internal(c)
	}
}
