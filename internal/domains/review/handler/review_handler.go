package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tony-ross/netflix-catalog/internal/domains/review"
	"github.com/tony-ross/netflix-catalog/internal/shared/response"
	"github.com/tony-ross/netflix-catalog/pkg/logger"
)

type ReviewHandler struct {
	service review.Service
}

func NewReviewHandler(service review.Service) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Review created successfully", created)
}

// GetByID handles GET /reviews/:id.
func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id", "invalid review id")
	if !ok {
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Review retrieved successfully", r)
}

// Update handles PUT /reviews/:id.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id", "invalid review id")
	if !ok {
		return
	}

	var req review.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Review updated successfully", updated)
}

// Delete handles DELETE /reviews/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id", "invalid review id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Review deleted successfully", nil)
}

// ListByMovie handles GET /movies/:id/reviews.
func (h *ReviewHandler) ListByMovie(c *gin.Context) {
	movieID, ok := h.pathID(c, "id", "invalid movie id")
	if !ok {
		return
	}

	reviews, err := h.service.ListByMovie(c.Request.Context(), movieID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Reviews retrieved successfully", reviews)
}

// ListByUser handles GET /users/:id/reviews.
func (h *ReviewHandler) ListByUser(c *gin.Context) {
	userID, ok := h.pathID(c, "id", "invalid user id")
	if !ok {
		return
	}

	reviews, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Reviews retrieved successfully", reviews)
}

func (h *ReviewHandler) pathID(c *gin.Context, param, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		response.BadRequest(c, message)
		return 0, false
	}
	return id, true
}

func (h *ReviewHandler) respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.Is(err, review.ErrReviewNotFound):
		response.NotFound(c, review.ErrReviewNotFound.Error())
	case errors.Is(err, review.ErrMovieNotFound):
		response.BadRequest(c, review.ErrMovieNotFound.Error())
	case errors.Is(err, review.ErrUserNotFound):
		response.BadRequest(c, review.ErrUserNotFound.Error())
	case errors.As(err, &verrs):
		response.BadRequest(c, verrs.Error())
	default:
		logger.Error("review handler", err)
		response.Internal(c)
	}
}
