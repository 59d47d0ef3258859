package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tony-ross/netflix-catalog/internal/domains/user"
	"github.com/tony-ross/netflix-catalog/internal/shared/response"
	"github.com/tony-ross/netflix-catalog/pkg/logger"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved successfully", users)
}

// GetByID handles GET /users/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully", u)
}

// GetByUsername handles GET /users/by-username/:username.
func (h *UserHandler) GetByUsername(c *gin.Context) {
	u, err := h.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully", u)
}

// GetByEmail handles GET /users/by-email/:email.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	u, err := h.service.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully", u)
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User created successfully", created)
}

// Update handles PUT /users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully", updated)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *UserHandler) userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return 0, false
	}
	return id, true
}

func (h *UserHandler) respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, user.ErrUserNotFound.Error())
	case errors.Is(err, user.ErrUsernameAlreadyExists):
		response.Conflict(c, user.ErrUsernameAlreadyExists.Error())
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.Conflict(c, user.ErrEmailAlreadyExists.Error())
	case errors.As(err, &verrs):
		response.BadRequest(c, verrs.Error())
	default:
		logger.Error("user handler", err)
		response.Internal(c)
	}
}
