package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"reviewdb-backend/internal/domains/user"
	"reviewdb-backend/internal/shared/middleware"
	"reviewdb-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// ============================================================
// ADMIN ENDPOINTS (/users)
// ============================================================

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	var req user.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	users, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, users, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Get handles GET /users/:username
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.service.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, u)
}

// Update handles PATCH /users/:username
func (h *UserHandler) Update(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /users/:username
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("username")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ============================================================
// SELF-SERVICE ENDPOINTS (/users/me)
// ============================================================

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	u, err := h.service.GetMe(c.Request.Context(), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, u)
}

// UpdateMe handles PATCH /users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.UpdateMe(c.Request.Context(), middleware.CurrentPrincipal(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

func respondError(c *gin.Context, err error) {
	var verr validation.Errors
	if errors.As(err, &verr) {
		response.ValidationFailed(c, verr)
		return
	}

	switch user.GetHTTPStatus(err) {
	case http.StatusNotFound:
		response.NotFound(c, "user not found")
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
