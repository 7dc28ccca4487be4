package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"reviewdb-backend/internal/domains/genre"
	"reviewdb-backend/internal/shared/response"
)

type GenreHandler struct {
	service genre.Service
}

func NewGenreHandler(service genre.Service) *GenreHandler {
	return &GenreHandler{service: service}
}

// List handles GET /genres
func (h *GenreHandler) List(c *gin.Context) {
	var req genre.ListGenresRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	genres, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, genres, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// Create handles POST /genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req genre.CreateGenreRequest
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

// Delete handles DELETE /genres/:slug
func (h *GenreHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteBySlug(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondError(c *gin.Context, err error) {
	var verr validation.Errors
	if errors.As(err, &verr) {
		response.ValidationFailed(c, verr)
		return
	}

	switch genre.GetHTTPStatus(err) {
	case http.StatusNotFound:
		response.NotFound(c, "genre not found")
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
