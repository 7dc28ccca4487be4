package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"reviewdb-backend/internal/domains/category"
	"reviewdb-backend/internal/domains/genre"
	"reviewdb-backend/internal/domains/title"
	"reviewdb-backend/internal/shared/response"
)

type TitleHandler struct {
	service title.Service
}

func NewTitleHandler(service title.Service) *TitleHandler {
	return &TitleHandler{service: service}
}

// List handles GET /titles
func (h *TitleHandler) List(c *gin.Context) {
	var req title.ListTitlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	titles, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, titles, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// Create handles POST /titles
func (h *TitleHandler) Create(c *gin.Context) {
	var req title.CreateTitleRequest
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

// Get handles GET /titles/:title_id
func (h *TitleHandler) Get(c *gin.Context) {
	id, ok := titleID(c)
	if !ok {
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

// Update handles PATCH /titles/:title_id
func (h *TitleHandler) Update(c *gin.Context) {
	id, ok := titleID(c)
	if !ok {
		return
	}

	var req title.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /titles/:title_id
func (h *TitleHandler) Delete(c *gin.Context) {
	id, ok := titleID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func titleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("title_id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid title id")
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	var verr validation.Errors
	if errors.As(err, &verr) {
		response.ValidationFailed(c, verr)
		return
	}

	switch {
	case errors.Is(err, title.ErrNotFound):
		response.NotFound(c, "title not found")
	// an unknown slug on a write is a bad reference, not a missing page
	case errors.Is(err, category.ErrNotFound), errors.Is(err, genre.ErrNotFound):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
