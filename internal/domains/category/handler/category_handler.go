package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"reviewdb-backend/internal/domains/category"
	"reviewdb-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	var req category.ListCategoriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	cats, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, cats, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// Create handles POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryRequest
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

// Delete handles DELETE /categories/:slug
func (h *CategoryHandler) Delete(c *gin.Context) {
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

	status := category.GetHTTPStatus(err)
	switch status {
	case http.StatusNotFound:
		response.NotFound(c, "category not found")
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
