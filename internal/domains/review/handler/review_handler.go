package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"reviewdb-backend/internal/domains/review"
	"reviewdb-backend/internal/domains/title"
	"reviewdb-backend/internal/shared/access"
	"reviewdb-backend/internal/shared/middleware"
	"reviewdb-backend/internal/shared/response"
)

type ReviewHandler struct {
	service review.Service
}

func NewReviewHandler(service review.Service) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List handles GET /titles/:title_id/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	titleID, ok := pathID(c, "title_id")
	if !ok {
		return
	}

	var req review.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	resp, total, err := h.service.List(c.Request.Context(), titleID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, resp, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// Create handles POST /titles/:title_id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	titleID, ok := pathID(c, "title_id")
	if !ok {
		return
	}

	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), middleware.CurrentPrincipal(c), titleID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Get handles GET /titles/:title_id/reviews/:review_id
func (h *ReviewHandler) Get(c *gin.Context) {
	titleID, ok := pathID(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "review_id")
	if !ok {
		return
	}

	rv, err := h.service.Get(c.Request.Context(), titleID, reviewID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rv)
}

// Update handles PATCH /titles/:title_id/reviews/:review_id
func (h *ReviewHandler) Update(c *gin.Context) {
	titleID, ok := pathID(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "review_id")
	if !ok {
		return
	}

	var req review.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), middleware.CurrentPrincipal(c), titleID, reviewID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /titles/:title_id/reviews/:review_id
func (h *ReviewHandler) Delete(c *gin.Context) {
	titleID, ok := pathID(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "review_id")
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), middleware.CurrentPrincipal(c), titleID, reviewID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid "+name)
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
	case errors.Is(err, access.ErrUnauthenticated):
		response.Unauthorized(c, "authentication required")
	case errors.Is(err, access.ErrForbidden):
		response.Forbidden(c, "permission denied")
	case errors.Is(err, title.ErrNotFound):
		response.NotFound(c, "title not found")
	case errors.Is(err, review.ErrNotFound):
		response.NotFound(c, "review not found")
	case errors.Is(err, review.ErrAlreadyReviewed):
		response.BadRequest(c, review.ErrAlreadyReviewed.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
