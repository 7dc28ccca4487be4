package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"reviewdb-backend/internal/domains/comment"
	"reviewdb-backend/internal/domains/review"
	"reviewdb-backend/internal/shared/access"
	"reviewdb-backend/internal/shared/middleware"
	"reviewdb-backend/internal/shared/response"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// List handles GET /titles/:title_id/reviews/:review_id/comments
func (h *CommentHandler) List(c *gin.Context) {
	titleID, reviewID, ok := pathIDs(c)
	if !ok {
		return
	}

	var req comment.ListCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	req.Normalize()

	comments, total, err := h.service.List(c.Request.Context(), titleID, reviewID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, comments, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// Create handles POST /titles/:title_id/reviews/:review_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	titleID, reviewID, ok := pathIDs(c)
	if !ok {
		return
	}

	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), middleware.CurrentPrincipal(c), titleID, reviewID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Get handles GET /titles/:title_id/reviews/:review_id/comments/:comment_id
func (h *CommentHandler) Get(c *gin.Context) {
	titleID, reviewID, ok := pathIDs(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	cm, err := h.service.Get(c.Request.Context(), titleID, reviewID, commentID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cm)
}

// Update handles PATCH /titles/:title_id/reviews/:review_id/comments/:comment_id
func (h *CommentHandler) Update(c *gin.Context) {
	titleID, reviewID, ok := pathIDs(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	var req comment.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), middleware.CurrentPrincipal(c), titleID, reviewID, commentID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /titles/:title_id/reviews/:review_id/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	titleID, reviewID, ok := pathIDs(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), middleware.CurrentPrincipal(c), titleID, reviewID, commentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func pathIDs(c *gin.Context) (titleID, reviewID int64, ok bool) {
	titleID, ok = pathID(c, "title_id")
	if !ok {
		return 0, 0, false
	}
	reviewID, ok = pathID(c, "review_id")
	if !ok {
		return 0, 0, false
	}
	return titleID, reviewID, true
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
	case errors.Is(err, review.ErrNotFound):
		response.NotFound(c, "review not found")
	case errors.Is(err, comment.ErrNotFound):
		response.NotFound(c, "comment not found")
	default:
		response.InternalServerError(c, "internal server error")
	}
}
