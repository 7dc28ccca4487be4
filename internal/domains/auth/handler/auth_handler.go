package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"reviewdb-backend/internal/domains/auth"
	"reviewdb-backend/internal/shared/response"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles POST /auth/signup. Succeeds with 200, not 201: the
// same call re-confirms an existing account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Token handles POST /auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req auth.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Token(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func respondError(c *gin.Context, err error) {
	var verr validation.Errors
	if errors.As(err, &verr) {
		response.ValidationFailed(c, verr)
		return
	}

	switch auth.GetHTTPStatus(err) {
	case http.StatusNotFound:
		response.NotFound(c, "user not found")
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
