package handler

import (
	"creator-paygate/internal/adapter/http/dto"
	"creator-paygate/internal/core/ports"
	"creator-paygate/pkg/apperror"
	"creator-paygate/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, expiry, err := h.authSvc.Login(c.Request.Context(), req.AccessKey, req.Secret)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// Me handles GET /api/v1/auth/me (JWT-authenticated).
func (h *AuthHandler) Me(c *gin.Context) {
	creatorID, ok := creatorIDFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	creator, err := h.authSvc.Profile(c.Request.Context(), creatorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewCreatorProfileResponse(creator))
}
