package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
	appErrors "github.com/ramonankersmit/vlier-planner-sub001/pkg/errors"
	"github.com/ramonankersmit/vlier-planner-sub001/pkg/response"
)

type authLoginService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

// AuthHandler exposes authentication endpoints.
type AuthHandler struct {
	service authLoginService
}

// NewAuthHandler builds a new handler.
func NewAuthHandler(service authLoginService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login verifies credentials and issues an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}
	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Me returns the authenticated user's claims.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, models.UserInfo{
		ID:       claims.UserID,
		Email:    claims.Email,
		FullName: claims.FullName,
		Role:     claims.Role,
	}, nil)
}
