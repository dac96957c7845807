package handler

import (
	"net/http"

	"visitreg/internal/dto"
	"visitreg/internal/middleware"
	"visitreg/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Register godoc
// @Summary Register a staff account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} apierror.ValidationError
// @Failure 409 {object} apierror.APIError
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout revokes the presented token. Idempotent: logging out twice succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), middleware.GetToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "logged out"})
}

// CurrentUser returns the identity bound to the presented token.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	c.JSON(http.StatusOK, dto.UserResponse{
		ID:        identity.ID.String(),
		Name:      identity.Name,
		Email:     identity.Email,
		Role:      identity.Role,
		CreatedAt: identity.CreatedAt,
	})
}
