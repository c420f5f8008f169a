package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub_backend/internal/logger"
	"taskhub_backend/internal/services"
	"taskhub_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes mounts the public authentication endpoints.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/verify/:token", h.VerifyAccount)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password/:token", h.ResetPassword)
	}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates an inactive account and emails a verification link.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.RegisterRequest  true  "Registration payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  apperrors.ErrorResponse
// @Failure      409  {object}  apperrors.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Register(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. Please check your email to verify your account.",
		"data":    user,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges email+password for a signed access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.LoginRequest  true  "Credentials"
// @Success      201  {object}  map[string]interface{}
// @Failure      401  {object}  apperrors.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// 201 on login is part of the historical API contract.
	c.JSON(http.StatusCreated, gin.H{
		"message": "Login successful",
		"data":    response,
	})
}

// VerifyAccount godoc
// @Summary      Verify an account
// @Description  Consumes the emailed activation token and activates the account.
// @Tags         auth
// @Produce      json
// @Param        token  path  string  true  "Activation token"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  apperrors.ErrorResponse
// @Router       /auth/verify/{token} [get]
func (h *AuthHandler) VerifyAccount(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.authService.VerifyAccount(db, c.Param("token")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account verified successfully. You can now log in.",
	})
}

// ForgotPassword godoc
// @Summary      Request a password reset
// @Description  Emails a reset link when the address is registered. Always answers 200 so the endpoint cannot be used to probe for accounts.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.ForgotPasswordRequest  true  "Account email"
// @Success      200  {object}  map[string]interface{}
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	// The response never reveals whether the email exists. Even a storage
	// failure is logged and answered with 200: a distinguishable error
	// here would mark the email as registered.
	if err := h.authService.RequestPasswordReset(db, req.Email); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to process password reset request", err,
			"path", c.Request.URL.Path)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "If that email is registered, a password reset link has been sent.",
	})
}

// ResetPassword godoc
// @Summary      Reset a password
// @Description  Consumes the emailed reset token and sets the new password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token    path  string                    true  "Reset token"
// @Param        request  body  dto.ResetPasswordRequest  true  "New password"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  apperrors.ErrorResponse
// @Router       /auth/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.ResetPassword(db, c.Param("token"), req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password has been reset successfully.",
	})
}
