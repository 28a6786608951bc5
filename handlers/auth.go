package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jalusi/models"
	"jalusi/services/auth"
	"jalusi/utils"
)

type AuthHandler struct {
	Auth   auth.AuthService
	Logger *zap.Logger
}

func NewAuthHandler(svc auth.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Auth: svc, Logger: logger}
}

// SignIn handles POST /api/auth/login.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid request body", "email and password are required")
		return
	}
	resp, err := h.Auth.SignIn(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		utils.RespondError(c, h.Logger, "sign-in failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid request body", "email and password are required")
		return
	}
	resp, err := h.Auth.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, h.Logger, "sign-up failed", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignInWithGoogle handles POST /api/auth/google.
func (h *AuthHandler) SignInWithGoogle(c *gin.Context) {
	var body struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, h.Logger, http.StatusBadRequest, "invalid request body", "idToken is required")
		return
	}
	resp, err := h.Auth.SignInWithGoogle(c.Request.Context(), body.IDToken)
	if err != nil {
		utils.RespondError(c, h.Logger, "sign-in failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
