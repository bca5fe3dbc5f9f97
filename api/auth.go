package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlipatova/airgate/internal/apperr"
	"github.com/mlipatova/airgate/internal/service/auth"
	"github.com/mlipatova/airgate/internal/session"
)

type AuthHandler struct {
	service      auth.AuthUseCase
	secureCookie bool
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(service auth.AuthUseCase, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: service, secureCookie: secureCookie}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/login", h.login)
	router.POST("/logout", h.logout)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.InvalidInput("invalid request body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(c, apperr.InvalidInput("email and password are required"))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	// The cookie dies exactly when the registry entry does.
	session.SetCookie(c.Writer, result.Token, result.ExpiresAt, h.secureCookie)
	c.JSON(http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// logout revokes whatever token the request carried. Idempotent: an absent
// or already-dead session still yields 200.
func (h *AuthHandler) logout(c *gin.Context) {
	token := tokenFromRequest(c)
	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		writeError(c, err)
		return
	}

	session.ClearCookie(c.Writer, h.secureCookie)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
