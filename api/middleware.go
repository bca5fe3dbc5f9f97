package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mlipatova/airgate/internal/domain"
	"github.com/mlipatova/airgate/internal/service/auth"
	"github.com/mlipatova/airgate/internal/session"
)

const (
	currentUserKey = "currentUser"
	requestIDKey   = "requestID"
)

// Metadata stamps every API response with tracking, mock rate-limit and
// generic security headers. Informational only; nothing is enforced.
func Metadata() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set(requestIDKey, requestID)

		h := c.Writer.Header()
		h.Set("X-Request-Id", requestID)
		h.Set("X-Timestamp", time.Now().UTC().Format(time.RFC3339))

		h.Set("X-RateLimit-Limit", "1000")
		h.Set("X-RateLimit-Remaining", "999")
		h.Set("X-RateLimit-Reset", time.Now().Add(time.Hour).UTC().Format(time.RFC3339))

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")

		c.Next()
	}
}

// RequestLogger logs one structured line per request, including any errors
// handlers attached to the context.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(requestIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			logger.Error("request failed", fields...)
			return
		}
		logger.Info("request handled", fields...)
	}
}

// AuthMiddleware resolves the caller's session into the request context.
type AuthMiddleware struct {
	auth auth.AuthUseCase
}

func NewAuthMiddleware(authService auth.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: authService}
}

// Resolve looks up the current user when a token is present. It never aborts;
// RequireAuth and RequireAdmin decide whether anonymity is acceptable.
func (m *AuthMiddleware) Resolve(c *gin.Context) {
	token := tokenFromRequest(c)
	if token == "" {
		c.Next()
		return
	}

	user, err := m.auth.CurrentUser(c.Request.Context(), token)
	if err != nil {
		writeError(c, err)
		c.Abort()
		return
	}
	if user != nil {
		c.Set(currentUserKey, user)
	}
	c.Next()
}

// RequireAuth rejects requests without a valid session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserFromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":  "UNAUTHENTICATED",
				"error": "unauthorized",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests unless the session resolves to an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUserFromContext(c)
		if !ok || user.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":  "FORBIDDEN",
				"error": "admin access required",
			})
			return
		}
		c.Next()
	}
}

// CurrentUserFromContext retrieves the authenticated user, if any.
func CurrentUserFromContext(c *gin.Context) (*domain.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

// tokenFromRequest reads the session token from the auth cookie, falling
// back to a bearer Authorization header.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
