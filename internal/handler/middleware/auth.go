package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"chargeway/internal/pkg/cookie"
	"chargeway/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxClientIDKey      = "client_id"
	ctxClientEmailKey   = "client_email"
	ctxUpstreamTokenKey = "upstream_token"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		setIdentity(c, claims.ClientID, claims.Email, claims.UpstreamToken)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			// Invalid token; continue without aborting.
			c.Next()
			return
		}

		setIdentity(c, claims.ClientID, claims.Email, claims.UpstreamToken)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, clientID int64, email, upstreamToken string) {
	c.Set(ctxClientIDKey, clientID)
	c.Set(ctxClientEmailKey, email)
	c.Set(ctxUpstreamTokenKey, upstreamToken)
}

func GetClientID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxClientIDKey)
	if !exists {
		return 0, false
	}

	id, ok := v.(int64)
	return id, ok
}

// GetUpstreamToken returns the charging platform bearer token carried in the
// caller's gateway JWT.
func GetUpstreamToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUpstreamTokenKey)
	if !exists {
		return "", false
	}

	token, ok := v.(string)
	return token, ok
}
