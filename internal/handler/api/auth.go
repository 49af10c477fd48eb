package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "chargeway/internal/handler/dto/request"
	resdto "chargeway/internal/handler/dto/response"
	"chargeway/internal/pkg/config"
	"chargeway/internal/pkg/cookie"
	"chargeway/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cfg          config.Config
	tokenExpiry  time.Duration
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	expiry, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		expiry = 24 * time.Hour
	}
	return &AuthHandler{
		authCommands: authCommands,
		cfg:          cfg,
		tokenExpiry:  expiry,
	}
}

// @Summary Client login
// @Description Login with username and password against the charging platform
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Authentication service unavailable",
			})
		}
		return
	}

	cookie.SetTokenCookie(c, h.cfg.Cookie, result.AccessToken, h.tokenExpiry)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		Client:      result.Profile,
	})
}

// @Summary Client registration
// @Description Register a new client account and log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Registration failed",
		})
		return
	}

	cookie.SetTokenCookie(c, h.cfg.Cookie, result.AccessToken, h.tokenExpiry)
	c.JSON(http.StatusCreated, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		Client:      result.Profile,
	})
}

// @Summary Client logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}
