package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "chargeway/internal/handler/dto/request"
	"chargeway/internal/usecase/commands"
	"chargeway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionCommands commands.SessionCommands
	sessionQueries  queries.SessionQueries
}

func NewSessionHandler(sessionCommands commands.SessionCommands, sessionQueries queries.SessionQueries) *SessionHandler {
	return &SessionHandler{
		sessionCommands: sessionCommands,
		sessionQueries:  sessionQueries,
	}
}

// @Summary Active charging session
// @Description Polled charging screen: progress interpolated from the
// @Description reservation span. Returns 204 when nothing is charging.
// @Tags sessions
// @Security BearerAuth
// @Produce json
// @Param power_kw query number false "Connector power rating for the energy estimate"
// @Success 200 {object} queries.ActiveSessionView
// @Success 204 "No Content"
// @Router /sessions/active [get]
func (h *SessionHandler) Active(c *gin.Context) {
	_, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	powerKW, _ := strconv.ParseFloat(c.DefaultQuery("power_kw", "0"), 64)

	view, err := h.sessionQueries.Active(c.Request.Context(), token, powerKW)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load session",
		})
		return
	}
	if view == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Start charging session
// @Tags sessions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.StartSessionRequest true "Start request"
// @Success 201 {object} commands.SessionResult
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/start [post]
func (h *SessionHandler) Start(c *gin.Context) {
	_, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req reqdto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.sessionCommands.Start(c.Request.Context(), token, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrSessionNotStartable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation cannot start a session now",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to start session",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// @Summary End charging session
// @Tags sessions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.EndSessionRequest true "End request"
// @Success 200 {object} commands.SessionResult
// @Failure 404 {object} map[string]string
// @Router /sessions/end [put]
func (h *SessionHandler) End(c *gin.Context) {
	_, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req reqdto.EndSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.sessionCommands.End(c.Request.Context(), token, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSessionNotFound), errors.Is(err, commands.ErrSessionNotStarted):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No running session",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to end session",
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
