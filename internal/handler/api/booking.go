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

type BookingHandler struct {
	bookingCommands    commands.BookingCommands
	reservationQueries queries.ReservationQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, reservationQueries queries.ReservationQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands:    bookingCommands,
		reservationQueries: reservationQueries,
	}
}

// @Summary Toggle a slot selection
// @Description Apply one tap to the current selection against the live grid
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ToggleSelectionRequest true "Toggle request"
// @Success 200 {object} commands.SelectionResult
// @Failure 400 {object} map[string]string
// @Router /bookings/selection/toggle [post]
func (h *BookingHandler) ToggleSelection(c *gin.Context) {
	clientID, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req reqdto.ToggleSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.ToggleSelection(c.Request.Context(), token, clientID, req)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrStationNotFound), errors.Is(err, queries.ErrConnectorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Station or connector not found",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to compute selection",
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Create booking
// @Description Book the selected contiguous slot run for a connector
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	clientID, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	resv, err := h.bookingCommands.CreateBooking(c.Request.Context(), token, clientID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingInFlight):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A booking is already being processed",
			})
		case errors.Is(err, commands.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Selected slots were just taken",
			})
		case errors.Is(err, commands.ErrEmptySelection):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Selection is empty",
			})
		case errors.Is(err, commands.ErrSelectionNotContiguous):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Selection must be a contiguous run of slots",
			})
		case errors.Is(err, commands.ErrSlotUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "One or more selected slots are unavailable",
			})
		case errors.Is(err, commands.ErrSlotIndexOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot index out of range",
			})
		case errors.Is(err, queries.ErrStationNotFound), errors.Is(err, queries.ErrConnectorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Station or connector not found",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to create booking",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resv)
}

// @Summary List my reservations
// @Description List the caller's reservations, optionally filtered by status
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param status query string false "Reservation status filter"
// @Success 200 {array} queries.ReservationView
// @Router /reservations [get]
func (h *BookingHandler) ListReservations(c *gin.Context) {
	_, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	resvs, err := h.reservationQueries.ListMine(c.Request.Context(), token, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load reservations",
		})
		return
	}

	c.JSON(http.StatusOK, resvs)
}

// @Summary Cancel reservation
// @Description Cancel one of the caller's reservations
// @Tags bookings
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/cancel [put]
func (h *BookingHandler) Cancel(c *gin.Context) {
	_, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation id",
		})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), token, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to cancel reservation",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
