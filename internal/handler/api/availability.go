package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"chargeway/internal/domain/booking"
	"chargeway/internal/domain/schedule"
	"chargeway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Booking calendar
// @Description Month grid for week-by-week slot browsing. The nav parameter
// @Description moves the cursor before rendering: prev_week, next_week,
// @Description prev_month, next_month.
// @Tags availability
// @Security BearerAuth
// @Produce json
// @Param month query int false "Month (1-12), defaults to current"
// @Param year query int false "Year, defaults to current"
// @Param week query int false "Week index within the month grid"
// @Param nav query string false "Cursor movement applied before rendering"
// @Success 200 {object} queries.CalendarView
// @Failure 400 {object} map[string]string
// @Router /calendar [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	if _, _, ok := callerIdentity(c); !ok {
		return
	}

	cursor := schedule.NewCursor(time.Now())
	if month, err := strconv.Atoi(c.Query("month")); err == nil {
		cursor.Month = month
	}
	if year, err := strconv.Atoi(c.Query("year")); err == nil {
		cursor.Year = year
	}
	if week, err := strconv.Atoi(c.Query("week")); err == nil {
		cursor.Week = week
	}

	switch c.Query("nav") {
	case "prev_week":
		cursor = cursor.PrevWeek()
	case "next_week":
		cursor = cursor.NextWeek()
	case "prev_month":
		cursor = cursor.PrevMonth()
	case "next_month":
		cursor = cursor.NextMonth()
	case "":
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown nav action",
		})
		return
	}

	view, err := h.availabilityQueries.Calendar(cursor)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidMonth) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid month",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Connector slot grid
// @Description Half-hour availability grid for one connector and service day
// @Tags availability
// @Security BearerAuth
// @Produce json
// @Param id path int true "Station ID"
// @Param connectorId path int true "Connector ID"
// @Param day query int true "Day of month"
// @Param month query int true "Month (1-12)"
// @Param year query int true "Year"
// @Param charge_percent query int false "Current battery percentage (0-100)"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stations/{id}/connectors/{connectorId}/slots [get]
func (h *AvailabilityHandler) Grid(c *gin.Context) {
	clientID, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	stationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid station id",
		})
		return
	}
	connectorID, err := strconv.ParseInt(c.Param("connectorId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid connector id",
		})
		return
	}

	day, dayErr := strconv.Atoi(c.Query("day"))
	month, monthErr := strconv.Atoi(c.Query("month"))
	year, yearErr := strconv.Atoi(c.Query("year"))
	if dayErr != nil || monthErr != nil || yearErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "day, month and year are required",
		})
		return
	}
	chargePercent, _ := strconv.Atoi(c.DefaultQuery("charge_percent", "0"))

	view, err := h.availabilityQueries.Grid(c.Request.Context(), token, clientID, stationID, connectorID, day, month, year, chargePercent)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrStationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Station not found",
			})
		case errors.Is(err, queries.ErrConnectorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Connector not found",
			})
		case errors.Is(err, schedule.ErrInvalidMonth), errors.Is(err, schedule.ErrInvalidDay):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid service date",
			})
		case errors.Is(err, booking.ErrInvalidChargeLevel):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid charge percentage",
			})
		case errors.Is(err, schedule.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Station has an invalid operating window",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to load availability",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
