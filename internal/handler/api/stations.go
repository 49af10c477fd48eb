package api

import (
	"errors"
	"net/http"
	"strconv"

	"chargeway/internal/handler/httperr"
	"chargeway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StationHandler struct {
	stationQueries queries.StationQueries
}

func NewStationHandler(stationQueries queries.StationQueries) *StationHandler {
	return &StationHandler{
		stationQueries: stationQueries,
	}
}

// @Summary List stations
// @Description List all charging stations with map coordinates
// @Tags stations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.StationListItem
// @Failure 401 {object} map[string]string
// @Router /stations [get]
func (h *StationHandler) List(c *gin.Context) {
	_, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	stations, err := h.stationQueries.List(c.Request.Context(), token)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to load stations", nil)
		return
	}

	c.JSON(http.StatusOK, stations)
}

// @Summary Get station
// @Description Get one station with charge points and connector rates
// @Tags stations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Station ID"
// @Success 200 {object} queries.StationView
// @Failure 404 {object} map[string]string
// @Router /stations/{id} [get]
func (h *StationHandler) Get(c *gin.Context) {
	_, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid station id", nil)
		return
	}

	station, err := h.stationQueries.Get(c.Request.Context(), token, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrStationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Station not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to load station", nil)
		}
		return
	}

	c.JSON(http.StatusOK, station)
}
