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

type VehicleHandler struct {
	vehicleCommands commands.VehicleCommands
	vehicleQueries  queries.VehicleQueries
}

func NewVehicleHandler(vehicleCommands commands.VehicleCommands, vehicleQueries queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{
		vehicleCommands: vehicleCommands,
		vehicleQueries:  vehicleQueries,
	}
}

// @Summary My profile
// @Description Current client profile with registered vehicle count
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.ProfileView
// @Router /me [get]
func (h *VehicleHandler) Profile(c *gin.Context) {
	_, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	profile, err := h.vehicleQueries.Profile(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load profile",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary My vehicles
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.VehicleView
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	clientID, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	vehicles, err := h.vehicleQueries.ListMine(c.Request.Context(), token, clientID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load vehicles",
		})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// @Summary Register vehicle
// @Description Attach a catalog variant to the caller's garage
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterVehicleRequest true "Vehicle request"
// @Success 201 {object} queries.VehicleView
// @Failure 404 {object} map[string]string
// @Router /vehicles [post]
func (h *VehicleHandler) Register(c *gin.Context) {
	clientID, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req reqdto.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	vehicle, err := h.vehicleCommands.Register(c.Request.Context(), token, clientID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVariantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle variant not found",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to register vehicle",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// @Summary Remove vehicle
// @Tags vehicles
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Remove(c *gin.Context) {
	_, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle id",
		})
		return
	}

	if err := h.vehicleCommands.Remove(c.Request.Context(), token, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to remove vehicle",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Vehicle brands
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.BrandView
// @Router /vehicles/brands [get]
func (h *VehicleHandler) Brands(c *gin.Context) {
	_, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	brands, err := h.vehicleQueries.Brands(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load brands",
		})
		return
	}

	c.JSON(http.StatusOK, brands)
}

// @Summary Vehicle models
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param brand_id query int false "Filter by brand"
// @Success 200 {array} queries.ModelView
// @Router /vehicles/models [get]
func (h *VehicleHandler) Models(c *gin.Context) {
	_, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	brandID, _ := strconv.ParseInt(c.DefaultQuery("brand_id", "0"), 10, 64)

	models, err := h.vehicleQueries.Models(c.Request.Context(), token, brandID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load models",
		})
		return
	}

	c.JSON(http.StatusOK, models)
}

// @Summary Vehicle variants
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param model_id query int false "Filter by model"
// @Success 200 {array} queries.VariantView
// @Router /vehicles/variants [get]
func (h *VehicleHandler) Variants(c *gin.Context) {
	_, token, ok := callerIdentity(c)
	if !ok {
		return
	}

	modelID, _ := strconv.ParseInt(c.DefaultQuery("model_id", "0"), 10, 64)

	variants, err := h.vehicleQueries.Variants(c.Request.Context(), token, modelID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load variants",
		})
		return
	}

	c.JSON(http.StatusOK, variants)
}
