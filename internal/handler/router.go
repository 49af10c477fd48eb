package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"chargeway/internal/handler/api"
	"chargeway/internal/handler/middleware"
	"chargeway/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Station      *api.StationHandler
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Session      *api.SessionHandler
	Vehicle      *api.VehicleHandler
	Complaint    *api.ComplaintHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			addRoutes(protected, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Vehicle.Profile},

				{Method: http.MethodGet, Path: "/stations", Handler: h.Station.List},
				{Method: http.MethodGet, Path: "/stations/:id", Handler: h.Station.Get},
				{Method: http.MethodGet, Path: "/stations/:id/connectors/:connectorId/slots", Handler: h.Availability.Grid},

				{Method: http.MethodGet, Path: "/calendar", Handler: h.Availability.Calendar},

				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
				{Method: http.MethodPost, Path: "/bookings/selection/toggle", Handler: h.Booking.ToggleSelection},
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Booking.ListReservations},
				{Method: http.MethodPut, Path: "/reservations/:id/cancel", Handler: h.Booking.Cancel},

				{Method: http.MethodGet, Path: "/sessions/active", Handler: h.Session.Active},
				{Method: http.MethodPost, Path: "/sessions/start", Handler: h.Session.Start},
				{Method: http.MethodPut, Path: "/sessions/end", Handler: h.Session.End},

				{Method: http.MethodGet, Path: "/vehicles", Handler: h.Vehicle.List},
				{Method: http.MethodPost, Path: "/vehicles", Handler: h.Vehicle.Register},
				{Method: http.MethodDelete, Path: "/vehicles/:id", Handler: h.Vehicle.Remove},
				{Method: http.MethodGet, Path: "/vehicles/brands", Handler: h.Vehicle.Brands},
				{Method: http.MethodGet, Path: "/vehicles/models", Handler: h.Vehicle.Models},
				{Method: http.MethodGet, Path: "/vehicles/variants", Handler: h.Vehicle.Variants},

				{Method: http.MethodPost, Path: "/complaints", Handler: h.Complaint.Create},
				{Method: http.MethodGet, Path: "/complaints", Handler: h.Complaint.List},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
