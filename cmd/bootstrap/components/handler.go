package components

import (
	"chargeway/internal/handler"
	"chargeway/internal/handler/api"
	"chargeway/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewStationHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewSessionHandler,
		api.NewVehicleHandler,
		api.NewComplaintHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	station *api.StationHandler,
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	session *api.SessionHandler,
	vehicle *api.VehicleHandler,
	complaint *api.ComplaintHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Station:      station,
		Availability: availability,
		Booking:      booking,
		Session:      session,
		Vehicle:      vehicle,
		Complaint:    complaint,
	}
}
