package components

import (
	"chargeway/internal/infra/cache"
	"chargeway/internal/upstream"
	"chargeway/internal/usecase/commands"
	"chargeway/internal/usecase/queries"

	"go.uber.org/fx"
)

// GatewayModule binds the upstream platform client and the station cache to
// the narrow ports each usecase declares.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			identity[*upstream.Client],
			fx.As(new(queries.StationGateway)),
			fx.As(new(queries.ReservationGateway)),
			fx.As(new(queries.ReservationListGateway)),
			fx.As(new(queries.SessionGateway)),
			fx.As(new(queries.VehicleCatalogGateway)),
			fx.As(new(queries.ComplaintListGateway)),
			fx.As(new(commands.AuthGateway)),
			fx.As(new(commands.BookingGateway)),
			fx.As(new(commands.SessionControlGateway)),
			fx.As(new(commands.VehicleGateway)),
			fx.As(new(commands.ComplaintGateway)),
		),
		fx.Annotate(
			identity[*cache.StationCache],
			fx.As(new(queries.StationCache)),
		),
	),
)

func identity[T any](v T) T { return v }
