package components

import (
	"chargeway/internal/pkg/clock"
	"chargeway/internal/usecase"
	"chargeway/internal/usecase/commands"
	"chargeway/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStationQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewSessionQueries,
		queries.NewVehicleQueries,
		queries.NewComplaintQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewSessionCommands,
		commands.NewVehicleCommands,
		commands.NewComplaintCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
