package bootstrap

import (
	"chargeway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	UpstreamModule,
	RedisModule,
	JWTModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
