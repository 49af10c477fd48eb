package bootstrap

import (
	"log/slog"

	"chargeway/internal/handler/middleware"
	"chargeway/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger hands the request logger's slog backend to the rest of the app so
// upstream calls and cache failures land in the same stream as request logs.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
