package bootstrap

import (
	"log/slog"

	"chargeway/internal/pkg/config"
	"chargeway/internal/upstream"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		NewUpstreamClient,
	),
)

func NewUpstreamClient(cfg config.Config, logger *slog.Logger) *upstream.Client {
	return upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger)
}
