package main

import (
	"context"
	"os"

	"ops-assistant/internal/bootstrap"
	"ops-assistant/internal/shared/config"
	"ops-assistant/internal/shared/server"
	"ops-assistant/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Configure(cfg.LogLevel)
	defer telemetry.Sync()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		telemetry.Error("startup.failed", map[string]any{"error": err})
		telemetry.Sync()
		os.Exit(1)
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{
		"addr": addr,
		"env":  cfg.Env,
		"rows": app.Store.Len(),
	})

	if err := app.Router.Run(addr); err != nil {
		telemetry.Error("server.error", map[string]any{"error": err})
		telemetry.Sync()
		os.Exit(1)
	}
}
