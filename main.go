package main

import (
	"fmt"
	"os"

	"rbay-web/internal/backend"
	"rbay-web/internal/config"
	"rbay-web/internal/server"
	"rbay-web/utils"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	utils.ConfigureLogger(cfg.Logging.Level, cfg.Logging.Format)

	client := backend.NewHTTPClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	router := server.SetupRouter(client, cfg.Server.TemplatesGlob)

	addr := cfg.ListenAddr()
	utils.Info("Starting RBay web frontend", map[string]any{
		"addr":    addr,
		"backend": cfg.Backend.BaseURL,
	})
	if err := router.Run(addr); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}
