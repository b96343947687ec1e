package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "env_advisor/docs"
	"env_advisor/internal/config"
	"env_advisor/internal/handlers"
	"env_advisor/internal/logger"
	"env_advisor/internal/metrics"
	"env_advisor/internal/models"
	"env_advisor/internal/server"
	"env_advisor/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title        Environmental Advisory API
// @version      1.0
// @description  Rule-based advice from temperature, humidity, dust and gas sensor readings.
// @BasePath     /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel, logger.ConsoleFormat).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// wire dependencies
	services := service.NewService(service.AuthConfig{
		Enabled:    cfg.Auth.Enabled,
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		Devices:    cfg.Auth.Devices,
	})

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	apiHandler := handlers.NewHandler(services, log, m, handlers.Options{
		Version:           cfg.App.Version,
		SwaggerEnabled:    cfg.Swagger.Enabled,
		WSMaxMessageBytes: cfg.WS.MaxMessageBytes,
	})

	// start HTTP server
	srv := server.New(server.Options{
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	logBanner(cfg, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// logBanner prints the endpoint and a sample request body.
func logBanner(cfg config.Config, log *logger.Logger) {
	example, _ := json.Marshal(models.ReadingExample)
	log.Infow("env advisor running",
		"port", cfg.Port,
		"endpoint", "POST http://localhost:"+cfg.Port+"/api/analyze",
		"example_request", string(example),
		"version", cfg.App.Version,
		"device_auth", cfg.Auth.Enabled,
	)
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
