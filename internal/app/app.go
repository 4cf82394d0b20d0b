package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"notify-digest/internal/compactors"
	"notify-digest/internal/dispatchers"
	internalhttp "notify-digest/internal/http"
	"notify-digest/internal/ingestors"
	"notify-digest/internal/queues"
	"notify-digest/internal/shared/configs"
	"notify-digest/internal/shared/loggers"
)

const (
	appName = "notify-digest"

	defaultQueueDrainGrace = 10 * time.Second
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	queueCoordinator queues.QueueCoordinator
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	return newApp(config, appLogger), nil
}

func newApp(config *configs.Config, appLogger loggers.Logger) *App {
	dispatch := config.Dispatch

	// Delivery
	deliveryClient := dispatchers.NewDeliveryClient(dispatchers.ClientConfig{
		EndpointURL: dispatch.EndpointURL,
		DisplayName: dispatchers.ResolveDisplayName(dispatch.DisplayName, dispatch.ServerName),
		Timeout:     time.Duration(dispatch.TimeoutSeconds) * time.Second,
	})

	// Buffering
	queueLogger := appLogger.With().Str(loggers.FieldComponent, "queue").Logger()
	queueCoordinator := queues.NewQueueCoordinator(
		queues.Options{
			BufferingEnabled:     dispatch.BufferingEnabled,
			Debounce:             secondsToDuration(dispatch.DebounceSeconds),
			MaxBufferAge:         secondsToDuration(dispatch.MaxBufferAgeSeconds),
			MaxEventsPerDispatch: dispatch.MaxEventsPerDispatch,
		},
		compactors.NewMessageCompactor(),
		deliveryClient,
		queueLogger,
	)

	// Ingestion
	ingestionService := ingestors.NewIngestionService(queueCoordinator)
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:           config,
		appLogger:        appLogger,
		server:           server,
		queueCoordinator: queueCoordinator,
	}
}

// Handler exposes the router, mainly for in-process tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	dispatch := app.config.Dispatch
	app.appLogger.Info().
		Msgf("Starting %s on port %d (log_level=%s, buffering_enabled=%t, debounce_seconds=%g, max_events_per_dispatch=%d, endpoint_configured=%t)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			dispatch.BufferingEnabled,
			dispatch.DebounceSeconds,
			dispatch.MaxEventsPerDispatch,
			dispatch.EndpointURL != "")

	return app.server.ListenAndServe()
}

// Shutdown stops accepting requests, then flushes the pending buffer and waits for deliveries.
// The buffer is flushed even when the server fails to stop in time; the queue then gets one
// delivery timeout of its own to finish.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	var serverErr error
	if err := app.server.Shutdown(ctx); err != nil {
		serverErr = fmt.Errorf("server shutdown failed: %w", err)
		app.appLogger.Error().Err(err).Msg("Server did not stop cleanly, flushing pending notifications anyway")
	} else {
		app.appLogger.Info().Msg("Server stopped")
	}

	queueCtx := ctx
	if ctx.Err() != nil {
		var cancel context.CancelFunc
		queueCtx, cancel = context.WithTimeout(context.WithoutCancel(ctx), app.queueDrainGrace())
		defer cancel()
	}

	var queueErr error
	if err := app.queueCoordinator.Shutdown(queueCtx); err != nil {
		queueErr = fmt.Errorf("queue shutdown failed: %w", err)
	} else {
		app.appLogger.Info().Msg("Pending notifications flushed")
	}

	return errors.Join(serverErr, queueErr)
}

func (app *App) queueDrainGrace() time.Duration {
	if seconds := app.config.Dispatch.TimeoutSeconds; seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return defaultQueueDrainGrace
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
