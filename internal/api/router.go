package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/crisiscenter/tracker/internal/api/handler"
	"github.com/crisiscenter/tracker/internal/api/middleware"
	"github.com/crisiscenter/tracker/internal/core/ports"
	"github.com/crisiscenter/tracker/internal/infrastructure/http/handlers"
)

// RouterDeps are the collaborators the HTTP surface needs.
type RouterDeps struct {
	Engine ports.Engine
	Feed   handler.NoticeFeed
	// Warn receives validation warnings for prompts the request did not answer.
	Warn ports.Prompter
	// Readiness lists the dependencies probed by /health/ready, by name.
	Readiness       map[string]handlers.Pinger
	AllowedNetworks []string
	Log             zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))

	localOnly, err := middleware.LocalOnly(deps.AllowedNetworks...)
	if err != nil {
		return nil, err
	}

	// --- Operator API ---
	clients := handler.NewClientHandler(deps.Engine, deps.Warn)
	events := handler.NewEventHandler(deps.Engine, deps.Feed)

	v1 := e.Group("/v1", localOnly)
	v1.POST("/clients", clients.Create)
	v1.GET("/clients", clients.List)
	v1.GET("/clients/:id", clients.Get)
	v1.PUT("/clients/:id", clients.Update)
	v1.POST("/clients/:id/move", clients.Move)
	v1.DELETE("/clients/:id", clients.Discharge)
	v1.GET("/beds", clients.AvailableBeds)
	v1.GET("/locations", clients.Locations)
	v1.POST("/events", events.Record)
	v1.GET("/logs/recent", events.RecentLogs)
	v1.GET("/notices", events.Notices)

	// --- Health probes ---
	health := handlers.NewHealthHandler()
	ready := handlers.NewReadinessHandler(deps.Readiness)

	e.GET("/health", health.Liveness)      // liveness  – is the process alive?
	e.GET("/health/ready", ready.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), localOnly)
	e.GET("/swagger/*", echoSwagger.WrapHandler, localOnly)

	return e, nil
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
