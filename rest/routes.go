package rest

import (
	"strings"

	"update-sync/config"
	"update-sync/di"
	middleware_custom "update-sync/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Use(middleware_custom.RequestIDMiddleware())
	e.Use(middleware.Recover())
	if cfg.OTel.Enabled {
		e.Use(otelecho.Middleware(cfg.OTel.ServiceName))
		e.Use(middleware_custom.OTelStatusMiddleware())
	}
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.WriteTimeout,
		Skipper: func(c echo.Context) bool {
			return cfg.Server.WriteTimeout <= 0 || strings.HasSuffix(c.Path(), "/stream")
		},
	}))
	e.Use(middleware_custom.LoggingMiddleware(container.Logger))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", handleHealth(container))

	registerTopicRoutes(v1, container)
	registerNewsRoutes(v1, container, cfg)
	registerPreferencesRoutes(v1, container)
	registerSyncRoutes(v1, container)
}
