package router

import (
	"time"

	"github.com/anonto42/boujee-triggers/internal/handlers"
	"github.com/anonto42/boujee-triggers/internal/middleware"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, logger *zap.Logger) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.RequestLoggerWithConfig(eMiddleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v eMiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency.Round(time.Microsecond)),
			}
			if v.Error != nil {
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Debug("request", fields...)
			return nil
		},
	}))
	logger.Info("Global middleware configured.")
}

// SetupRoutes registers the trigger endpoints. An empty jwtSecret leaves them unauthenticated.
func SetupRoutes(e *echo.Echo, triggerHandler *handlers.TriggerHandler, jwtSecret string, logger *zap.Logger) {
	e.GET("/health", handlers.HealthCheck)

	g := e.Group("/triggers")
	if jwtSecret != "" {
		g.Use(middleware.JWTAuthMiddleware(jwtSecret))
		logger.Info("JWT authentication middleware applied to /triggers group.")
	} else {
		logger.Warn("TRIGGER_JWT_SECRET not set, trigger endpoints are unauthenticated.")
	}

	triggerHandler.RegisterTriggerRoutes(g)
	logger.Info("Trigger routes configured.")
}
