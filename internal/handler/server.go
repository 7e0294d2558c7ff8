package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/dharmasatrya/flightanalyst/internal/metrics"
)

// NewServer wires middleware and routes around an AnalysisHandler.
func NewServer(h *AnalysisHandler, m *metrics.Metrics, logger *zap.Logger) (*echo.Echo, error) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowCredentials: false,
	}))

	e.GET("/", h.Page)
	e.POST("/search", h.Search)
	e.POST("/credentials", h.SaveCredentials)

	api := e.Group("/api/v1")
	api.POST("/flights/analyze", h.Analyze)
	api.GET("/session/credentials", h.GetCredentials)
	api.PUT("/session/credentials", h.PutCredentials)
	api.DELETE("/session/credentials", h.DeleteCredentials)

	e.GET("/health", HealthHandler)
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	return e, nil
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}
