// Package http is the inbound REST adapter: routing, middleware, request validation,
// error rendering and the mapping between the API contract and the order domain.
package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// DefaultAllowedOrigins are used when no CORS origins are configured.
var DefaultAllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// CORSConfig controls cross-origin access to /api routes.
type CORSConfig struct {
	AllowedOrigins  []string
	AllowAllOrigins bool
}

// RouterConfig carries the collaborators NewRouter wires together.
type RouterConfig struct {
	Server        servers.ServerInterface
	Clock         kernel.Clock
	Logger        *slog.Logger
	CORS          CORSConfig
	ServerMetrics *metrics.ServerMetrics
	Gatherer      prometheus.Gatherer
}

// NewRouter builds the echo instance serving the API, health, metrics and documentation.
func NewRouter(cfg RouterConfig) *echo.Echo {
	logger := cfg.Logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(cfg.Clock, cfg.Logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if cfg.ServerMetrics != nil {
		e.Use(metricsMiddleware(cfg.ServerMetrics))
	}
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(corsMiddleware(cfg.CORS))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(cfg.Gatherer)))
	}
	e.GET("/openapi.json", openAPIHandler)
	registerSwaggerDoc()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, cfg.Server)

	return e
}

func corsMiddleware(cfg CORSConfig) echo.MiddlewareFunc {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = DefaultAllowedOrigins
	}

	corsConfig := middleware.CORSConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, "/api/")
		},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		AllowOrigins:     origins,
	}
	if cfg.AllowAllOrigins {
		// Reflect the caller's origin; "*" cannot be combined with credentials.
		corsConfig.AllowOrigins = nil
		corsConfig.AllowOriginFunc = func(string) (bool, error) { return true, nil }
	}

	return middleware.CORSWithConfig(corsConfig)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "Request completed with error", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "Request completed", attrs...)
			return nil
		},
	})
}

func metricsMiddleware(m *metrics.ServerMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil && !c.Response().Committed {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.Requests.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
			m.LatencyMS.WithLabelValues(method, route).Observe(float64(time.Since(start).Milliseconds()))
			return err
		}
	}
}

func openAPIHandler(c echo.Context) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, swagger)
}
