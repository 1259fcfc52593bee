package webserver

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/techvault/storefront/config"
	"go.uber.org/zap"
)

var server *WebServer

// WebServer wraps the echo instance serving the storefront API.
type WebServer struct {
	root   *echo.Echo
	config *config.AppConfig
}

// Init creates the global web server with the storefront middleware stack.
func Init(cfg *config.AppConfig) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.System.Debug
	e.JSONSerializer = NewJsonSerializer()
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(requestLogger())

	server = &WebServer{root: e, config: cfg}
	return server
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Info("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}

// Listen starts the HTTP listener and blocks until shutdown.
func Listen() error {
	addr := fmt.Sprintf("%s:%d", server.config.Web.Host, server.config.Web.Port)
	zap.S().Infof("web server listening on %s", addr)
	return server.root.Start(addr)
}

// Shutdown stops the listener gracefully.
func Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.root.Shutdown(ctx)
}

// Echo exposes the underlying instance (used in tests).
func Echo() *echo.Echo {
	return server.root
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}
