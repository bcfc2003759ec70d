package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"            // import the Echo web framework to handle routing
	"github.com/labstack/echo/v4/middleware" // built-in middleware (request logging, panic recovery)

	"github.com/iliyamo/demo-api/internal/handler" // import the handlers that implement the endpoints
)

// New builds a fully configured Echo instance: request logging, panic
// recovery, the central error handler and all application routes.  The
// caller only has to start it.
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	// Recover converts handler panics into errors so a single bad request
	// can never take the process down; the error then flows through
	// ErrorHandler like any other failure.
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)
	return e
}

// RegisterRoutes registers all application routes on the provided Echo
// instance.  The root route doubles as the health check; everything else
// lives under the /api prefix.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)

	api := e.Group("/api")
	api.GET("/status", handler.Status)
	api.POST("/echo", handler.Echo)
	api.GET("/hello", handler.Hello)
}
