// Package handler exposes the HTTP handlers for the demo API.  Every handler
// is a pure, stateless mapping from a request to a JSON response.
package handler

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// rootMessage is the fixed greeting served at the root route.  It is kept
// verbatim from the original service.
const rootMessage = "Servidor Express funcionando!"

// messageResponse wraps a single human-readable message.
type messageResponse struct {
	Message string `json:"message"`
}

// Root is the health-check endpoint used by load balancers and monitoring
// systems to verify that the service is running.  It returns a fixed JSON
// message with an HTTP 200 status code.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: rootMessage})
}
