package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// statusResponse reports liveness together with the server's current time.
type statusResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Status reports that the service is online.  The timestamp is RFC 3339 in
// UTC so clients can parse it with any ISO-8601 aware library.
func Status(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{
		Status:    "online",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
