package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// echoResponse wraps whatever JSON document the client sent.
type echoResponse struct {
	Received any `json:"received"`
}

// Echo returns the request body unchanged, wrapped in a "received" field.
// An absent body leaves the value nil, so the response is {"received":null}.
// A body that is not valid JSON fails to bind; the error propagates to the
// central error handler, which answers with the generic 500 response.
func Echo(c echo.Context) error {
	var body any
	if err := c.Bind(&body); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echoResponse{Received: body})
}
