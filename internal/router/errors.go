package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Messages returned to clients.  Error details never leave the server; they
// are only written to the server-side log.
const (
	msgNotFound = "Rota não encontrada"
	msgInternal = "Algo deu errado!"
)

// ErrorHandler is the central HTTP error handler.  Unmatched routes are
// answered with a generic 404 body; every other failure (bind errors,
// handler errors, recovered panics) is answered with a generic 500 body and
// the underlying error is logged server-side.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			// A method mismatch on a known path is still an unmatched
			// route from the client's point of view.
			code = http.StatusNotFound
		}
	}

	var body echo.Map
	switch code {
	case http.StatusNotFound:
		body = echo.Map{"error": msgNotFound}
	default:
		c.Logger().Error(err)
		body = echo.Map{"error": msgInternal}
	}

	if err := c.JSON(code, body); err != nil {
		c.Logger().Error(err)
	}
}
