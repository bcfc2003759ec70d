package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// helloMessage is the fixed greeting served at /api/hello.
const helloMessage = "Hello, World!"

// Hello returns the classic greeting with an HTTP 200 status code.
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: helloMessage})
}
