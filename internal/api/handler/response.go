package handler

import "github.com/labstack/echo/v4"

// successResponse is the canonical success envelope: a "success" status plus
// either a data payload or a human-readable message.
type successResponse struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(c echo.Context, code int, data any) error {
	return c.JSON(code, successResponse{Status: "success", Data: data})
}

func respondMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, successResponse{Status: "success", Message: message})
}
