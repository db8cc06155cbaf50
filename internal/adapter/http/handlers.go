package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

var processStart = time.Now().UTC()

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": "trustlend-api",
		"status":  "ok",
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
		"uptime":  time.Since(processStart).Round(time.Second).String(),
	})
}
