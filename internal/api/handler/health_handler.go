package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the index and liveness endpoints. Neither touches the
// user service.
type HealthHandler struct {
	env string
	now func() time.Time
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env, now: time.Now}
}

// Index handles GET /.
//
// @Summary      Service index
// @Tags         health
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       / [get]
func (h *HealthHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, h.status())
}

// Liveness handles GET /health.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, h.status())
}

func (h *HealthHandler) status() statusResponse {
	return statusResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Truncate(time.Millisecond),
		Env:       h.env,
	}
}
