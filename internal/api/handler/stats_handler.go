package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devnews/devnews-api/internal/core/ports"
)

type StatsHandler struct {
	statsService ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Get returns the dashboard snapshot: entity counts plus the five most
// recent users and posts. Admin only.
//
// @Summary      Admin dashboard statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      403  {object}  map[string]string
// @Router       /stats [get]
func (h *StatsHandler) Get(c echo.Context) error {
	snapshot, err := h.statsService.Snapshot(c.Request().Context())
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, snapshot)
}
