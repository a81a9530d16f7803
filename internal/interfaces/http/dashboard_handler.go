package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lite/internal/application/analytics"
)

// DashboardHandler maneja las métricas y la actividad del panel principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Métricas del panel principal
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStats
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Activity godoc
// @Summary      Actividad reciente (más nueva primero)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Activity
// @Router       /api/dashboard/activity [get]
func (h *DashboardHandler) Activity(c *fiber.Ctx) error {
	out, err := h.uc.RecentActivity()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
