package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/labora-api/internal/application/analytics"
	"github.com/jhoicas/labora-api/pkg/logger"
)

// DashboardHandler indicadores del panel.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Conteo por estado, valores totales, 5 orçamentos recientes e ingresos aprobados de los últimos 6 meses.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
