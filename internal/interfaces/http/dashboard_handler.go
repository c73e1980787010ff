package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/zenith-pos/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los indicadores de la sucursal activa para el periodo pedido.
// GET /api/dashboard/summary?period=today|week|month|all
//
// Respuesta: DashboardSummaryDTO (ingresos, ticket promedio, ganancia bruta, alertas,
// productos más vendidos, ventas por día y actividad reciente).
// Sin period se usa todo el historial.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetActor(c).BranchID, c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
