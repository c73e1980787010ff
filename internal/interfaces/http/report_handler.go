package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/zenith-pos/internal/application/analytics"
)

// ReportHandler maneja los reportes por rango de fechas.
type ReportHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// General godoc
// @Summary      Ingresos, costo, gastos y utilidad
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200   {object}  dto.GeneralReportDTO
// @Router       /api/reports/general [get]
func (h *ReportHandler) General(c *fiber.Ctx) error {
	r, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.General(c.UserContext(), GetActor(c).BranchID, r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesByCategory GET /api/reports/categories
func (h *ReportHandler) SalesByCategory(c *fiber.Ctx) error {
	r, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.SalesByCategory(c.UserContext(), GetActor(c).BranchID, r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExpensesByCategory GET /api/reports/expense-categories
func (h *ReportHandler) ExpensesByCategory(c *fiber.Ctx) error {
	r, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ExpensesByCategory(c.UserContext(), GetActor(c).BranchID, r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BestSellers GET /api/reports/best-sellers?limit=
func (h *ReportHandler) BestSellers(c *fiber.Ctx) error {
	r, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.BestSellers(c.UserContext(), GetActor(c).BranchID, r, c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Journal GET /api/reports/journal
//
// Totales por método de pago leídos del diario de ventas en Postgres.
func (h *ReportHandler) Journal(c *fiber.Ctx) error {
	r, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Journal(c.UserContext(), GetActor(c).BranchID, r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
