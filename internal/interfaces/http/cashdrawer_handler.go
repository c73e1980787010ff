package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zenith-pos/internal/application/cashdrawer"
	"github.com/jhoicas/zenith-pos/internal/application/dto"
)

// CashDrawerHandler maneja apertura, movimientos y cierre de caja.
type CashDrawerHandler struct {
	uc *cashdrawer.CashDrawerUseCase
}

// NewCashDrawerHandler construye el handler.
func NewCashDrawerHandler(uc *cashdrawer.CashDrawerUseCase) *CashDrawerHandler {
	return &CashDrawerHandler{uc: uc}
}

// Current godoc
// @Summary      Caja abierta de la sucursal y efectivo esperado
// @Tags         cash-drawer
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CurrentSessionResponse
// @Router       /api/cash-drawer/current [get]
func (h *CashDrawerHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.UserContext(), GetActor(c).BranchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Open godoc
// @Summary      Abrir caja
// @Tags         cash-drawer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenSessionRequest  true  "Monto inicial"
// @Success      201   {object}  entity.CashDrawerSession
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cash-drawer/open [post]
func (h *CashDrawerHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Open(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddMovement godoc
// @Summary      Registrar entrada o salida de efectivo
// @Tags         cash-drawer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "Tipo, monto y motivo"
// @Success      201   {object}  entity.CashDrawerMovement
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cash-drawer/movements [post]
func (h *CashDrawerHandler) AddMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddMovement(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Close godoc
// @Summary      Cerrar caja con el monto contado
// @Tags         cash-drawer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CloseSessionRequest  true  "Monto contado"
// @Success      200   {object}  dto.ClosingReportResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cash-drawer/close [post]
func (h *CashDrawerHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Close(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// History GET /api/cash-drawer/sessions
func (h *CashDrawerHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.UserContext(), GetActor(c).BranchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Report GET /api/cash-drawer/sessions/:id/report
func (h *CashDrawerHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.Report(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReportPDF GET /api/cash-drawer/sessions/:id/report.pdf
func (h *CashDrawerHandler) ReportPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.ReportPDF(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, data, filename)
}
