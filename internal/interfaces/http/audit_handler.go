package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/usecase"
)

// AuditHandler expone el historial de acciones.
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Historial de acciones
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        user    query  string  false  "Nombre de usuario exacto"
// @Param        q       query  string  false  "Texto en la acción"
// @Param        from    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Límite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.AuditListResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	r, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), dto.AuditFilter{
		DateRange: r,
		User:      c.Query("user"),
		Search:    c.Query("q"),
		Page:      parsePage(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Detail GET /api/audit/:id
func (h *AuditHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
