package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/usecase"
)

// CompanyHandler maneja la configuración del negocio, el plan y las sucursales.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetSettings godoc
// @Summary      Configuración del negocio
// @Tags         company
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.Settings
// @Router       /api/settings [get]
func (h *CompanyHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.uc.GetSettings(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateSettings godoc
// @Summary      Actualizar configuración (parcial)
// @Description  Solo se aplican los campos presentes en el cuerpo.
// @Tags         company
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "Campos a cambiar"
// @Success      200   {object}  entity.Settings
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [patch]
func (h *CompanyHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateSettings(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Plan GET /api/settings/plan
func (h *CompanyHandler) Plan(c *fiber.Ctx) error {
	out, err := h.uc.Plan(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBranches GET /api/branches
func (h *CompanyHandler) ListBranches(c *fiber.Ctx) error {
	out, err := h.uc.ListBranches(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SaveBranch POST /api/branches y PUT /api/branches/:id
func (h *CompanyHandler) SaveBranch(c *fiber.Ctx) error {
	var in dto.BranchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id := c.Params("id")
	out, err := h.uc.SaveBranch(c.UserContext(), GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(savedStatus(id)).JSON(out)
}

// DeleteBranch DELETE /api/branches/:id
func (h *CompanyHandler) DeleteBranch(c *fiber.Ctx) error {
	if err := h.uc.DeleteBranch(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
