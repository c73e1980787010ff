package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zenith-pos/internal/application/auth"
	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/usecase"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// AuthHandler maneja login y la resolución de vistas de la sesión.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	modules *usecase.ModuleService
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, modules *usecase.ModuleService) *AuthHandler {
	return &AuthHandler{uc: uc, modules: modules}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password y sucursal opcional"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "VALIDATION", "email y password son requeridos")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Views godoc
// @Summary      Vistas accesibles en la sucursal activa
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        view  query  string  false  "Vista solicitada"
// @Success      200   {object}  dto.ViewsResponse
// @Router       /api/me/views [get]
func (h *AuthHandler) Views(c *fiber.Ctx) error {
	out, err := h.modules.Views(c.UserContext(), GetActor(c), entity.View(c.Query("view")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
