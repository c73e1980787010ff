package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// viewChecker es el contrato mínimo que necesita el middleware para verificar vistas.
// Lo implementa *usecase.ModuleService.
type viewChecker interface {
	CanAccess(ctx context.Context, actor ports.Actor, view entity.View) (bool, error)
}

// RequireView devuelve un middleware Fiber que verifica si el usuario puede abrir alguna
// de las vistas en la sucursal activa: rol asignado, módulo habilitado y plan. Debe
// usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 Unauthorized → no hay actor en el contexto.
//   - 403 Forbidden → ninguna de las vistas está permitida.
//   - 503 Service Unavailable → fallo al leer el estado.
func RequireView(checker viewChecker, views ...entity.View) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor.UserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "sesión no encontrada",
			})
		}

		for _, view := range views {
			ok, err := checker.CanAccess(c.UserContext(), actor, view)
			if err != nil {
				logFrom(c).Error().Err(err).Str("view", string(view)).Msg("verificar vista")
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
					Code:    "VIEW_CHECK_FAILED",
					Message: "no se pudo verificar el acceso, intente más tarde",
				})
			}
			if ok {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "VIEW_FORBIDDEN",
			Message: "sin acceso a la vista '" + string(views[0]) + "' en esta sucursal",
		})
	}
}
