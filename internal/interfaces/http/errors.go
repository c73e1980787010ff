package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/domain"
)

// errorMapping código HTTP y código de error de la API para cada error de dominio.
// El orden importa: se toma la primera coincidencia de errors.Is.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrModuleDisabled, fiber.StatusForbidden, "MODULE_DISABLED"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrSessionAlreadyOpen, fiber.StatusConflict, "SESSION_ALREADY_OPEN"},
	{domain.ErrNoOpenSession, fiber.StatusConflict, "NO_OPEN_SESSION"},
	{domain.ErrRoleInUse, fiber.StatusConflict, "ROLE_IN_USE"},
	{domain.ErrRoleLocked, fiber.StatusConflict, "ROLE_LOCKED"},
	{domain.ErrPlanLimit, fiber.StatusConflict, "PLAN_LIMIT"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrEmptyCart, fiber.StatusUnprocessableEntity, "EMPTY_CART"},
	{domain.ErrInsufficientStock, fiber.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"},
	{domain.ErrCreditLimitExceeded, fiber.StatusUnprocessableEntity, "CREDIT_LIMIT_EXCEEDED"},
	{domain.ErrPaymentExceedsBalance, fiber.StatusUnprocessableEntity, "PAYMENT_EXCEEDS_BALANCE"},
	{domain.ErrInvalidAmount, fiber.StatusBadRequest, "INVALID_AMOUNT"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
}

// respondError traduce un error de la capa de aplicación a la respuesta HTTP.
// Los errores no reconocidos responden 500 sin exponer el detalle.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	logFrom(c).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return badRequest(c, "INVALID_BODY", "cuerpo inválido")
}
