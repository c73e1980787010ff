package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/pkg/jwt"
)

// HeaderBranchID permite operar sobre otra sucursal asignada sin volver a iniciar sesión.
const HeaderBranchID = "X-Branch-ID"

// Locals keys en Fiber.
const (
	LocalActor  = "actor"
	LocalLogger = "logger"
)

// sessionResolver lo implementa *auth.AuthUseCase.
type sessionResolver interface {
	Session(ctx context.Context, userID, branchID string) (ports.Actor, error)
}

// AuthMiddleware valida el Bearer Token JWT, elige la sucursal (cabecera X-Branch-ID o
// la del token) y deja el actor resuelto en c.Locals.
func AuthMiddleware(jwtSecret string, sessions sessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, branchID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if h := strings.TrimSpace(c.Get(HeaderBranchID)); h != "" {
			branchID = h
		}
		actor, err := sessions.Session(c.UserContext(), userID, branchID)
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// GetActor devuelve el actor de la petición (después del middleware de auth).
func GetActor(c *fiber.Ctx) ports.Actor {
	a, _ := c.Locals(LocalActor).(ports.Actor)
	return a
}
