package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// Punto de venta y crédito.
	ErrEmptyCart             = errors.New("el carrito está vacío")
	ErrCreditLimitExceeded   = errors.New("el total excede el crédito disponible")
	ErrInvalidAmount         = errors.New("monto inválido")
	ErrPaymentExceedsBalance = errors.New("el pago excede el saldo pendiente")

	// Caja.
	ErrSessionAlreadyOpen = errors.New("ya existe una caja abierta en esta sucursal")
	ErrNoOpenSession      = errors.New("no hay una caja abierta en esta sucursal")

	// Roles, módulos y plan.
	ErrRoleInUse      = errors.New("el rol está asignado a uno o más usuarios")
	ErrRoleLocked     = errors.New("el rol Administrador no se puede modificar")
	ErrPlanLimit      = errors.New("límite del plan de suscripción alcanzado")
	ErrModuleDisabled = errors.New("módulo deshabilitado")
)
