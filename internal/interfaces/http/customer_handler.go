package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/usecase"
	"github.com/jhoicas/zenith-pos/internal/domain/credit"
)

// CustomerHandler maneja clientes, proveedores y sus abonos.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// ListCustomers GET /api/customers?q=
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	out, err := h.uc.ListCustomers(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCustomer GET /api/customers/:id
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	out, err := h.uc.GetCustomer(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SaveCustomer POST /api/customers y PUT /api/customers/:id
func (h *CustomerHandler) SaveCustomer(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id := c.Params("id")
	out, err := h.uc.SaveCustomer(c.UserContext(), GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(savedStatus(id)).JSON(out)
}

// DeleteCustomer DELETE /api/customers/:id
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	if err := h.uc.DeleteCustomer(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CustomerPayment godoc
// @Summary      Registrar abono de cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del cliente"
// @Param        body  body  dto.PaymentRequest  true  "Monto y método"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/payments [post]
func (h *CustomerHandler) CustomerPayment(c *fiber.Ctx) error {
	return h.payment(c, credit.PartyCustomer)
}

// ListSuppliers GET /api/suppliers?q=
func (h *CustomerHandler) ListSuppliers(c *fiber.Ctx) error {
	out, err := h.uc.ListSuppliers(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetSupplier GET /api/suppliers/:id
func (h *CustomerHandler) GetSupplier(c *fiber.Ctx) error {
	out, err := h.uc.GetSupplier(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SaveSupplier POST /api/suppliers y PUT /api/suppliers/:id
func (h *CustomerHandler) SaveSupplier(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id := c.Params("id")
	out, err := h.uc.SaveSupplier(c.UserContext(), GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(savedStatus(id)).JSON(out)
}

// DeleteSupplier DELETE /api/suppliers/:id
func (h *CustomerHandler) DeleteSupplier(c *fiber.Ctx) error {
	if err := h.uc.DeleteSupplier(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SupplierPayment godoc
// @Summary      Registrar pago a proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del proveedor"
// @Param        body  body  dto.PaymentRequest  true  "Monto y método"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id}/payments [post]
func (h *CustomerHandler) SupplierPayment(c *fiber.Ctx) error {
	return h.payment(c, credit.PartySupplier)
}

func (h *CustomerHandler) payment(c *fiber.Ctx, party credit.Party) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RecordPayment(c.UserContext(), GetActor(c), party, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// savedStatus 201 al crear (sin id en la ruta), 200 al actualizar.
func savedStatus(id string) int {
	if id == "" {
		return fiber.StatusCreated
	}
	return fiber.StatusOK
}
