package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/usecase"
	"github.com/jhoicas/zenith-pos/internal/domain/catalog"
)

// ProductHandler maneja las peticiones HTTP de productos y categorías.
type ProductHandler struct {
	uc         *usecase.ProductUseCase
	categories *usecase.CategoryUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, categories *usecase.CategoryUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, categories: categories}
}

// List godoc
// @Summary      Listar productos con stock de la sucursal
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Búsqueda por nombre o SKU"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetActor(c).BranchID, c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c).BranchID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BySKU godoc
// @Summary      Buscar producto por SKU exacto (lector de códigos)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/sku/{sku} [get]
func (h *ProductHandler) BySKU(c *fiber.Ctx) error {
	out, err := h.uc.FindBySKU(c.UserContext(), GetActor(c).BranchID, c.Params("sku"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SaveProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetStock godoc
// @Summary      Fijar el stock del producto en la sucursal activa
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del producto"
// @Param        body  body  dto.SetStockRequest  true  "Cantidad"
// @Success      200   {object}  dto.ProductResponse
// @Router       /api/products/{id}/stock [put]
func (h *ProductHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetStock(c.UserContext(), GetActor(c), c.Params("id"), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// categoryKind lee el tipo de categoría de la ruta.
func categoryKind(c *fiber.Ctx) (catalog.CategoryKind, bool) {
	switch k := catalog.CategoryKind(c.Params("kind")); k {
	case catalog.ProductCategories, catalog.ExpenseCategories:
		return k, true
	}
	return "", false
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "product | expense"
// @Success      200   {array}  entity.Category
// @Router       /api/categories/{kind} [get]
func (h *ProductHandler) ListCategories(c *fiber.Ctx) error {
	kind, ok := categoryKind(c)
	if !ok {
		return badRequest(c, "INVALID_KIND", "kind debe ser product o expense")
	}
	out, err := h.categories.List(c.UserContext(), kind)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SaveCategory godoc
// @Summary      Crear o renombrar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind  path  string               true   "product | expense"
// @Param        id    path  string               false  "ID (solo al renombrar)"
// @Param        body  body  dto.CategoryRequest  true   "Nombre"
// @Success      200   {object}  entity.Category
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{kind} [post]
// @Router       /api/categories/{kind}/{id} [put]
func (h *ProductHandler) SaveCategory(c *fiber.Ctx) error {
	kind, ok := categoryKind(c)
	if !ok {
		return badRequest(c, "INVALID_KIND", "kind debe ser product o expense")
	}
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id := c.Params("id")
	out, err := h.categories.Save(c.UserContext(), GetActor(c), kind, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(savedStatus(id)).JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Security     Bearer
// @Param        kind  path  string  true  "product | expense"
// @Param        id    path  string  true  "ID"
// @Success      204
// @Router       /api/categories/{kind}/{id} [delete]
func (h *ProductHandler) DeleteCategory(c *fiber.Ctx) error {
	kind, ok := categoryKind(c)
	if !ok {
		return badRequest(c, "INVALID_KIND", "kind debe ser product o expense")
	}
	if err := h.categories.Delete(c.UserContext(), GetActor(c), kind, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
