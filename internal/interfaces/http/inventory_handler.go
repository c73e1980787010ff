package http

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/inventory"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
)

// InventoryHandler maneja alertas, importación/exportación y reabastecimiento.
type InventoryHandler struct {
	uc            *inventory.InventoryUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, replenishment: replenishment}
}

// Alerts godoc
// @Summary      Alertas de stock bajo y vencimiento
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  catalog.Alert
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(c.UserContext(), GetActor(c).BranchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DismissAlert godoc
// @Summary      Descartar alerta
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.DismissAlertRequest  true  "Clave de la alerta"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/alerts/dismiss [post]
func (h *InventoryHandler) DismissAlert(c *fiber.Ctx) error {
	var in dto.DismissAlertRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.DismissAlert(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar productos desde CSV o JSON
// @Description  Acepta multipart (campo "file") o el archivo como cuerpo. El formato sale de ?format= o de la extensión.
// @Tags         inventory
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file    formData  file    false  "Archivo"
// @Param        format  query     string  false  "csv | json"
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/import [post]
func (h *InventoryHandler) Import(c *fiber.Ctx) error {
	format := strings.ToLower(c.Query("format"))
	var r io.Reader
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return invalidBody(c)
		}
		defer f.Close()
		r = f
		if format == "" {
			format = strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
		}
	} else {
		body := c.Body()
		if len(body) == 0 {
			return badRequest(c, "MISSING_FILE", "se requiere un archivo")
		}
		r = bytes.NewReader(body)
	}
	if format == "" {
		format = ports.FormatCSV
	}
	out, err := h.uc.Import(c.UserContext(), GetActor(c), r, format)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el catálogo con stock de la sucursal
// @Tags         inventory
// @Security     Bearer
// @Produce      text/csv
// @Param        format  query  string  false  "csv | json"  default(csv)
// @Success      200
// @Router       /api/inventory/export [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	format := strings.ToLower(c.Query("format", ports.FormatCSV))
	var buf bytes.Buffer
	if err := h.uc.Export(c.UserContext(), GetActor(c).BranchID, &buf, format); err != nil {
		return respondError(c, err)
	}
	if format == ports.FormatJSON {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	} else {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.`+format+`"`)
	return c.Send(buf.Bytes())
}

// Replenishment godoc
// @Summary      Lista sugerida de reabastecimiento
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReplenishmentSuggestionDTO
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) Replenishment(c *fiber.Ctx) error {
	out, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), GetActor(c).BranchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
