package ports

import (
	"context"
	"io"

	"github.com/jhoicas/zenith-pos/internal/domain/cashdrawer"
	"github.com/jhoicas/zenith-pos/internal/domain/catalog"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// ReceiptData datos de un comprobante de venta ya resueltos.
type ReceiptData struct {
	Sale        entity.Sale
	Settings    entity.Settings
	Branch      entity.Branch
	Customer    entity.Customer
	ProductSKUs map[string]string // productID → SKU; vacío si el producto ya no existe
}

// ClosingData datos del reporte de cierre de caja.
type ClosingData struct {
	Report   cashdrawer.ClosingReport
	Settings entity.Settings
	Branch   entity.Branch
}

// DocumentGenerator genera los documentos imprimibles (PDF).
type DocumentGenerator interface {
	ReceiptPDF(ctx context.Context, data ReceiptData) ([]byte, error)
	ClosingReportPDF(ctx context.Context, data ClosingData) ([]byte, error)
}

// Formatos de importación/exportación de inventario.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// CatalogCodec lee y escribe filas de inventario en CSV o JSON.
type CatalogCodec interface {
	Encode(w io.Writer, format string, rows []catalog.Row) error
	Decode(r io.Reader, format string) ([]catalog.Row, error)
}
