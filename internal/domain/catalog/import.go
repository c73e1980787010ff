package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// Row fila de importación/exportación de inventario. El orden de los campos es el
// orden de columnas del CSV.
type Row struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	LowStockAlert int             `json:"lowStockAlert"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	CategoryID    string          `json:"categoryId"`
	ExpiryDate    string          `json:"expiryDate"`
	ImageURL      string          `json:"imageUrl"`
	Stock         int             `json:"stock"`
}

// Columns encabezado del CSV.
var Columns = []string{"id", "name", "sku", "lowStockAlert", "price", "cost", "categoryId", "expiryDate", "imageUrl", "stock"}

// ExportRows arma las filas del catálogo con el stock de la sucursal.
func ExportRows(st *state.State, branchID string) []Row {
	rows := make([]Row, 0, len(st.Products))
	for _, p := range st.Products {
		rows = append(rows, Row{
			ID: p.ID, Name: p.Name, SKU: p.SKU, LowStockAlert: p.LowStockAlert,
			Price: p.Price, Cost: p.Cost, CategoryID: p.CategoryID,
			ExpiryDate: p.ExpiryDate, ImageURL: p.ImageURL,
			Stock: st.GetStock(p.ID, branchID),
		})
	}
	return rows
}

// ImportCommand agrega productos nuevos desde filas importadas. Se omiten las filas
// sin SKU, con SKU ya existente en el catálogo o repetido dentro del archivo. El stock
// importado queda en BranchID.
type ImportCommand struct {
	BranchID string
	Rows     []Row
	Actor    string
	At       time.Time

	Imported int
	Skipped  int
}

func (c *ImportCommand) Name() string { return "catalog.import" }

func (c *ImportCommand) Apply(st *state.State) error {
	if st.BranchIndex(c.BranchID) < 0 {
		return fmt.Errorf("sucursal %q: %w", c.BranchID, domain.ErrNotFound)
	}
	seen := make(map[string]bool, len(st.Products)+len(c.Rows))
	for _, p := range st.Products {
		seen[p.SKU] = true
	}
	c.Imported, c.Skipped = 0, 0
	for _, r := range c.Rows {
		sku := strings.TrimSpace(r.SKU)
		if sku == "" || seen[sku] {
			c.Skipped++
			continue
		}
		p := entity.Product{
			ID: strings.TrimSpace(r.ID), Name: strings.TrimSpace(r.Name), SKU: sku,
			CategoryID: r.CategoryID, Price: r.Price, Cost: r.Cost,
			LowStockAlert: r.LowStockAlert, ExpiryDate: r.ExpiryDate, ImageURL: r.ImageURL,
		}
		if p.ID == "" || st.ProductIndex(p.ID) >= 0 {
			p.ID = uuid.NewString()
		}
		if p.Name == "" {
			p.Name = sku
		}
		if validateProduct(p) != nil {
			c.Skipped++
			continue
		}
		seen[sku] = true
		st.Products = append(st.Products, p)
		st.SetStock(p.ID, c.BranchID, r.Stock)
		c.Imported++
	}
	st.Log(c.Actor, fmt.Sprintf("Importación de inventario: %d productos importados, %d omitidos", c.Imported, c.Skipped), c.At, nil)
	return nil
}
