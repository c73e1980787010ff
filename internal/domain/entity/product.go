package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpiryLayout es el formato de fecha de vencimiento persistido (YYYY-MM-DD).
const ExpiryLayout = "2006-01-02"

// Product representa un producto del catálogo (global al tenant).
// El stock no vive aquí: se lleva por sucursal en StockEntry.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"` // coincide con el código leído por el escáner
	CategoryID    string          `json:"categoryId"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	LowStockAlert int             `json:"lowStockAlert"`
	ExpiryDate    string          `json:"expiryDate,omitempty"`
	ImageURL      string          `json:"imageUrl,omitempty"` // URL o data URI
}

// ExpiresOn devuelve la fecha de vencimiento si el producto la tiene y es válida.
func (p Product) ExpiresOn() (time.Time, bool) {
	if p.ExpiryDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ExpiryLayout, p.ExpiryDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
