package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// SaveProductRequest alta o edición de producto. InitialStock, si viene, fija la
// existencia en la sucursal activa.
type SaveProductRequest struct {
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	CategoryID    string          `json:"categoryId"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	LowStockAlert int             `json:"lowStockAlert"`
	ExpiryDate    string          `json:"expiryDate"`
	ImageURL      string          `json:"imageUrl"`
	InitialStock  *int            `json:"initialStock"`
}

// ProductResponse producto con su existencia en la sucursal consultada.
type ProductResponse struct {
	entity.Product
	Stock int `json:"stock"`
}

// SetStockRequest ajuste manual de existencia.
type SetStockRequest struct {
	Quantity int `json:"quantity"`
}

// CategoryRequest alta o edición de categoría.
type CategoryRequest struct {
	Name string `json:"name"`
}
