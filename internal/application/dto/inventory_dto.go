package dto

import "github.com/shopspring/decimal"

// ImportResponse resultado de una importación masiva.
type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// DismissAlertRequest descarta una alerta por su clave estable.
type DismissAlertRequest struct {
	Key string `json:"key"`
}

// ReplenishmentSuggestionDTO producto bajo su umbral de stock con la cantidad sugerida
// de pedido. Priority 1 es el más urgente.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"productId"`
	SKU                string          `json:"sku"`
	ProductName        string          `json:"productName"`
	CurrentStock       int             `json:"currentStock"`
	LowStockAlert      int             `json:"lowStockAlert"`
	IdealStock         int             `json:"idealStock"`
	SuggestedOrderQty  int             `json:"suggestedOrderQty"`
	UnitCost           decimal.Decimal `json:"unitCost"`
	EstimatedOrderCost decimal.Decimal `json:"estimatedOrderCost"`
	GrossMarginPct     decimal.Decimal `json:"grossMarginPct"`
	UnitsSoldLast90    int             `json:"unitsSoldLast90Days"`
	Priority           int             `json:"priority"`
}
