package dto

import (
	"github.com/shopspring/decimal"
)

// GeneralReportDTO estado de resultados de una sucursal en un rango.
type GeneralReportDTO struct {
	Revenue     decimal.Decimal `json:"revenue"`
	CostOfGoods decimal.Decimal `json:"costOfGoods"`
	Expenses    decimal.Decimal `json:"expenses"`
	GrossProfit decimal.Decimal `json:"grossProfit"`
	NetProfit   decimal.Decimal `json:"netProfit"`
	SalesCount  int             `json:"salesCount"`
	Monthly     []MonthlyDTO    `json:"monthly"`
	ByPayment   []PaymentMixDTO `json:"byPayment"`
}

// MonthlyDTO ingresos contra gastos de un mes (YYYY-MM).
type MonthlyDTO struct {
	Month    string          `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// PaymentMixDTO ventas agrupadas por forma de pago.
type PaymentMixDTO struct {
	PaymentMethod string          `json:"paymentMethod"`
	Sales         int             `json:"sales"`
	Total         decimal.Decimal `json:"total"`
}

// CategoryTotalDTO total por categoría: ventas (precio × cantidad) por categoría de
// producto o gastos por categoría de gasto.
type CategoryTotalDTO struct {
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// TopProductDTO producto más vendido por cantidad.
type TopProductDTO struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DailySalesDTO total vendido en un día (YYYY-MM-DD).
type DailySalesDTO struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}
