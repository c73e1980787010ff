package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// CartItemRequest línea del carrito. Price y Cost en cero se toman del catálogo.
type CartItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
}

// CheckoutRequest cobro del carrito en la sucursal activa.
type CheckoutRequest struct {
	CustomerID         string                   `json:"customerId"`
	Items              []CartItemRequest        `json:"items"`
	DiscountPercentage decimal.Decimal          `json:"discountPercentage"`
	PaymentMethod      entity.SalePaymentMethod `json:"paymentMethod"`
	Comments           string                   `json:"comments"`
}

// SaleFilter filtros del historial de ventas.
type SaleFilter struct {
	DateRange
	CustomerID    string
	PaymentMethod entity.SalePaymentMethod
	Search        string // id de venta o nombre de cliente
	Page          PageRequest
}

// SaleListResponse página del historial de ventas.
type SaleListResponse struct {
	Sales []entity.Sale `json:"sales"`
	Page  PageResponse  `json:"page"`
}

// PurchaseItemRequest línea de compra.
type PurchaseItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
}

// PurchaseRequest registro de una compra a proveedor.
type PurchaseRequest struct {
	SupplierID      string                `json:"supplierId"`
	Items           []PurchaseItemRequest `json:"items"`
	Comments        string                `json:"comments"`
	ReceiptImageURL string                `json:"receiptImageUrl"`
}

// PurchaseFilter filtros del listado de compras.
type PurchaseFilter struct {
	DateRange
	SupplierID string
}

// ClosingReportResponse arqueo de una sesión de caja.
type ClosingReportResponse struct {
	Session     entity.CashDrawerSession `json:"session"`
	From        time.Time                `json:"from"`
	To          time.Time                `json:"to"`
	SalesCount  int                      `json:"salesCount"`
	CashSales   decimal.Decimal          `json:"cashSales"`
	CardSales   decimal.Decimal          `json:"cardSales"`
	CreditSales decimal.Decimal          `json:"creditSales"`
	TotalSales  decimal.Decimal          `json:"totalSales"`
	CashIn      decimal.Decimal          `json:"cashIn"`
	CashOut     decimal.Decimal          `json:"cashOut"`
	Expected    decimal.Decimal          `json:"expected"`
	Counted     decimal.Decimal          `json:"counted"`
	Difference  decimal.Decimal          `json:"difference"`
	Consistent  bool                     `json:"consistent"`
}

// OpenSessionRequest apertura de caja.
type OpenSessionRequest struct {
	StartAmount decimal.Decimal `json:"startAmount"`
}

// MovementRequest entrada o salida manual de efectivo.
type MovementRequest struct {
	Type            entity.MovementType `json:"type"`
	Amount          decimal.Decimal     `json:"amount"`
	Reason          string              `json:"reason"`
	ReceiptImageURL string              `json:"receiptImageUrl"`
}

// CloseSessionRequest cierre de caja con el efectivo contado.
type CloseSessionRequest struct {
	CountedAmount decimal.Decimal `json:"countedAmount"`
}

// CurrentSessionResponse estado de la caja de la sucursal. Session es nil si no hay caja abierta.
type CurrentSessionResponse struct {
	Open     bool                      `json:"open"`
	Session  *entity.CashDrawerSession `json:"session,omitempty"`
	Expected decimal.Decimal           `json:"expected"`
}
