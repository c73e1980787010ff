package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalePaymentMethod forma de pago de una venta.
type SalePaymentMethod string

const (
	SaleCash   SalePaymentMethod = "cash"
	SaleCard   SalePaymentMethod = "card"
	SaleCredit SalePaymentMethod = "credit"
)

// Valid indica si la forma de pago es admitida.
func (m SalePaymentMethod) Valid() bool {
	switch m {
	case SaleCash, SaleCard, SaleCredit:
		return true
	}
	return false
}

// SaleItem línea de venta. Name y Cost se congelan al momento de la venta.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
}

// LineTotal = Price × Quantity.
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale venta confirmada. Inmutable: no existe edición ni anulación.
// Subtotal es el subtotal después de descuento (Total = Subtotal + Tax).
type Sale struct {
	ID                 string            `json:"id"`
	Date               time.Time         `json:"date"`
	CustomerID         string            `json:"customerId"`
	CustomerName       string            `json:"customerName"`
	BranchID           string            `json:"branchId"`
	Items              []SaleItem        `json:"items"`
	Subtotal           decimal.Decimal   `json:"subtotal"`
	DiscountPercentage decimal.Decimal   `json:"discountPercentage"`
	DiscountAmount     decimal.Decimal   `json:"discountAmount"`
	Tax                decimal.Decimal   `json:"tax"`
	Total              decimal.Decimal   `json:"total"`
	User               string            `json:"user"`
	PaymentMethod      SalePaymentMethod `json:"paymentMethod"`
	Comments           string            `json:"comments,omitempty"`
}

// PurchaseItem línea de compra.
type PurchaseItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
}

// Purchase compra a proveedor: siempre suma stock y saldo del proveedor.
type Purchase struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	SupplierID      string          `json:"supplierId"`
	SupplierName    string          `json:"supplierName"`
	BranchID        string          `json:"branchId"`
	Items           []PurchaseItem  `json:"items"`
	Total           decimal.Decimal `json:"total"`
	User            string          `json:"user"`
	Comments        string          `json:"comments,omitempty"`
	ReceiptImageURL string          `json:"receiptImageUrl,omitempty"`
}
