package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto operativo de una sucursal.
type Expense struct {
	ID              string          `json:"id"`
	BranchID        string          `json:"branchId"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	CategoryID      string          `json:"categoryId"`
	Date            time.Time       `json:"date"`
	IsRecurring     bool            `json:"isRecurring"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	ReceiptImageURL string          `json:"receiptImageUrl,omitempty"`
}
