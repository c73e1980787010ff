package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// CustomerRequest alta o edición de cliente. El saldo y el historial no se editan aquí.
type CustomerRequest struct {
	Name        string          `json:"name"`
	NIT         string          `json:"nit"`
	CUI         string          `json:"cui"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	CreditDays  int             `json:"creditDays"`
}

// SupplierRequest alta o edición de proveedor.
type SupplierRequest struct {
	Name          string          `json:"name"`
	ContactPerson string          `json:"contactPerson"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	CreditLimit   decimal.Decimal `json:"creditLimit"`
	CreditDays    int             `json:"creditDays"`
}

// PaymentRequest abono a la cuenta de un cliente o proveedor.
type PaymentRequest struct {
	Amount        decimal.Decimal      `json:"amount"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
	Notes         string               `json:"notes"`
}

// PaymentResponse abono registrado y saldo resultante.
type PaymentResponse struct {
	Payment entity.Payment  `json:"payment"`
	Balance decimal.Decimal `json:"balance"`
}

// ExpenseRequest alta o edición de gasto. Date en cero toma la fecha actual.
type ExpenseRequest struct {
	Description     string               `json:"description"`
	Amount          decimal.Decimal      `json:"amount"`
	CategoryID      string               `json:"categoryId"`
	Date            time.Time            `json:"date"`
	IsRecurring     bool                 `json:"isRecurring"`
	PaymentMethod   entity.PaymentMethod `json:"paymentMethod"`
	ReceiptImageURL string               `json:"receiptImageUrl"`
}
