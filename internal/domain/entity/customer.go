package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalkInCustomerID es el cliente genérico ("Cliente General") usado cuando la venta
// no identifica a un cliente existente.
const WalkInCustomerID = "1"

// PaymentMethod medios aceptados para abonos a cuentas de crédito.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// Valid indica si el medio de pago es uno de los admitidos.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// Payment es un abono registrado contra el saldo de un cliente o proveedor.
type Payment struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Notes         string          `json:"notes,omitempty"`
}

// CreditAccount es la parte de cuenta corriente común a clientes y proveedores.
// PaymentHistory va del más reciente al más antiguo.
type CreditAccount struct {
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	CreditDays     int             `json:"creditDays,omitempty"` // informativo
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	PaymentHistory []Payment       `json:"paymentHistory"`
}

// AvailableCredit = límite − saldo actual.
func (a CreditAccount) AvailableCredit() decimal.Decimal {
	return a.CreditLimit.Sub(a.CurrentBalance)
}

// Customer cliente (global al tenant).
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	NIT     string `json:"nit"`
	CUI     string `json:"cui"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	CreditAccount
}

// Supplier proveedor (global al tenant).
type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CreditAccount
}
