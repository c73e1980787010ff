package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType entrada o salida manual de efectivo.
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// SessionStatus estado de una sesión de caja.
type SessionStatus string

const (
	SessionOpen   SessionStatus = "open"
	SessionClosed SessionStatus = "closed"
)

// CashDrawerMovement movimiento manual dentro de una sesión abierta.
type CashDrawerMovement struct {
	ID              string          `json:"id"`
	Type            MovementType    `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Reason          string          `json:"reason"`
	ReceiptImageURL string          `json:"receiptImageUrl,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
	User            string          `json:"user"`
}

// CashDrawerSession sesión de caja de una sucursal.
// CashSales acumula los totales de ventas en efectivo mientras está abierta.
type CashDrawerSession struct {
	ID          string               `json:"id"`
	BranchID    string               `json:"branchId"`
	User        string               `json:"user"`
	StartTime   time.Time            `json:"startTime"`
	StartAmount decimal.Decimal      `json:"startAmount"`
	CashSales   decimal.Decimal      `json:"cashSales"`
	Movements   []CashDrawerMovement `json:"movements"`
	Status      SessionStatus        `json:"status"`
	EndTime     *time.Time           `json:"endTime,omitempty"`
	EndAmount   decimal.Decimal      `json:"endAmount"`
	Expected    decimal.Decimal      `json:"expected"`
	Difference  decimal.Decimal      `json:"difference"`
}
