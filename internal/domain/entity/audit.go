package entity

import "time"

// AuditKind tipo de entidad referenciada por una entrada de auditoría.
type AuditKind string

const (
	AuditSale       AuditKind = "sale"
	AuditPurchase   AuditKind = "purchase"
	AuditExpense    AuditKind = "expense"
	AuditCustomer   AuditKind = "customer"
	AuditProduct    AuditKind = "product"
	AuditUser       AuditKind = "user"
	AuditSupplier   AuditKind = "supplier"
	AuditCashDrawer AuditKind = "cash_drawer"
)

// AuditRef referencia (tipo, id) para consultar el detalle.
type AuditRef struct {
	Type AuditKind `json:"type"`
	ID   string    `json:"id"`
}

// AuditLog entrada del historial. Solo se agregan al inicio; nunca se modifican.
type AuditLog struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Details   *AuditRef `json:"details,omitempty"`
}
