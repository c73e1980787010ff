package state

import (
	"fmt"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// AuditDetail es el detalle tipado de una referencia de auditoría.
// Las variantes son SaleDetail, PurchaseDetail, ExpenseDetail, CustomerDetail,
// ProductDetail, UserDetail, SupplierDetail y CashDrawerDetail.
type AuditDetail interface {
	Kind() entity.AuditKind
}

type SaleDetail struct{ Sale entity.Sale }
type PurchaseDetail struct{ Purchase entity.Purchase }
type ExpenseDetail struct{ Expense entity.Expense }
type CustomerDetail struct{ Customer entity.Customer }
type ProductDetail struct{ Product entity.Product }
type SupplierDetail struct{ Supplier entity.Supplier }
type CashDrawerDetail struct{ Session entity.CashDrawerSession }

// UserDetail no expone credenciales.
type UserDetail struct {
	ID          string
	Name        string
	Email       string
	Assignments []entity.BranchAssignment
}

func (SaleDetail) Kind() entity.AuditKind       { return entity.AuditSale }
func (PurchaseDetail) Kind() entity.AuditKind   { return entity.AuditPurchase }
func (ExpenseDetail) Kind() entity.AuditKind    { return entity.AuditExpense }
func (CustomerDetail) Kind() entity.AuditKind   { return entity.AuditCustomer }
func (ProductDetail) Kind() entity.AuditKind    { return entity.AuditProduct }
func (UserDetail) Kind() entity.AuditKind       { return entity.AuditUser }
func (SupplierDetail) Kind() entity.AuditKind   { return entity.AuditSupplier }
func (CashDrawerDetail) Kind() entity.AuditKind { return entity.AuditCashDrawer }

// ResolveAuditRef resuelve la referencia contra la colección correspondiente.
// Si la entidad ya no existe devuelve domain.ErrNotFound.
func (s *State) ResolveAuditRef(ref entity.AuditRef) (AuditDetail, error) {
	notFound := fmt.Errorf("auditoría: %s %q: %w", ref.Type, ref.ID, domain.ErrNotFound)
	switch ref.Type {
	case entity.AuditSale:
		if v, ok := s.SaleByID(ref.ID); ok {
			return SaleDetail{Sale: v}, nil
		}
	case entity.AuditPurchase:
		if p, ok := s.PurchaseByID(ref.ID); ok {
			return PurchaseDetail{Purchase: p}, nil
		}
	case entity.AuditExpense:
		if i := s.ExpenseIndex(ref.ID); i >= 0 {
			return ExpenseDetail{Expense: s.Expenses[i]}, nil
		}
	case entity.AuditCustomer:
		if i := s.CustomerIndex(ref.ID); i >= 0 {
			return CustomerDetail{Customer: s.Customers[i]}, nil
		}
	case entity.AuditProduct:
		if i := s.ProductIndex(ref.ID); i >= 0 {
			return ProductDetail{Product: s.Products[i]}, nil
		}
	case entity.AuditUser:
		if i := s.UserIndex(ref.ID); i >= 0 {
			u := s.Users[i]
			return UserDetail{ID: u.ID, Name: u.Name, Email: u.Email, Assignments: u.Assignments}, nil
		}
	case entity.AuditSupplier:
		if i := s.SupplierIndex(ref.ID); i >= 0 {
			return SupplierDetail{Supplier: s.Suppliers[i]}, nil
		}
	case entity.AuditCashDrawer:
		if cs, ok := s.SessionByID(ref.ID); ok {
			return CashDrawerDetail{Session: cs}, nil
		}
	default:
		return nil, fmt.Errorf("auditoría: tipo %q: %w", ref.Type, domain.ErrInvalidInput)
	}
	return nil, notFound
}
