// Package state contiene el estado explícito de la aplicación y el reductor que
// aplica comandos sobre él.
//
// Cada colección se persiste como un registro independiente bajo una clave estable
// (ver Keys). Los comandos nunca modifican el estado recibido por Apply: trabajan
// sobre una copia que reemplaza al estado anterior solo si todo el comando tuvo éxito.
package state

import (
	"slices"

	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// Key identifica un registro persistido.
type Key string

// Claves de persistencia (una por colección de primer nivel).
const (
	KeyProducts          Key = "products"
	KeyStock             Key = "inventoryStock"
	KeySales             Key = "sales"
	KeyPurchases         Key = "purchases"
	KeyCustomers         Key = "customers"
	KeySuppliers         Key = "suppliers"
	KeyUsers             Key = "users"
	KeyRoles             Key = "roles"
	KeyBranches          Key = "branches"
	KeySettings          Key = "settings"
	KeyAuditLog          Key = "auditLog"
	KeyExpenses          Key = "expenses"
	KeyExpenseCategories Key = "expenseCategories"
	KeyProductCategories Key = "productCategories"
	KeyActiveSessions    Key = "activeCashDrawerSessions"
	KeySessionHistory    Key = "cashDrawerHistory"
	KeyDismissedAlerts   Key = "dismissedAlerts"
)

// Keys devuelve todas las claves en orden estable.
func Keys() []Key {
	return []Key{
		KeyProducts, KeyStock, KeySales, KeyPurchases, KeyCustomers, KeySuppliers,
		KeyUsers, KeyRoles, KeyBranches, KeySettings, KeyAuditLog, KeyExpenses,
		KeyExpenseCategories, KeyProductCategories, KeyActiveSessions,
		KeySessionHistory, KeyDismissedAlerts,
	}
}

// State agrupa todas las colecciones del tenant.
// Sales, Purchases, AuditLog y SessionHistory se mantienen del más reciente al más antiguo.
type State struct {
	Products          []entity.Product
	Stock             []entity.StockEntry
	Sales             []entity.Sale
	Purchases         []entity.Purchase
	Customers         []entity.Customer
	Suppliers         []entity.Supplier
	Users             []entity.User
	Roles             []entity.Role
	Branches          []entity.Branch
	Settings          entity.Settings
	AuditLog          []entity.AuditLog
	Expenses          []entity.Expense
	ExpenseCategories []entity.Category
	ProductCategories []entity.Category
	ActiveSessions    []entity.CashDrawerSession // a lo sumo una por sucursal
	SessionHistory    []entity.CashDrawerSession
	DismissedAlerts   []string
}

// Clone copia el estado. Los slices anidados que los comandos modifican
// (pagos, asignaciones, permisos, movimientos) también se copian.
func (s *State) Clone() *State {
	c := &State{
		Products:          slices.Clone(s.Products),
		Stock:             slices.Clone(s.Stock),
		Sales:             slices.Clone(s.Sales),
		Purchases:         slices.Clone(s.Purchases),
		Customers:         slices.Clone(s.Customers),
		Suppliers:         slices.Clone(s.Suppliers),
		Users:             slices.Clone(s.Users),
		Roles:             slices.Clone(s.Roles),
		Branches:          slices.Clone(s.Branches),
		Settings:          s.Settings,
		AuditLog:          slices.Clone(s.AuditLog),
		Expenses:          slices.Clone(s.Expenses),
		ExpenseCategories: slices.Clone(s.ExpenseCategories),
		ProductCategories: slices.Clone(s.ProductCategories),
		ActiveSessions:    slices.Clone(s.ActiveSessions),
		SessionHistory:    slices.Clone(s.SessionHistory),
		DismissedAlerts:   slices.Clone(s.DismissedAlerts),
	}
	c.Settings.EnabledModules = slices.Clone(s.Settings.EnabledModules)
	for i := range c.Customers {
		c.Customers[i].PaymentHistory = slices.Clone(c.Customers[i].PaymentHistory)
	}
	for i := range c.Suppliers {
		c.Suppliers[i].PaymentHistory = slices.Clone(c.Suppliers[i].PaymentHistory)
	}
	for i := range c.Users {
		c.Users[i].Assignments = slices.Clone(c.Users[i].Assignments)
	}
	for i := range c.Roles {
		c.Roles[i].Permissions = slices.Clone(c.Roles[i].Permissions)
	}
	for i := range c.ActiveSessions {
		c.ActiveSessions[i].Movements = slices.Clone(c.ActiveSessions[i].Movements)
	}
	return c
}
