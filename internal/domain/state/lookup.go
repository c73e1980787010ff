package state

import (
	"strings"

	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

func entityStock(productID, branchID string, qty int) entity.StockEntry {
	return entity.StockEntry{ProductID: productID, BranchID: branchID, Stock: qty}
}

// ProductIndex devuelve la posición del producto o -1.
func (s *State) ProductIndex(id string) int {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// ProductBySKU busca por SKU exacto (lectura del escáner).
func (s *State) ProductBySKU(sku string) (entity.Product, bool) {
	sku = strings.TrimSpace(sku)
	for _, p := range s.Products {
		if p.SKU == sku {
			return p, true
		}
	}
	return entity.Product{}, false
}

// CustomerIndex devuelve la posición del cliente o -1.
func (s *State) CustomerIndex(id string) int {
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			return i
		}
	}
	return -1
}

// SupplierIndex devuelve la posición del proveedor o -1.
func (s *State) SupplierIndex(id string) int {
	for i := range s.Suppliers {
		if s.Suppliers[i].ID == id {
			return i
		}
	}
	return -1
}

// UserIndex devuelve la posición del usuario o -1.
func (s *State) UserIndex(id string) int {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return i
		}
	}
	return -1
}

// UserByEmail busca un usuario por email (sin distinguir mayúsculas).
func (s *State) UserByEmail(email string) (entity.User, bool) {
	for _, u := range s.Users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			return u, true
		}
	}
	return entity.User{}, false
}

// RoleIndex devuelve la posición del rol o -1.
func (s *State) RoleIndex(id string) int {
	for i := range s.Roles {
		if s.Roles[i].ID == id {
			return i
		}
	}
	return -1
}

// RoleByName busca un rol por nombre (sin distinguir mayúsculas).
func (s *State) RoleByName(name string) (entity.Role, bool) {
	for _, r := range s.Roles {
		if strings.EqualFold(r.Name, strings.TrimSpace(name)) {
			return r, true
		}
	}
	return entity.Role{}, false
}

// BranchIndex devuelve la posición de la sucursal o -1.
func (s *State) BranchIndex(id string) int {
	for i := range s.Branches {
		if s.Branches[i].ID == id {
			return i
		}
	}
	return -1
}

// ExpenseIndex devuelve la posición del gasto o -1.
func (s *State) ExpenseIndex(id string) int {
	for i := range s.Expenses {
		if s.Expenses[i].ID == id {
			return i
		}
	}
	return -1
}

// SaleByID busca una venta.
func (s *State) SaleByID(id string) (entity.Sale, bool) {
	for _, v := range s.Sales {
		if v.ID == id {
			return v, true
		}
	}
	return entity.Sale{}, false
}

// PurchaseByID busca una compra.
func (s *State) PurchaseByID(id string) (entity.Purchase, bool) {
	for _, p := range s.Purchases {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Purchase{}, false
}

// ActiveSessionIndex devuelve la posición de la caja abierta de la sucursal o -1.
func (s *State) ActiveSessionIndex(branchID string) int {
	for i := range s.ActiveSessions {
		if s.ActiveSessions[i].BranchID == branchID {
			return i
		}
	}
	return -1
}

// SessionByID busca una sesión de caja abierta o cerrada.
func (s *State) SessionByID(id string) (entity.CashDrawerSession, bool) {
	for _, cs := range s.ActiveSessions {
		if cs.ID == id {
			return cs, true
		}
	}
	for _, cs := range s.SessionHistory {
		if cs.ID == id {
			return cs, true
		}
	}
	return entity.CashDrawerSession{}, false
}

// CategoryIndex devuelve la posición de la categoría en la lista o -1.
func CategoryIndex(list []entity.Category, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
