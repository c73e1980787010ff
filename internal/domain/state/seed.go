package state

import (
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// Identificadores sembrados.
const (
	SeedBranchID    = "branch-1"
	SeedAdminUserID = "1"
)

func entityAssignment(branchID, roleID string) entity.BranchAssignment {
	return entity.BranchAssignment{BranchID: branchID, RoleID: roleID}
}

// Seed construye el estado inicial de un tenant nuevo: una sucursal, los tres roles
// base, el cliente genérico, categorías y un administrador con el hash indicado.
func Seed(branchName, adminPasswordHash string) *State {
	if branchName == "" {
		branchName = "Sucursal Central"
	}
	return &State{
		Branches: []entity.Branch{{ID: SeedBranchID, Name: branchName}},
		Roles: []entity.Role{
			{ID: entity.AdminRoleID, Name: entity.AdminRoleName, Permissions: entity.AllViews()},
			{ID: entity.SellerRoleID, Name: "Vendedor", Permissions: []entity.View{
				entity.ViewDashboard, entity.ViewPOS, entity.ViewSales, entity.ViewCustomers,
			}},
			{ID: entity.WarehouseRoleID, Name: "Almacenista", Permissions: []entity.View{
				entity.ViewDashboard, entity.ViewInventory, entity.ViewPurchases, entity.ViewSuppliers,
			}},
		},
		Users: []entity.User{{
			ID:           SeedAdminUserID,
			Name:         "Admin",
			Email:        "admin@zenith.com",
			PasswordHash: adminPasswordHash,
			Assignments:  []entity.BranchAssignment{entityAssignment(SeedBranchID, entity.AdminRoleID)},
		}},
		Customers: []entity.Customer{{
			ID: entity.WalkInCustomerID, Name: "Cliente General",
			Email: "n/a", Phone: "n/a", Address: "n/a", NIT: "CF", CUI: "CF",
		}},
		ProductCategories: []entity.Category{
			{ID: "1", Name: "Electrónica"},
			{ID: "2", Name: "Accesorios"},
			{ID: "3", Name: "Monitores"},
			{ID: "4", Name: "Lácteos"},
		},
		ExpenseCategories: []entity.Category{
			{ID: "ec1", Name: "Alquiler"},
			{ID: "ec2", Name: "Servicios Públicos"},
			{ID: "ec3", Name: "Salarios"},
			{ID: "ec4", Name: "Marketing"},
		},
		Settings: entity.DefaultSettings(),
	}
}
