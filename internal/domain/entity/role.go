package entity

// View identifica una vista de primer nivel de la aplicación.
type View string

const (
	ViewDashboard  View = "Dashboard"
	ViewInventory  View = "Inventario"
	ViewPOS        View = "Punto de Venta"
	ViewSales      View = "Historial de Ventas"
	ViewPurchases  View = "Compras"
	ViewCustomers  View = "Clientes"
	ViewSuppliers  View = "Proveedores"
	ViewExpenses   View = "Gastos"
	ViewReports    View = "Reportes"
	ViewUsers      View = "Usuarios y Roles"
	ViewSettings   View = "Configuración"
	ViewAuditLog   View = "Historial"
	ViewCashDrawer View = "Caja"
)

var allViews = []View{
	ViewDashboard, ViewInventory, ViewPOS, ViewSales, ViewPurchases, ViewCustomers,
	ViewSuppliers, ViewExpenses, ViewReports, ViewUsers, ViewSettings, ViewAuditLog,
	ViewCashDrawer,
}

// AllViews devuelve todas las vistas en orden canónico (copia).
func AllViews() []View {
	out := make([]View, len(allViews))
	copy(out, allViews)
	return out
}

// Valid indica si v es una vista conocida.
func (v View) Valid() bool {
	for _, x := range allViews {
		if x == v {
			return true
		}
	}
	return false
}

// IDs de los roles sembrados.
const (
	AdminRoleID     = "role-admin"
	SellerRoleID    = "role-seller"
	WarehouseRoleID = "role-warehouse"
	AdminRoleName   = "Administrador"
)

// Role conjunto de vistas permitidas. Los usuarios lo referencian por ID.
// Para Administrador los permisos son calculados (todas las vistas), no almacenados.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Permissions []View `json:"permissions"`
}

// IsAdmin indica si es el rol centinela Administrador.
func (r Role) IsAdmin() bool { return r.ID == AdminRoleID }
