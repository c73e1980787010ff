package ports

// Actor es el usuario autenticado que ejecuta una operación, en la sucursal activa.
// Name es lo que queda registrado en ventas, cajas y auditoría.
type Actor struct {
	UserID   string
	Name     string
	BranchID string
}
